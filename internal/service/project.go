package service

import (
	"errors"
	"fmt"

	"resource-manager-backend/internal/database/models"
	apperrors "resource-manager-backend/internal/errors"
	"resource-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects and their team,
// images and links
type ProjectService struct {
	store     repository.Store
	validator *validator.Validate
}

// Ensure ProjectService implements ProjectServiceInterface
var _ ProjectServiceInterface = (*ProjectService)(nil)

// NewProjectService creates a new project service
func NewProjectService(store repository.Store, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		store:     store,
		validator: validator,
	}
}

// UpdateProjectRequest represents a partial update of a project. Team and
// Tasks, when present, replace the current ones.
type UpdateProjectRequest struct {
	Name           *string        `json:"name" validate:"omitnil,min=1,max=255"`
	Description    *string        `json:"description"`
	Status         *string        `json:"status" validate:"omitnil,min=1,max=50"`
	Starred        *bool          `json:"starred"`
	MeetingMinutes *string        `json:"meetingMinutes"`
	Channels       []string       `json:"channels"`
	Applications   []string       `json:"applications"`
	DeliveryDate   OptionalString `json:"deliveryDate" swaggertype:"string"`
	Team           []string       `json:"team"`
	Tasks          []TaskRecord   `json:"tasks" validate:"omitempty,dive"`
}

// AddTeamMemberRequest names the member to put on a project
type AddTeamMemberRequest struct {
	MemberName string `json:"member_name" validate:"required" example:"Alice"`
}

// AddImageRequest carries an encoded image
type AddImageRequest struct {
	ImageData    string `json:"image_data" validate:"required"`
	DisplayOrder *int   `json:"display_order"`
}

// AddLinkRequest carries a project link
type AddLinkRequest struct {
	URL   string  `json:"url" validate:"required"`
	Label *string `json:"label"`
}

// GetAll returns every project, starred first and newest first
func (s *ProjectService) GetAll() ([]ProjectRecord, error) {
	projects, err := s.store.Projects().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	records := make([]ProjectRecord, len(projects))
	for i := range projects {
		records[i] = toProjectRecord(&projects[i])
	}
	return records, nil
}

// GetByID retrieves a project with everything it owns
func (s *ProjectService) GetByID(id uint) (*ProjectRecord, error) {
	project, err := s.store.Projects().GetByID(id)
	if err != nil {
		return nil, projectLookupError(err)
	}
	rec := toProjectRecord(project)
	return &rec, nil
}

// Create creates a project along with any team, images, links and tasks
// in the request
func (s *ProjectService) Create(req *ProjectRecord) (*ProjectRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var created *models.Project
	err := s.store.Transaction(func(tx repository.Store) error {
		if _, err := tx.Projects().GetByName(req.Name); err == nil {
			return apperrors.ErrProjectExists
		}
		project, err := newApplier(tx).createProject("", req)
		if err != nil {
			return err
		}
		created, err = tx.Projects().GetByID(project.ID)
		return err
	})
	if err != nil {
		return nil, projectWriteError(err, "create")
	}

	rec := toProjectRecord(created)
	return &rec, nil
}

// Update applies the fields present in req
func (s *ProjectService) Update(id uint, req *UpdateProjectRequest) (*ProjectRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var updated *models.Project
	err := s.store.Transaction(func(tx repository.Store) error {
		project, err := tx.Projects().GetByID(id)
		if err != nil {
			return projectLookupError(err)
		}

		if req.Name != nil && *req.Name != project.Name {
			if _, err := tx.Projects().GetByName(*req.Name); err == nil {
				return apperrors.ErrProjectExists
			}
			project.Name = *req.Name
		}
		if err := mergeProject("", project, &ProjectRecord{
			Description:    req.Description,
			Status:         req.Status,
			Starred:        req.Starred,
			MeetingMinutes: req.MeetingMinutes,
			Channels:       req.Channels,
			Applications:   req.Applications,
		}); err != nil {
			return err
		}
		if req.DeliveryDate.Set {
			if project.DeliveryDate, err = parseDate("deliveryDate", req.DeliveryDate.Value); err != nil {
				return err
			}
		}
		if err := tx.Projects().Update(project); err != nil {
			return err
		}

		a := newApplier(tx)
		if req.Team != nil {
			memberIDs, err := a.memberIDs("team", req.Team)
			if err != nil {
				return err
			}
			if err := tx.Projects().ReplaceMembers(id, memberIDs); err != nil {
				return err
			}
		}
		if req.Tasks != nil {
			tasks, err := a.tasks("tasks", req.Tasks)
			if err != nil {
				return err
			}
			if err := tx.Projects().ReplaceTasks(id, tasks); err != nil {
				return err
			}
		}

		updated, err = tx.Projects().GetByID(id)
		return err
	})
	if err != nil {
		return nil, projectWriteError(err, "update")
	}

	rec := toProjectRecord(updated)
	return &rec, nil
}

// Delete removes a project with its tasks, subtasks, images, links and
// memberships
func (s *ProjectService) Delete(id uint) error {
	if err := s.store.Projects().Delete(id); err != nil {
		return projectWriteError(err, "delete")
	}
	return nil
}

// AddTeamMember puts a member on a project and recomputes the member's
// workload. Adding a member twice is a no-op.
func (s *ProjectService) AddTeamMember(projectID uint, req *AddTeamMemberRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	return s.store.Transaction(func(tx repository.Store) error {
		if _, err := tx.Projects().GetByID(projectID); err != nil {
			return projectLookupError(err)
		}
		member, err := tx.Members().GetByName(req.MemberName)
		if err != nil {
			return memberLookupError(err)
		}
		err = tx.Projects().AddMember(projectID, member.ID)
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to add team member: %w", err)
		}
		return refreshWorkload(tx, member.ID)
	})
}

// RemoveTeamMember takes a member off a project and recomputes the
// member's workload
func (s *ProjectService) RemoveTeamMember(projectID uint, memberName string) error {
	return s.store.Transaction(func(tx repository.Store) error {
		if _, err := tx.Projects().GetByID(projectID); err != nil {
			return projectLookupError(err)
		}
		member, err := tx.Members().GetByName(memberName)
		if err != nil {
			return memberLookupError(err)
		}
		err = tx.Projects().RemoveMember(projectID, member.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to remove team member: %w", err)
		}
		return refreshWorkload(tx, member.ID)
	})
}

// AddImage attaches an image to a project. Without an explicit order the
// image goes last.
func (s *ProjectService) AddImage(projectID uint, req *AddImageRequest) (*ImageRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var image *models.ProjectImage
	err := s.store.Transaction(func(tx repository.Store) error {
		project, err := tx.Projects().GetByID(projectID)
		if err != nil {
			return projectLookupError(err)
		}
		image = &models.ProjectImage{ProjectID: projectID, ImageData: req.ImageData, DisplayOrder: len(project.Images)}
		if req.DisplayOrder != nil {
			image.DisplayOrder = *req.DisplayOrder
		}
		return tx.Projects().AddImage(image)
	})
	if err != nil {
		return nil, projectWriteError(err, "add image to")
	}
	return &ImageRecord{ID: image.ID, ImageData: image.ImageData, DisplayOrder: image.DisplayOrder}, nil
}

// DeleteImage removes one image of a project
func (s *ProjectService) DeleteImage(projectID, imageID uint) error {
	err := s.store.Projects().DeleteImage(projectID, imageID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrProjectImageNotFound
	case err != nil:
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// AddLink attaches a link to a project
func (s *ProjectService) AddLink(projectID uint, req *AddLinkRequest) (*LinkRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	link := &models.ProjectLink{ProjectID: projectID, URL: req.URL, Label: req.Label}
	err := s.store.Projects().AddLink(link)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return nil, apperrors.ErrProjectNotFound
	case err != nil:
		return nil, fmt.Errorf("failed to add link: %w", err)
	}
	return &LinkRecord{ID: link.ID, URL: link.URL, Label: link.Label}, nil
}

// DeleteLink removes one link of a project
func (s *ProjectService) DeleteLink(projectID, linkID uint) error {
	err := s.store.Projects().DeleteLink(projectID, linkID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrProjectLinkNotFound
	case err != nil:
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

func projectLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrProjectNotFound
	}
	return fmt.Errorf("failed to get project: %w", err)
}

// projectWriteError passes application errors through and maps store
// errors onto them
func projectWriteError(err error, action string) error {
	var (
		notFound *apperrors.NotFoundError
		exists   *apperrors.AlreadyExistsError
		invalid  *apperrors.ValidationError
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &exists), errors.As(err, &invalid):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrProjectNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrProjectExists
	}
	return fmt.Errorf("failed to %s project: %w", action, err)
}
