package repository

import (
	"resource-manager-backend/internal/database/models"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects and the
// collections they own
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func byDisplayOrder(db *gorm.DB) *gorm.DB {
	return db.Order("display_order").Order("id")
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// withGraph preloads everything a project owns, each collection in its stable order
func (r *ProjectRepository) withGraph() *gorm.DB {
	return r.db.
		Preload("Images", byDisplayOrder).
		Preload("Links", byID).
		Preload("Memberships", byID).
		Preload("Memberships.TeamMember").
		Preload("Tasks", byDisplayOrder).
		Preload("Tasks.Assignee").
		Preload("Tasks.Subtasks", byDisplayOrder).
		Preload("Tasks.Subtasks.Assignee")
}

// Create creates a project together with its images, links, memberships,
// tasks and subtasks
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project with its full graph by ID
func (r *ProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.withGraph().First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByName retrieves a project with its full graph by name
func (r *ProjectRepository) GetByName(name string) (*models.Project, error) {
	var project models.Project
	err := r.withGraph().Where("name = ?", name).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves every project, starred first, newest first within each group
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.withGraph().
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "starred"}, Desc: true},
			{Column: clause.Column{Name: "created_at"}, Desc: true},
			{Column: clause.Column{Name: "id"}, Desc: true},
		}}).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update saves the scalar fields of a project
func (r *ProjectRepository) Update(project *models.Project) error {
	result := r.db.Model(project).
		Select("name", "description", "status", "starred", "meeting_minutes",
			"channels", "applications", "delivery_date", "updated_at").
		Updates(project)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a project and everything it owns
func (r *ProjectRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteTasksOf(tx, id); err != nil {
			return err
		}
		for _, owned := range []interface{}{&models.ProjectImage{}, &models.ProjectLink{}, &models.ProjectMember{}} {
			if err := tx.Where("project_id = ?", id).Delete(owned).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&models.Project{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func deleteTasksOf(tx *gorm.DB, projectID uint) error {
	taskIDs := tx.Model(&models.Task{}).Select("id").Where("project_id = ?", projectID)
	if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.Subtask{}).Error; err != nil {
		return err
	}
	return tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error
}

// ReplaceMembers sets the project's membership to exactly memberIDs, in order
func (r *ProjectRepository) ReplaceMembers(projectID uint, memberIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		ids := lo.Uniq(memberIDs)
		if len(ids) == 0 {
			return nil
		}
		memberships := lo.Map(ids, func(id uint, _ int) models.ProjectMember {
			return models.ProjectMember{ProjectID: projectID, TeamMemberID: id}
		})
		return tx.Omit(clause.Associations).Create(&memberships).Error
	})
}

// AddMember puts a team member on a project. An existing membership is
// reported as gorm.ErrDuplicatedKey without failing the statement, so an
// enclosing postgres transaction stays usable.
func (r *ProjectRepository) AddMember(projectID, memberID uint) error {
	result := r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "team_member_id"}},
			DoNothing: true,
		}).
		Create(&models.ProjectMember{ProjectID: projectID, TeamMemberID: memberID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

// RemoveMember takes a team member off a project
func (r *ProjectRepository) RemoveMember(projectID, memberID uint) error {
	result := r.db.Where("project_id = ? AND team_member_id = ?", projectID, memberID).Delete(&models.ProjectMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceTasks deletes every task of the project and creates tasks in their place
func (r *ProjectRepository) ReplaceTasks(projectID uint, tasks []models.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteTasksOf(tx, projectID); err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		for i := range tasks {
			tasks[i].ProjectID = projectID
		}
		return tx.Create(&tasks).Error
	})
}

// AddImage attaches an image to a project
func (r *ProjectRepository) AddImage(image *models.ProjectImage) error {
	return r.db.Create(image).Error
}

// DeleteImage removes one image of a project
func (r *ProjectRepository) DeleteImage(projectID, imageID uint) error {
	result := r.db.Where("project_id = ?", projectID).Delete(&models.ProjectImage{}, imageID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddLink attaches a link to a project
func (r *ProjectRepository) AddLink(link *models.ProjectLink) error {
	return r.db.Create(link).Error
}

// DeleteLink removes one link of a project
func (r *ProjectRepository) DeleteLink(projectID, linkID uint) error {
	result := r.db.Where("project_id = ?", projectID).Delete(&models.ProjectLink{}, linkID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
