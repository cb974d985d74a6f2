package filestore

import (
	"slices"
	"time"

	"resource-manager-backend/internal/database/models"
	"resource-manager-backend/internal/repository"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

var _ repository.ProjectRepositoryInterface = (*projectRepository)(nil)

type projectRepository struct {
	*session
}

// newTask converts a task model into a document entry with fresh ids,
// writing the ids back into the model
func newTask(doc *document, task *models.Task, now time.Time) (*taskDoc, error) {
	if !doc.assignable(task.AssigneeID) {
		return nil, gorm.ErrForeignKeyViolated
	}
	task.ID = doc.nextID()
	task.CreatedAt, task.UpdatedAt = now, now
	t := &taskDoc{
		ID:           task.ID,
		Text:         task.Text,
		Completed:    task.Completed,
		StartDate:    fromDate(task.StartDate),
		EndDate:      fromDate(task.EndDate),
		AssigneeID:   copyID(task.AssigneeID),
		DisplayOrder: task.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
		Subtasks:     make([]subtaskDoc, 0, len(task.Subtasks)),
	}
	for i := range task.Subtasks {
		s, err := newSubtask(doc, task.ID, &task.Subtasks[i], now)
		if err != nil {
			return nil, err
		}
		t.Subtasks = append(t.Subtasks, s)
	}
	return t, nil
}

func newSubtask(doc *document, taskID uint, subtask *models.Subtask, now time.Time) (subtaskDoc, error) {
	if !doc.assignable(subtask.AssigneeID) {
		return subtaskDoc{}, gorm.ErrForeignKeyViolated
	}
	subtask.ID = doc.nextID()
	subtask.TaskID = taskID
	subtask.CreatedAt, subtask.UpdatedAt = now, now
	return subtaskDoc{
		ID:           subtask.ID,
		Text:         subtask.Text,
		Completed:    subtask.Completed,
		AssigneeID:   copyID(subtask.AssigneeID),
		DisplayOrder: subtask.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func newMemberships(doc *document, memberIDs []uint, now time.Time) ([]membershipDoc, error) {
	team := make([]membershipDoc, 0, len(memberIDs))
	for _, id := range lo.Uniq(memberIDs) {
		if _, ok := doc.member(id); !ok {
			return nil, gorm.ErrForeignKeyViolated
		}
		team = append(team, membershipDoc{ID: doc.nextID(), MemberID: id, CreatedAt: now})
	}
	return team, nil
}

func (r *projectRepository) Create(project *models.Project) error {
	return r.write(func(doc *document) error {
		if _, taken := doc.projectByName(project.Name); taken {
			return gorm.ErrDuplicatedKey
		}
		now := r.now()
		project.ID = doc.nextID()
		project.CreatedAt, project.UpdatedAt = now, now
		p := &projectDoc{
			ID:             project.ID,
			Name:           project.Name,
			Description:    project.Description,
			Status:         project.Status,
			Starred:        project.Starred,
			MeetingMinutes: project.MeetingMinutes,
			Channels:       copyStrings(project.Channels),
			Applications:   copyStrings(project.Applications),
			DeliveryDate:   fromDate(project.DeliveryDate),
			CreatedAt:      now,
			UpdatedAt:      now,
			Images:         []imageDoc{},
			Links:          []linkDoc{},
			Tasks:          []*taskDoc{},
		}
		if p.Status == "" {
			p.Status = models.DefaultProjectStatus
		}

		memberIDs := lo.Map(project.Memberships, func(pm models.ProjectMember, _ int) uint { return pm.TeamMemberID })
		team, err := newMemberships(doc, memberIDs, now)
		if err != nil {
			return err
		}
		p.Team = team
		for i := range project.Memberships {
			project.Memberships[i].ProjectID = project.ID
		}

		for i := range project.Images {
			img := &project.Images[i]
			img.ID, img.ProjectID, img.CreatedAt = doc.nextID(), project.ID, now
			p.Images = append(p.Images, imageDoc{ID: img.ID, ImageData: img.ImageData, DisplayOrder: img.DisplayOrder, CreatedAt: now})
		}
		for i := range project.Links {
			link := &project.Links[i]
			link.ID, link.ProjectID, link.CreatedAt = doc.nextID(), project.ID, now
			p.Links = append(p.Links, linkDoc{ID: link.ID, URL: link.URL, Label: copyString(link.Label), CreatedAt: now})
		}
		for i := range project.Tasks {
			project.Tasks[i].ProjectID = project.ID
			t, err := newTask(doc, &project.Tasks[i], now)
			if err != nil {
				return err
			}
			p.Tasks = append(p.Tasks, t)
		}

		doc.Projects = append(doc.Projects, p)
		return nil
	})
}

func (r *projectRepository) GetByID(id uint) (*models.Project, error) {
	var out *models.Project
	err := r.read(func(doc *document) error {
		p, ok := doc.project(id)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		project := doc.projectModel(p)
		out = &project
		return nil
	})
	return out, err
}

func (r *projectRepository) GetByName(name string) (*models.Project, error) {
	var out *models.Project
	err := r.read(func(doc *document) error {
		p, ok := doc.projectByName(name)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		project := doc.projectModel(p)
		out = &project
		return nil
	})
	return out, err
}

func (r *projectRepository) GetAll() ([]models.Project, error) {
	var out []models.Project
	err := r.read(func(doc *document) error {
		ordered := slices.Clone(doc.Projects)
		slices.SortStableFunc(ordered, exportOrder)
		out = make([]models.Project, 0, len(ordered))
		for _, p := range ordered {
			out = append(out, doc.projectModel(p))
		}
		return nil
	})
	return out, err
}

func (r *projectRepository) Update(project *models.Project) error {
	return r.write(func(doc *document) error {
		p, ok := doc.project(project.ID)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		if other, taken := doc.projectByName(project.Name); taken && other.ID != p.ID {
			return gorm.ErrDuplicatedKey
		}
		now := r.now()
		p.Name = project.Name
		p.Description = project.Description
		p.Status = project.Status
		p.Starred = project.Starred
		p.MeetingMinutes = project.MeetingMinutes
		p.Channels = copyStrings(project.Channels)
		p.Applications = copyStrings(project.Applications)
		p.DeliveryDate = fromDate(project.DeliveryDate)
		p.UpdatedAt = now
		project.UpdatedAt = now
		return nil
	})
}

func (r *projectRepository) Delete(id uint) error {
	return r.write(func(doc *document) error {
		before := len(doc.Projects)
		doc.Projects = slices.DeleteFunc(doc.Projects, func(p *projectDoc) bool { return p.ID == id })
		if len(doc.Projects) == before {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *projectRepository) ReplaceMembers(projectID uint, memberIDs []uint) error {
	return r.write(func(doc *document) error {
		p, ok := doc.project(projectID)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		team, err := newMemberships(doc, memberIDs, r.now())
		if err != nil {
			return err
		}
		p.Team = team
		return nil
	})
}

func (r *projectRepository) AddMember(projectID, memberID uint) error {
	return r.write(func(doc *document) error {
		p, ok := doc.project(projectID)
		if !ok {
			return gorm.ErrForeignKeyViolated
		}
		if _, ok := doc.member(memberID); !ok {
			return gorm.ErrForeignKeyViolated
		}
		if slices.ContainsFunc(p.Team, func(pm membershipDoc) bool { return pm.MemberID == memberID }) {
			return gorm.ErrDuplicatedKey
		}
		p.Team = append(p.Team, membershipDoc{ID: doc.nextID(), MemberID: memberID, CreatedAt: r.now()})
		return nil
	})
}

func (r *projectRepository) RemoveMember(projectID, memberID uint) error {
	return r.write(func(doc *document) error {
		p, ok := doc.project(projectID)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		before := len(p.Team)
		p.Team = slices.DeleteFunc(p.Team, func(pm membershipDoc) bool { return pm.MemberID == memberID })
		if len(p.Team) == before {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *projectRepository) ReplaceTasks(projectID uint, tasks []models.Task) error {
	return r.write(func(doc *document) error {
		p, ok := doc.project(projectID)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		now := r.now()
		replacement := make([]*taskDoc, 0, len(tasks))
		for i := range tasks {
			tasks[i].ProjectID = projectID
			t, err := newTask(doc, &tasks[i], now)
			if err != nil {
				return err
			}
			replacement = append(replacement, t)
		}
		p.Tasks = replacement
		return nil
	})
}

func (r *projectRepository) AddImage(image *models.ProjectImage) error {
	return r.write(func(doc *document) error {
		p, ok := doc.project(image.ProjectID)
		if !ok {
			return gorm.ErrForeignKeyViolated
		}
		image.ID, image.CreatedAt = doc.nextID(), r.now()
		p.Images = append(p.Images, imageDoc{ID: image.ID, ImageData: image.ImageData, DisplayOrder: image.DisplayOrder, CreatedAt: image.CreatedAt})
		return nil
	})
}

func (r *projectRepository) DeleteImage(projectID, imageID uint) error {
	return r.write(func(doc *document) error {
		p, ok := doc.project(projectID)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		before := len(p.Images)
		p.Images = slices.DeleteFunc(p.Images, func(img imageDoc) bool { return img.ID == imageID })
		if len(p.Images) == before {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *projectRepository) AddLink(link *models.ProjectLink) error {
	return r.write(func(doc *document) error {
		p, ok := doc.project(link.ProjectID)
		if !ok {
			return gorm.ErrForeignKeyViolated
		}
		link.ID, link.CreatedAt = doc.nextID(), r.now()
		p.Links = append(p.Links, linkDoc{ID: link.ID, URL: link.URL, Label: copyString(link.Label), CreatedAt: link.CreatedAt})
		return nil
	})
}

func (r *projectRepository) DeleteLink(projectID, linkID uint) error {
	return r.write(func(doc *document) error {
		p, ok := doc.project(projectID)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		before := len(p.Links)
		p.Links = slices.DeleteFunc(p.Links, func(link linkDoc) bool { return link.ID == linkID })
		if len(p.Links) == before {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
