package service

import (
	"errors"
	"fmt"

	"resource-manager-backend/internal/database/models"
	apperrors "resource-manager-backend/internal/errors"
	"resource-manager-backend/internal/repository"

	"gorm.io/gorm"
)

// applier turns wire records into rows inside one transaction. It resolves
// member names to ids, remembering what it has already seen.
type applier struct {
	tx      repository.Store
	members map[string]uint
}

func newApplier(tx repository.Store) *applier {
	return &applier{tx: tx, members: make(map[string]uint)}
}

func (a *applier) remember(name string, id uint) {
	a.members[name] = id
}

func (a *applier) memberID(field, name string) (uint, error) {
	if id, ok := a.members[name]; ok {
		return id, nil
	}
	member, err := a.tx.Members().GetByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.NewValidationError(field, fmt.Sprintf("unknown team member %q", name))
	}
	if err != nil {
		return 0, err
	}
	a.remember(name, member.ID)
	return member.ID, nil
}

func (a *applier) memberIDs(field string, names []string) ([]uint, error) {
	ids := make([]uint, 0, len(names))
	for i, name := range names {
		id, err := a.memberID(fmt.Sprintf("%s[%d]", field, i), name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// assigneeID resolves an optional assignee; nil or empty means unassigned
func (a *applier) assigneeID(field string, name *string) (*uint, error) {
	if name == nil || *name == "" {
		return nil, nil
	}
	id, err := a.memberID(field, *name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (a *applier) task(field string, rec *TaskRecord, order int) (models.Task, error) {
	if rec.Text == nil {
		return models.Task{}, apperrors.NewValidationError(sub(field, "text"), "is required")
	}
	start, err := parseDate(sub(field, "startDate"), rec.StartDate)
	if err != nil {
		return models.Task{}, err
	}
	end, err := parseDate(sub(field, "endDate"), rec.EndDate)
	if err != nil {
		return models.Task{}, err
	}
	assignee, err := a.assigneeID(sub(field, "assignee"), rec.Assignee)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Text:         *rec.Text,
		Completed:    rec.Completed,
		StartDate:    start,
		EndDate:      end,
		AssigneeID:   assignee,
		DisplayOrder: order,
		Subtasks:     make([]models.Subtask, 0, len(rec.Subtasks)),
	}
	for i := range rec.Subtasks {
		subtask, err := a.subtask(fmt.Sprintf("%s[%d]", sub(field, "subtasks"), i), &rec.Subtasks[i], i)
		if err != nil {
			return models.Task{}, err
		}
		task.Subtasks = append(task.Subtasks, subtask)
	}
	return task, nil
}

func (a *applier) subtask(field string, rec *SubtaskRecord, order int) (models.Subtask, error) {
	if rec.Text == nil {
		return models.Subtask{}, apperrors.NewValidationError(sub(field, "text"), "is required")
	}
	assignee, err := a.assigneeID(sub(field, "assignee"), rec.Assignee)
	if err != nil {
		return models.Subtask{}, err
	}
	return models.Subtask{
		Text:         *rec.Text,
		Completed:    rec.Completed,
		AssigneeID:   assignee,
		DisplayOrder: order,
	}, nil
}

func (a *applier) tasks(field string, recs []TaskRecord) ([]models.Task, error) {
	tasks := make([]models.Task, 0, len(recs))
	for i := range recs {
		task, err := a.task(fmt.Sprintf("%s[%d]", field, i), &recs[i], i)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// createMember inserts a new member, applying defaults for absent fields
func (a *applier) createMember(field string, rec *MemberRecord) (*models.TeamMember, error) {
	if rec.Role == nil {
		return nil, apperrors.NewValidationError(sub(field, "role"), "is required")
	}
	member := &models.TeamMember{
		Name:   rec.Name,
		Role:   *rec.Role,
		Skills: append([]string{}, rec.Skills...),
	}
	if rec.Workload != nil {
		member.Workload = *rec.Workload
	}
	if err := a.tx.Members().Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewValidationError(sub(field, "name"), fmt.Sprintf("duplicate team member %q", rec.Name))
		}
		return nil, err
	}
	a.remember(member.Name, member.ID)
	return member, nil
}

// mergeMember updates only the fields present in rec
func mergeMember(member *models.TeamMember, rec *MemberRecord) {
	if rec.Role != nil {
		member.Role = *rec.Role
	}
	if rec.Skills != nil {
		member.Skills = append([]string{}, rec.Skills...)
	}
	if rec.Workload != nil {
		member.Workload = *rec.Workload
	}
}

// createProject inserts a project with every embedded collection
func (a *applier) createProject(field string, rec *ProjectRecord) (*models.Project, error) {
	project := &models.Project{
		Name:   rec.Name,
		Status: models.DefaultProjectStatus,
	}
	if err := mergeProject(field, project, rec); err != nil {
		return nil, err
	}

	memberIDs, err := a.memberIDs(sub(field, "team"), rec.Team)
	if err != nil {
		return nil, err
	}
	seen := make(map[uint]bool, len(memberIDs))
	for _, id := range memberIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		project.Memberships = append(project.Memberships, models.ProjectMember{TeamMemberID: id})
	}

	for _, img := range rec.Images {
		project.Images = append(project.Images, models.ProjectImage{ImageData: img.ImageData, DisplayOrder: img.DisplayOrder})
	}
	for _, link := range rec.Links {
		project.Links = append(project.Links, models.ProjectLink{URL: link.URL, Label: link.Label})
	}
	if project.Tasks, err = a.tasks(sub(field, "tasks"), rec.Tasks); err != nil {
		return nil, err
	}

	if err := a.tx.Projects().Create(project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewValidationError(sub(field, "name"), fmt.Sprintf("duplicate project %q", rec.Name))
		}
		return nil, err
	}
	return project, nil
}

// replaceProjectCollections swaps the project's team and tasks for the ones
// in rec. Absent collections count as empty.
func (a *applier) replaceProjectCollections(field string, projectID uint, rec *ProjectRecord) error {
	memberIDs, err := a.memberIDs(sub(field, "team"), rec.Team)
	if err != nil {
		return err
	}
	tasks, err := a.tasks(sub(field, "tasks"), rec.Tasks)
	if err != nil {
		return err
	}
	if err := a.tx.Projects().ReplaceMembers(projectID, memberIDs); err != nil {
		return err
	}
	return a.tx.Projects().ReplaceTasks(projectID, tasks)
}

// mergeProject updates only the scalar fields present in rec. A present
// value is written as given, an empty status included.
func mergeProject(field string, project *models.Project, rec *ProjectRecord) error {
	if rec.Description != nil {
		project.Description = *rec.Description
	}
	if rec.Status != nil {
		project.Status = *rec.Status
	}
	if rec.Starred != nil {
		project.Starred = *rec.Starred
	}
	if rec.MeetingMinutes != nil {
		project.MeetingMinutes = *rec.MeetingMinutes
	}
	if rec.Channels != nil {
		project.Channels = append([]string{}, rec.Channels...)
	}
	if rec.Applications != nil {
		project.Applications = append([]string{}, rec.Applications...)
	}
	if rec.DeliveryDate != nil {
		date, err := parseDate(sub(field, "deliveryDate"), rec.DeliveryDate)
		if err != nil {
			return err
		}
		project.DeliveryDate = date
	}
	return nil
}

// sub names a child field of parent, e.g. "projects[0].tasks"
func sub(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
