package testutils

import (
	"resource-manager-backend/internal/database/models"
)

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	return &models.TeamMember{
		Name:     "Alice",
		Role:     "Developer",
		Skills:   []string{"go", "sql"},
		Workload: 0,
	}
}

// WithName sets a custom name for the team member
func (f *TeamMemberFactory) WithName(name string) *models.TeamMember {
	member := f.Create()
	member.Name = name
	return member
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		Name:        "Apollo",
		Description: "Test project",
		Status:      models.DefaultProjectStatus,
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// WithTeam puts the given members on the project
func (f *ProjectFactory) WithTeam(name string, memberIDs ...uint) *models.Project {
	project := f.WithName(name)
	for _, id := range memberIDs {
		project.Memberships = append(project.Memberships, models.ProjectMember{TeamMemberID: id})
	}
	return project
}

// WithGraph returns a project owning one image, one link and one task with
// a subtask, both assigned to assigneeID
func (f *ProjectFactory) WithGraph(name string, assigneeID uint) *models.Project {
	project := f.WithTeam(name, assigneeID)
	label := "Docs"
	project.Images = []models.ProjectImage{{ImageData: "data:image/png;base64,AAAA"}}
	project.Links = []models.ProjectLink{{URL: "https://example.com/" + name, Label: &label}}
	project.Tasks = []models.Task{NewTaskFactory().WithSubtask("Build", assigneeID)}
	return project
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create(text string) models.Task {
	return models.Task{Text: text}
}

// WithSubtask returns a task with one subtask, both assigned to assigneeID
func (f *TaskFactory) WithSubtask(text string, assigneeID uint) models.Task {
	task := f.Create(text)
	task.AssigneeID = &assigneeID
	subAssignee := assigneeID
	task.Subtasks = []models.Subtask{{Text: text + " part", AssigneeID: &subAssignee}}
	return task
}
