package repository

import (
	"resource-manager-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Repositories report a missing row as gorm.ErrRecordNotFound and a taken
// natural key as gorm.ErrDuplicatedKey, whatever the backend.

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByID(id uint) (*models.TeamMember, error)
	GetByName(name string) (*models.TeamMember, error)
	GetAll() ([]models.TeamMember, error)
	Update(member *models.TeamMember) error
	Delete(id uint) error
	CountProjects(id uint) (int64, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	GetByName(name string) (*models.Project, error)
	GetAll() ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uint) error
	ReplaceMembers(projectID uint, memberIDs []uint) error
	AddMember(projectID, memberID uint) error
	RemoveMember(projectID, memberID uint) error
	ReplaceTasks(projectID uint, tasks []models.Task) error
	AddImage(image *models.ProjectImage) error
	DeleteImage(projectID, imageID uint) error
	AddLink(link *models.ProjectLink) error
	DeleteLink(projectID, linkID uint) error
}

// TaskRepositoryInterface defines the interface for task and subtask repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uint) (*models.Task, error)
	Update(task *models.Task) error
	Delete(id uint) error
	CreateSubtask(subtask *models.Subtask) error
	GetSubtaskByID(id uint) (*models.Subtask, error)
	UpdateSubtask(subtask *models.Subtask) error
	DeleteSubtask(id uint) error
}

// Store is the persistence boundary. One implementation is chosen at
// startup and kept for the life of the process.
type Store interface {
	Members() TeamMemberRepositoryInterface
	Projects() ProjectRepositoryInterface
	Tasks() TaskRepositoryInterface

	// Transaction runs fn atomically: on error nothing fn did is kept.
	Transaction(fn func(tx Store) error) error
	// View runs fn against a consistent read-only snapshot.
	View(fn func(tx Store) error) error
	// Purge deletes every row of every table, children first.
	Purge() error
	Ping() error
}
