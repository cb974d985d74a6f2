package repository

import (
	"database/sql"

	"resource-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// GormStore implements Store on a relational database
type GormStore struct {
	db       *gorm.DB
	members  *TeamMemberRepository
	projects *ProjectRepository
	tasks    *TaskRepository
}

// NewGormStore creates a store bound to db, which may itself be a transaction
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:       db,
		members:  NewTeamMemberRepository(db),
		projects: NewProjectRepository(db),
		tasks:    NewTaskRepository(db),
	}
}

func (s *GormStore) Members() TeamMemberRepositoryInterface { return s.members }
func (s *GormStore) Projects() ProjectRepositoryInterface   { return s.projects }
func (s *GormStore) Tasks() TaskRepositoryInterface         { return s.tasks }

// Transaction runs fn in a database transaction. Nested calls become savepoints.
func (s *GormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

// View reads inside a REPEATABLE READ transaction on postgres so every query
// sees the same snapshot. Other engines read directly.
func (s *GormStore) View(fn func(tx Store) error) error {
	if s.db.Dialector.Name() != "postgres" {
		return fn(s)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

// Purge empties all domain tables, children before parents
func (s *GormStore) Purge() error {
	all := s.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{
		&models.Subtask{},
		&models.Task{},
		&models.ProjectImage{},
		&models.ProjectLink{},
		&models.ProjectMember{},
		&models.Project{},
		&models.TeamMember{},
	} {
		if err := all.Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// Ping checks the database connection
func (s *GormStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
