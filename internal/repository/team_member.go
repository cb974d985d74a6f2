package repository

import (
	"resource-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) withProjects() *gorm.DB {
	return r.db.Preload("Memberships", func(db *gorm.DB) *gorm.DB {
		return db.Order("project_members.id")
	}).Preload("Memberships.Project")
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Omit("Memberships").Create(member).Error
}

// GetByID retrieves a team member with its memberships by ID
func (r *TeamMemberRepository) GetByID(id uint) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.withProjects().First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByName retrieves a team member with its memberships by name
func (r *TeamMemberRepository) GetByName(name string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.withProjects().Where("name = ?", name).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves every team member in creation order
func (r *TeamMemberRepository) GetAll() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.withProjects().Order("id").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update saves the scalar fields of a team member
func (r *TeamMemberRepository) Update(member *models.TeamMember) error {
	result := r.db.Model(member).
		Select("name", "role", "skills", "workload", "updated_at").
		Updates(member)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a team member and its memberships. Tasks and subtasks it
// was assigned to are kept with the assignee cleared.
func (r *TeamMemberRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).Where("assignee_id = ?", id).Update("assignee_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Subtask{}).Where("assignee_id = ?", id).Update("assignee_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("team_member_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.TeamMember{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CountProjects returns the number of projects the member belongs to
func (r *TeamMemberRepository) CountProjects(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectMember{}).Where("team_member_id = ?", id).Count(&count).Error
	return count, err
}
