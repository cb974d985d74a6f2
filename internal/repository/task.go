package repository

import (
	"resource-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks and subtasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a task together with its subtasks
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task with its subtasks and assignees
func (r *TaskRepository) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Preload("Assignee").
		Preload("Subtasks", byDisplayOrder).
		Preload("Subtasks.Assignee").
		First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update saves the scalar fields of a task
func (r *TaskRepository) Update(task *models.Task) error {
	result := r.db.Model(task).
		Select("text", "completed", "start_date", "end_date", "assignee_id", "display_order", "updated_at").
		Updates(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a task and its subtasks
func (r *TaskRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Subtask{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Task{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CreateSubtask creates a subtask under an existing task
func (r *TaskRepository) CreateSubtask(subtask *models.Subtask) error {
	return r.db.Create(subtask).Error
}

// GetSubtaskByID retrieves a subtask with its assignee
func (r *TaskRepository) GetSubtaskByID(id uint) (*models.Subtask, error) {
	var subtask models.Subtask
	err := r.db.Preload("Assignee").First(&subtask, id).Error
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}

// UpdateSubtask saves the scalar fields of a subtask
func (r *TaskRepository) UpdateSubtask(subtask *models.Subtask) error {
	result := r.db.Model(subtask).
		Select("text", "completed", "assignee_id", "display_order", "updated_at").
		Updates(subtask)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteSubtask removes a subtask
func (r *TaskRepository) DeleteSubtask(id uint) error {
	result := r.db.Delete(&models.Subtask{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
