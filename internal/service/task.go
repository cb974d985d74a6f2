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

// TaskService handles business logic for tasks and subtasks
type TaskService struct {
	store     repository.Store
	validator *validator.Validate
}

// Ensure TaskService implements TaskServiceInterface
var _ TaskServiceInterface = (*TaskService)(nil)

// NewTaskService creates a new task service
func NewTaskService(store repository.Store, validator *validator.Validate) *TaskService {
	return &TaskService{
		store:     store,
		validator: validator,
	}
}

// UpdateTaskRequest represents a partial update of a task. An explicit
// null clears a date or the assignee.
type UpdateTaskRequest struct {
	Text      *string        `json:"text" validate:"omitnil,min=1"`
	Completed *bool          `json:"completed"`
	StartDate OptionalString `json:"startDate" swaggertype:"string"`
	EndDate   OptionalString `json:"endDate" swaggertype:"string"`
	Assignee  OptionalString `json:"assignee" swaggertype:"string"`
}

// UpdateSubtaskRequest represents a partial update of a subtask
type UpdateSubtaskRequest struct {
	Text      *string        `json:"text" validate:"omitnil,min=1"`
	Completed *bool          `json:"completed"`
	Assignee  OptionalString `json:"assignee" swaggertype:"string"`
}

// CreateTask adds a task, with any subtasks, at the end of a project
func (s *TaskService) CreateTask(projectID uint, req *TaskRecord) (*TaskRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var created *models.Task
	err := s.store.Transaction(func(tx repository.Store) error {
		project, err := tx.Projects().GetByID(projectID)
		if err != nil {
			return projectLookupError(err)
		}
		task, err := newApplier(tx).task("", req, len(project.Tasks))
		if err != nil {
			return err
		}
		task.ProjectID = projectID
		if err := tx.Tasks().Create(&task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		created, err = tx.Tasks().GetByID(task.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	rec := toTaskRecord(created)
	return &rec, nil
}

// UpdateTask applies the fields present in req
func (s *TaskService) UpdateTask(id uint, req *UpdateTaskRequest) (*TaskRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var updated *models.Task
	err := s.store.Transaction(func(tx repository.Store) error {
		task, err := tx.Tasks().GetByID(id)
		if err != nil {
			return taskLookupError(err)
		}

		if req.Text != nil {
			task.Text = *req.Text
		}
		if req.Completed != nil {
			task.Completed = *req.Completed
		}
		if req.StartDate.Set {
			if task.StartDate, err = parseDate("startDate", req.StartDate.Value); err != nil {
				return err
			}
		}
		if req.EndDate.Set {
			if task.EndDate, err = parseDate("endDate", req.EndDate.Value); err != nil {
				return err
			}
		}
		if req.Assignee.Set {
			task.Assignee = nil
			if task.AssigneeID, err = newApplier(tx).assigneeID("assignee", req.Assignee.Value); err != nil {
				return err
			}
		}

		if err := tx.Tasks().Update(task); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		updated, err = tx.Tasks().GetByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}

	rec := toTaskRecord(updated)
	return &rec, nil
}

// DeleteTask removes a task and its subtasks
func (s *TaskService) DeleteTask(id uint) error {
	err := s.store.Tasks().Delete(id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrTaskNotFound
	case err != nil:
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// CreateSubtask adds a subtask at the end of a task
func (s *TaskService) CreateSubtask(taskID uint, req *SubtaskRecord) (*SubtaskRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var created *models.Subtask
	err := s.store.Transaction(func(tx repository.Store) error {
		task, err := tx.Tasks().GetByID(taskID)
		if err != nil {
			return taskLookupError(err)
		}
		subtask, err := newApplier(tx).subtask("", req, len(task.Subtasks))
		if err != nil {
			return err
		}
		subtask.TaskID = taskID
		if err := tx.Tasks().CreateSubtask(&subtask); err != nil {
			return fmt.Errorf("failed to create subtask: %w", err)
		}
		created, err = tx.Tasks().GetSubtaskByID(subtask.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	rec := toSubtaskRecord(created)
	return &rec, nil
}

// UpdateSubtask applies the fields present in req
func (s *TaskService) UpdateSubtask(id uint, req *UpdateSubtaskRequest) (*SubtaskRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var updated *models.Subtask
	err := s.store.Transaction(func(tx repository.Store) error {
		subtask, err := tx.Tasks().GetSubtaskByID(id)
		if err != nil {
			return subtaskLookupError(err)
		}

		if req.Text != nil {
			subtask.Text = *req.Text
		}
		if req.Completed != nil {
			subtask.Completed = *req.Completed
		}
		if req.Assignee.Set {
			subtask.Assignee = nil
			if subtask.AssigneeID, err = newApplier(tx).assigneeID("assignee", req.Assignee.Value); err != nil {
				return err
			}
		}

		if err := tx.Tasks().UpdateSubtask(subtask); err != nil {
			return fmt.Errorf("failed to update subtask: %w", err)
		}
		updated, err = tx.Tasks().GetSubtaskByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}

	rec := toSubtaskRecord(updated)
	return &rec, nil
}

// DeleteSubtask removes a subtask
func (s *TaskService) DeleteSubtask(id uint) error {
	err := s.store.Tasks().DeleteSubtask(id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrSubtaskNotFound
	case err != nil:
		return fmt.Errorf("failed to delete subtask: %w", err)
	}
	return nil
}

func taskLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}
	return fmt.Errorf("failed to get task: %w", err)
}

func subtaskLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrSubtaskNotFound
	}
	return fmt.Errorf("failed to get subtask: %w", err)
}
