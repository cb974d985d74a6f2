package filestore

import (
	"slices"

	"resource-manager-backend/internal/database/models"
	"resource-manager-backend/internal/repository"

	"gorm.io/gorm"
)

var _ repository.TaskRepositoryInterface = (*taskRepository)(nil)

type taskRepository struct {
	*session
}

func (r *taskRepository) Create(task *models.Task) error {
	return r.write(func(doc *document) error {
		p, ok := doc.project(task.ProjectID)
		if !ok {
			return gorm.ErrForeignKeyViolated
		}
		t, err := newTask(doc, task, r.now())
		if err != nil {
			return err
		}
		p.Tasks = append(p.Tasks, t)
		return nil
	})
}

func (r *taskRepository) GetByID(id uint) (*models.Task, error) {
	var out *models.Task
	err := r.read(func(doc *document) error {
		p, t, ok := doc.task(id)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		task := doc.taskModel(p.ID, t)
		out = &task
		return nil
	})
	return out, err
}

func (r *taskRepository) Update(task *models.Task) error {
	return r.write(func(doc *document) error {
		_, t, ok := doc.task(task.ID)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		if !doc.assignable(task.AssigneeID) {
			return gorm.ErrForeignKeyViolated
		}
		now := r.now()
		t.Text = task.Text
		t.Completed = task.Completed
		t.StartDate = fromDate(task.StartDate)
		t.EndDate = fromDate(task.EndDate)
		t.AssigneeID = copyID(task.AssigneeID)
		t.DisplayOrder = task.DisplayOrder
		t.UpdatedAt = now
		task.UpdatedAt = now
		return nil
	})
}

func (r *taskRepository) Delete(id uint) error {
	return r.write(func(doc *document) error {
		p, _, ok := doc.task(id)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		p.Tasks = slices.DeleteFunc(p.Tasks, func(t *taskDoc) bool { return t.ID == id })
		return nil
	})
}

func (r *taskRepository) CreateSubtask(subtask *models.Subtask) error {
	return r.write(func(doc *document) error {
		_, t, ok := doc.task(subtask.TaskID)
		if !ok {
			return gorm.ErrForeignKeyViolated
		}
		s, err := newSubtask(doc, t.ID, subtask, r.now())
		if err != nil {
			return err
		}
		t.Subtasks = append(t.Subtasks, s)
		return nil
	})
}

func (r *taskRepository) GetSubtaskByID(id uint) (*models.Subtask, error) {
	var out *models.Subtask
	err := r.read(func(doc *document) error {
		t, i, ok := doc.subtask(id)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		subtask := doc.subtaskModel(t.ID, t.Subtasks[i])
		out = &subtask
		return nil
	})
	return out, err
}

func (r *taskRepository) UpdateSubtask(subtask *models.Subtask) error {
	return r.write(func(doc *document) error {
		t, i, ok := doc.subtask(subtask.ID)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		if !doc.assignable(subtask.AssigneeID) {
			return gorm.ErrForeignKeyViolated
		}
		now := r.now()
		s := &t.Subtasks[i]
		s.Text = subtask.Text
		s.Completed = subtask.Completed
		s.AssigneeID = copyID(subtask.AssigneeID)
		s.DisplayOrder = subtask.DisplayOrder
		s.UpdatedAt = now
		subtask.UpdatedAt = now
		return nil
	})
}

func (r *taskRepository) DeleteSubtask(id uint) error {
	return r.write(func(doc *document) error {
		t, i, ok := doc.subtask(id)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		t.Subtasks = slices.Delete(t.Subtasks, i, i+1)
		return nil
	})
}
