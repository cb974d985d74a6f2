package models

import "gorm.io/datatypes"

// Task belongs to a project. Removing the assignee nulls AssigneeID and keeps the task.
type Task struct {
	BaseModel
	ProjectID    uint            `json:"project_id" gorm:"not null;index"`
	Text         string          `json:"text" gorm:"type:text;not null" validate:"required"`
	Completed    bool            `json:"completed" gorm:"not null;default:false"`
	StartDate    *datatypes.Date `json:"start_date"`
	EndDate      *datatypes.Date `json:"end_date"`
	AssigneeID   *uint           `json:"assignee_id" gorm:"index"`
	DisplayOrder int             `json:"display_order" gorm:"not null;default:0"`

	// Relationships
	Assignee *TeamMember `json:"-" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
	Subtasks []Subtask   `json:"subtasks,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// Subtask belongs to a task and follows the same assignee rule
type Subtask struct {
	BaseModel
	TaskID       uint   `json:"task_id" gorm:"not null;index"`
	Text         string `json:"text" gorm:"type:text;not null" validate:"required"`
	Completed    bool   `json:"completed" gorm:"not null;default:false"`
	AssigneeID   *uint  `json:"assignee_id" gorm:"index"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0"`

	Assignee *TeamMember `json:"-" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Subtask
func (Subtask) TableName() string {
	return "subtasks"
}

// AssigneeName returns the assignee's name, or nil when unassigned or not loaded
func (t *Task) AssigneeName() *string {
	if t.Assignee == nil {
		return nil
	}
	name := t.Assignee.Name
	return &name
}

// AssigneeName returns the assignee's name, or nil when unassigned or not loaded
func (s *Subtask) AssigneeName() *string {
	if s.Assignee == nil {
		return nil
	}
	name := s.Assignee.Name
	return &name
}
