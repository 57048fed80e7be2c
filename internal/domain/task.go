package domain

import (
	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// Numeric task priorities, 1 is most urgent
const (
	TaskPriorityCritical = 1
	TaskPriorityHigh     = 2
	TaskPriorityMedium   = 3
	TaskPriorityLow      = 4
)

// PriorityFromWord maps a textual priority to its numeric form. Unknown
// words fall back to medium.
func PriorityFromWord(word string) int {
	switch word {
	case "critical":
		return TaskPriorityCritical
	case "high":
		return TaskPriorityHigh
	case "medium":
		return TaskPriorityMedium
	case "low":
		return TaskPriorityLow
	default:
		return TaskPriorityMedium
	}
}

// Task belongs to exactly one project, optionally to a sprint of the same
// project, and optionally to a parent task.
type Task struct {
	BaseModel
	ProjectID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_tasks_project_id" json:"project_id"`
	SprintID       *uuid.UUID `gorm:"type:uuid;index:idx_tasks_sprint_id" json:"sprint_id,omitempty"`
	ParentID       *uuid.UUID `gorm:"type:uuid;index:idx_tasks_parent_id" json:"parent_id,omitempty"`
	Title          string     `gorm:"type:varchar(255);not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Type           string     `gorm:"type:varchar(50)" json:"type"`
	Status         TaskStatus `gorm:"type:varchar(50);not null;default:'pending';index:idx_tasks_status" json:"status"`
	Priority       int        `gorm:"not null;default:3" json:"priority"`
	EstimatedHours float64    `gorm:"not null;default:0" json:"estimated_hours"`
	ActualHours    float64    `gorm:"not null;default:0" json:"actual_hours"`
	OrderIndex     int        `gorm:"not null;default:0;index:idx_tasks_order_index" json:"order_index"`
	Project        Project    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// Assignment links a resource to a task. AssignedHours left nil means the
// task's estimated hours apply at read time; the value is never copied.
type Assignment struct {
	BaseModel
	TaskID        uuid.UUID `gorm:"type:uuid;not null;index:idx_assignments_task_id;uniqueIndex:uq_assignments_task_resource" json:"task_id"`
	ResourceID    uuid.UUID `gorm:"type:uuid;not null;index:idx_assignments_resource_id;uniqueIndex:uq_assignments_task_resource" json:"resource_id"`
	AssignedHours *float64  `gorm:"type:numeric" json:"assigned_hours,omitempty"`
	Task          Task      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
}

// TableName specifies the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
