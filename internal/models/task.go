package models

import (
	"errors"
	"fmt"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

var TaskPriorities = []TaskPriority{PriorityHigh, PriorityMedium, PriorityLow}

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusOverdue    TaskStatus = "Overdue"
)

var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusOverdue}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusOverdue:
		return true
	}
	return false
}

type TaskCategory string

const (
	CategoryWork     TaskCategory = "Work"
	CategoryPersonal TaskCategory = "Personal"
	CategoryUrgent   TaskCategory = "Urgent"
	CategoryMeeting  TaskCategory = "Meeting"
	CategoryProject  TaskCategory = "Project"
	CategoryOther    TaskCategory = "Other"
)

var TaskCategories = []TaskCategory{
	CategoryWork, CategoryPersonal, CategoryUrgent,
	CategoryMeeting, CategoryProject, CategoryOther,
}

func (c TaskCategory) Valid() bool {
	for _, known := range TaskCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Task is an assignable unit of work, independent of reports but optionally
// linked to one. The identifier is assigned once and never changes.
type Task struct {
	ID            string       `json:"task_id"`
	Title         string       `json:"title" validate:"required"`
	Description   string       `json:"description,omitempty"`
	Priority      TaskPriority `json:"priority"`
	Category      TaskCategory `json:"category"`
	Status        TaskStatus   `json:"status"`
	DueDate       Date         `json:"due_date"`
	AssignedTo    string       `json:"assigned_to" validate:"required"`
	CreatedDate   Date         `json:"created_date"`
	CompletedDate *Date        `json:"completed_date,omitempty"`
	Comments      []Comment    `json:"comments,omitempty"`
	LinkedReport  string       `json:"linked_report,omitempty"`
}

var (
	ErrInvalidTaskPriority = errors.New("invalid task priority")
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrInvalidTaskCategory = errors.New("invalid task category")
	ErrTaskIDRequired      = errors.New("task id is required")
)

func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrTaskIDRequired
	}
	if err := reportValidate.Struct(t); err != nil {
		return err
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskPriority, t.Priority)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskStatus, t.Status)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskCategory, t.Category)
	}
	return nil
}

// Filename derives the document name for a task.
func (t *Task) Filename() string {
	return TaskFilename(t.ID)
}

func TaskFilename(id string) string {
	return fmt.Sprintf("task_%s.json", id)
}
