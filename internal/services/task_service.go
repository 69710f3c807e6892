package services

import (
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/store"
	"github.com/officerhub/report-management-api/internal/sync"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService handles task business logic.
type TaskService struct {
	tasks store.TaskStore
	sync  *sync.Service
}

// NewTaskService creates a new TaskService. sync may be nil.
func NewTaskService(tasks store.TaskStore, syncService *sync.Service) *TaskService {
	return &TaskService{tasks: tasks, sync: syncService}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    models.TaskPriority
	Category    models.TaskCategory
	DueDate     models.Date
	AssignedTo  string
}

// UpdateTaskInput represents a partial update; nil fields are left
// untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *models.TaskPriority
	Category    *models.TaskCategory
	Status      *models.TaskStatus
	DueDate     *models.Date
	AssignedTo  *string
}

// ListTasksInput represents filters for listing tasks.
type ListTasksInput struct {
	AssignedTo string
	Status     models.TaskStatus
	Priority   models.TaskPriority
	Category   models.TaskCategory
}

// Create files a new task in Pending status with a generated id.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	t := models.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Category:    input.Category,
		Status:      models.TaskStatusPending,
		DueDate:     input.DueDate,
		AssignedTo:  input.AssignedTo,
		CreatedDate: models.DateOf(time.Now()),
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	if t.Category == "" {
		t.Category = models.CategoryWork
	}

	if _, err := s.tasks.Save(&t); err != nil {
		return nil, err
	}
	s.push(&t)
	return &t, nil
}

// Get returns one stored task.
func (s *TaskService) Get(id string) (*models.Task, error) {
	t, err := s.tasks.Load(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// List returns the tasks matching the filters, soonest due first.
func (s *TaskService) List(input ListTasksInput) ([]models.Task, error) {
	all, err := s.tasks.LoadAll()
	if err != nil {
		return nil, err
	}

	var out []models.Task
	for _, t := range all {
		if input.AssignedTo != "" && t.AssignedTo != input.AssignedTo {
			continue
		}
		if input.Status != "" && t.Status != input.Status {
			continue
		}
		if input.Priority != "" && t.Priority != input.Priority {
			continue
		}
		if input.Category != "" && t.Category != input.Category {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].Title < out[j].Title
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}

// Update applies a partial update to a stored task.
func (s *TaskService) Update(id string, input UpdateTaskInput) (*models.Task, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.Category != nil {
		t.Category = *input.Category
	}
	if input.Status != nil {
		if *input.Status == models.TaskStatusCompleted && t.Status != models.TaskStatusCompleted {
			done := models.DateOf(time.Now())
			t.CompletedDate = &done
		} else if *input.Status != models.TaskStatusCompleted {
			t.CompletedDate = nil
		}
		t.Status = *input.Status
	}
	if input.DueDate != nil {
		t.DueDate = *input.DueDate
	}
	if input.AssignedTo != nil {
		t.AssignedTo = *input.AssignedTo
	}

	if _, err := s.tasks.Save(t); err != nil {
		return nil, err
	}
	s.push(t)
	return t, nil
}

// AddComment appends a dated comment to a stored task. Comments are
// append-only.
func (s *TaskService) AddComment(id, author, text string) (*models.Task, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	t.Comments = append(t.Comments, models.Comment{
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	})
	if _, err := s.tasks.Save(t); err != nil {
		return nil, err
	}
	s.push(t)
	return t, nil
}

// LinkReport attaches a report document reference to a task. The reference
// carries the full storage key, so links to different officers' reports for
// the same date and type stay distinct.
func (s *TaskService) LinkReport(id, officer string, date models.Date, typ models.ReportType) (*models.Task, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	t.LinkedReport = models.ReportRef(officer, date, typ)
	if _, err := s.tasks.Save(t); err != nil {
		return nil, err
	}
	s.push(t)
	return t, nil
}

// Delete removes a stored task, locally and from the mirror.
func (s *TaskService) Delete(id string) error {
	if err := s.tasks.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	if s.sync != nil {
		if err := s.sync.DeleteTask(id); err != nil {
			log.Printf("task delete: remote sync failed: %v", err)
		}
	}
	return nil
}

func (s *TaskService) push(t *models.Task) {
	if s.sync == nil {
		return
	}
	if err := s.sync.UpsertTask(t); err != nil {
		log.Printf("task sync failed: %v", err)
	}
}
