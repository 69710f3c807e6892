package dto

import (
	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/services"
	"github.com/officerhub/report-management-api/internal/utils"
)

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date" binding:"required"`
	AssignedTo  string `json:"assigned_to" binding:"required"`
}

func (req *CreateTaskRequest) ToInput() (services.CreateTaskInput, error) {
	due, err := models.ParseDate(req.DueDate)
	if err != nil {
		return services.CreateTaskInput{}, err
	}
	return services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    models.TaskPriority(req.Priority),
		Category:    models.TaskCategory(req.Category),
		DueDate:     due,
		AssignedTo:  req.AssignedTo,
	}, nil
}

// UpdateTaskRequest represents a partial task update; absent fields are left
// untouched
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
	AssignedTo  *string `json:"assigned_to"`
}

func (req *UpdateTaskRequest) ToInput() (services.UpdateTaskInput, error) {
	input := services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
	}
	if req.Priority != nil {
		p := models.TaskPriority(*req.Priority)
		input.Priority = &p
	}
	if req.Category != nil {
		c := models.TaskCategory(*req.Category)
		input.Category = &c
	}
	if req.Status != nil {
		s := models.TaskStatus(*req.Status)
		input.Status = &s
	}
	if req.DueDate != nil {
		due, err := models.ParseDate(*req.DueDate)
		if err != nil {
			return services.UpdateTaskInput{}, err
		}
		input.DueDate = &due
	}
	return input, nil
}

// LinkReportRequest attaches a report reference to a task
type LinkReportRequest struct {
	Officer string `json:"officer" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Type    string `json:"type" binding:"required"`
}

// TaskListResponse is a paginated task list
type TaskListResponse struct {
	Tasks      []models.Task            `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}
