package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/officerhub/report-management-api/internal/dto"
	apierrors "github.com/officerhub/report-management-api/internal/errors"
	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/services"
	"github.com/officerhub/report-management-api/internal/utils"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// CreateTask files a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	input, err := req.ToInput()
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.Create(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, task)
}

// ListTasks returns tasks matching the query filters
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.service.List(services.ListTasksInput{
		AssignedTo: c.Query("assigned_to"),
		Status:     models.TaskStatus(c.Query("status")),
		Priority:   models.TaskPriority(c.Query("priority")),
		Category:   models.TaskCategory(c.Query("category")),
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	params := utils.GetPaginationParams(c)
	page, meta := utils.Paginate(tasks, params)
	c.JSON(http.StatusOK, dto.TaskListResponse{Tasks: page, Pagination: meta})
}

// GetTask returns a single stored task
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update to a stored task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	input, err := req.ToInput()
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a stored task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// AddComment appends a comment to a stored task
func (h *TaskHandler) AddComment(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.service.AddComment(c.Param("id"), req.Author, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to add comment")
		return
	}
	c.JSON(http.StatusOK, task)
}

// LinkReport attaches a report reference to a stored task
func (h *TaskHandler) LinkReport(c *gin.Context) {
	var req dto.LinkReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}
	typ := models.ReportType(req.Type)
	if !typ.Valid() {
		apierrors.BadRequest(c, "Unknown report type")
		return
	}

	task, err := h.service.LinkReport(c.Param("id"), req.Officer, date, typ)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to link report")
		return
	}
	c.JSON(http.StatusOK, task)
}
