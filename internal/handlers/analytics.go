package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/officerhub/report-management-api/internal/analytics"
	apierrors "github.com/officerhub/report-management-api/internal/errors"
	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/services"
)

type AnalyticsHandler struct {
	reports *services.ReportService
	tasks   *services.TaskService
}

func NewAnalyticsHandler(reports *services.ReportService, tasks *services.TaskService) *AnalyticsHandler {
	return &AnalyticsHandler{reports: reports, tasks: tasks}
}

// queryFilter extracts the officer/date-range filter query params.
func queryFilter(c *gin.Context) (analytics.Filter, bool) {
	filter := analytics.Filter{Officer: c.Query("officer")}
	if from := c.Query("from"); from != "" {
		d, err := models.ParseDate(from)
		if err != nil {
			apierrors.BadRequest(c, "Invalid from date")
			return filter, false
		}
		filter.From = d
	}
	if to := c.Query("to"); to != "" {
		d, err := models.ParseDate(to)
		if err != nil {
			apierrors.BadRequest(c, "Invalid to date")
			return filter, false
		}
		filter.To = d
	}
	return filter, true
}

// Summary returns the aggregate report counts
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	filter, ok := queryFilter(c)
	if !ok {
		return
	}

	reports, err := h.reports.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch reports")
		return
	}
	c.JSON(http.StatusOK, analytics.Summarize(reports))
}

// Volume returns report counts bucketed by period
func (h *AnalyticsHandler) Volume(c *gin.Context) {
	g := analytics.Granularity(c.DefaultQuery("granularity", string(analytics.GranularityDaily)))
	if !g.Valid() {
		apierrors.BadRequest(c, "granularity must be daily, weekly or monthly")
		return
	}

	filter, ok := queryFilter(c)
	if !ok {
		return
	}

	reports, err := h.reports.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch reports")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"granularity": g,
		"buckets":     analytics.Volume(reports, g),
	})
}

// Performance returns the per-officer performance model
func (h *AnalyticsHandler) Performance(c *gin.Context) {
	filter, ok := queryFilter(c)
	if !ok {
		return
	}

	reports, err := h.reports.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch reports")
		return
	}
	c.JSON(http.StatusOK, analytics.Performance(reports, time.Now()))
}

// Tasks returns the aggregate task metrics
func (h *AnalyticsHandler) Tasks(c *gin.Context) {
	tasks, err := h.tasks.List(services.ListTasksInput{})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, analytics.AnalyzeTasks(tasks, time.Now()))
}
