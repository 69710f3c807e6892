package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/officerhub/report-management-api/internal/analytics"
	apierrors "github.com/officerhub/report-management-api/internal/errors"
	"github.com/officerhub/report-management-api/internal/export"
	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/services"
	"github.com/officerhub/report-management-api/internal/store"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
	contentTypePDF  = "application/pdf"
)

type ExportHandler struct {
	reports *services.ReportService
	tasks   *services.TaskService
	store   *store.FSReportStore
}

func NewExportHandler(reports *services.ReportService, tasks *services.TaskService, s *store.FSReportStore) *ExportHandler {
	return &ExportHandler{reports: reports, tasks: tasks, store: s}
}

// ExportReports streams the filtered report set in the requested format
func (h *ExportHandler) ExportReports(c *gin.Context) {
	filter := analytics.Filter{
		Officer: c.Query("officer"),
		Type:    models.ReportType(c.Query("type")),
		Status:  models.ReportStatus(c.Query("status")),
	}
	reports, err := h.reports.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch reports")
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	var (
		buf         *bytes.Buffer
		contentType string
	)
	switch format {
	case "xlsx":
		buf, err = export.ReportsExcel(reports)
		contentType = contentTypeXLSX
	case "csv":
		buf, err = export.ReportsCSV(reports)
		contentType = contentTypeCSV
	case "pdf":
		buf, err = export.ReportsPDF(reports)
		contentType = contentTypePDF
	default:
		apierrors.BadRequest(c, "format must be xlsx, csv or pdf")
		return
	}
	if err != nil {
		apierrors.InternalError(c, "Failed to generate export")
		return
	}

	h.sendExport(c, "reports", format, contentType, buf)
}

// ExportTasks streams the task set in the requested format
func (h *ExportHandler) ExportTasks(c *gin.Context) {
	tasks, err := h.tasks.List(services.ListTasksInput{
		AssignedTo: c.Query("assigned_to"),
		Status:     models.TaskStatus(c.Query("status")),
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	var (
		buf         *bytes.Buffer
		contentType string
	)
	switch format {
	case "xlsx":
		buf, err = export.TasksExcel(tasks)
		contentType = contentTypeXLSX
	case "csv":
		buf, err = export.TasksCSV(tasks)
		contentType = contentTypeCSV
	case "pdf":
		buf, err = export.TasksPDF(tasks)
		contentType = contentTypePDF
	default:
		apierrors.BadRequest(c, "format must be xlsx, csv or pdf")
		return
	}
	if err != nil {
		apierrors.InternalError(c, "Failed to generate export")
		return
	}

	h.sendExport(c, "tasks", format, contentType, buf)
}

// sendExport streams the document; with ?save=true a copy is kept under the
// Summaries namespace.
func (h *ExportHandler) sendExport(c *gin.Context, name, format, contentType string, buf *bytes.Buffer) {
	filename := fmt.Sprintf("%s_%s.%s", name, time.Now().Format("2006-01-02"), format)
	if c.Query("save") == "true" {
		if path, err := h.store.SaveSummary(filename, buf.Bytes()); err == nil {
			c.Header("X-Summary-Path", path)
		}
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
