package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/officerhub/report-management-api/internal/analytics"
	"github.com/officerhub/report-management-api/internal/dto"
	apierrors "github.com/officerhub/report-management-api/internal/errors"
	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/services"
	"github.com/officerhub/report-management-api/internal/store"
	"github.com/officerhub/report-management-api/internal/utils"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// reportKey extracts the (officer, date, type) storage key from path params.
func reportKey(c *gin.Context) (string, models.Date, models.ReportType, bool) {
	officer := c.Param("officer")
	date, err := models.ParseDate(c.Param("date"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return "", models.Date{}, "", false
	}
	typ := models.ReportType(c.Param("type"))
	if !typ.Valid() {
		apierrors.BadRequest(c, "Unknown report type")
		return "", models.Date{}, "", false
	}
	return officer, date, typ, true
}

// SubmitReport files a new report
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	var req dto.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	report, err := req.ToReport()
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Submit(services.SubmitReportInput{
		Report:       report,
		LinkedTaskID: req.LinkedTaskID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReportApproved):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, store.ErrReservedDir), errors.Is(err, store.ErrBadName):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.BadRequest(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListReports returns reports matching the query filters
func (h *ReportHandler) ListReports(c *gin.Context) {
	filter := analytics.Filter{
		Officer: c.Query("officer"),
		Type:    models.ReportType(c.Query("type")),
		Status:  models.ReportStatus(c.Query("status")),
		Search:  c.Query("search"),
		Scope:   analytics.SearchScope(c.Query("scope")),
	}
	if !filter.Scope.Valid() {
		apierrors.BadRequest(c, "Unknown search scope")
		return
	}
	if from := c.Query("from"); from != "" {
		d, err := models.ParseDate(from)
		if err != nil {
			apierrors.BadRequest(c, "Invalid from date")
			return
		}
		filter.From = d
	}
	if to := c.Query("to"); to != "" {
		d, err := models.ParseDate(to)
		if err != nil {
			apierrors.BadRequest(c, "Invalid to date")
			return
		}
		filter.To = d
	}

	reports, err := h.service.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch reports")
		return
	}

	params := utils.GetPaginationParams(c)
	page, meta := utils.Paginate(reports, params)
	c.JSON(http.StatusOK, dto.ReportListResponse{Reports: page, Pagination: meta})
}

// GetReport returns a single stored report
func (h *ReportHandler) GetReport(c *gin.Context) {
	officer, date, typ, ok := reportKey(c)
	if !ok {
		return
	}

	report, err := h.service.Get(officer, date, typ)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			apierrors.NotFound(c, "Report not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// ReviewReport applies a review decision to a stored report
func (h *ReportHandler) ReviewReport(c *gin.Context) {
	officer, date, typ, ok := reportKey(c)
	if !ok {
		return
	}

	var req dto.ReviewReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	report, err := h.service.Review(services.ReviewInput{
		Officer:  officer,
		Date:     date,
		Type:     typ,
		Decision: models.ReportStatus(req.Decision),
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReportNotFound):
			apierrors.NotFound(c, "Report not found")
		case errors.Is(err, services.ErrInvalidTransition):
			apierrors.UnprocessableEntity(c, err.Error())
		case errors.Is(err, services.ErrInvalidReviewInput):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to review report")
		}
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteReport removes a stored report
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	officer, date, typ, ok := reportKey(c)
	if !ok {
		return
	}

	if err := h.service.Delete(officer, date, typ); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			apierrors.NotFound(c, "Report not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report deleted"})
}

// ArchiveReports runs a manual archival sweep, optionally overriding the
// retention window
func (h *ReportHandler) ArchiveReports(c *gin.Context) {
	var req struct {
		RetentionDays int `json:"retention_days"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
			return
		}
	}

	result, err := h.service.SweepWithRetention(time.Now(), req.RetentionDays)
	if err != nil {
		apierrors.InternalError(c, "Archive sweep failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddComment appends a comment to a stored report
func (h *ReportHandler) AddComment(c *gin.Context) {
	officer, date, typ, ok := reportKey(c)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	report, err := h.service.AddComment(officer, date, typ, req.Author, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			apierrors.NotFound(c, "Report not found")
			return
		}
		apierrors.InternalError(c, "Failed to add comment")
		return
	}
	c.JSON(http.StatusOK, report)
}
