package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/officerhub/report-management-api/internal/dto"
	apierrors "github.com/officerhub/report-management-api/internal/errors"
	"github.com/officerhub/report-management-api/internal/store"
)

type TemplateHandler struct {
	store *store.FSReportStore
}

func NewTemplateHandler(s *store.FSReportStore) *TemplateHandler {
	return &TemplateHandler{store: s}
}

// ListTemplates returns every stored template
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.store.Templates()
	if err != nil {
		apierrors.InternalError(c, "Failed to list templates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// GetTemplate returns one stored template
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	template, err := h.store.LoadTemplate(c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			apierrors.NotFound(c, "Template not found")
		case errors.Is(err, store.ErrBadName):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to fetch template")
		}
		return
	}
	c.JSON(http.StatusOK, template)
}

// SaveTemplate creates or replaces a stored template
func (h *TemplateHandler) SaveTemplate(c *gin.Context) {
	var req dto.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	template := req.ToTemplate()
	if _, err := h.store.SaveTemplate(&template); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, template)
}

// DeleteTemplate removes a stored template
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	if err := h.store.DeleteTemplate(c.Param("name")); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			apierrors.NotFound(c, "Template not found")
		case errors.Is(err, store.ErrBadName):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to delete template")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}
