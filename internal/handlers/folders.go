package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/officerhub/report-management-api/internal/dto"
	apierrors "github.com/officerhub/report-management-api/internal/errors"
	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/store"
)

// FolderHandler exposes officer namespace management and attachment upload.
type FolderHandler struct {
	store *store.FSReportStore
}

func NewFolderHandler(s *store.FSReportStore) *FolderHandler {
	return &FolderHandler{store: s}
}

// ListOfficers returns every officer namespace
func (h *FolderHandler) ListOfficers(c *gin.Context) {
	officers, err := h.store.Officers()
	if err != nil {
		apierrors.InternalError(c, "Failed to list officers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"officers": officers})
}

// CreateOfficer creates an empty officer namespace
func (h *FolderHandler) CreateOfficer(c *gin.Context) {
	var req dto.CreateOfficerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	if err := h.store.EnsureOfficer(req.Name); err != nil {
		if errors.Is(err, store.ErrReservedDir) || errors.Is(err, store.ErrBadName) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create officer")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

// OfficerFiles lists the stored documents for one officer
func (h *FolderHandler) OfficerFiles(c *gin.Context) {
	files, err := h.store.OfficerFiles(c.Param("officer"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			apierrors.NotFound(c, "Officer not found")
		case errors.Is(err, store.ErrReservedDir), errors.Is(err, store.ErrBadName):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to list files")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

// RenameOfficer moves an officer namespace to a new name
func (h *FolderHandler) RenameOfficer(c *gin.Context) {
	var req dto.RenameOfficerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	if err := h.store.RenameOfficer(c.Param("officer"), req.NewName); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			apierrors.NotFound(c, "Officer not found")
		case errors.Is(err, store.ErrNameTaken):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, store.ErrReservedDir), errors.Is(err, store.ErrBadName):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to rename officer")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": req.NewName})
}

// DeleteOfficer removes an officer namespace and its documents
func (h *FolderHandler) DeleteOfficer(c *gin.Context) {
	if err := h.store.DeleteOfficer(c.Param("officer")); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			apierrors.NotFound(c, "Officer not found")
		case errors.Is(err, store.ErrReservedDir), errors.Is(err, store.ErrBadName):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to delete officer")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Officer deleted"})
}

// UploadAttachment stores a supplementary file for an officer and date
func (h *FolderHandler) UploadAttachment(c *gin.Context) {
	date, err := models.ParseDate(c.Query("date"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "Missing file upload")
		return
	}
	defer file.Close()

	path, err := h.store.SaveAttachment(c.Param("officer"), date, header.Filename, file)
	if err != nil {
		if errors.Is(err, store.ErrBadName) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to store attachment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"path": path})
}
