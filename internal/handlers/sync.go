package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/officerhub/report-management-api/internal/errors"
	"github.com/officerhub/report-management-api/internal/store"
	"github.com/officerhub/report-management-api/internal/sync"
)

// SyncHandler exposes the remote mirror operations. When no mirror is
// configured every endpoint answers 503.
type SyncHandler struct {
	service *sync.Service
	reports store.ReportStore
	tasks   store.TaskStore
}

func NewSyncHandler(service *sync.Service, reports store.ReportStore, tasks store.TaskStore) *SyncHandler {
	return &SyncHandler{service: service, reports: reports, tasks: tasks}
}

func (h *SyncHandler) configured(c *gin.Context) bool {
	if h.service == nil {
		apierrors.ServiceUnavailable(c, "Remote sync is not configured")
		return false
	}
	return true
}

// Backup pushes every local document to the mirror
func (h *SyncHandler) Backup(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	reports, err := h.reports.LoadAll()
	if err != nil {
		apierrors.InternalError(c, "Failed to load reports")
		return
	}
	tasks, err := h.tasks.LoadAll()
	if err != nil {
		apierrors.InternalError(c, "Failed to load tasks")
		return
	}

	c.JSON(http.StatusOK, h.service.Backup(reports, tasks))
}

// Restore writes every mirrored document back into local storage
func (h *SyncHandler) Restore(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	result, err := h.service.Restore(h.reports, h.tasks)
	if err != nil {
		apierrors.InternalError(c, "Failed to restore from mirror")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Status reports the mirror row counts
func (h *SyncHandler) Status(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	reports, tasks, err := h.service.Status()
	if err != nil {
		apierrors.InternalError(c, "Failed to query mirror")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "tasks": tasks})
}
