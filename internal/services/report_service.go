package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/officerhub/report-management-api/internal/analytics"
	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/store"
	"github.com/officerhub/report-management-api/internal/sync"
)

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrReportApproved     = errors.New("an approved report for this date and type already exists")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidReviewInput = errors.New("review decision must be a valid status")
)

// ReportService handles report submission, review and retrieval.
type ReportService struct {
	reports       store.ReportStore
	tasks         store.TaskStore
	sync          *sync.Service
	retentionDays int
}

// NewReportService creates a new ReportService. sync may be nil when no
// remote mirror is configured.
func NewReportService(reports store.ReportStore, tasks store.TaskStore, syncService *sync.Service, retentionDays int) *ReportService {
	return &ReportService{
		reports:       reports,
		tasks:         tasks,
		sync:          syncService,
		retentionDays: retentionDays,
	}
}

// SubmitReportInput represents input for submitting a report.
type SubmitReportInput struct {
	Report       models.Report
	LinkedTaskID string
}

// Submit files a new report. The record starts in Pending Review with a
// fresh id and submission timestamp; an existing approved record under the
// same key is never overwritten. After the write an archival sweep runs so
// old records move out of the active namespace promptly.
func (s *ReportService) Submit(input SubmitReportInput) (*models.Report, error) {
	r := input.Report
	r.Status = models.StatusPendingReview
	r.SubmissionDate = time.Now()
	r.ReviewDate = nil
	r.ReviewerNotes = ""

	existing, err := s.reports.Get(r.OfficerName, r.Date, r.Type)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status == models.StatusApproved {
		return nil, ErrReportApproved
	}

	// A resubmission replaces the stored record, so it keeps the record's
	// identity; the mirror is keyed on it.
	if existing != nil && existing.ID != "" {
		r.ID = existing.ID
	} else {
		r.ID = uuid.NewString()
	}

	if _, err := s.reports.Save(&r); err != nil {
		return nil, err
	}

	if input.LinkedTaskID != "" {
		if err := s.linkTask(input.LinkedTaskID, &r); err != nil {
			log.Printf("submit: failed to link task %s: %v", input.LinkedTaskID, err)
		}
	}

	if _, err := s.reports.ArchiveOlderThan(time.Now(), s.retentionDays); err != nil {
		log.Printf("submit: archive sweep failed: %v", err)
	}

	if s.sync != nil {
		if err := s.sync.UpsertReport(&r); err != nil {
			log.Printf("submit: remote sync failed: %v", err)
		}
	}
	return &r, nil
}

func (s *ReportService) linkTask(taskID string, r *models.Report) error {
	task, err := s.tasks.Load(taskID)
	if err != nil {
		return err
	}
	task.LinkedReport = models.ReportRef(r.OfficerName, r.Date, r.Type)
	_, err = s.tasks.Save(task)
	return err
}

// ReviewInput represents a review decision on a stored report.
type ReviewInput struct {
	Officer  string
	Date     models.Date
	Type     models.ReportType
	Decision models.ReportStatus
	Notes    string
}

// Review applies a status decision to a stored report. Only the transitions
// the lifecycle allows are accepted; the submission content is preserved
// untouched.
func (s *ReportService) Review(input ReviewInput) (*models.Report, error) {
	if !input.Decision.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReviewInput, input.Decision)
	}

	r, err := s.reports.Get(input.Officer, input.Date, input.Type)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	if !r.Status.CanTransitionTo(input.Decision) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, input.Decision)
	}

	now := time.Now()
	r.Status = input.Decision
	r.ReviewerNotes = input.Notes
	r.ReviewDate = &now

	if _, err := s.reports.Save(r); err != nil {
		return nil, err
	}
	if s.sync != nil {
		if err := s.sync.UpsertReport(r); err != nil {
			log.Printf("review: remote sync failed: %v", err)
		}
	}
	return r, nil
}

// Get returns one stored report.
func (s *ReportService) Get(officer string, date models.Date, typ models.ReportType) (*models.Report, error) {
	r, err := s.reports.Get(officer, date, typ)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return r, nil
}

// List returns the reports matching the filter, most recent first.
func (s *ReportService) List(filter analytics.Filter) ([]models.Report, error) {
	var (
		reports []models.Report
		err     error
	)
	if filter.Officer != "" {
		reports, err = s.reports.Load(filter.Officer)
	} else {
		reports, err = s.reports.LoadAll()
	}
	if err != nil {
		return nil, err
	}
	return analytics.Apply(reports, filter), nil
}

// Delete removes one stored report.
func (s *ReportService) Delete(officer string, date models.Date, typ models.ReportType) error {
	if err := s.reports.Delete(officer, date, typ); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrReportNotFound
		}
		return err
	}
	return nil
}

// AddComment appends a dated comment to a stored report.
func (s *ReportService) AddComment(officer string, date models.Date, typ models.ReportType, author, text string) (*models.Report, error) {
	r, err := s.Get(officer, date, typ)
	if err != nil {
		return nil, err
	}

	r.Comments = append(r.Comments, models.Comment{
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	})
	if _, err := s.reports.Save(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Sweep runs an archival sweep now with the configured retention window.
func (s *ReportService) Sweep(now time.Time) (*store.SweepResult, error) {
	return s.SweepWithRetention(now, s.retentionDays)
}

// SweepWithRetention runs an archival sweep with an explicit window.
func (s *ReportService) SweepWithRetention(now time.Time, retentionDays int) (*store.SweepResult, error) {
	if retentionDays <= 0 {
		retentionDays = s.retentionDays
	}
	return s.reports.ArchiveOlderThan(now, retentionDays)
}
