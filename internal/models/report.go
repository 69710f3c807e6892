package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type ReportType string

const (
	ReportTypeScheduleUpload ReportType = "Schedule Upload Report"
	ReportTypeGlobalDeposit  ReportType = "Global Deposit Assigning"
	ReportTypeOther          ReportType = "Other"
)

// ReportTypes lists every valid report type, in display order.
var ReportTypes = []ReportType{
	ReportTypeScheduleUpload,
	ReportTypeGlobalDeposit,
	ReportTypeOther,
}

func (t ReportType) Valid() bool {
	for _, known := range ReportTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type ReportStatus string

const (
	StatusPendingReview  ReportStatus = "Pending Review"
	StatusApproved       ReportStatus = "Approved"
	StatusNeedsAttention ReportStatus = "Needs Attention"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPendingReview, StatusApproved, StatusNeedsAttention:
		return true
	}
	return false
}

// CanTransitionTo reports whether a review may move a report from s to next.
// Pending Review fans out to Approved or Needs Attention; Needs Attention can
// only be resolved to Approved. Approved is terminal.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	switch s {
	case StatusPendingReview:
		return next == StatusApproved || next == StatusNeedsAttention
	case StatusNeedsAttention:
		return next == StatusApproved
	}
	return false
}

// Comment is a dated free-text note attached to a report or task.
type Comment struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
}

// Report is one submission by an officer for a given date and type. The
// (officer, date, type) triple is the storage key; later writes overwrite.
// Optional fields vary by type and are validated in Validate.
type Report struct {
	ID             string       `json:"id,omitempty"`
	OfficerName    string       `json:"officer_name" validate:"required"`
	Date           Date         `json:"date"`
	SubmissionDate time.Time    `json:"submission_date"`
	Type           ReportType   `json:"type"`
	Frequency      Frequency    `json:"frequency,omitempty"`
	CompanyName    string       `json:"company_name,omitempty"`
	Tasks          string       `json:"tasks" validate:"required"`
	Challenges     string       `json:"challenges,omitempty"`
	Solutions      string       `json:"solutions,omitempty"`
	Status         ReportStatus `json:"status"`
	ReviewerNotes  string       `json:"reviewer_notes,omitempty"`
	ReviewDate     *time.Time   `json:"review_date,omitempty"`
	Attachments    []string     `json:"attachments,omitempty"`
	Comments       []Comment    `json:"comments,omitempty"`

	// Type-dependent numeric fields.
	TotalFiles        *int     `json:"total_files,omitempty"`
	TotalYears        *int     `json:"total_years,omitempty"`
	TotalCompanies    *int     `json:"total_companies,omitempty"`
	CompaniesAssigned []string `json:"companies_assigned,omitempty"`
}

var reportValidate = validator.New()

var (
	ErrInvalidReportType   = errors.New("invalid report type")
	ErrInvalidFrequency    = errors.New("invalid report frequency")
	ErrInvalidReportStatus = errors.New("invalid report status")
	ErrReportDateRequired  = errors.New("report date is required")
)

// Validate enforces the base required fields and the per-type required set.
// The store calls this before persisting, so a document on disk is always
// well-formed for its type.
func (r *Report) Validate() error {
	if err := reportValidate.Struct(r); err != nil {
		return err
	}
	if r.Date.IsZero() {
		return ErrReportDateRequired
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidReportType, r.Type)
	}
	if r.Frequency != "" && !r.Frequency.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, r.Frequency)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidReportStatus, r.Status)
	}

	switch r.Type {
	case ReportTypeScheduleUpload:
		if r.TotalFiles == nil {
			return fmt.Errorf("total_files is required for %q reports", r.Type)
		}
		if r.TotalYears == nil {
			return fmt.Errorf("total_years is required for %q reports", r.Type)
		}
	case ReportTypeGlobalDeposit:
		if r.TotalCompanies == nil {
			return fmt.Errorf("total_companies is required for %q reports", r.Type)
		}
	}
	return nil
}

// Filename derives the document name from the storage key, matching the
// {date}_{type}.json layout with spaces mapped to underscores.
func (r *Report) Filename() string {
	return ReportFilename(r.Date, r.Type)
}

func ReportFilename(date Date, typ ReportType) string {
	return fmt.Sprintf("%s_%s.json", date.String(), strings.ReplaceAll(string(typ), " ", "_"))
}

// ReportRef is the stored back-reference to a report document. It carries
// the full (officer, date, type) key as {officer}/{filename} so the record
// stays resolvable.
func ReportRef(officer string, date Date, typ ReportType) string {
	return officer + "/" + ReportFilename(date, typ)
}

// IsOnTime reports whether the report was submitted on or before its report
// date (day precision).
func (r *Report) IsOnTime() bool {
	if r.SubmissionDate.IsZero() || r.Date.IsZero() {
		return false
	}
	return !DateOf(r.SubmissionDate).Time.After(r.Date.Time)
}

// IsSameDay reports whether the report was submitted on its report date.
func (r *Report) IsSameDay() bool {
	if r.SubmissionDate.IsZero() || r.Date.IsZero() {
		return false
	}
	return DateOf(r.SubmissionDate).Equal(r.Date)
}
