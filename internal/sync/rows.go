package sync

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/officerhub/report-management-api/internal/models"
)

// ReportRow mirrors one report document in the remote database. Commonly
// queried fields are flattened into columns; the full document travels in
// report_data so a restore loses nothing.
type ReportRow struct {
	ID             string    `gorm:"primaryKey;size:64"`
	OfficerName    string    `gorm:"size:255;index"`
	ReportDate     string    `gorm:"size:10;index"`
	SubmissionDate time.Time `gorm:""`
	Type           string    `gorm:"size:64"`
	Status         string    `gorm:"size:32"`
	CompanyName    string    `gorm:"size:255"`
	ReportData     string    `gorm:"type:jsonb"`
	SyncedAt       time.Time `gorm:"autoUpdateTime"`
}

func (ReportRow) TableName() string { return "officer_reports" }

// TaskRow mirrors one task document in the remote database.
type TaskRow struct {
	ID         string    `gorm:"primaryKey;size:64"`
	Title      string    `gorm:"size:255"`
	AssignedTo string    `gorm:"size:255;index"`
	Priority   string    `gorm:"size:16"`
	Status     string    `gorm:"size:32;index"`
	DueDate    string    `gorm:"size:10"`
	TaskData   string    `gorm:"type:jsonb"`
	SyncedAt   time.Time `gorm:"autoUpdateTime"`
}

func (TaskRow) TableName() string { return "officer_tasks" }

// reportRowID builds a stable row key from the storage key so repeated syncs
// of the same record update one row.
func reportRowID(r *models.Report) string {
	if r.ID != "" {
		return r.ID
	}
	return fmt.Sprintf("%s|%s|%s", r.OfficerName, r.Date.String(), r.Type)
}

func newReportRow(r *models.Report) (*ReportRow, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return &ReportRow{
		ID:             reportRowID(r),
		OfficerName:    r.OfficerName,
		ReportDate:     r.Date.String(),
		SubmissionDate: r.SubmissionDate,
		Type:           string(r.Type),
		Status:         string(r.Status),
		CompanyName:    r.CompanyName,
		ReportData:     string(data),
	}, nil
}

func (row *ReportRow) Report() (*models.Report, error) {
	var r models.Report
	if err := json.Unmarshal([]byte(row.ReportData), &r); err != nil {
		return nil, fmt.Errorf("failed to decode report row %s: %w", row.ID, err)
	}
	return &r, nil
}

func newTaskRow(t *models.Task) (*TaskRow, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode task: %w", err)
	}
	return &TaskRow{
		ID:         t.ID,
		Title:      t.Title,
		AssignedTo: t.AssignedTo,
		Priority:   string(t.Priority),
		Status:     string(t.Status),
		DueDate:    t.DueDate.String(),
		TaskData:   string(data),
	}, nil
}

func (row *TaskRow) Task() (*models.Task, error) {
	var t models.Task
	if err := json.Unmarshal([]byte(row.TaskData), &t); err != nil {
		return nil, fmt.Errorf("failed to decode task row %s: %w", row.ID, err)
	}
	return &t, nil
}
