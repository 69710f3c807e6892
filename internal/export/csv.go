package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/officerhub/report-management-api/internal/models"
)

// ReportsCSV renders a report set as CSV using the same columns as the
// workbook export.
func ReportsCSV(reports []models.Report) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range reports {
		r := &reports[i]
		record := []string{
			r.OfficerName,
			r.Date.String(),
			r.SubmissionDate.Format("2006-01-02 15:04"),
			string(r.Type),
			string(r.Frequency),
			r.CompanyName,
			string(r.Status),
			r.Tasks,
			r.Challenges,
			r.Solutions,
			r.ReviewerNotes,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return &buf, nil
}

// TasksCSV renders a task set as CSV.
func TasksCSV(tasks []models.Task) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(taskHeaders); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range tasks {
		t := &tasks[i]
		record := []string{
			t.ID,
			t.Title,
			t.AssignedTo,
			string(t.Priority),
			string(t.Category),
			string(t.Status),
			t.DueDate.String(),
			t.CreatedDate.String(),
			t.Description,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return &buf, nil
}
