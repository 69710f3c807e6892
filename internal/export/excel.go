package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/officerhub/report-management-api/internal/models"
)

var reportHeaders = []string{
	"Officer", "Date", "Submitted", "Type", "Frequency", "Company",
	"Status", "Tasks", "Challenges", "Solutions", "Reviewer Notes",
}

var taskHeaders = []string{
	"ID", "Title", "Assigned To", "Priority", "Category", "Status",
	"Due Date", "Created", "Description",
}

// ReportsExcel renders a report set as a single-sheet workbook.
func ReportsExcel(reports []models.Report) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reports"
	f.SetSheetName("Sheet1", sheet)
	if err := writeHeader(f, sheet, reportHeaders); err != nil {
		return nil, err
	}

	for i := range reports {
		r := &reports[i]
		row := []any{
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
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

// TasksExcel renders a task set as a single-sheet workbook.
func TasksExcel(tasks []models.Task) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tasks"
	f.SetSheetName("Sheet1", sheet)
	if err := writeHeader(f, sheet, taskHeaders); err != nil {
		return nil, err
	}

	for i := range tasks {
		t := &tasks[i]
		row := []any{
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
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
