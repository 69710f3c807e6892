package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/officerhub/report-management-api/internal/models"
)

// ReportsPDF renders a report set as a printable summary, one block per
// report.
func ReportsPDF(reports []models.Report) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Officer Reports", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Officer Reports")
	pdf.Ln(14)

	for i := range reports {
		r := &reports[i]
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("%s - %s (%s)", r.OfficerName, r.Date.String(), r.Type))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Status: %s    Submitted: %s", r.Status, r.SubmissionDate.Format("2006-01-02 15:04")))
		pdf.Ln(6)
		if r.CompanyName != "" {
			pdf.Cell(0, 6, "Company: "+r.CompanyName)
			pdf.Ln(6)
		}
		pdf.MultiCell(0, 5, "Tasks: "+r.Tasks, "", "L", false)
		if r.Challenges != "" {
			pdf.MultiCell(0, 5, "Challenges: "+r.Challenges, "", "L", false)
		}
		if r.Solutions != "" {
			pdf.MultiCell(0, 5, "Solutions: "+r.Solutions, "", "L", false)
		}
		if r.ReviewerNotes != "" {
			pdf.MultiCell(0, 5, "Reviewer notes: "+r.ReviewerNotes, "", "L", false)
		}
		pdf.Ln(4)
	}

	return pdfBuffer(pdf)
}

// TasksPDF renders a task set as a printable list.
func TasksPDF(tasks []models.Task) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Tasks", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Tasks")
	pdf.Ln(14)

	for i := range tasks {
		t := &tasks[i]
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("%s [%s]", t.Title, t.Priority))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Assigned to: %s    Status: %s    Due: %s", t.AssignedTo, t.Status, t.DueDate.String()))
		pdf.Ln(6)
		if t.Description != "" {
			pdf.MultiCell(0, 5, t.Description, "", "L", false)
		}
		pdf.Ln(4)
	}

	return pdfBuffer(pdf)
}

func pdfBuffer(pdf *gofpdf.Fpdf) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return &buf, nil
}
