package dto

import (
	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/utils"
)

// SubmitReportRequest represents the request body for submitting a report
type SubmitReportRequest struct {
	OfficerName       string   `json:"officer_name" binding:"required"`
	Date              string   `json:"date" binding:"required"`
	Type              string   `json:"type" binding:"required"`
	Frequency         string   `json:"frequency"`
	CompanyName       string   `json:"company_name"`
	Tasks             string   `json:"tasks" binding:"required"`
	Challenges        string   `json:"challenges"`
	Solutions         string   `json:"solutions"`
	TotalFiles        *int     `json:"total_files"`
	TotalYears        *int     `json:"total_years"`
	TotalCompanies    *int     `json:"total_companies"`
	CompaniesAssigned []string `json:"companies_assigned"`
	LinkedTaskID      string   `json:"linked_task_id"`
}

// ToReport converts the request into a report record. Lifecycle fields are
// left for the service to stamp.
func (req *SubmitReportRequest) ToReport() (models.Report, error) {
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return models.Report{}, err
	}
	return models.Report{
		OfficerName:       req.OfficerName,
		Date:              date,
		Type:              models.ReportType(req.Type),
		Frequency:         models.Frequency(req.Frequency),
		CompanyName:       req.CompanyName,
		Tasks:             req.Tasks,
		Challenges:        req.Challenges,
		Solutions:         req.Solutions,
		TotalFiles:        req.TotalFiles,
		TotalYears:        req.TotalYears,
		TotalCompanies:    req.TotalCompanies,
		CompaniesAssigned: req.CompaniesAssigned,
	}, nil
}

// ReviewReportRequest represents a review decision
type ReviewReportRequest struct {
	Decision string `json:"decision" binding:"required"`
	Notes    string `json:"notes"`
}

// CommentRequest represents a comment on a report or task
type CommentRequest struct {
	Author string `json:"author" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// ReportListResponse is a paginated report list
type ReportListResponse struct {
	Reports    []models.Report          `json:"reports"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// RenameOfficerRequest represents the rename body for an officer namespace
type RenameOfficerRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

// CreateOfficerRequest represents the body for creating an officer namespace
type CreateOfficerRequest struct {
	Name string `json:"name" binding:"required"`
}

// TemplateRequest represents a stored report template
type TemplateRequest struct {
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Frequency  string `json:"frequency"`
	Tasks      string `json:"tasks"`
	Challenges string `json:"challenges"`
	Solutions  string `json:"solutions"`
}

func (req *TemplateRequest) ToTemplate() models.Template {
	return models.Template{
		Name:       req.Name,
		Type:       models.ReportType(req.Type),
		Frequency:  models.Frequency(req.Frequency),
		Tasks:      req.Tasks,
		Challenges: req.Challenges,
		Solutions:  req.Solutions,
	}
}
