package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/officerhub/report-management-api/internal/dto"
	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/services"
	"github.com/officerhub/report-management-api/internal/store"
)

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine

	// Report dates inside the retention window, as YYYY-MM-DD.
	today     string
	yesterday string
}

// SetupTest runs before each test
func (suite *ReportHandlerTestSuite) SetupTest() {
	root := suite.T().TempDir()
	reportStore, err := store.NewReportStore(root)
	suite.Require().NoError(err)
	taskStore, err := store.NewTaskStore(root)
	suite.Require().NoError(err)

	reportService := services.NewReportService(reportStore, taskStore, nil, 30)
	taskService := services.NewTaskService(taskStore, nil)

	reportHandler := NewReportHandler(reportService)
	exportHandler := NewExportHandler(reportService, taskService, reportStore)
	analyticsHandler := NewAnalyticsHandler(reportService, taskService)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	api := suite.router.Group("/api")
	{
		api.POST("/reports", reportHandler.SubmitReport)
		api.GET("/reports", reportHandler.ListReports)
		api.GET("/reports/export", exportHandler.ExportReports)
		api.POST("/reports/archive", reportHandler.ArchiveReports)
		api.GET("/reports/:officer/:date/:type", reportHandler.GetReport)
		api.POST("/reports/:officer/:date/:type/review", reportHandler.ReviewReport)
		api.DELETE("/reports/:officer/:date/:type", reportHandler.DeleteReport)
		api.GET("/analytics/summary", analyticsHandler.Summary)
	}

	now := time.Now()
	suite.today = models.DateOf(now).String()
	suite.yesterday = models.DateOf(now.AddDate(0, 0, -1)).String()
}

func (suite *ReportHandlerTestSuite) request(method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportHandlerTestSuite) submit(officer, date string) *httptest.ResponseRecorder {
	return suite.request(http.MethodPost, "/api/reports", dto.SubmitReportRequest{
		OfficerName: officer,
		Date:        date,
		Type:        string(models.ReportTypeOther),
		Tasks:       "patrol",
	})
}

func reportPath(officer, date string) string {
	return fmt.Sprintf("/api/reports/%s/%s/%s",
		url.PathEscape(officer), date, url.PathEscape(string(models.ReportTypeOther)))
}

func (suite *ReportHandlerTestSuite) TestSubmitReport() {
	w := suite.submit("Alice", suite.today)
	suite.Equal(http.StatusCreated, w.Code)

	var created models.Report
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.NotEmpty(created.ID)
	suite.Equal(models.StatusPendingReview, created.Status)
}

func (suite *ReportHandlerTestSuite) TestSubmitReportValidation() {
	w := suite.request(http.MethodPost, "/api/reports", map[string]string{"officer_name": "Alice"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodPost, "/api/reports", dto.SubmitReportRequest{
		OfficerName: "Alice",
		Date:        "03/05/2024",
		Type:        string(models.ReportTypeOther),
		Tasks:       "patrol",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReportHandlerTestSuite) TestGetReport() {
	suite.submit("Alice", suite.yesterday)

	w := suite.request(http.MethodGet, reportPath("Alice", suite.yesterday), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, reportPath("Alice", suite.today), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReportHandlerTestSuite) TestReviewFlow() {
	suite.submit("Alice", suite.today)

	w := suite.request(http.MethodPost, reportPath("Alice", suite.today)+"/review",
		dto.ReviewReportRequest{Decision: string(models.StatusApproved), Notes: "ok"})
	suite.Equal(http.StatusOK, w.Code)

	var reviewed models.Report
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &reviewed))
	suite.Equal(models.StatusApproved, reviewed.Status)
	suite.NotNil(reviewed.ReviewDate)

	// Approved is terminal.
	w = suite.request(http.MethodPost, reportPath("Alice", suite.today)+"/review",
		dto.ReviewReportRequest{Decision: string(models.StatusNeedsAttention)})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	// Resubmitting over an approved record is refused.
	w = suite.submit("Alice", suite.today)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ReportHandlerTestSuite) TestListReports() {
	suite.submit("Alice", suite.today)
	suite.submit("Bob", suite.yesterday)

	w := suite.request(http.MethodGet, "/api/reports", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ReportListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Reports, 2)
	suite.Equal(2, resp.Pagination.Total)

	w = suite.request(http.MethodGet, "/api/reports?officer=Alice", nil)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Reports, 1)
	suite.Equal("Alice", resp.Reports[0].OfficerName)
}

func (suite *ReportHandlerTestSuite) TestListReportsScopedSearch() {
	suite.submit("Alice", suite.today)
	suite.submit("Bob", suite.yesterday)

	w := suite.request(http.MethodGet, "/api/reports?search=alice&scope=officer", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ReportListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Reports, 1)
	suite.Equal("Alice", resp.Reports[0].OfficerName)

	// The narrative fields don't mention the officer names.
	w = suite.request(http.MethodGet, "/api/reports?search=alice&scope=content", nil)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Reports, 0)

	w = suite.request(http.MethodGet, "/api/reports?search=alice&scope=everywhere", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReportHandlerTestSuite) TestDeleteReport() {
	suite.submit("Alice", suite.today)

	w := suite.request(http.MethodDelete, reportPath("Alice", suite.today), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodDelete, reportPath("Alice", suite.today), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReportHandlerTestSuite) TestExportFormats() {
	suite.submit("Alice", suite.today)

	w := suite.request(http.MethodGet, "/api/reports/export?format=csv", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/csv")

	w = suite.request(http.MethodGet, "/api/reports/export?format=pdf", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "application/pdf")

	w = suite.request(http.MethodGet, "/api/reports/export?format=doc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReportHandlerTestSuite) TestManualArchive() {
	lastWeek := models.DateOf(time.Now().AddDate(0, 0, -10)).String()
	suite.submit("Alice", lastWeek)

	w := suite.request(http.MethodPost, "/api/reports/archive", map[string]int{"retention_days": 5})
	suite.Equal(http.StatusOK, w.Code)

	var result store.SweepResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Len(result.Archived, 1)

	w = suite.request(http.MethodGet, reportPath("Alice", lastWeek), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReportHandlerTestSuite) TestAnalyticsSummary() {
	suite.submit("Alice", suite.today)
	suite.submit("Bob", suite.yesterday)

	w := suite.request(http.MethodGet, "/api/analytics/summary", nil)
	suite.Equal(http.StatusOK, w.Code)

	var summary map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &summary))
	suite.EqualValues(2, summary["total_reports"])
	suite.EqualValues(2, summary["total_officers"])
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
