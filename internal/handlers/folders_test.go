package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/officerhub/report-management-api/internal/dto"
	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/store"
)

type FolderHandlerTestSuite struct {
	suite.Suite
	store  *store.FSReportStore
	router *gin.Engine
}

func (suite *FolderHandlerTestSuite) SetupTest() {
	var err error
	suite.store, err = store.NewReportStore(suite.T().TempDir())
	suite.Require().NoError(err)

	folderHandler := NewFolderHandler(suite.store)
	templateHandler := NewTemplateHandler(suite.store)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	api := suite.router.Group("/api")
	{
		api.GET("/officers", folderHandler.ListOfficers)
		api.POST("/officers", folderHandler.CreateOfficer)
		api.GET("/officers/:officer/files", folderHandler.OfficerFiles)
		api.PUT("/officers/:officer", folderHandler.RenameOfficer)
		api.DELETE("/officers/:officer", folderHandler.DeleteOfficer)
		api.POST("/officers/:officer/attachments", folderHandler.UploadAttachment)

		api.GET("/templates", templateHandler.ListTemplates)
		api.POST("/templates", templateHandler.SaveTemplate)
		api.GET("/templates/:name", templateHandler.GetTemplate)
		api.DELETE("/templates/:name", templateHandler.DeleteTemplate)
	}
}

func (suite *FolderHandlerTestSuite) requestJSON(method, target string, body any) *httptest.ResponseRecorder {
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

func (suite *FolderHandlerTestSuite) TestOfficerLifecycle() {
	w := suite.requestJSON(http.MethodPost, "/api/officers", dto.CreateOfficerRequest{Name: "Alice"})
	suite.Equal(http.StatusCreated, w.Code)

	// Reserved folder names are not valid officers.
	w = suite.requestJSON(http.MethodPost, "/api/officers", dto.CreateOfficerRequest{Name: "Archives"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.requestJSON(http.MethodGet, "/api/officers", nil)
	suite.Equal(http.StatusOK, w.Code)
	var listed struct {
		Officers []string `json:"officers"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	suite.Equal([]string{"Alice"}, listed.Officers)

	w = suite.requestJSON(http.MethodPut, "/api/officers/Alice", dto.RenameOfficerRequest{NewName: "Alicia"})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.requestJSON(http.MethodDelete, "/api/officers/Alicia", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.requestJSON(http.MethodDelete, "/api/officers/Alicia", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *FolderHandlerTestSuite) TestOfficerFiles() {
	r := models.Report{
		OfficerName:    "Alice",
		Date:           models.NewDate(2024, time.March, 5),
		SubmissionDate: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC),
		Type:           models.ReportTypeOther,
		Tasks:          "patrol",
		Status:         models.StatusPendingReview,
	}
	_, err := suite.store.Save(&r)
	suite.Require().NoError(err)

	w := suite.requestJSON(http.MethodGet, "/api/officers/Alice/files", nil)
	suite.Equal(http.StatusOK, w.Code)

	var listed struct {
		Files []store.FileInfo `json:"files"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	suite.Require().Len(listed.Files, 1)
	suite.Equal("2024-03-05_Other.json", listed.Files[0].Name)
}

func (suite *FolderHandlerTestSuite) TestUploadAttachment() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "evidence.txt")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("supporting detail"))
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/officers/Alice/attachments?date=2024-03-05", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp struct {
		Path string `json:"path"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Path, "Attachments")
	suite.Contains(resp.Path, "2024_03_05")
}

func (suite *FolderHandlerTestSuite) TestTemplateLifecycle() {
	w := suite.requestJSON(http.MethodPost, "/api/templates", dto.TemplateRequest{
		Name:  "Daily Patrol",
		Type:  string(models.ReportTypeOther),
		Tasks: "patrol checklist",
	})
	suite.Equal(http.StatusCreated, w.Code)

	path := "/api/templates/" + url.PathEscape("Daily Patrol")
	w = suite.requestJSON(http.MethodGet, path, nil)
	suite.Equal(http.StatusOK, w.Code)
	var tmpl models.Template
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tmpl))
	suite.Equal("patrol checklist", tmpl.Tasks)

	w = suite.requestJSON(http.MethodGet, "/api/templates", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.requestJSON(http.MethodDelete, path, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.requestJSON(http.MethodGet, path, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestFolderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FolderHandlerTestSuite))
}
