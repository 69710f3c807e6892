package sync

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/store"
)

type SyncServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *Service
}

func (suite *SyncServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	suite.service, err = NewWithDB(suite.db)
	suite.Require().NoError(err)
}

func (suite *SyncServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *SyncServiceTestSuite) sampleReport(officer string, day int) models.Report {
	date := models.NewDate(2024, time.March, day)
	return models.Report{
		ID:             officer + "-r",
		OfficerName:    officer,
		Date:           date,
		SubmissionDate: date.Time.Add(9 * time.Hour),
		Type:           models.ReportTypeOther,
		Tasks:          "patrol",
		Status:         models.StatusPendingReview,
	}
}

func (suite *SyncServiceTestSuite) sampleTask(id string) models.Task {
	return models.Task{
		ID:          id,
		Title:       "Upload schedules",
		Priority:    models.PriorityHigh,
		Category:    models.CategoryWork,
		Status:      models.TaskStatusPending,
		DueDate:     models.NewDate(2024, time.April, 1),
		AssignedTo:  "Alice",
		CreatedDate: models.NewDate(2024, time.March, 20),
	}
}

func (suite *SyncServiceTestSuite) TestUpsertReportIsIdempotent() {
	r := suite.sampleReport("Alice", 5)
	suite.Require().NoError(suite.service.UpsertReport(&r))

	r.Status = models.StatusApproved
	suite.Require().NoError(suite.service.UpsertReport(&r))

	var count int64
	suite.db.Model(&ReportRow{}).Count(&count)
	suite.Equal(int64(1), count)

	var row ReportRow
	suite.Require().NoError(suite.db.First(&row).Error)
	suite.Equal(string(models.StatusApproved), row.Status)

	restored, err := row.Report()
	suite.Require().NoError(err)
	suite.Equal("patrol", restored.Tasks)
}

func (suite *SyncServiceTestSuite) TestBackupAndStatus() {
	reports := []models.Report{suite.sampleReport("Alice", 5), suite.sampleReport("Bob", 6)}
	tasks := []models.Task{suite.sampleTask("t-1")}

	result := suite.service.Backup(reports, tasks)
	suite.Equal(2, result.Reports)
	suite.Equal(1, result.Tasks)
	suite.Equal(0, result.Failed)

	reportCount, taskCount, err := suite.service.Status()
	suite.Require().NoError(err)
	suite.Equal(int64(2), reportCount)
	suite.Equal(int64(1), taskCount)
}

func (suite *SyncServiceTestSuite) TestOfficerNames() {
	reports := []models.Report{
		suite.sampleReport("Bob", 6),
		suite.sampleReport("Alice", 5),
	}
	suite.service.Backup(reports, nil)

	names, err := suite.service.OfficerNames()
	suite.Require().NoError(err)
	suite.Equal([]string{"Alice", "Bob"}, names)
}

func (suite *SyncServiceTestSuite) TestRestoreWritesBackToStores() {
	reports := []models.Report{suite.sampleReport("Alice", 5)}
	tasks := []models.Task{suite.sampleTask("t-1")}
	suite.service.Backup(reports, tasks)

	root := suite.T().TempDir()
	reportStore, err := store.NewReportStore(root)
	suite.Require().NoError(err)
	taskStore, err := store.NewTaskStore(root)
	suite.Require().NoError(err)

	result, err := suite.service.Restore(reportStore, taskStore)
	suite.Require().NoError(err)
	suite.Equal(1, result.Reports)
	suite.Equal(1, result.Tasks)
	suite.Equal(0, result.Failed)

	restored, err := reportStore.Get("Alice", models.NewDate(2024, time.March, 5), models.ReportTypeOther)
	suite.Require().NoError(err)
	suite.Equal("patrol", restored.Tasks)

	task, err := taskStore.Load("t-1")
	suite.Require().NoError(err)
	suite.Equal("Upload schedules", task.Title)
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func TestDeleteTaskIssuesDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	service := &Service{db: gdb}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "officer_tasks" WHERE id = $1`)).
		WithArgs("t-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, service.DeleteTask("t-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
