package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/store"
)

type TaskServiceTestSuite struct {
	suite.Suite
	service *TaskService
}

func (suite *TaskServiceTestSuite) SetupTest() {
	tasks, err := store.NewTaskStore(suite.T().TempDir())
	suite.Require().NoError(err)
	suite.service = NewTaskService(tasks, nil)
}

func (suite *TaskServiceTestSuite) create(title, assignee string) *models.Task {
	task, err := suite.service.Create(CreateTaskInput{
		Title:      title,
		DueDate:    models.DateOf(time.Now().AddDate(0, 0, 3)),
		AssignedTo: assignee,
	})
	suite.Require().NoError(err)
	return task
}

func (suite *TaskServiceTestSuite) TestCreateAppliesDefaults() {
	task := suite.create("Upload schedules", "Alice")

	suite.NotEmpty(task.ID)
	suite.Equal(models.TaskStatusPending, task.Status)
	suite.Equal(models.PriorityMedium, task.Priority)
	suite.Equal(models.CategoryWork, task.Category)
	suite.False(task.CreatedDate.IsZero())
}

func (suite *TaskServiceTestSuite) TestUpdateIsPartial() {
	task := suite.create("Upload schedules", "Alice")

	status := models.TaskStatusCompleted
	updated, err := suite.service.Update(task.ID, UpdateTaskInput{Status: &status})
	suite.Require().NoError(err)

	suite.Equal(models.TaskStatusCompleted, updated.Status)
	suite.Equal("Upload schedules", updated.Title)
	suite.Equal("Alice", updated.AssignedTo)
}

func (suite *TaskServiceTestSuite) TestUpdateStampsCompletionDate() {
	task := suite.create("Upload schedules", "Alice")
	suite.Nil(task.CompletedDate)

	status := models.TaskStatusCompleted
	updated, err := suite.service.Update(task.ID, UpdateTaskInput{Status: &status})
	suite.Require().NoError(err)
	suite.Require().NotNil(updated.CompletedDate)
	suite.Equal(models.DateOf(time.Now()), *updated.CompletedDate)

	// Reopening the task clears the stamp.
	status = models.TaskStatusInProgress
	updated, err = suite.service.Update(task.ID, UpdateTaskInput{Status: &status})
	suite.Require().NoError(err)
	suite.Nil(updated.CompletedDate)
}

func (suite *TaskServiceTestSuite) TestListFiltersAndSorts() {
	a := suite.create("Later task", "Alice")
	_ = suite.create("Other assignee", "Bob")

	due := models.DateOf(time.Now().AddDate(0, 0, 1))
	_, err := suite.service.Update(a.ID, UpdateTaskInput{DueDate: &due})
	suite.Require().NoError(err)

	all, err := suite.service.List(ListTasksInput{})
	suite.Require().NoError(err)
	suite.Len(all, 2)
	suite.Equal("Later task", all[0].Title)

	alice, err := suite.service.List(ListTasksInput{AssignedTo: "Alice"})
	suite.Require().NoError(err)
	suite.Len(alice, 1)
}

func (suite *TaskServiceTestSuite) TestAddComment() {
	task := suite.create("Upload schedules", "Alice")

	updated, err := suite.service.AddComment(task.ID, "Supervisor", "blocked on access")
	suite.Require().NoError(err)
	suite.Len(updated.Comments, 1)

	updated, err = suite.service.AddComment(task.ID, "Alice", "access granted")
	suite.Require().NoError(err)
	suite.Len(updated.Comments, 2)
}

func (suite *TaskServiceTestSuite) TestLinkReport() {
	task := suite.create("Upload schedules", "Alice")

	date := models.NewDate(2024, time.March, 5)
	updated, err := suite.service.LinkReport(task.ID, "Alice", date, models.ReportTypeScheduleUpload)
	suite.Require().NoError(err)
	suite.Equal("Alice/2024-03-05_Schedule_Upload_Report.json", updated.LinkedReport)
}

func (suite *TaskServiceTestSuite) TestLinkReportKeepsOfficersDistinct() {
	first := suite.create("Check Alice's upload", "Supervisor")
	second := suite.create("Check Bob's upload", "Supervisor")

	date := models.NewDate(2024, time.March, 5)
	a, err := suite.service.LinkReport(first.ID, "Alice", date, models.ReportTypeScheduleUpload)
	suite.Require().NoError(err)
	b, err := suite.service.LinkReport(second.ID, "Bob", date, models.ReportTypeScheduleUpload)
	suite.Require().NoError(err)

	// Same date and type under different officers must resolve to
	// different records.
	suite.NotEqual(a.LinkedReport, b.LinkedReport)
	suite.Equal("Alice/2024-03-05_Schedule_Upload_Report.json", a.LinkedReport)
	suite.Equal("Bob/2024-03-05_Schedule_Upload_Report.json", b.LinkedReport)
}

func (suite *TaskServiceTestSuite) TestDelete() {
	task := suite.create("Upload schedules", "Alice")

	suite.NoError(suite.service.Delete(task.ID))
	suite.ErrorIs(suite.service.Delete(task.ID), ErrTaskNotFound)
	_, err := suite.service.Get(task.ID)
	suite.ErrorIs(err, ErrTaskNotFound)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
