package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/officerhub/report-management-api/internal/models"
)

type TaskStoreTestSuite struct {
	suite.Suite
	store *FSTaskStore
}

func (suite *TaskStoreTestSuite) SetupTest() {
	var err error
	suite.store, err = NewTaskStore(suite.T().TempDir())
	suite.Require().NoError(err)
}

func (suite *TaskStoreTestSuite) newTask(id string) models.Task {
	return models.Task{
		ID:          id,
		Title:       "File the backlog",
		Priority:    models.PriorityMedium,
		Category:    models.CategoryWork,
		Status:      models.TaskStatusPending,
		DueDate:     models.NewDate(2024, time.April, 1),
		AssignedTo:  "Bob",
		CreatedDate: models.NewDate(2024, time.March, 20),
	}
}

func (suite *TaskStoreTestSuite) TestSaveAndLoad() {
	t := suite.newTask("t-1")
	path, err := suite.store.Save(&t)
	suite.Require().NoError(err)
	suite.Equal("task_t-1.json", filepath.Base(path))

	got, err := suite.store.Load("t-1")
	suite.Require().NoError(err)
	suite.Equal("File the backlog", got.Title)
	suite.Equal(models.TaskStatusPending, got.Status)
}

func (suite *TaskStoreTestSuite) TestLoadMissing() {
	_, err := suite.store.Load("nope")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *TaskStoreTestSuite) TestLoadAllSkipsMalformed() {
	a := suite.newTask("t-1")
	b := suite.newTask("t-2")
	_, err := suite.store.Save(&a)
	suite.Require().NoError(err)
	_, err = suite.store.Save(&b)
	suite.Require().NoError(err)

	bad := filepath.Join(suite.store.dir, "task_broken.json")
	suite.Require().NoError(os.WriteFile(bad, []byte("{oops"), 0o644))

	tasks, err := suite.store.LoadAll()
	suite.Require().NoError(err)
	suite.Len(tasks, 2)
}

func (suite *TaskStoreTestSuite) TestDelete() {
	t := suite.newTask("t-1")
	_, err := suite.store.Save(&t)
	suite.Require().NoError(err)

	suite.NoError(suite.store.Delete("t-1"))
	suite.ErrorIs(suite.store.Delete("t-1"), ErrNotFound)
}

func TestTaskStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TaskStoreTestSuite))
}
