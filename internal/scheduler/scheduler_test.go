package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officerhub/report-management-api/internal/services"
	"github.com/officerhub/report-management-api/internal/store"
)

func newTestScheduler(t *testing.T) *Scheduler {
	root := t.TempDir()
	reportStore, err := store.NewReportStore(root)
	require.NoError(t, err)
	taskStore, err := store.NewTaskStore(root)
	require.NoError(t, err)

	reportService := services.NewReportService(reportStore, taskStore, nil, 30)
	return New(reportService, reportStore, taskStore, nil)
}

func TestStartAndStop(t *testing.T) {
	s := newTestScheduler(t)
	require.NoError(t, s.Start("30 1 * * *", "0 2 * * *"))
	s.Stop()
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := newTestScheduler(t)
	assert.Error(t, s.Start("not a cron spec", "0 2 * * *"))
}
