package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/officerhub/report-management-api/internal/services"
	"github.com/officerhub/report-management-api/internal/store"
	"github.com/officerhub/report-management-api/internal/sync"
)

// Scheduler runs the recurring maintenance jobs: the nightly archival sweep
// and, when a mirror is configured, the nightly backup.
type Scheduler struct {
	cron    *cron.Cron
	reports *services.ReportService
	store   store.ReportStore
	tasks   store.TaskStore
	sync    *sync.Service
}

func New(reports *services.ReportService, reportStore store.ReportStore, taskStore store.TaskStore, syncService *sync.Service) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		reports: reports,
		store:   reportStore,
		tasks:   taskStore,
		sync:    syncService,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start(sweepSpec, backupSpec string) error {
	if _, err := s.cron.AddFunc(sweepSpec, s.runSweep); err != nil {
		return fmt.Errorf("failed to schedule archival sweep: %w", err)
	}
	if s.sync != nil {
		if _, err := s.cron.AddFunc(backupSpec, s.runBackup); err != nil {
			return fmt.Errorf("failed to schedule backup: %w", err)
		}
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop, waiting for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runSweep() {
	result, err := s.reports.Sweep(time.Now())
	if err != nil {
		log.Printf("scheduled sweep failed: %v", err)
		return
	}
	log.Printf("scheduled sweep archived %d report(s), skipped %d", len(result.Archived), len(result.Skipped))
}

func (s *Scheduler) runBackup() {
	reports, err := s.store.LoadAll()
	if err != nil {
		log.Printf("scheduled backup: failed to load reports: %v", err)
		return
	}
	tasks, err := s.tasks.LoadAll()
	if err != nil {
		log.Printf("scheduled backup: failed to load tasks: %v", err)
		return
	}

	result := s.sync.Backup(reports, tasks)
	log.Printf("scheduled backup pushed %d report(s), %d task(s), %d failure(s)",
		result.Reports, result.Tasks, result.Failed)
}
