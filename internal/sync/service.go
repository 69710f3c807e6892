package sync

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/officerhub/report-management-api/internal/models"
	"github.com/officerhub/report-management-api/internal/store"
)

// Service mirrors the filesystem documents into a remote Postgres database.
// Every operation is an upsert keyed on the row id, so syncing is idempotent
// and safe to repeat.
type Service struct {
	db *gorm.DB
}

// Open connects to the remote database and migrates the mirror tables.
func Open(dsn string) (*Service, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sync database: %w", err)
	}
	return NewWithDB(db)
}

// NewWithDB wraps an existing connection, migrating the mirror tables.
func NewWithDB(db *gorm.DB) (*Service, error) {
	if err := db.AutoMigrate(&ReportRow{}, &TaskRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sync tables: %w", err)
	}
	return &Service{db: db}, nil
}

// UpsertReport pushes one report to the mirror.
func (s *Service) UpsertReport(r *models.Report) error {
	row, err := newReportRow(r)
	if err != nil {
		return err
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error; err != nil {
		return fmt.Errorf("failed to upsert report %s: %w", row.ID, err)
	}
	return nil
}

// UpsertTask pushes one task to the mirror.
func (s *Service) UpsertTask(t *models.Task) error {
	row, err := newTaskRow(t)
	if err != nil {
		return err
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error; err != nil {
		return fmt.Errorf("failed to upsert task %s: %w", row.ID, err)
	}
	return nil
}

// DeleteTask removes a task from the mirror.
func (s *Service) DeleteTask(id string) error {
	if err := s.db.Delete(&TaskRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete task %s from mirror: %w", id, err)
	}
	return nil
}

// BackupResult summarizes one backup run.
type BackupResult struct {
	Reports int `json:"reports"`
	Tasks   int `json:"tasks"`
	Failed  int `json:"failed"`
}

// Backup pushes every local document to the mirror. Individual record
// failures are logged and counted, not fatal.
func (s *Service) Backup(reports []models.Report, tasks []models.Task) *BackupResult {
	result := &BackupResult{}
	for i := range reports {
		if err := s.UpsertReport(&reports[i]); err != nil {
			log.Printf("backup: %v", err)
			result.Failed++
			continue
		}
		result.Reports++
	}
	for i := range tasks {
		if err := s.UpsertTask(&tasks[i]); err != nil {
			log.Printf("backup: %v", err)
			result.Failed++
			continue
		}
		result.Tasks++
	}
	return result
}

// LoadReports pulls every mirrored report document.
func (s *Service) LoadReports() ([]models.Report, error) {
	var rows []ReportRow
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load mirrored reports: %w", err)
	}

	var reports []models.Report
	for i := range rows {
		r, err := rows[i].Report()
		if err != nil {
			log.Printf("restore: %v", err)
			continue
		}
		reports = append(reports, *r)
	}
	return reports, nil
}

// LoadTasks pulls every mirrored task document.
func (s *Service) LoadTasks() ([]models.Task, error) {
	var rows []TaskRow
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load mirrored tasks: %w", err)
	}

	var tasks []models.Task
	for i := range rows {
		t, err := rows[i].Task()
		if err != nil {
			log.Printf("restore: %v", err)
			continue
		}
		tasks = append(tasks, *t)
	}
	return tasks, nil
}

// OfficerNames returns the distinct officer names present in the mirror.
func (s *Service) OfficerNames() ([]string, error) {
	var names []string
	err := s.db.Model(&ReportRow{}).
		Distinct("officer_name").
		Order("officer_name").
		Pluck("officer_name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list mirrored officers: %w", err)
	}
	return names, nil
}

// RestoreResult summarizes one restore run.
type RestoreResult struct {
	Reports int `json:"reports"`
	Tasks   int `json:"tasks"`
	Failed  int `json:"failed"`
}

// Restore writes every mirrored document back into the local stores.
// Individual record failures are logged and counted, not fatal.
func (s *Service) Restore(reports store.ReportStore, tasks store.TaskStore) (*RestoreResult, error) {
	mirrored, err := s.LoadReports()
	if err != nil {
		return nil, err
	}
	mirroredTasks, err := s.LoadTasks()
	if err != nil {
		return nil, err
	}

	result := &RestoreResult{}
	for i := range mirrored {
		if _, err := reports.Save(&mirrored[i]); err != nil {
			log.Printf("restore: report %s: %v", reportRowID(&mirrored[i]), err)
			result.Failed++
			continue
		}
		result.Reports++
	}
	for i := range mirroredTasks {
		if _, err := tasks.Save(&mirroredTasks[i]); err != nil {
			log.Printf("restore: task %s: %v", mirroredTasks[i].ID, err)
			result.Failed++
			continue
		}
		result.Tasks++
	}
	return result, nil
}

// Status reports the mirror row counts.
func (s *Service) Status() (reports int64, tasks int64, err error) {
	if err = s.db.Model(&ReportRow{}).Count(&reports).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count mirrored reports: %w", err)
	}
	if err = s.db.Model(&TaskRow{}).Count(&tasks).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count mirrored tasks: %w", err)
	}
	return reports, tasks, nil
}
