package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/officerhub/report-management-api/internal/models"
)

// ArchivedReport records one relocation performed by a sweep.
type ArchivedReport struct {
	Officer     string `json:"officer"`
	Filename    string `json:"filename"`
	ArchivePath string `json:"archive_path"`
}

// SweepResult summarizes an archival sweep run.
type SweepResult struct {
	Archived []ArchivedReport `json:"archived"`
	Skipped  []string         `json:"skipped,omitempty"`
}

// ArchiveOlderThan moves every report dated before now minus retentionDays
// into Archives/{YYYY_MM}/{officer}/{filename}. Documents that cannot be
// parsed are skipped with a warning and the sweep continues. Re-running a
// sweep is a no-op for records already moved.
func (s *FSReportStore) ArchiveOlderThan(now time.Time, retentionDays int) (*SweepResult, error) {
	cutoff := models.DateOf(now.AddDate(0, 0, -retentionDays))

	officers, err := s.Officers()
	if err != nil {
		return nil, err
	}

	result := &SweepResult{}
	for _, officer := range officers {
		officerDir := filepath.Join(s.root, officer)
		entries, err := os.ReadDir(officerDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read officer folder %s: %w", officer, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}

			src := filepath.Join(officerDir, entry.Name())
			var r models.Report
			if err := readJSON(src, &r); err != nil {
				log.Printf("archive sweep: skipping unreadable report %s/%s: %v", officer, entry.Name(), err)
				result.Skipped = append(result.Skipped, filepath.Join(officer, entry.Name()))
				continue
			}
			if r.Date.IsZero() {
				log.Printf("archive sweep: skipping report without a date %s/%s", officer, entry.Name())
				result.Skipped = append(result.Skipped, filepath.Join(officer, entry.Name()))
				continue
			}
			if !r.Date.Before(cutoff) {
				continue
			}

			archiveDir := filepath.Join(s.root, FolderArchives, r.Date.Format("2006_01"), officer)
			if err := os.MkdirAll(archiveDir, 0o755); err != nil {
				return result, fmt.Errorf("failed to create archive folder: %w", err)
			}

			dst := filepath.Join(archiveDir, entry.Name())
			if err := os.Rename(src, dst); err != nil {
				return result, fmt.Errorf("failed to archive %s/%s: %w", officer, entry.Name(), err)
			}
			result.Archived = append(result.Archived, ArchivedReport{
				Officer:     officer,
				Filename:    entry.Name(),
				ArchivePath: dst,
			})
		}
	}
	return result, nil
}
