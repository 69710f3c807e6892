package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/officerhub/report-management-api/internal/models"
)

const layoutReadme = `Folder Structure:
- Templates: Store report templates
- Summaries: Store generated report summaries
- Archives: Store archived or old reports
- Attachments: Store any supplementary files
- Tasks: Store task documents
- [Officer Names]: Individual officer report folders are created automatically
`

// FSReportStore persists each report as one JSON document at
// {root}/{officer}/{date}_{type}.json.
type FSReportStore struct {
	root string
}

// NewReportStore creates the storage layout under root if it does not exist
// and returns a filesystem-backed report store.
func NewReportStore(root string) (*FSReportStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports root: %w", err)
	}
	for _, folder := range ReservedFolders {
		if err := os.MkdirAll(filepath.Join(root, folder), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s folder: %w", folder, err)
		}
	}

	readmePath := filepath.Join(root, "README.txt")
	if _, err := os.Stat(readmePath); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(readmePath, []byte(layoutReadme), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write layout readme: %w", err)
		}
	}

	return &FSReportStore{root: root}, nil
}

// Root returns the storage root directory.
func (s *FSReportStore) Root() string {
	return s.root
}

// Save validates the report and writes its document, creating the officer
// namespace on first use. An existing record under the same key is
// overwritten silently (last writer wins).
func (s *FSReportStore) Save(r *models.Report) (string, error) {
	if err := cleanName(r.OfficerName); err != nil {
		return "", err
	}
	if IsReserved(r.OfficerName) {
		return "", fmt.Errorf("%w: %q", ErrReservedDir, r.OfficerName)
	}
	if err := r.Validate(); err != nil {
		return "", err
	}

	officerDir := filepath.Join(s.root, r.OfficerName)
	if err := os.MkdirAll(officerDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create officer folder: %w", err)
	}

	path := filepath.Join(officerDir, r.Filename())
	if err := writeJSONAtomic(path, r); err != nil {
		return "", err
	}
	return path, nil
}

// Load returns every report filed under one officer namespace. Malformed
// documents are skipped with a warning; a missing namespace is an empty
// result.
func (s *FSReportStore) Load(officer string) ([]models.Report, error) {
	if err := cleanName(officer); err != nil {
		return nil, err
	}

	dir := filepath.Join(s.root, officer)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read officer folder: %w", err)
	}

	var reports []models.Report
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		var r models.Report
		if err := readJSON(filepath.Join(dir, entry.Name()), &r); err != nil {
			log.Printf("skipping malformed report %s/%s: %v", officer, entry.Name(), err)
			continue
		}
		// Older documents may predate the officer_name field.
		r.OfficerName = officer
		reports = append(reports, r)
	}
	return reports, nil
}

// LoadAll returns reports from every non-reserved namespace.
func (s *FSReportStore) LoadAll() ([]models.Report, error) {
	officers, err := s.Officers()
	if err != nil {
		return nil, err
	}

	var all []models.Report
	for _, officer := range officers {
		reports, err := s.Load(officer)
		if err != nil {
			return nil, err
		}
		all = append(all, reports...)
	}
	return all, nil
}

// Get returns the single report stored under (officer, date, type).
func (s *FSReportStore) Get(officer string, date models.Date, typ models.ReportType) (*models.Report, error) {
	if err := cleanName(officer); err != nil {
		return nil, err
	}

	path := filepath.Join(s.root, officer, models.ReportFilename(date, typ))
	var r models.Report
	if err := readJSON(path, &r); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	r.OfficerName = officer
	return &r, nil
}

// Delete removes the report stored under (officer, date, type).
func (s *FSReportStore) Delete(officer string, date models.Date, typ models.ReportType) error {
	if err := cleanName(officer); err != nil {
		return err
	}

	path := filepath.Join(s.root, officer, models.ReportFilename(date, typ))
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// Officers returns the sorted names of every officer namespace, excluding
// the reserved system folders.
func (s *FSReportStore) Officers() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read reports root: %w", err)
	}

	var officers []string
	for _, entry := range entries {
		if !entry.IsDir() || IsReserved(entry.Name()) {
			continue
		}
		officers = append(officers, entry.Name())
	}
	sort.Strings(officers)
	return officers, nil
}

// EnsureOfficer creates an officer namespace ahead of any report, matching
// the "add new officer" flow.
func (s *FSReportStore) EnsureOfficer(name string) error {
	if err := cleanName(name); err != nil {
		return err
	}
	if IsReserved(name) {
		return fmt.Errorf("%w: %q", ErrReservedDir, name)
	}
	return os.MkdirAll(filepath.Join(s.root, name), 0o755)
}
