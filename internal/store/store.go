package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/officerhub/report-management-api/internal/models"
)

// Reserved namespace folders under the reports root. These are never officer
// names and must be excluded when listing officers.
const (
	FolderTemplates   = "Templates"
	FolderSummaries   = "Summaries"
	FolderArchives    = "Archives"
	FolderAttachments = "Attachments"
	FolderTasks       = "Tasks"
)

var ReservedFolders = []string{
	FolderTemplates,
	FolderSummaries,
	FolderArchives,
	FolderAttachments,
	FolderTasks,
}

// IsReserved reports whether a directory name is part of the system layout
// rather than an officer namespace.
func IsReserved(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "__") {
		return true
	}
	for _, reserved := range ReservedFolders {
		if name == reserved {
			return true
		}
	}
	return false
}

var (
	ErrNotFound    = errors.New("record not found")
	ErrBadName     = errors.New("invalid name")
	ErrNameTaken   = errors.New("name already in use")
	ErrReservedDir = errors.New("name is reserved for system use")
)

// ReportStore is the persistence abstraction for reports, keyed by
// (officer, date, type).
type ReportStore interface {
	// Save validates and writes a report, overwriting any record with the
	// same key. It returns the document path.
	Save(r *models.Report) (string, error)

	// Load returns all reports filed under one officer namespace. A missing
	// namespace yields an empty result, not an error.
	Load(officer string) ([]models.Report, error)

	// LoadAll returns the union of Load over every non-reserved namespace.
	LoadAll() ([]models.Report, error)

	// Get returns the single report stored under a key, or ErrNotFound.
	Get(officer string, date models.Date, typ models.ReportType) (*models.Report, error)

	// Delete removes the report stored under a key.
	Delete(officer string, date models.Date, typ models.ReportType) error

	// Officers returns the sorted officer namespace names.
	Officers() ([]string, error)

	// ArchiveOlderThan relocates reports dated before now minus the
	// retention window into the archive namespace.
	ArchiveOlderThan(now time.Time, retentionDays int) (*SweepResult, error)
}

// TaskStore is the persistence abstraction for tasks, keyed by id.
type TaskStore interface {
	Save(t *models.Task) (string, error)
	Load(id string) (*models.Task, error)
	LoadAll() ([]models.Task, error)
	Delete(id string) error
}

// cleanName rejects names that would escape the storage root.
func cleanName(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrBadName
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}

// writeJSONAtomic marshals v (indented, the document format consumers expect)
// and writes it through a temp file in the destination directory followed by
// a rename, so a crash never leaves a torn document behind.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
