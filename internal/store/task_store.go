package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/officerhub/report-management-api/internal/models"
)

// FSTaskStore persists each task as one JSON document at
// {root}/Tasks/task_{id}.json.
type FSTaskStore struct {
	dir string
}

// NewTaskStore returns a filesystem-backed task store rooted at the Tasks
// namespace under the reports root.
func NewTaskStore(reportsRoot string) (*FSTaskStore, error) {
	dir := filepath.Join(reportsRoot, FolderTasks)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create tasks folder: %w", err)
	}
	return &FSTaskStore{dir: dir}, nil
}

// Save validates and writes a task, overwriting any document with the same
// id.
func (s *FSTaskStore) Save(t *models.Task) (string, error) {
	if err := cleanName(t.ID); err != nil {
		return "", err
	}
	if err := t.Validate(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, t.Filename())
	if err := writeJSONAtomic(path, t); err != nil {
		return "", err
	}
	return path, nil
}

// Load returns the task stored under id, or ErrNotFound.
func (s *FSTaskStore) Load(id string) (*models.Task, error) {
	if err := cleanName(id); err != nil {
		return nil, err
	}

	var t models.Task
	if err := readJSON(filepath.Join(s.dir, models.TaskFilename(id)), &t); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read task: %w", err)
	}
	return &t, nil
}

// LoadAll returns every task document. Malformed documents are skipped with
// a warning.
func (s *FSTaskStore) LoadAll() ([]models.Task, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read tasks folder: %w", err)
	}

	var tasks []models.Task
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		var t models.Task
		if err := readJSON(filepath.Join(s.dir, entry.Name()), &t); err != nil {
			log.Printf("skipping malformed task %s: %v", entry.Name(), err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Delete removes the task stored under id.
func (s *FSTaskStore) Delete(id string) error {
	if err := cleanName(id); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, models.TaskFilename(id))); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
