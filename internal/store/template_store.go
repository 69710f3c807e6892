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

// SaveTemplate writes a template document under Templates/{name}.json.
func (s *FSReportStore) SaveTemplate(t *models.Template) (string, error) {
	if err := cleanName(t.Name); err != nil {
		return "", err
	}
	if err := t.Validate(); err != nil {
		return "", err
	}

	path := filepath.Join(s.root, FolderTemplates, templateFilename(t.Name))
	if err := writeJSONAtomic(path, t); err != nil {
		return "", err
	}
	return path, nil
}

// LoadTemplate returns the template stored under name, or ErrNotFound.
func (s *FSReportStore) LoadTemplate(name string) (*models.Template, error) {
	if err := cleanName(name); err != nil {
		return nil, err
	}

	var t models.Template
	if err := readJSON(filepath.Join(s.root, FolderTemplates, templateFilename(name)), &t); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return &t, nil
}

// Templates returns every stored template, sorted by name.
func (s *FSReportStore) Templates() ([]models.Template, error) {
	dir := filepath.Join(s.root, FolderTemplates)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read templates folder: %w", err)
	}

	var templates []models.Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		var t models.Template
		if err := readJSON(filepath.Join(dir, entry.Name()), &t); err != nil {
			log.Printf("skipping malformed template %s: %v", entry.Name(), err)
			continue
		}
		templates = append(templates, t)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}

// DeleteTemplate removes the template stored under name.
func (s *FSReportStore) DeleteTemplate(name string) error {
	if err := cleanName(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.root, FolderTemplates, templateFilename(name))); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

func templateFilename(name string) string {
	return strings.ReplaceAll(name, " ", "_") + ".json"
}
