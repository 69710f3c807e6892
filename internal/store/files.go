package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/officerhub/report-management-api/internal/models"
)

// SaveAttachment streams an uploaded file into
// Attachments/{officer}/{YYYY_MM_DD}/{filename} and returns the stored path.
func (s *FSReportStore) SaveAttachment(officer string, date models.Date, filename string, r io.Reader) (string, error) {
	if err := cleanName(officer); err != nil {
		return "", err
	}
	if err := cleanName(filename); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, FolderAttachments, officer, date.Format("2006_01_02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create attachments folder: %w", err)
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close attachment: %w", err)
	}
	return path, nil
}

// SaveSummary writes a generated export into the Summaries namespace and
// returns the stored path.
func (s *FSReportStore) SaveSummary(filename string, data []byte) (string, error) {
	if err := cleanName(filename); err != nil {
		return "", err
	}

	path := filepath.Join(s.root, FolderSummaries, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	return path, nil
}

// FileInfo describes one stored document when browsing an officer namespace.
type FileInfo struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

// OfficerFiles lists the report documents under one officer namespace.
func (s *FSReportStore) OfficerFiles(officer string) ([]FileInfo, error) {
	if err := cleanName(officer); err != nil {
		return nil, err
	}
	if IsReserved(officer) {
		return nil, fmt.Errorf("%w: %q", ErrReservedDir, officer)
	}

	dir := filepath.Join(s.root, officer)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read officer folder: %w", err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().Format("2006-01-02 15:04:05"),
		})
	}
	return files, nil
}

// RenameOfficer moves an officer namespace and every document in it to a new
// name. The new name must not be reserved or already in use.
func (s *FSReportStore) RenameOfficer(oldName, newName string) error {
	if err := cleanName(oldName); err != nil {
		return err
	}
	if err := cleanName(newName); err != nil {
		return err
	}
	if IsReserved(newName) {
		return fmt.Errorf("%w: %q", ErrReservedDir, newName)
	}

	src := filepath.Join(s.root, oldName)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return ErrNotFound
	}
	dst := filepath.Join(s.root, newName)
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("%w: %q", ErrNameTaken, newName)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to rename officer folder: %w", err)
	}
	return nil
}

// DeleteOfficer removes an officer namespace and every document in it.
func (s *FSReportStore) DeleteOfficer(officer string) error {
	if err := cleanName(officer); err != nil {
		return err
	}
	if IsReserved(officer) {
		return fmt.Errorf("%w: %q", ErrReservedDir, officer)
	}

	dir := filepath.Join(s.root, officer)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return ErrNotFound
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete officer folder: %w", err)
	}
	return nil
}
