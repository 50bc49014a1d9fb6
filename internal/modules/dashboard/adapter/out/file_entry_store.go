package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	dashboardout "coachdash/internal/modules/dashboard/port/out"
	apperrors "coachdash/internal/platform/errors"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileEntryStore keeps one file per key, each holding the raw value.
type FileEntryStore struct {
	dir string
}

func NewFileEntryStore(dir string) *FileEntryStore {
	return &FileEntryStore{dir: dir}
}

var _ dashboardout.EntryStore = (*FileEntryStore)(nil)

func (s *FileEntryStore) Get(_ context.Context, key string) (string, error) {
	path, err := s.path(key)
	if err != nil {
		return "", err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("read entry %s: %w", key, err)
	}
	return string(payload), nil
}

func (s *FileEntryStore) Set(_ context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create entries dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write entry %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace entry %s: %w", key, err)
	}
	return nil
}

func (s *FileEntryStore) path(key string) (string, error) {
	if !validKey.MatchString(key) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: entry key %q", apperrors.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
