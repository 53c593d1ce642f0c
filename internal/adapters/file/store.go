package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// Store implements ports.DraftStore on the local filesystem, one file per
// key. It is the default draft location for the CLI.
type Store struct {
	BasePath string
}

// New creates a Store rooted at basePath, defaulting to ".brain/drafts".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".brain", "drafts")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.BasePath, key+".json")
}

// Set writes the value atomically: temp file, fsync, rename. A crash mid
// write leaves the previous draft intact, never a truncated one.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure draft directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+key+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(value); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(key)); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Get reads the value for a key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key cannot be empty")
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, flow.ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}
	return data, nil
}

// Delete removes the key's file.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete draft file: %w", err)
	}
	return nil
}
