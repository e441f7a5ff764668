package highscore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fadedpez/wildcatblackjack/internal/logging"
	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

// FileRepository stores the record as a single "<name>|<score>" line
type FileRepository struct {
	path   string
	mu     sync.Mutex
	logger *logging.Logger
}

// NewFileRepository creates a repository backed by the file at path. The
// file does not need to exist yet.
func NewFileRepository(path string, logger *logging.Logger) (*FileRepository, error) {
	if logger == nil {
		logger = logging.Default
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating high score directory: %w", err)
	}
	return &FileRepository{path: path, logger: logger}, nil
}

// Load implements Repository. It never fails: unreadable or malformed
// files fall back to the empty record.
func (r *FileRepository) Load(ctx context.Context) (*entities.HighScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.logger.Warn("could not read high score file %s: %v", r.path, err)
		}
		return &entities.HighScore{}, nil
	}
	return entities.ParseHighScore(string(data)), nil
}

// Save implements Repository
func (r *FileRepository) Save(ctx context.Context, score *entities.HighScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return writeFileAtomic(r.path, []byte(score.String()), 0644)
}

// Close implements Repository
func (r *FileRepository) Close() error {
	return nil
}

// writeFileAtomic writes to a temp file in the same directory and renames
// it over filename, so readers see the old record or the new one
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
