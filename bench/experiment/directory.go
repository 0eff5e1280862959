package experiment

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultRunsDir = "runs"
	LatestSymlink  = "latest"
	// Attempts at finding an unused run name before giving up
	maxNameAttempts = 10
)

// RunDir is the output directory of a single trace run.
type RunDir struct {
	Path      string    // Absolute path to the run directory
	ID        string    // Unique run identifier
	Timestamp time.Time // When the run was created
}

// CreateRunDirectory creates a new run directory under root and points the
// "latest" symlink in root at it.
func CreateRunDirectory(root string) (*RunDir, error) {
	if root == "" {
		root = DefaultRunsDir
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating runs directory: %w", err)
	}

	now := time.Now().UTC()
	var id, absPath string
	for attempt := 0; ; attempt++ {
		id = GenerateRunID(now)
		var err error
		absPath, err = filepath.Abs(filepath.Join(root, id))
		if err != nil {
			return nil, fmt.Errorf("getting absolute path: %w", err)
		}
		err = os.Mkdir(absPath, 0755)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) || attempt == maxNameAttempts-1 {
			return nil, fmt.Errorf("creating run directory: %w", err)
		}
	}

	latestPath := filepath.Join(root, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		// Not fatal: some filesystems have no symlinks
		slog.Warn("failed to create latest symlink", "path", latestPath, "err", err)
	}

	return &RunDir{
		Path:      absPath,
		ID:        id,
		Timestamp: now,
	}, nil
}

// GetFilePath returns the absolute path for a file in the run directory
func (r *RunDir) GetFilePath(filename string) string {
	return filepath.Join(r.Path, filename)
}

// CopyConfigFile copies the config file a run was made from into the run directory
func (r *RunDir) CopyConfigFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	destPath := r.GetFilePath(filepath.Base(srcPath))
	if err := os.WriteFile(destPath, content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
