package config

import (
	"os"
	"path/filepath"
)

// PathResolver resolves file references relative to the directory of the
// config file that made them
type PathResolver struct {
	baseDir string
}

func NewPathResolver(baseDir string) *PathResolver {
	return &PathResolver{baseDir: baseDir}
}

// ResolvePath returns path unchanged if absolute, otherwise joined to the base directory
func (pr *PathResolver) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(pr.baseDir, path)
}

// FileExists reports whether path, resolved, names a readable file
func (pr *PathResolver) FileExists(path string) bool {
	info, err := os.Stat(pr.ResolvePath(path))
	return err == nil && !info.IsDir()
}
