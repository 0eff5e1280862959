package config

import (
	"os/exec"
	"strings"
	"time"
)

// Recorded when the working directory is not a git checkout
const unknownCommit = "unknown"

// MetadataCollector handles collecting metadata for traced benches
type MetadataCollector struct {
	timestamp time.Time
	gitCommit string
}

// NewMetadataCollector creates a new MetadataCollector with the current timestamp
func NewMetadataCollector() *MetadataCollector {
	gitCommit, err := getCurrentGitCommit()
	if err != nil {
		gitCommit = unknownCommit
	}

	return &MetadataCollector{
		timestamp: time.Now().UTC(),
		gitCommit: gitCommit,
	}
}

func getCurrentGitCommit() (string, error) {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// PopulateMetadata fills in the metadata fields of the config
func (mc *MetadataCollector) PopulateMetadata(config *BenchConfig) {
	config.Metadata.Timestamp = mc.timestamp.Format("2006-01-02 15:04:05")
	config.Metadata.GitCommit = mc.gitCommit
}
