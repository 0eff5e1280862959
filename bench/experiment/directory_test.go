package experiment

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunID(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	id := GenerateRunID(now)
	assert.Regexp(t, regexp.MustCompile(`^[a-z]+-[a-z]+-20240309-140507$`), id)
}

func TestCreateRunDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "runs")

	first, err := CreateRunDirectory(root)
	require.NoError(t, err)
	assert.DirExists(t, first.Path)
	assert.True(t, filepath.IsAbs(first.Path))

	second, err := CreateRunDirectory(root)
	require.NoError(t, err)
	assert.NotEqual(t, first.Path, second.Path)

	target, err := os.Readlink(filepath.Join(root, LatestSymlink))
	require.NoError(t, err)
	assert.Equal(t, second.ID, target)
}

func TestCopyConfigFile(t *testing.T) {
	run, err := CreateRunDirectory(filepath.Join(t.TempDir(), "runs"))
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(src, []byte("elements: []\n"), 0644))
	require.NoError(t, run.CopyConfigFile(src))

	copied, err := os.ReadFile(run.GetFilePath("bench.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "elements: []\n", string(copied))

	assert.Error(t, run.CopyConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
