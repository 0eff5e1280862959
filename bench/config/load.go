package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads a BenchConfig from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*BenchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := &BenchConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		resolver := NewPathResolver(filepath.Dir(path))
		config.ResolvePaths(resolver)
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("invalid config:\n%s", FormatValidationErrors(errs))
		}
	}

	return config, nil
}

// SaveToFile stamps the config's metadata and writes it as YAML
func SaveToFile(config *BenchConfig, path string) error {
	NewMetadataCollector().PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths makes every file reference in the config absolute
func (c *BenchConfig) ResolvePaths(resolver *PathResolver) {
	if c.Input.Layout.Path != "" {
		c.Input.Layout.Path = resolver.ResolvePath(c.Input.Layout.Path)
	}
	if c.Presets.FromFile != "" {
		c.Presets.FromFile = resolver.ResolvePath(c.Presets.FromFile)
	}
	if c.Assignments.FromFile != "" {
		c.Assignments.FromFile = resolver.ResolvePath(c.Assignments.FromFile)
	}
}
