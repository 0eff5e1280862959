package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergePresets merges presets from a JSON file with inline presets. Inline
// presets take precedence.
func (p *Presets) MergePresets() error {
	if p.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(p.FromFile)
	if err != nil {
		return fmt.Errorf("reading presets file: %w", err)
	}

	var filePresets map[string]Optics
	if err := json.Unmarshal(data, &filePresets); err != nil {
		return fmt.Errorf("parsing presets file: %w", err)
	}

	if p.Inline == nil {
		p.Inline = make(map[string]Optics)
	}
	for name, preset := range filePresets {
		if _, exists := p.Inline[name]; !exists {
			p.Inline[name] = preset
		}
	}

	return nil
}

// MergeAssignments merges 3MF object assignments from a JSON file with inline
// assignments. Inline assignments take precedence.
func (a *Assignments) MergeAssignments() error {
	if a.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(a.FromFile)
	if err != nil {
		return fmt.Errorf("reading assignments file: %w", err)
	}

	var fileAssignments map[string]Assignment
	if err := json.Unmarshal(data, &fileAssignments); err != nil {
		return fmt.Errorf("parsing assignments file: %w", err)
	}

	if a.Inline == nil {
		a.Inline = make(map[string]Assignment)
	}
	for object, assignment := range fileAssignments {
		if _, exists := a.Inline[object]; !exists {
			a.Inline[object] = assignment
		}
	}

	return nil
}

func (p *Presets) HasPreset(name string) bool {
	_, exists := p.Inline[name]
	return exists
}

// LoadAndMerge loads all external files and merges their contents
func (c *BenchConfig) LoadAndMerge() error {
	// Presets first since assignments refer to them
	if err := c.Presets.MergePresets(); err != nil {
		return fmt.Errorf("merging presets: %w", err)
	}
	if err := c.Assignments.MergeAssignments(); err != nil {
		return fmt.Errorf("merging assignments: %w", err)
	}
	return nil
}
