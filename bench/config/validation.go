package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/damnltd/opticsketch-sub000/bench"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateColor(field string, c [3]float64) []ValidationError {
	var errors []ValidationError
	for i, channel := range []string{"r", "g", "b"} {
		errors = append(errors, validateInRange(field+"."+channel, c[i], 0, 1)...)
	}
	return errors
}

func validateType(field, name string) []ValidationError {
	if _, err := bench.ParseOpticalType(name); err != nil {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("unknown optical type '%s'", name),
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by their top-level field for display
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		categories[category] = append(categories[category], err)
	}
	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	for _, category := range names {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *BenchConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Input.Validate(len(c.Elements))...)
	errors = append(errors, c.Presets.Validate()...)
	errors = append(errors, c.Assignments.Validate(&c.Presets)...)
	errors = append(errors, c.validateElements()...)
	errors = append(errors, c.Trace.Validate()...)
	errors = append(errors, c.Output.Validate()...)
	return errors
}

func (i *Input) Validate(elementCount int) []ValidationError {
	if i.Layout.Path == "" && elementCount == 0 {
		return []ValidationError{{
			Field:   "input",
			Message: "either elements or input.layout.path must be specified",
		}}
	}
	return nil
}

func (o *Optics) Validate(field string) []ValidationError {
	var errors []ValidationError
	if o.Reflectivity != nil {
		errors = append(errors, validateInRange(field+".reflectivity", *o.Reflectivity, 0, 1)...)
	}
	if o.Transmissivity != nil {
		errors = append(errors, validateInRange(field+".transmissivity", *o.Transmissivity, 0, 1)...)
	}
	if o.IOR != nil {
		errors = append(errors, validatePositive(field+".ior", *o.IOR)...)
	}
	if o.ApertureDiameter != nil {
		errors = append(errors, validateInRange(field+".aperture_diameter", *o.ApertureDiameter, 0, 1)...)
	}
	if o.GratingLineDensity != nil {
		errors = append(errors, validateNonNegative(field+".grating_line_density", *o.GratingLineDensity)...)
	}
	if o.Wavelength != nil {
		errors = append(errors, validatePositive(field+".wavelength_nm", *o.Wavelength)...)
	}
	if o.FilterColor != nil {
		errors = append(errors, validateColor(field+".filter_color", *o.FilterColor)...)
	}
	if o.BeamColor != nil {
		errors = append(errors, validateColor(field+".beam_color", *o.BeamColor)...)
	}
	return errors
}

func (p *Presets) Validate() []ValidationError {
	var errors []ValidationError
	for name, preset := range p.Inline {
		errors = append(errors, preset.Validate(fmt.Sprintf("presets.inline.%s", name))...)
	}
	return errors
}

func (a *Assignments) Validate(presets *Presets) []ValidationError {
	var errors []ValidationError
	for object, assignment := range a.Inline {
		field := fmt.Sprintf("assignments.inline.%s", object)
		errors = append(errors, validateType(field+".type", assignment.Type)...)
		if assignment.Preset != "" && !presets.HasPreset(assignment.Preset) {
			errors = append(errors, ValidationError{
				Field:   field + ".preset",
				Message: fmt.Sprintf("references undefined preset '%s'", assignment.Preset),
			})
		}
	}
	return errors
}

func (c *BenchConfig) validateElements() []ValidationError {
	var errors []ValidationError
	seen := map[string]bool{}
	for i, e := range c.Elements {
		field := fmt.Sprintf("elements.%d", i)
		if e.ID == "" {
			errors = append(errors, ValidationError{Field: field + ".id", Message: "id is required"})
		} else {
			field = fmt.Sprintf("elements.%s", e.ID)
			if seen[e.ID] {
				errors = append(errors, ValidationError{Field: field + ".id", Message: "duplicate element id"})
			}
			seen[e.ID] = true
		}
		errors = append(errors, validateType(field+".type", e.Type)...)
		for axis, name := range []string{"x", "y", "z"} {
			errors = append(errors, validatePositive(field+".size."+name, e.Size[axis])...)
		}
		if e.Preset != "" && !c.Presets.HasPreset(e.Preset) {
			errors = append(errors, ValidationError{
				Field:   field + ".preset",
				Message: fmt.Sprintf("references undefined preset '%s'", e.Preset),
			})
		}
		errors = append(errors, e.Optics.Validate(field+".optics")...)
	}
	return errors
}

func (t *Trace) Validate() []ValidationError {
	var errors []ValidationError
	if t.MaxBounces != nil {
		errors = append(errors, validatePositive("trace.max_bounces", float64(*t.MaxBounces))...)
	}
	if t.MaxDistance != nil {
		errors = append(errors, validatePositive("trace.max_distance", *t.MaxDistance)...)
	}
	if t.MinIntensity != nil {
		errors = append(errors, validateInRange("trace.min_intensity", *t.MinIntensity, 0, 1)...)
	}
	if t.Epsilon != nil {
		errors = append(errors, validatePositive("trace.epsilon", *t.Epsilon)...)
	}
	return errors
}

func (o *Output) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative("output.image_width", float64(o.ImageWidth))...)
	errors = append(errors, validateNonNegative("output.image_height", float64(o.ImageHeight))...)
	errors = append(errors, validateNonNegative("output.margin", o.Margin)...)
	return errors
}
