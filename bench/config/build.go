package config

import (
	"fmt"

	"github.com/fogleman/pt/pt"

	"github.com/damnltd/opticsketch-sub000/bench"
)

func toVector(v [3]float64) pt.Vector {
	return pt.Vector{X: v[0], Y: v[1], Z: v[2]}
}

func toColor(c [3]float64) pt.Color {
	return pt.Color{R: c[0], G: c[1], B: c[2]}
}

// Apply overwrites the fields of p that o sets.
func (o Optics) Apply(p *bench.OpticalProperties) {
	if o.Reflectivity != nil {
		p.Reflectivity = *o.Reflectivity
	}
	if o.Transmissivity != nil {
		p.Transmissivity = *o.Transmissivity
	}
	if o.IOR != nil {
		p.IOR = *o.IOR
	}
	if o.FocalLength != nil {
		p.FocalLength = *o.FocalLength
	}
	if o.FilterColor != nil {
		p.FilterColor = toColor(*o.FilterColor)
	}
	if o.ApertureDiameter != nil {
		p.ApertureDiameter = *o.ApertureDiameter
	}
	if o.GratingLineDensity != nil {
		p.GratingLineDensity = *o.GratingLineDensity
	}
	if o.Wavelength != nil {
		p.Wavelength = *o.Wavelength
	}
	if o.BeamColor != nil {
		p.BeamColor = toColor(*o.BeamColor)
	}
}

// opticsFor layers the type defaults, the named preset and the overrides.
func (c *BenchConfig) opticsFor(t bench.OpticalType, preset string, overrides Optics) (bench.OpticalProperties, error) {
	p := bench.DefaultOptics(t)
	if preset != "" {
		named, ok := c.Presets.Inline[preset]
		if !ok {
			return p, fmt.Errorf("undefined preset %q", preset)
		}
		named.Apply(&p)
	}
	overrides.Apply(&p)
	return p, nil
}

// BenchAssignments converts the 3MF object assignments for bench.NewFrom3MF.
func (c *BenchConfig) BenchAssignments() (map[string]bench.Assignment, error) {
	assignments := make(map[string]bench.Assignment, len(c.Assignments.Inline))
	for object, a := range c.Assignments.Inline {
		t, err := bench.ParseOpticalType(a.Type)
		if err != nil {
			return nil, fmt.Errorf("assignment %s: %w", object, err)
		}
		optics, err := c.opticsFor(t, a.Preset, Optics{})
		if err != nil {
			return nil, fmt.Errorf("assignment %s: %w", object, err)
		}
		assignments[object] = bench.Assignment{Type: t, Optics: optics}
	}
	return assignments, nil
}

// BuildBench creates the bench the config describes. Configured elements come
// first, in file order, followed by the objects of the 3MF layout if one is set.
func (c *BenchConfig) BuildBench() (*bench.Bench, error) {
	b := bench.NewBench()
	for _, ec := range c.Elements {
		t, err := bench.ParseOpticalType(ec.Type)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", ec.ID, err)
		}
		e := bench.NewElement(ec.ID, t, toVector(ec.Position), toVector(ec.Rotation), toVector(ec.Size))
		if ec.Name != "" {
			e.Name = ec.Name
		}
		e.Visible = !ec.Hidden
		if e.Optics, err = c.opticsFor(t, ec.Preset, ec.Optics); err != nil {
			return nil, fmt.Errorf("element %s: %w", ec.ID, err)
		}
		b.AddElement(e)
	}

	if c.Input.Layout.Path == "" {
		return b, nil
	}
	assignments, err := c.BenchAssignments()
	if err != nil {
		return nil, err
	}
	layout, err := bench.NewFrom3MF(c.Input.Layout.Path, assignments)
	if err != nil {
		return nil, fmt.Errorf("loading layout: %w", err)
	}
	for _, e := range layout.Elements() {
		b.AddElement(e)
	}
	return b, nil
}

// TraceConfig returns the tracer defaults with the configured limits applied.
func (c *BenchConfig) TraceConfig() bench.TraceConfig {
	tc := bench.DefaultTraceConfig()
	if c.Trace.MaxBounces != nil {
		tc.MaxBounces = *c.Trace.MaxBounces
	}
	if c.Trace.MaxDistance != nil {
		tc.MaxDistance = *c.Trace.MaxDistance
	}
	if c.Trace.MinIntensity != nil {
		tc.MinIntensity = *c.Trace.MinIntensity
	}
	if c.Trace.Epsilon != nil {
		tc.Epsilon = *c.Trace.Epsilon
	}
	return tc
}
