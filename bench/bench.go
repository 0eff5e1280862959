package bench

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

// TracedBeamWidth is the render width given to every machine-traced beam.
const TracedBeamWidth = 2.0

// Beam is a line segment of light stored on the bench for rendering.
type Beam struct {
	Start, End pt.Vector
	Color      pt.Color
	Intensity  float64
	Width      float64
	// Traced marks beams produced by the tracer, as opposed to ones drawn by hand
	Traced          bool
	SourceElementID string
}

// Scene is what the tracer needs from a bench: an ordered element list to read
// and a sink for traced beams.
type Scene interface {
	Elements() []*Element
	ClearTracedBeams()
	AddTracedBeam(Beam)
}

// Bench is an ordered collection of elements and the beams drawn between them.
type Bench struct {
	elements []*Element
	Beams    []Beam
}

func NewBench(elements ...*Element) *Bench {
	b := &Bench{}
	for _, e := range elements {
		b.AddElement(e)
	}
	return b
}

func (b *Bench) AddElement(e *Element) {
	b.elements = append(b.elements, e)
}

// Element looks an element up by id.
func (b *Bench) Element(id string) (*Element, bool) {
	for _, e := range b.elements {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

func (b *Bench) Elements() []*Element {
	return b.elements
}

// ClearTracedBeams drops every beam produced by a previous trace. Hand-drawn
// beams are kept.
func (b *Bench) ClearTracedBeams() {
	kept := b.Beams[:0]
	for _, beam := range b.Beams {
		if !beam.Traced {
			kept = append(kept, beam)
		}
	}
	b.Beams = kept
}

func (b *Bench) AddTracedBeam(beam Beam) {
	beam.Traced = true
	if beam.Width == 0 {
		beam.Width = TracedBeamWidth
	}
	b.Beams = append(b.Beams, beam)
}

// TracedBeams returns the beams produced by the last trace, in emission order.
func (b *Bench) TracedBeams() []Beam {
	var traced []Beam
	for _, beam := range b.Beams {
		if beam.Traced {
			traced = append(traced, beam)
		}
	}
	return traced
}

// Assignment gives the optical role of a named 3MF object.
type Assignment struct {
	Type   OpticalType
	Optics OpticalProperties
}

// Nesting limit for 3MF components. Valid files have no cycles; this guards
// against ones that do.
const maxComponentDepth = 16

// NewFrom3MF builds a bench from the build items of a 3MF file. Every item
// becomes one axis-aligned element spanning its mesh in world space, in model
// units (mm): the item transform and any component transforms are applied to
// the vertices before the bounds are taken, so rotated items get the box that
// encloses them. Objects are typed by name through assignments; the "default"
// entry, if present, covers the rest, otherwise they are Passive.
func NewFrom3MF(filepath string, assignments map[string]Assignment) (*Bench, error) {
	var model go3mf.Model
	r, err := go3mf.OpenReader(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening 3mf file: %w", err)
	}
	defer r.Close()
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding 3mf file: %w", err)
	}

	b := NewBench()
	for i, item := range model.Build.Items {
		path := item.ObjectPath()
		obj, ok := model.FindObject(path, item.ObjectID)
		if !ok {
			continue
		}

		min := V(math.Inf(1), math.Inf(1), math.Inf(1))
		max := V(math.Inf(-1), math.Inf(-1), math.Inf(-1))
		err := walkVertices(&model, path, obj, placement(item.Transform), 0, func(v go3mf.Point3D) {
			p := V(float64(v.X()), float64(v.Y()), float64(v.Z()))
			min = min.Min(p)
			max = max.Max(p)
		})
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", obj.Name, err)
		}
		if min.X > max.X {
			// no vertices
			continue
		}

		assignment, ok := assignments[obj.Name]
		if !ok {
			assignment, ok = assignments["default"]
		}
		if !ok {
			assignment = Assignment{Type: Passive, Optics: DefaultOptics(Passive)}
		}

		id := obj.Name
		if id == "" {
			id = fmt.Sprintf("object-%d", i)
		}
		e := NewElement(id, assignment.Type, min.Add(max).MulScalar(0.5), pt.Vector{}, max.Sub(min))
		e.Optics = assignment.Optics
		b.AddElement(e)
	}
	return b, nil
}

// placement treats an unset 3MF transform as the identity.
func placement(m go3mf.Matrix) go3mf.Matrix {
	if m == (go3mf.Matrix{}) {
		return go3mf.Identity()
	}
	return m
}

// walkVertices calls fn with every vertex of obj, and of the objects its
// components reference, transformed by transform.
func walkVertices(model *go3mf.Model, path string, obj *go3mf.Object, transform go3mf.Matrix, depth int, fn func(go3mf.Point3D)) error {
	if depth > maxComponentDepth {
		return fmt.Errorf("components nested deeper than %d", maxComponentDepth)
	}
	if obj.Mesh != nil {
		for _, v := range obj.Mesh.Vertices.Vertex {
			fn(transform.Mul3D(v))
		}
	}
	if obj.Components == nil {
		return nil
	}
	for _, c := range obj.Components.Component {
		childPath := c.ObjectPath(path)
		child, ok := model.FindObject(childPath, c.ObjectID)
		if !ok {
			return fmt.Errorf("component references missing object %d", c.ObjectID)
		}
		if err := walkVertices(model, childPath, child, transform.Mul(placement(c.Transform)), depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
