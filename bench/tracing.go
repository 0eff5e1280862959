package bench

import (
	"log/slog"

	"github.com/fogleman/pt/pt"
)

// Hits closer together than this are treated as simultaneous; the element
// enumerated first wins.
const tieTolerance = 1e-9

// TraceConfig bounds a trace. These four values fully determine when
// propagation stops.
type TraceConfig struct {
	// Maximum recursion depth. No path from a source has more segments than this.
	MaxBounces int
	// Distance in mm after which a ray that hit nothing is considered escaped
	MaxDistance float64
	// Rays dimmer than this are dropped
	MinIntensity float64
	// Distance in mm new rays are pushed along their direction to avoid re-hitting
	// the surface that spawned them
	Epsilon float64
}

func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		MaxBounces:   20,
		MaxDistance:  5000,
		MinIntensity: 0.01,
		Epsilon:      0.01,
	}
}

// Ray is a single ray in flight. Rays are values; children are copies.
type Ray struct {
	Origin    pt.Vector
	Direction pt.Vector
	// 1.0 at the source
	Intensity float64
	Color     pt.Color
	// ID of the source element this ray descends from
	SourceID string
	// Wavelength in meters
	Wavelength float64
}

func (r Ray) spawn(origin, direction pt.Vector, intensity float64) Ray {
	r.Origin = origin
	r.Direction = direction.Normalize()
	r.Intensity = intensity
	return r
}

// TraceSegment is one straight piece of a traced path.
type TraceSegment struct {
	Start, End pt.Vector
	Color      pt.Color
	// Intensity of the ray that cast this segment, before the interaction at End
	Intensity       float64
	SourceElementID string
	// Number of interactions between the source and this segment
	Depth int
	// Escaped is set when the ray reached MaxDistance without hitting anything
	Escaped bool
}

func (s TraceSegment) Length() float64 {
	return s.End.Sub(s.Start).Length()
}

// Tracer propagates rays from every source on a bench. It keeps no state
// between calls.
type Tracer struct {
	config TraceConfig
	logger *slog.Logger
}

type Option func(*Tracer)

// WithLogger sends trace diagnostics to l. Tracers are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracer) {
		if l != nil {
			t.logger = l
		}
	}
}

func NewTracer(config TraceConfig, opts ...Option) *Tracer {
	t := &Tracer{config: config, logger: newNopLogger()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TraceScene traces scene with a silent tracer.
func TraceScene(scene Scene, config TraceConfig) []TraceSegment {
	return NewTracer(config).TraceScene(scene)
}

// TraceScene replaces the scene's traced beams with a fresh trace from every
// visible source. The segments are returned in emission order: each ray's own
// segment comes before those of its children.
func (t *Tracer) TraceScene(scene Scene) []TraceSegment {
	scene.ClearTracedBeams()

	p := newPass(t.config, scene.Elements(), t.logger)
	sources := 0
	for _, e := range scene.Elements() {
		if !e.Visible || e.Type != Source {
			continue
		}
		sources++
		ray := sourceRay(e, t.config)
		t.logger.Debug("tracing source", "id", e.ID, "wavelength_nm", ray.Wavelength*1e9)
		p.trace(ray, 0)
	}

	escaped := 0
	for _, s := range p.segments {
		if s.Escaped {
			escaped++
		}
		scene.AddTracedBeam(Beam{
			Start:           s.Start,
			End:             s.End,
			Color:           s.Color,
			Intensity:       s.Intensity,
			Width:           TracedBeamWidth,
			Traced:          true,
			SourceElementID: s.SourceElementID,
		})
	}
	t.logger.Info("trace complete", "sources", sources, "segments", len(p.segments), "escaped", escaped)
	return p.segments
}

// preparedElement caches the matrices needed to test one element.
type preparedElement struct {
	*Element
	inverse      pt.Matrix
	normalMatrix pt.Matrix
}

// pass holds the working state of a single TraceScene call.
type pass struct {
	config   TraceConfig
	logger   *slog.Logger
	elements []preparedElement
	segments []TraceSegment
}

func newPass(config TraceConfig, elements []*Element, logger *slog.Logger) *pass {
	p := &pass{config: config, logger: logger}
	for _, e := range elements {
		if !e.Visible {
			continue
		}
		inverse := e.Transform.Inverse()
		p.elements = append(p.elements, preparedElement{
			Element:      e,
			inverse:      inverse,
			normalMatrix: inverse.Transpose(),
		})
	}
	return p
}

// surfaceHit describes where a ray struck an element. normal is in world
// space and always opposes the ray.
type surfaceHit struct {
	element *preparedElement
	t       float64
	point   pt.Vector
	normal  pt.Vector
}

func (p *pass) nearestHit(ray Ray, depth int) (surfaceHit, bool) {
	var best surfaceHit
	found := false
	for i := range p.elements {
		e := &p.elements[i]
		if depth == 0 && e.Type == Source && e.ID == ray.SourceID {
			continue
		}
		localOrigin := e.inverse.MulPosition(ray.Origin)
		localDir := e.inverse.MulPosition(ray.Origin.Add(ray.Direction)).Sub(localOrigin)
		ok, t, localNormal := IntersectLocalBox(pt.Ray{Origin: localOrigin, Direction: localDir}, e.BoundsMin, e.BoundsMax, p.config.MaxDistance)
		if !ok || t <= p.config.Epsilon {
			continue
		}
		if found && t >= best.t-tieTolerance {
			continue
		}
		normal := e.normalMatrix.MulDirection(localNormal).Normalize()
		if normal.Dot(ray.Direction) > 0 {
			normal = normal.Negate()
		}
		best = surfaceHit{
			element: e,
			t:       t,
			point:   ray.Origin.Add(ray.Direction.MulScalar(t)),
			normal:  normal,
		}
		found = true
	}
	return best, found
}

func (p *pass) trace(ray Ray, depth int) {
	if depth >= p.config.MaxBounces || ray.Intensity < p.config.MinIntensity {
		return
	}
	verifyUnit(ray.Direction)

	hit, ok := p.nearestHit(ray, depth)
	segment := TraceSegment{
		Start:           ray.Origin,
		Color:           ray.Color,
		Intensity:       ray.Intensity,
		SourceElementID: ray.SourceID,
		Depth:           depth,
	}
	if !ok {
		segment.End = ray.Origin.Add(ray.Direction.MulScalar(p.config.MaxDistance))
		segment.Escaped = true
		p.segments = append(p.segments, segment)
		p.logger.Debug("ray escaped", "source", ray.SourceID, "depth", depth, "intensity", ray.Intensity)
		return
	}
	segment.End = hit.point
	p.segments = append(p.segments, segment)

	verifyNormalOrientation(hit.normal, ray.Direction)
	for _, child := range interact(ray, hit, p.config) {
		verifyChild(ray, child)
		child.Origin = child.Origin.Add(child.Direction.MulScalar(p.config.Epsilon))
		p.trace(child, depth+1)
	}
}
