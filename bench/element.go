package bench

import (
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/pt/pt"
)

// OpticalType selects the interaction rule applied when a ray strikes an element.
type OpticalType int

const (
	Passive OpticalType = iota
	Source
	Mirror
	Lens
	Splitter
	Prism
	Absorber
	Grating
	Filter
	Aperture
	FiberCoupler
)

var opticalTypeNames = map[OpticalType]string{
	Passive:      "passive",
	Source:       "source",
	Mirror:       "mirror",
	Lens:         "lens",
	Splitter:     "splitter",
	Prism:        "prism",
	Absorber:     "absorber",
	Grating:      "grating",
	Filter:       "filter",
	Aperture:     "aperture",
	FiberCoupler: "fiber_coupler",
}

func (t OpticalType) String() string {
	if name, ok := opticalTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("OpticalType(%d)", int(t))
}

// ParseOpticalType maps a type name as written in layout files to its OpticalType.
func ParseOpticalType(name string) (OpticalType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "_")
	if name == "fibercoupler" || name == "fiber" {
		name = "fiber_coupler"
	}
	for t, n := range opticalTypeNames {
		if n == name {
			return t, nil
		}
	}
	return Passive, fmt.Errorf("unknown optical type %q", name)
}

// OpticalProperties are the per-element optical constants read by the tracer.
type OpticalProperties struct {
	// Fraction of intensity reflected, 0-1. Not required to sum to 1 with Transmissivity.
	Reflectivity float64
	// Fraction of intensity transmitted, 0-1.
	Transmissivity float64
	// Index of refraction on the transmissive side
	IOR float64
	// Signed focal length in mm. Magnitudes at or below 0.01 mean no lens power.
	FocalLength float64
	// Component-wise color multiplier applied by filters
	FilterColor pt.Color
	// Opening size as a fraction of the element's local width and height, 0-1
	ApertureDiameter float64
	// Lines per mm
	GratingLineDensity float64
	// Emission wavelength of a source in nm. Zero means 633 nm.
	Wavelength float64
	// Emission color of a source. Black means derive it from the wavelength.
	BeamColor pt.Color
}

// DefaultOptics returns the properties a freshly placed element of type t starts with.
func DefaultOptics(t OpticalType) OpticalProperties {
	o := OpticalProperties{
		IOR:         1.5,
		FilterColor: pt.Color{R: 1, G: 1, B: 1},
	}
	switch t {
	case Mirror:
		o.Reflectivity = 1
	case Splitter:
		o.Reflectivity = 0.5
		o.Transmissivity = 0.5
	case Lens:
		o.Transmissivity = 1
		o.FocalLength = 50
	case Prism, Filter:
		o.Transmissivity = 1
	case Grating:
		o.Transmissivity = 1
		o.GratingLineDensity = 600
	case Aperture:
		o.ApertureDiameter = 0.5
	case FiberCoupler:
		o.Transmissivity = 0.8
	}
	return o
}

// Element is a single optical component placed on the bench.
type Element struct {
	ID      string
	Name    string
	Type    OpticalType
	Visible bool
	// Local to world transform
	Transform pt.Matrix
	// Axis-aligned bounds in local space
	BoundsMin, BoundsMax pt.Vector
	Optics               OpticalProperties
}

// NewElement places an element of the given type centered at position. rotation
// holds Euler angles in degrees applied about X, then Y, then Z. size is the full
// extent of the element's local bounding box.
func NewElement(id string, t OpticalType, position, rotation, size pt.Vector) *Element {
	m := rotation3(axisX, pt.Radians(rotation.X))
	m = rotation3(axisY, pt.Radians(rotation.Y)).Mul(m)
	m = rotation3(axisZ, pt.Radians(rotation.Z)).Mul(m)
	m = pt.Translate(position).Mul(m)
	half := size.MulScalar(0.5)
	return &Element{
		ID:        id,
		Name:      id,
		Type:      t,
		Visible:   true,
		Transform: m,
		BoundsMin: half.Negate(),
		BoundsMax: half,
		Optics:    DefaultOptics(t),
	}
}

// NewElementFacing places an element centered at position with its local +Z
// axis turned onto forward.
func NewElementFacing(id string, t OpticalType, position, forward, size pt.Vector) *Element {
	e := NewElement(id, t, position, pt.Vector{}, size)
	e.Transform = pt.Translate(position).Mul(RotationTo(axisZ, forward))
	return e
}

// rotation3 is a right-handed rotation by angle radians about axis. The
// handedness of pt.Rotate is checked on a vector perpendicular to axis.
func rotation3(axis pt.Vector, angle float64) pt.Matrix {
	axis = axis.Normalize()
	m := pt.Rotate(axis, angle)
	u := perpendicular(axis)
	want := u.MulScalar(math.Cos(angle)).Add(axis.Cross(u).MulScalar(math.Sin(angle)))
	if m.MulDirection(u).Dot(want) < 1-1e-9 {
		m = pt.Rotate(axis, -angle)
	}
	return m
}

// RotationTo returns the right-handed rotation that turns direction from onto to.
func RotationTo(from, to pt.Vector) pt.Matrix {
	from, to = from.Normalize(), to.Normalize()
	cos := clamp(from.Dot(to), -1, 1)
	axis := from.Cross(to)
	if axis.Length() < 1e-12 {
		if cos > 0 {
			return pt.Identity()
		}
		axis = perpendicular(from)
	}
	return rotation3(axis, math.Acos(cos))
}

func (e *Element) WorldTransform() pt.Matrix {
	return e.Transform
}

func (e *Element) LocalBounds() (pt.Vector, pt.Vector) {
	return e.BoundsMin, e.BoundsMax
}

func (e *Element) localCenter() pt.Vector {
	return e.BoundsMin.Add(e.BoundsMax).MulScalar(0.5)
}

// WorldBoundsCenter is the center of the element's bounding box in world space.
func (e *Element) WorldBoundsCenter() pt.Vector {
	return e.Transform.MulPosition(e.localCenter())
}

// Forward is the element's local +Z axis in world space.
func (e *Element) Forward() pt.Vector {
	return e.Transform.MulDirection(axisZ).Normalize()
}

// Corners returns the eight world-space corners of the element's bounding box.
func (e *Element) Corners() []pt.Vector {
	lo, hi := e.BoundsMin, e.BoundsMax
	corners := make([]pt.Vector, 0, 8)
	for _, x := range []float64{lo.X, hi.X} {
		for _, y := range []float64{lo.Y, hi.Y} {
			for _, z := range []float64{lo.Z, hi.Z} {
				corners = append(corners, e.Transform.MulPosition(V(x, y, z)))
			}
		}
	}
	return corners
}
