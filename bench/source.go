package bench

import (
	"github.com/fogleman/pt/pt"
)

// sourceBeam returns the color and wavelength (in meters) a source emits.
// An explicit BeamColor wins, then the color of the configured wavelength,
// then red.
func sourceBeam(o OpticalProperties) (pt.Color, float64) {
	wavelength := DefaultWavelength
	if o.Wavelength > 0 {
		wavelength = o.Wavelength * 1e-9
	}
	switch {
	case o.BeamColor != (pt.Color{}):
		return o.BeamColor, wavelength
	case o.Wavelength > 0:
		return WavelengthToColor(o.Wavelength), wavelength
	default:
		return Red, wavelength
	}
}

// sourceRay builds the ray a source launches: from its center, nudged forward
// by epsilon, along its local +Z axis at full intensity.
func sourceRay(e *Element, config TraceConfig) Ray {
	forward := e.Forward()
	color, wavelength := sourceBeam(e.Optics)
	return Ray{
		Origin:     e.WorldBoundsCenter().Add(forward.MulScalar(config.Epsilon)),
		Direction:  forward,
		Intensity:  1.0,
		Color:      color,
		SourceID:   e.ID,
		Wavelength: wavelength,
	}
}
