package bench

import (
	"math"

	"github.com/fogleman/pt/pt"
)

const (
	// Lenses with |f| at or below this have no optical power
	minFocalLength = 0.01
	// Radial offsets below this pass through a lens undeviated
	negligibleOffset = 1e-9
	// Slack allowed on aperture edges for transform round-off
	apertureTolerance = 1e-9
)

var gratingOrders = []int{-1, 0, 1}

// interact applies the rule for the struck element's type and returns the
// rays it spawns, each starting on the struck surface.
func interact(ray Ray, hit surfaceHit, config TraceConfig) []Ray {
	switch hit.element.Type {
	case Mirror:
		return interactMirror(ray, hit)
	case Lens:
		return interactLens(ray, hit, config)
	case Splitter:
		return interactSplitter(ray, hit, config)
	case Prism:
		return interactPrism(ray, hit)
	case Grating:
		return interactGrating(ray, hit, config)
	case Filter:
		return interactFilter(ray, hit)
	case Aperture:
		return interactAperture(ray, hit)
	case FiberCoupler:
		return interactFiberCoupler(ray, hit, config)
	case Absorber:
		return nil
	default:
		// Sources, passive elements and anything unrecognized are transparent
		return []Ray{ray.spawn(hit.point, ray.Direction, ray.Intensity)}
	}
}

func interactMirror(ray Ray, hit surfaceHit) []Ray {
	reflected := Reflect(ray.Direction, hit.normal)
	verifyReflectionLaw(ray.Direction, hit.normal, reflected)
	return []Ray{ray.spawn(hit.point, reflected, ray.Intensity*hit.element.Optics.Reflectivity)}
}

// interactLens models a thin lens. A Fresnel fraction is reflected off the
// surface; the rest is bent towards (or, for negative focal lengths, away
// from) the focal point, in proportion to how far from the axis it struck.
func interactLens(ray Ray, hit surfaceHit, config TraceConfig) []Ray {
	o := hit.element.Optics
	axis := hit.element.Forward()
	center := hit.element.WorldBoundsCenter()
	offset := hit.point.Sub(center)
	h := offset.Sub(axis.MulScalar(offset.Dot(axis))).Length()

	// The incident medium is always taken to be air, whichever side the ray enters from.
	r := FresnelSchlick(math.Abs(ray.Direction.Dot(hit.normal)), 1.0, o.IOR)

	var children []Ray
	if r*ray.Intensity > config.MinIntensity {
		children = append(children, ray.spawn(hit.point, Reflect(ray.Direction, hit.normal), ray.Intensity*r))
	}

	transmitted := (1 - r) * o.Transmissivity * ray.Intensity
	if transmitted <= config.MinIntensity {
		return children
	}
	dir := ray.Direction
	if math.Abs(o.FocalLength) > minFocalLength && h > negligibleOffset {
		side := 1.0
		if ray.Direction.Dot(axis) < 0 {
			side = -1.0
		}
		focal := center.Add(axis.MulScalar(side * o.FocalLength))
		bent := focal.Sub(hit.point)
		if o.FocalLength < 0 {
			bent = bent.Negate()
		}
		blend := clamp(h/lensHalfAperture(hit.element.Element), 0, 1)
		dir = ray.Direction.MulScalar(1 - blend).Add(bent.Normalize().MulScalar(blend))
	}
	return append(children, ray.spawn(hit.point, dir, transmitted))
}

// lensHalfAperture is half the larger of the lens' world-space width and height.
func lensHalfAperture(e *Element) float64 {
	size := e.BoundsMax.Sub(e.BoundsMin)
	w := transformVector(e.Transform, V(size.X, 0, 0)).Length()
	h := transformVector(e.Transform, V(0, size.Y, 0)).Length()
	return math.Max(w, h) / 2
}

func interactSplitter(ray Ray, hit surfaceHit, config TraceConfig) []Ray {
	o := hit.element.Optics
	var children []Ray
	if reflected := ray.Intensity * o.Reflectivity; reflected > config.MinIntensity {
		children = append(children, ray.spawn(hit.point, Reflect(ray.Direction, hit.normal), reflected))
	}
	if transmitted := ray.Intensity * o.Transmissivity; transmitted > config.MinIntensity {
		children = append(children, ray.spawn(hit.point, ray.Direction, transmitted))
	}
	return children
}

// interactPrism refracts into the prism material. Total internal reflection is
// lossless, so the reflected ray keeps the full intensity.
func interactPrism(ray Ray, hit surfaceHit) []Ray {
	o := hit.element.Optics
	if dir, ok := Refract(ray.Direction, hit.normal, 1.0, o.IOR); ok {
		return []Ray{ray.spawn(hit.point, dir, ray.Intensity*o.Transmissivity)}
	}
	return []Ray{ray.spawn(hit.point, Reflect(ray.Direction, hit.normal), ray.Intensity)}
}

// interactGrating splits a ray evenly into the -1, 0 and +1 diffraction orders
// of a transmission grating.
func interactGrating(ray Ray, hit surfaceHit, config TraceConfig) []Ray {
	o := hit.element.Optics
	if o.GratingLineDensity <= 0 {
		return []Ray{ray.spawn(hit.point, ray.Direction, ray.Intensity)}
	}
	share := ray.Intensity / float64(len(gratingOrders))
	if share <= config.MinIntensity {
		return nil
	}

	n := hit.normal
	cosI := -ray.Direction.Dot(n)
	tangential := ray.Direction.Add(n.MulScalar(cosI))
	sinI := tangential.Length()
	var tangent pt.Vector
	if sinI > negligibleOffset {
		tangent = tangential.DivScalar(sinI)
	} else {
		sinI = 0
		tangent = perpendicular(n)
	}

	children := make([]Ray, 0, len(gratingOrders))
	for _, m := range gratingOrders {
		sinM, ok := GratingSine(sinI, m, ray.Wavelength, o.GratingLineDensity)
		if !ok {
			continue
		}
		dir := ray.Direction
		if m != 0 {
			cosM := math.Sqrt(1 - sinM*sinM)
			dir = tangent.MulScalar(sinM).Sub(n.MulScalar(cosM))
		}
		children = append(children, ray.spawn(hit.point, dir, share))
	}
	return children
}

func interactFilter(ray Ray, hit surfaceHit) []Ray {
	o := hit.element.Optics
	child := ray.spawn(hit.point, ray.Direction, ray.Intensity*o.Transmissivity)
	child.Color = ray.Color.Mul(o.FilterColor)
	return []Ray{child}
}

// interactAperture passes rays through a centered rectangular opening and
// absorbs the rest. Rays exactly on the edge pass.
func interactAperture(ray Ray, hit surfaceHit) []Ray {
	e := hit.element
	local := e.inverse.MulPosition(hit.point)
	center := e.BoundsMin.Add(e.BoundsMax).MulScalar(0.5)
	halfW := (e.BoundsMax.X - e.BoundsMin.X) / 2 * e.Optics.ApertureDiameter
	halfH := (e.BoundsMax.Y - e.BoundsMin.Y) / 2 * e.Optics.ApertureDiameter
	if math.Abs(local.X-center.X) > halfW+apertureTolerance || math.Abs(local.Y-center.Y) > halfH+apertureTolerance {
		return nil
	}
	return []Ray{ray.spawn(hit.point, ray.Direction, ray.Intensity)}
}

// interactFiberCoupler re-launches the ray from the coupler's center along its
// axis, whatever direction it arrived from.
func interactFiberCoupler(ray Ray, hit surfaceHit, config TraceConfig) []Ray {
	e := hit.element
	coupled := ray.Intensity * e.Optics.Transmissivity
	if coupled <= config.MinIntensity {
		return nil
	}
	return []Ray{ray.spawn(e.WorldBoundsCenter(), e.Forward(), coupled)}
}
