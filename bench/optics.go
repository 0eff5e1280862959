package bench

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// DefaultWavelength is the wavelength of a source that does not set one, in meters.
const DefaultWavelength = 633e-9

// Reflect mirrors incident about normal. normal must be unit length.
func Reflect(incident, normal pt.Vector) pt.Vector {
	return incident.Sub(normal.MulScalar(2 * incident.Dot(normal)))
}

// Refract bends incident through an interface from index n1 into index n2
// following Snell's law. normal must be unit length and face the incident
// ray. ok is false on total internal reflection, in which case the caller
// is expected to reflect instead.
func Refract(incident, normal pt.Vector, n1, n2 float64) (dir pt.Vector, ok bool) {
	ratio := n1 / n2
	cosI := -normal.Dot(incident)
	sinT2 := ratio * ratio * (1 - cosI*cosI)
	if sinT2 > 1 {
		return pt.Vector{}, false
	}
	cosT := math.Sqrt(1 - sinT2)
	return incident.MulScalar(ratio).Add(normal.MulScalar(ratio*cosI - cosT)).Normalize(), true
}

// FresnelSchlick approximates the reflectance of an interface between n1 and
// n2 for a ray arriving at cosTheta to the normal.
func FresnelSchlick(cosTheta, n1, n2 float64) float64 {
	r0 := (n1 - n2) / (n1 + n2)
	r0 = r0 * r0
	x := 1 - clamp(cosTheta, 0, 1)
	x2 := x * x
	return clamp(r0+(1-r0)*x2*x2*x, 0, 1)
}

// GratingSine solves the grating equation sin(θm) = sin(θi) + m·λ/d for the
// given order. wavelength is in meters, lineDensity in lines/mm. ok is false
// for evanescent orders.
func GratingSine(sinI float64, order int, wavelength, lineDensity float64) (sinM float64, ok bool) {
	d := 1 / (lineDensity * 1000)
	sinM = sinI + float64(order)*wavelength/d
	if math.Abs(sinM) > 1 {
		return 0, false
	}
	return sinM, true
}
