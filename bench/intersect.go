package bench

import (
	"math"

	"github.com/fogleman/pt/pt"
)

const parallelEpsilon = 1e-12

// IntersectLocalBox intersects a ray with the axis-aligned box [min, max] using
// the slab method. The ray's direction need not be unit length; t is measured
// in multiples of it. Only entries into the box count: a ray starting inside
// the box, or one whose entry lies beyond tMax, misses. normal is the outward
// normal of the entered face.
func IntersectLocalBox(r pt.Ray, min, max pt.Vector, tMax float64) (hit bool, t float64, normal pt.Vector) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	nearAxis := -1
	nearSign := 0.0

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{min.X, min.Y, min.Z}
	hi := [3]float64{max.X, max.Y, max.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < parallelEpsilon {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return false, 0, pt.Vector{}
			}
			continue
		}
		inv := 1 / dir[axis]
		t1 := (lo[axis] - origin[axis]) * inv
		t2 := (hi[axis] - origin[axis]) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tNear {
			tNear = t1
			nearAxis = axis
			nearSign = sign
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return false, 0, pt.Vector{}
		}
	}

	if nearAxis < 0 || tNear <= 0 || tNear > tMax {
		return false, 0, pt.Vector{}
	}

	switch nearAxis {
	case 0:
		normal = V(nearSign, 0, 0)
	case 1:
		normal = V(0, nearSign, 0)
	default:
		normal = V(0, 0, nearSign)
	}
	return true, tNear, normal
}
