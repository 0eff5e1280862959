package bench

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// V is a shorthand constructor for pt.Vector
func V(X, Y, Z float64) pt.Vector {
	return pt.Vector{X: X, Y: Y, Z: Z}
}

var (
	axisX = V(1, 0, 0)
	axisY = V(0, 1, 0)
	axisZ = V(0, 0, 1)
)

// transformVector applies the linear part of m to v without normalizing, so
// lengths survive scaling transforms.
func transformVector(m pt.Matrix, v pt.Vector) pt.Vector {
	return m.MulPosition(v).Sub(m.MulPosition(pt.Vector{}))
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
