//go:build verify_optics
// +build verify_optics

package bench

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
)

// Constants for verification
const (
	lengthEpsilon    = 1e-7
	intensityEpsilon = 1e-12
)

func verifyUnit(dir pt.Vector) {
	if l := dir.Length(); math.Abs(l-1) > lengthEpsilon {
		panic(fmt.Sprintf("ray direction %v has length %f", dir, l))
	}
}

func verifyNormalOrientation(normal, dir pt.Vector) {
	if normal.Dot(dir) > 0 {
		panic(fmt.Sprintf("normal %v does not oppose ray direction %v", normal, dir))
	}
}

// verifyReflectionLaw checks that the angle of incidence equals the angle of
// reflection and that the tangential component is preserved.
func verifyReflectionLaw(incident, normal, reflected pt.Vector) {
	if math.Abs(reflected.Dot(normal)+incident.Dot(normal)) > lengthEpsilon {
		panic("angle of incidence should equal angle of reflection")
	}
	tIn := incident.Sub(normal.MulScalar(incident.Dot(normal)))
	tOut := reflected.Sub(normal.MulScalar(reflected.Dot(normal)))
	if tIn.Sub(tOut).Length() > lengthEpsilon {
		panic("reflection should preserve the tangential component")
	}
}

func verifyChild(parent, child Ray) {
	if child.Intensity > parent.Intensity+intensityEpsilon {
		panic(fmt.Sprintf("child intensity %f exceeds parent intensity %f", child.Intensity, parent.Intensity))
	}
	verifyUnit(child.Direction)
}
