//go:build !verify_optics
// +build !verify_optics

package bench

import "github.com/fogleman/pt/pt"

// Empty stubs that will be optimized out

func verifyUnit(dir pt.Vector) {}

func verifyNormalOrientation(normal, dir pt.Vector) {}

func verifyReflectionLaw(incident, normal, reflected pt.Vector) {}

func verifyChild(parent, child Ray) {}
