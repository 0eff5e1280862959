package bench

import (
	"math"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
)

func TestReflect(t *testing.T) {
	assert := assert.New(t)
	normal := V(0, 0, -1)
	for _, deg := range []float64{0, 10, 30, 45, 60, 89} {
		theta := pt.Radians(deg)
		incident := V(math.Sin(theta), 0, math.Cos(theta))
		reflected := Reflect(incident, normal)
		assert.InDelta(-incident.Dot(normal), reflected.Dot(normal), 1e-12, "angle %v", deg)
		assert.InDelta(incident.X, reflected.X, 1e-12, "angle %v", deg)
		assert.InDelta(1, reflected.Length(), 1e-12, "angle %v", deg)
	}
}

func TestRefract(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		n1, n2   float64
		wantOK   bool
		wantSinT float64
	}{
		{"normal_incidence", 0, 1, 1.5, true, 0},
		{"air_to_glass_30deg", 30, 1, 1.5, true, math.Sin(pt.Radians(30)) / 1.5},
		{"glass_to_air_20deg", 20, 1.5, 1, true, math.Sin(pt.Radians(20)) * 1.5},
		{"glass_to_air_beyond_critical", 60, 1.5, 1, false, 0},
		{"matched_index", 45, 1.33, 1.33, true, math.Sin(pt.Radians(45))},
	}

	normal := V(0, 0, -1)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			theta := pt.Radians(test.deg)
			incident := V(math.Sin(theta), 0, math.Cos(theta))
			dir, ok := Refract(incident, normal, test.n1, test.n2)
			assert.Equal(t, test.wantOK, ok)
			if !ok {
				return
			}
			assert.InDelta(t, 1, dir.Length(), 1e-12)
			assert.InDelta(t, test.wantSinT, dir.X, 1e-12)
			assert.Greater(t, dir.Z, 0.0, "refracted ray should keep travelling into the surface")
		})
	}
}

func TestFresnelSchlick(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(0.04, FresnelSchlick(1, 1, 1.5), 1e-12)
	assert.InDelta(1, FresnelSchlick(0, 1, 1.5), 1e-12)
	assert.InDelta(0, FresnelSchlick(1, 1.5, 1.5), 1e-12)
	assert.InDelta(FresnelSchlick(0.7, 1, 1.5), FresnelSchlick(0.7, 1.5, 1), 1e-12)

	prev := FresnelSchlick(1, 1, 1.5)
	for cos := 0.9; cos >= 0; cos -= 0.1 {
		r := FresnelSchlick(cos, 1, 1.5)
		assert.GreaterOrEqual(r, prev, "reflectance should grow towards grazing incidence")
		prev = r
	}
}

func TestGratingSine(t *testing.T) {
	assert := assert.New(t)

	sinM, ok := GratingSine(0, 1, 633e-9, 600)
	assert.True(ok)
	assert.InDelta(0.3798, sinM, 1e-9)

	sinM, ok = GratingSine(0, -1, 633e-9, 600)
	assert.True(ok)
	assert.InDelta(-0.3798, sinM, 1e-9)

	sinM, ok = GratingSine(0.5, 0, 633e-9, 600)
	assert.True(ok)
	assert.InDelta(0.5, sinM, 1e-12)

	_, ok = GratingSine(0.8, 1, 633e-9, 600)
	assert.False(ok, "order past grazing should be evanescent")
	_, ok = GratingSine(0, 1, 633e-9, 2400)
	assert.False(ok, "line spacing below the wavelength has no first order")
}
