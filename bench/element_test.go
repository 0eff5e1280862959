package bench

import (
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOpticalType(t *testing.T) {
	for typ, name := range opticalTypeNames {
		got, err := ParseOpticalType(name)
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	got, err := ParseOpticalType(" Fiber-Coupler ")
	require.NoError(t, err)
	assert.Equal(t, FiberCoupler, got)

	_, err = ParseOpticalType("wormhole")
	assert.Error(t, err)
}

func TestOpticalTypeString(t *testing.T) {
	assert.Equal(t, "splitter", Splitter.String())
	assert.Equal(t, "OpticalType(42)", OpticalType(42).String())
}

func TestDefaultOptics(t *testing.T) {
	assert.Equal(t, 1.0, DefaultOptics(Mirror).Reflectivity)
	assert.Equal(t, 0.5, DefaultOptics(Splitter).Reflectivity)
	assert.Equal(t, 0.5, DefaultOptics(Splitter).Transmissivity)
	assert.Equal(t, 50.0, DefaultOptics(Lens).FocalLength)
	assert.Equal(t, 600.0, DefaultOptics(Grating).GratingLineDensity)
	assert.Zero(t, DefaultOptics(Prism).GratingLineDensity)
	assert.Equal(t, pt.Color{R: 1, G: 1, B: 1}, DefaultOptics(Absorber).FilterColor)
}

func TestNewElementOrientation(t *testing.T) {
	tests := []struct {
		name     string
		rotation pt.Vector
		forward  pt.Vector
	}{
		{"unrotated", V(0, 0, 0), V(0, 0, 1)},
		{"yaw_90", V(0, 90, 0), V(1, 0, 0)},
		{"yaw_minus_45", V(0, -45, 0), V(-1, 0, 1).Normalize()},
		{"pitch_90", V(90, 0, 0), V(0, -1, 0)},
		{"yaw_then_roll", V(0, 90, 90), V(0, 1, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := NewElement("e", Mirror, V(1, 2, 3), test.rotation, V(2, 2, 2))
			assert.InDelta(t, 0, e.Forward().Sub(test.forward).Length(), 1e-9)
			assert.InDelta(t, 0, e.WorldBoundsCenter().Sub(V(1, 2, 3)).Length(), 1e-9)
		})
	}
}

func TestRotationTo(t *testing.T) {
	for _, to := range []pt.Vector{V(1, 0, 0), V(0, 0, 1), V(0, 0, -1), V(1, 1, 1), V(-2, 0.5, 0)} {
		got := RotationTo(V(0, 0, 1), to).MulDirection(V(0, 0, 1))
		assert.InDelta(t, 0, got.Sub(to.Normalize()).Length(), 1e-9, "rotating onto %v", to)
	}
}

func TestNewElementFacing(t *testing.T) {
	assert := assert.New(t)
	facing := NewElementFacing("splitter", Splitter, V(1, 2, 3), V(-1, 0, 1), V(4, 4, 0.2))
	euler := NewElement("splitter", Splitter, V(1, 2, 3), V(0, -45, 0), V(4, 4, 0.2))

	assert.InDelta(0, facing.Forward().Sub(V(-1, 0, 1).Normalize()).Length(), 1e-9)
	assert.InDelta(0, facing.WorldBoundsCenter().Sub(V(1, 2, 3)).Length(), 1e-9)
	assert.Equal(euler.BoundsMin, facing.BoundsMin)
	assert.Equal(DefaultOptics(Splitter), facing.Optics)
	for i, c := range facing.Corners() {
		assert.InDelta(0, c.Sub(euler.Corners()[i]).Length(), 1e-9, "corner %d", i)
	}
}

func TestElementCorners(t *testing.T) {
	e := NewElement("e", Passive, V(10, 0, 0), pt.Vector{}, V(2, 4, 6))
	corners := e.Corners()
	require.Len(t, corners, 8)
	assert.Equal(t, V(9, -2, -3), corners[0])
	assert.Equal(t, V(11, 2, 3), corners[7])
}
