package bench

import (
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
)

func TestWavelengthToColor(t *testing.T) {
	tests := []struct {
		nm   float64
		want pt.Color
	}{
		{633, pt.Color{R: 1, G: 12.0 / 65, B: 0}},
		{532, pt.Color{R: 22.0 / 70, G: 1, B: 0}},
		{450, pt.Color{R: 0, G: 0.2, B: 1}},
		{500, pt.Color{R: 0, G: 1, B: 0.5}},
	}
	for _, test := range tests {
		got := WavelengthToColor(test.nm)
		assert.InDelta(t, test.want.R, got.R, 1e-9, "red at %v nm", test.nm)
		assert.InDelta(t, test.want.G, got.G, 1e-9, "green at %v nm", test.nm)
		assert.InDelta(t, test.want.B, got.B, 1e-9, "blue at %v nm", test.nm)
	}
}

func TestWavelengthToColorClampsToVisible(t *testing.T) {
	assert.Equal(t, WavelengthToColor(380), WavelengthToColor(200))
	assert.Equal(t, WavelengthToColor(780), WavelengthToColor(1064))
	edge := WavelengthToColor(380)
	assert.Less(t, edge.R, 1.0, "edges of the spectrum are dimmed")
}

func TestSourceBeam(t *testing.T) {
	o := DefaultOptics(Source)
	color, wavelength := sourceBeam(o)
	assert.Equal(t, Red, color)
	assert.Equal(t, DefaultWavelength, wavelength)

	o.Wavelength = 450
	color, wavelength = sourceBeam(o)
	assert.Equal(t, WavelengthToColor(450), color)
	assert.InDelta(t, 450e-9, wavelength, 1e-18)

	o.BeamColor = pt.Color{R: 0, G: 1, B: 0}
	color, wavelength = sourceBeam(o)
	assert.Equal(t, o.BeamColor, color)
	assert.InDelta(t, 450e-9, wavelength, 1e-18)
}
