package bench

import (
	"github.com/fogleman/pt/pt"
	lin "github.com/sgreben/piecewiselinear"
)

const (
	visibleMinNM = 380.0
	visibleMaxNM = 780.0
)

// Red is the beam color of a source that sets neither a color nor a wavelength.
var Red = pt.Color{R: 1, G: 0, B: 0}

// Piecewise-linear approximation of the visible spectrum, wavelengths in nm.
var (
	spectrumR = lin.Function{
		X: []float64{380, 440, 510, 580, 780},
		Y: []float64{1, 0, 0, 1, 1},
	}
	spectrumG = lin.Function{
		X: []float64{380, 440, 490, 580, 645, 780},
		Y: []float64{0, 0, 1, 1, 0, 0},
	}
	spectrumB = lin.Function{
		X: []float64{380, 490, 510, 780},
		Y: []float64{1, 1, 0, 0},
	}
	// Perceived brightness drops off towards both ends of the visible range
	spectrumFalloff = lin.Function{
		X: []float64{380, 420, 700, 780},
		Y: []float64{0.3, 1, 1, 0.3},
	}
)

// WavelengthToColor approximates the display color of monochromatic light.
// Wavelengths outside the visible range take the color of the nearest edge.
func WavelengthToColor(nm float64) pt.Color {
	nm = clamp(nm, visibleMinNM, visibleMaxNM)
	f := spectrumFalloff.At(nm)
	return pt.Color{
		R: spectrumR.At(nm) * f,
		G: spectrumG.At(nm) * f,
		B: spectrumB.At(nm) * f,
	}
}
