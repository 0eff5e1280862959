package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanViewAxes(t *testing.T) {
	p := PlanView()
	assert.InDelta(t, 0, p.U.Sub(V(1, 0, 0)).Length(), 1e-12)
	assert.InDelta(t, 0, p.V.Sub(V(0, 0, -1)).Length(), 1e-12)

	projected := p.Project(V(3, 7, 2))
	assert.InDelta(t, 3, projected.X, 1e-12)
	assert.InDelta(t, -2, projected.Y, 1e-12)
}

func TestConvexHull(t *testing.T) {
	square := Path2D{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tests := []struct {
		name   string
		points Path2D
		want   Path2D
	}{
		{"square", square, Path2D{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
		{"interior_point", append(Path2D{{0.5, 0.5}}, square...), Path2D{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
		{"duplicates", append(square, square...), Path2D{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
		{"collinear", Path2D{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, Path2D{{0, 0}, {2, 0}, {2, 1}}},
		{"two_points", Path2D{{0, 0}, {1, 1}}, Path2D{{0, 0}, {1, 1}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, convexHull(test.points))
		})
	}
}

func TestOutline(t *testing.T) {
	e := NewElement("e", Mirror, V(0, 0, 0), V(0, 45, 0), V(2, 2, 2))
	outline := PlanView().Outline(e)
	assert.Len(t, outline, 4)
	XMin, XMax, YMin, YMax := outline.BoundingBox()
	assert.InDelta(t, -1.4142135, XMin, 1e-6)
	assert.InDelta(t, 1.4142135, XMax, 1e-6)
	assert.InDelta(t, -1.4142135, YMin, 1e-6)
	assert.InDelta(t, 1.4142135, YMax, 1e-6)
}

func TestPath2DBoundingBox(t *testing.T) {
	p := Path2D{{3, -1}, {5, 4}, {-2, 2}}
	XMin, XMax, YMin, YMax := p.BoundingBox()
	assert.Equal(t, []float64{-2, 5, -1, 4}, []float64{XMin, XMax, YMin, YMax})

	XMin, XMax, YMin, YMax = Path2D{}.BoundingBox()
	assert.Equal(t, []float64{0, 0, 0, 0}, []float64{XMin, XMax, YMin, YMax})
}
