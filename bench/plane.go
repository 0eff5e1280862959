package bench

import (
	"sort"

	"github.com/fogleman/pt/pt"
)

type Point2D struct {
	X, Y float64
}

// To2D converts a 3D vector to a 2D point
func To2D(v pt.Vector) Point2D {
	return Point2D{v.X, v.Y}
}

func (p Point2D) Translate(x, y float64) Point2D {
	return Point2D{p.X + x, p.Y + y}
}

func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

type Path2D []Point2D

func (p Path2D) Translate(x, y float64) Path2D {
	translated := make(Path2D, len(p))
	for i, p := range p {
		translated[i] = p.Translate(x, y)
	}
	return translated
}

func (p Path2D) BoundingBox() (XMin, XMax, YMin, YMax float64) {
	if len(p) == 0 {
		return
	}
	XMin, XMax = p[0].X, p[0].X
	YMin, YMax = p[0].Y, p[0].Y
	for _, p := range p[1:] {
		if p.X < XMin {
			XMin = p.X
		}
		if p.X > XMax {
			XMax = p.X
		}
		if p.Y < YMin {
			YMin = p.Y
		}
		if p.Y > YMax {
			YMax = p.Y
		}
	}
	return
}

// Plane is a 2D coordinate system embedded in 3D space that views are drawn on.
type Plane struct {
	Point  pt.Vector
	Normal pt.Vector
	U, V   pt.Vector
}

func MakePlane(point, normal pt.Vector) Plane {
	u := perpendicular(normal).Normalize()
	v := u.Cross(normal).Normalize()
	return Plane{point, normal, u, v}
}

// PlanView looks down on the XZ plane of the bench with +X to the right and
// +Z towards the top of the image.
func PlanView() Plane {
	return MakePlane(V(0, 0, 0), V(0, -1, 0))
}

func (p Plane) Project(point pt.Vector) pt.Vector {
	d := point.Sub(p.Point)
	x := d.Dot(p.U)
	y := d.Dot(p.V)
	return V(x, y, 0)
}

func perpendicular(a pt.Vector) pt.Vector {
	if a.X == 0 && a.Y == 0 {
		if a.Z == 0 {
			return pt.Vector{}
		}
		return V(0, 1, 0)
	}
	return V(-a.Y, a.X, 0).Normalize()
}

// Outline projects an element's bounding box onto the plane and returns the
// convex hull of its corners, counter-clockwise.
func (p Plane) Outline(e *Element) Path2D {
	points := make(Path2D, 0, 8)
	for _, c := range e.Corners() {
		points = append(points, To2D(p.Project(c)))
	}
	return convexHull(points)
}

func cross2D(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// convexHull is Andrew's monotone chain.
func convexHull(points Path2D) Path2D {
	if len(points) < 3 {
		return points
	}
	sorted := make(Path2D, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	hull := make(Path2D, 0, 2*len(sorted))
	for _, q := range sorted {
		for len(hull) >= 2 && cross2D(hull[len(hull)-2], hull[len(hull)-1], q) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, q)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		q := sorted[i]
		for len(hull) >= lower && cross2D(hull[len(hull)-2], hull[len(hull)-1], q) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, q)
	}
	return hull[:len(hull)-1]
}
