package bench

import (
	"fmt"
	"image"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fogleman/gg"
	"github.com/fogleman/pt/pt"
)

// View renders a bench onto an image through a projection plane.
type View struct {
	Bench *Bench
	XSize int
	YSize int
	Plane Plane
	// Padding around the elements, in pixels
	Margin float64
	// When set, beams from other sources are drawn faded
	HighlightSource string
	// These cache the values needed to scale and translate from the bench to the requested image size
	scale      float64
	xTranslate float64
	yTranslate float64
}

func (view View) project(v pt.Vector) Point2D {
	return To2D(view.Plane.Project(v))
}

// BoundingBox is the extent of all elements on the plane. Beams are left out
// so that escaped rays do not shrink the bench to a dot.
func (b *Bench) BoundingBox(p Plane) (XMin, XMax, YMin, YMax float64) {
	var all Path2D
	for _, e := range b.Elements() {
		if e.Visible {
			all = append(all, p.Outline(e)...)
		}
	}
	return all.BoundingBox()
}

func (view *View) computeScaleAndTranslation() {
	XMin, XMax, YMin, YMax := view.Bench.BoundingBox(view.Plane)
	view.xTranslate = -XMin
	view.yTranslate = -YMin
	usableX := float64(view.XSize) - 2*view.Margin
	usableY := float64(view.YSize) - 2*view.Margin
	if XMax-XMin == 0 || YMax-YMin == 0 || usableX <= 0 || usableY <= 0 {
		view.scale = 1
		return
	}
	XScale := usableX / (XMax - XMin)
	YScale := usableY / (YMax - YMin)
	view.scale = math.Min(XScale, YScale)
}

func (view *View) getScale() float64 {
	if view.scale == 0 {
		view.computeScaleAndTranslation()
	}
	return view.scale
}

func (view *View) translateAndScale(p Point2D) Point2D {
	scale := view.getScale()
	return p.Translate(view.xTranslate, view.yTranslate).Scale(scale).Translate(view.Margin, view.Margin)
}

var elementColors = map[OpticalType]pt.Color{
	Source:       {R: 0.85, G: 0.2, B: 0.2},
	Mirror:       {R: 0.55, G: 0.6, B: 0.7},
	Lens:         {R: 0.4, G: 0.7, B: 0.9},
	Splitter:     {R: 0.5, G: 0.8, B: 0.8},
	Prism:        {R: 0.6, G: 0.8, B: 1.0},
	Absorber:     {R: 0.1, G: 0.1, B: 0.1},
	Grating:      {R: 0.7, G: 0.5, B: 0.9},
	Filter:       {R: 0.9, G: 0.8, B: 0.4},
	Aperture:     {R: 0.3, G: 0.3, B: 0.3},
	FiberCoupler: {R: 0.9, G: 0.6, B: 0.3},
	Passive:      {R: 0.75, G: 0.75, B: 0.75},
}

// Render draws every visible element outline and every beam on the bench.
// Beam opacity follows its intensity.
func (view *View) Render() image.Image {
	c := gg.NewContext(view.XSize, view.YSize)
	c.SetRGB(1, 1, 1)
	c.Clear()

	for _, e := range view.Bench.Elements() {
		if !e.Visible {
			continue
		}
		outline := view.Plane.Outline(e)
		if len(outline) == 0 {
			continue
		}
		for i, p := range outline {
			p = view.translateAndScale(p)
			if i == 0 {
				c.MoveTo(p.X, p.Y)
			} else {
				c.LineTo(p.X, p.Y)
			}
		}
		c.ClosePath()
		col := elementColors[e.Type]
		c.SetRGBA(col.R, col.G, col.B, 0.6)
		c.FillPreserve()
		c.SetRGB(col.R, col.G, col.B)
		c.SetLineWidth(1)
		c.Stroke()
	}

	for _, beam := range view.Bench.Beams {
		alpha := clamp(beam.Intensity, 0.05, 1)
		if !beam.Traced {
			alpha = 1
		}
		if view.HighlightSource != "" && beam.SourceElementID != view.HighlightSource {
			alpha *= 0.15
		}
		p1 := view.translateAndScale(view.project(beam.Start))
		p2 := view.translateAndScale(view.project(beam.End))
		c.SetRGBA(beam.Color.R, beam.Color.G, beam.Color.B, alpha)
		c.SetLineWidth(beam.Width)
		c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
		c.Stroke()
	}
	return c.Image()
}

// SavePNG renders the view to a PNG file.
func (view *View) SavePNG(path string) error {
	c := gg.NewContextForImage(view.Render())
	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("saving view: %w", err)
	}
	return nil
}

// PlotIntensityHistogram saves a histogram of segment intensities to path.
// The image format follows the file extension.
func PlotIntensityHistogram(segments []TraceSegment, X, Y int, path string) error {
	p := plot.New()
	p.Title.Text = "Segment intensity"
	p.X.Label.Text = "Intensity"
	p.Y.Label.Text = "Segments"

	values := make(plotter.Values, len(segments))
	for i, s := range segments {
		values[i] = s.Intensity
	}
	if len(values) > 0 {
		hist, err := plotter.NewHist(values, 20)
		if err != nil {
			return fmt.Errorf("building histogram: %w", err)
		}
		p.Add(hist)
	}
	if err := p.Save(vg.Points(float64(X)), vg.Points(float64(Y)), path); err != nil {
		return fmt.Errorf("saving histogram: %w", err)
	}
	return nil
}
