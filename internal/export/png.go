// Package export renders a sketch scene to a PNG image with gogpu/gg.
package export

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/tui-sketch/internal/geom"
	"github.com/vovakirdan/tui-sketch/internal/sketch"
)

// DefaultSize is the side of the exported image in pixels.
const DefaultSize = 800

// SetLogger routes the drawing library's diagnostics to l.
// Nil silences them again.
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
}

// Options controls what the PNG renderer draws.
type Options struct {
	CircleSegments int     // Polygon resolution of circles
	AxesLength     float64 // Half-length of the axes in NDC; 0 hides them
	LineWidth      float64
	PointRadius    float64
}

// DefaultOptions matches the terminal demo's defaults.
func DefaultOptions() Options {
	return Options{
		CircleSegments: geom.DefaultCircleSegments,
		AxesLength:     0.85,
		LineWidth:      2,
		PointRadius:    5,
	}
}

// PNGRenderer draws scenes onto a square gg context.
// It implements sketch.Renderer, so a Machine can drive it directly.
type PNGRenderer struct {
	dc   *gg.Context
	size int
	opts Options
	err  error // First drawing error since the last Redraw
}

// NewPNGRenderer creates a renderer for a size x size image.
func NewPNGRenderer(size int, opts Options) *PNGRenderer {
	if size <= 0 {
		size = DefaultSize
	}
	if opts.CircleSegments <= 0 {
		opts.CircleSegments = geom.DefaultCircleSegments
	}
	r := &PNGRenderer{
		dc:   gg.NewContext(size, size),
		size: size,
		opts: opts,
	}
	r.clear()
	return r
}

// Redraw paints the whole scene from scratch.
func (r *PNGRenderer) Redraw(scene *sketch.Scene) {
	r.err = nil
	r.clear()

	if r.opts.AxesLength > 0 {
		l := r.opts.AxesLength
		r.setColor(1, 0, 0)
		r.polyline([]geom.Point{geom.Pt(-l, 0), geom.Pt(l, 0)})
		r.setColor(0, 1, 0)
		r.polyline([]geom.Point{geom.Pt(0, -l), geom.Pt(0, l)})
	}

	if c, ok := scene.Circle(); ok {
		r.setColor(1, 0, 1)
		r.polyline(c.Samples(r.opts.CircleSegments))
	}
	if c, ok := scene.PreviewCircle(); ok {
		r.setColor(0.6, 0.6, 0.6)
		r.polyline(c.Samples(r.opts.CircleSegments))
	}

	if s, ok := scene.Segment(); ok {
		r.setColor(0.3, 0.5, 1)
		r.polyline([]geom.Point{s.P0, s.P1})
	}
	if s, ok := scene.PreviewSegment(); ok {
		r.setColor(0.6, 0.6, 0.6)
		r.polyline([]geom.Point{s.P0, s.P1})
	}

	if in, ok := scene.Intersection(); ok {
		r.setColor(1, 1, 0)
		for _, p := range in {
			x, y := r.toPixel(p)
			r.dc.DrawPoint(x, y, r.opts.PointRadius)
			r.check(r.dc.Fill())
		}
	}
}

// Save writes the current image to path.
func (r *PNGRenderer) Save(path string) error {
	if r.err != nil {
		return fmt.Errorf("export: draw: %w", r.err)
	}
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

// Image returns the rendered image.
func (r *PNGRenderer) Image() image.Image {
	return r.dc.Image()
}

// Close releases the drawing context.
func (r *PNGRenderer) Close() error {
	return r.dc.Close()
}

func (r *PNGRenderer) clear() {
	r.dc.ClearWithColor(gg.RGB(0.1, 0.2, 0.3))
	r.dc.SetLineWidth(r.opts.LineWidth)
}

func (r *PNGRenderer) setColor(red, green, blue float64) {
	r.dc.SetRGB(red, green, blue)
}

// polyline strokes the open path through pts.
func (r *PNGRenderer) polyline(pts []geom.Point) {
	if len(pts) < 2 {
		return
	}
	x, y := r.toPixel(pts[0])
	r.dc.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = r.toPixel(p)
		r.dc.LineTo(x, y)
	}
	r.check(r.dc.Stroke())
}

// toPixel maps NDC to image coordinates; y grows downward in the image.
func (r *PNGRenderer) toPixel(p geom.Point) (float64, float64) {
	s := float64(r.size)
	return (p.X + 1) / 2 * s, (1 - p.Y) / 2 * s
}

func (r *PNGRenderer) check(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Gestures describes a complete drawing as pointer positions.
type Gestures struct {
	Circle  geom.Circle
	Segment geom.Segment
}

// Replay feeds the gestures that draw g through m: press at the circle
// center, release on its rim, then press and release at the segment ends.
// The machine measures the radius from center to rim like any drag, so the
// committed radius can differ from g.Circle.Radius in the last bit.
func Replay(m *sketch.Machine, g Gestures) {
	rim := g.Circle.Center.Add(geom.Pt(g.Circle.Radius, 0))

	m.OnPointerDown(g.Circle.Center)
	m.OnPointerMove(rim)
	m.OnPointerUp(rim)

	m.OnPointerDown(g.Segment.P0)
	m.OnPointerMove(g.Segment.P1)
	m.OnPointerUp(g.Segment.P1)
}
