package intersect

import (
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/geom"
	"github.com/vovakirdan/tui-sketch/internal/sketch"
)

// Visual characters for rendering
const (
	AxisXChar   = '─'
	AxisYChar   = '│'
	OriginChar  = '┼'
	CircleChar  = '•'
	SegmentChar = '█'
	PointChar   = '◆'
	AnchorChar  = '+'
)

// cellRenderer rasterizes a scene into a character layer.
type cellRenderer struct {
	layer    *core.Screen
	vp       geom.Viewport
	segments int
	axes     float64 // Half-length of the axes; 0 hides them
	redraws  int
}

func newCellRenderer(segments int, axes float64) *cellRenderer {
	return &cellRenderer{
		layer:    core.NewScreen(1, 1),
		segments: segments,
		axes:     axes,
	}
}

// resize fits the layer and viewport to a width x height canvas.
func (r *cellRenderer) resize(width, height int) {
	r.layer.Resize(width, height)
	r.vp = geom.NewViewport(0, 0, width, height)
}

// Redraw implements sketch.Renderer.
func (r *cellRenderer) Redraw(scene *sketch.Scene) {
	r.redraws++
	r.layer.Clear()

	if r.axes > 0 {
		l := r.axes
		r.line(geom.Pt(-l, 0), geom.Pt(l, 0), AxisXChar, core.ColorRed)
		r.line(geom.Pt(0, -l), geom.Pt(0, l), AxisYChar, core.ColorGreen)
		col, row := r.vp.ToCell(geom.Pt(0, 0))
		r.layer.SetColored(col, row, OriginChar, core.ColorSlate)
	}

	if c, ok := scene.Circle(); ok {
		r.polyline(c.Samples(r.segments), CircleChar, core.ColorMagenta)
	}
	if c, ok := scene.PreviewCircle(); ok {
		r.polyline(c.Samples(r.segments), CircleChar, core.ColorGray)
	}

	if s, ok := scene.Segment(); ok {
		r.line(s.P0, s.P1, SegmentChar, core.ColorBlue)
	}
	if s, ok := scene.PreviewSegment(); ok {
		r.line(s.P0, s.P1, SegmentChar, core.ColorGray)
	}

	if p, ok := scene.Anchor(); ok {
		r.point(p, AnchorChar, core.ColorWhite)
	}

	if in, ok := scene.Intersection(); ok {
		for _, p := range in {
			r.point(p, PointChar, core.ColorYellow)
		}
	}
}

func (r *cellRenderer) point(p geom.Point, ch rune, c core.Color) {
	col, row := r.vp.ToCell(p)
	r.layer.SetColored(col, row, ch, c)
}

func (r *cellRenderer) line(a, b geom.Point, ch rune, c core.Color) {
	c0, r0 := r.vp.ToCell(a)
	c1, r1 := r.vp.ToCell(b)
	r.layer.DrawLine(c0, r0, c1, r1, ch, c)
}

// polyline joins consecutive samples with Bresenham lines.
func (r *cellRenderer) polyline(pts []geom.Point, ch rune, c core.Color) {
	if len(pts) == 1 {
		r.point(pts[0], ch, c)
		return
	}
	for i := 1; i < len(pts); i++ {
		r.line(pts[i-1], pts[i], ch, c)
	}
}
