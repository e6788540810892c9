// Package intersect implements the circle/segment intersection demo.
//
// The mouse draws a circle (press at the center, drag out the radius,
// release) and then a line segment (press, drag, release). Once the segment
// is committed the intersection points are computed and shown.
package intersect

import (
	"strings"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/export"
	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/sketch"
)

const helpLine = "Mouse: drag circle, then segment  R/right-click: reset  B: menu  Q: quit"

func init() {
	registry.Register("intersect", func() registry.Demo { return New() })
}

// Demo wires the gesture machine to a terminal cell renderer.
type Demo struct {
	cfg      config.IntersectConfig
	runtime  core.RuntimeConfig
	machine  *sketch.Machine
	overlay  *Overlay
	renderer *cellRenderer
	loadErr  error

	// Session counters
	shapes        int
	intersections int
}

// New creates a new intersection demo with default settings.
func New() *Demo {
	d := &Demo{cfg: config.DefaultIntersectConfig()}
	d.build()
	return d
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "intersect"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Circle & Segment Intersection"
}

// Reset loads the configuration and starts an empty drawing.
func (d *Demo) Reset(rc core.RuntimeConfig) {
	d.runtime = rc
	d.cfg, d.loadErr = config.LoadIntersect(rc.ConfigPath)
	d.shapes = 0
	d.intersections = 0
	d.build()
	d.Resize(rc.ScreenW, rc.ScreenH)
}

func (d *Demo) build() {
	axes := 0.0
	if d.cfg.ShowAxes {
		axes = d.cfg.AxesLength
	}
	d.overlay = &Overlay{}
	d.renderer = newCellRenderer(d.cfg.CircleSegments, axes)
	d.machine = sketch.NewMachine(d.renderer, d.overlay)
}

// Resize refits the canvas and repaints the current drawing.
func (d *Demo) Resize(width, height int) {
	d.runtime.ScreenW = width
	d.runtime.ScreenH = height

	// Last row is the footer.
	d.renderer.resize(width, max(height-1, 1))
	d.renderer.Redraw(d.machine.Scene())
}

// Scene returns the drawing being edited.
func (d *Demo) Scene() *sketch.Scene {
	return d.machine.Scene()
}

// Overlay returns the status lines.
func (d *Demo) Overlay() *Overlay {
	return d.overlay
}

// Step handles keyboard actions; drawing happens in HandlePointer.
func (d *Demo) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		d.machine.Reset()
	}
	return core.StepResult{State: d.State()}
}

// HandlePointer converts the event's cell to NDC and forwards it to the
// gesture machine. Presses outside the canvas are ignored; drags may leave
// it. A cancel (right click) resets the drawing.
func (d *Demo) HandlePointer(ev core.PointerEvent) bool {
	vp := d.renderer.vp
	p := vp.ToNDC(ev.Col, ev.Row)

	switch ev.Kind {
	case core.PointerDown:
		if !vp.Contains(ev.Col, ev.Row) {
			return false
		}
		return d.machine.OnPointerDown(p)

	case core.PointerMove:
		return d.machine.OnPointerMove(p)

	case core.PointerUp:
		if !d.machine.OnPointerUp(p) {
			return false
		}
		d.shapes++
		if in, ok := d.machine.Scene().Intersection(); ok {
			d.intersections += in.Count()
		}
		return true

	case core.PointerCancel:
		d.machine.Reset()
		return true
	}
	return false
}

// State returns the session counters and the next step for the user.
func (d *Demo) State() core.DemoState {
	status := d.machine.State().Hint()
	if d.loadErr != nil {
		status += "  [config: " + d.loadErr.Error() + "]"
	}
	return core.DemoState{
		Shapes:        d.shapes,
		Intersections: d.intersections,
		Status:        status,
	}
}

// Render copies the rasterized scene and draws the overlay and footer.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()
	dst.Blit(d.renderer.layer, 0, 0)

	for i, line := range d.overlay.Lines() {
		dst.DrawTextColored(1, i, line, core.ColorWhite)
	}

	footer := d.State().Status
	if d.cfg.ShowHelp {
		footer += "   " + helpLine
	}
	dst.DrawTextColored(0, dst.Height()-1, strings.TrimSpace(footer), core.ColorGray)
}

// ExportPNG writes the current drawing as a size x size PNG.
func (d *Demo) ExportPNG(path string, size int) error {
	opts := export.DefaultOptions()
	opts.CircleSegments = d.cfg.CircleSegments
	opts.AxesLength = d.renderer.axes

	r := export.NewPNGRenderer(size, opts)
	defer r.Close()

	r.Redraw(d.machine.Scene())
	return r.Save(path)
}
