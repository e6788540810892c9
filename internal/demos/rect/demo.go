// Package rect implements the moving rectangle demo: a square that the
// player steers around the canvas with the arrow keys.
package rect

import (
	"fmt"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/geom"
	"github.com/vovakirdan/tui-sketch/internal/registry"
)

// Visual characters for rendering
const (
	FillChar = '█'
)

const helpLine = "Arrows/WASD: move  R: recenter  B: menu  Q: quit"

func init() {
	registry.Register("rect", func() registry.Demo { return New() })
}

// Demo implements the moving rectangle.
type Demo struct {
	cfg     config.RectConfig
	runtime core.RuntimeConfig
	pos     geom.Point // Center of the square in NDC
	moves   int
	loadErr error
}

// New creates a new rectangle demo with default settings.
func New() *Demo {
	return &Demo{cfg: config.DefaultRectConfig()}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "rect"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Moving Rectangle"
}

// Reset loads the configuration and puts the square back at its start.
func (d *Demo) Reset(rc core.RuntimeConfig) {
	d.runtime = rc
	d.cfg, d.loadErr = config.LoadRect(rc.ConfigPath)
	d.pos = geom.Pt(d.cfg.Start.X, d.cfg.Start.Y)
	d.moves = 0
}

// Resize keeps the square where it is; only the screen mapping changes.
func (d *Demo) Resize(width, height int) {
	d.runtime.ScreenW = width
	d.runtime.ScreenH = height
}

// Step applies every arrow press collected during the tick.
func (d *Demo) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		d.pos = geom.Pt(d.cfg.Start.X, d.cfg.Start.Y)
	}

	for i := 0; i < in.Count(core.ActionUp); i++ {
		d.move(0, d.cfg.Speed)
	}
	for i := 0; i < in.Count(core.ActionDown); i++ {
		d.move(0, -d.cfg.Speed)
	}
	for i := 0; i < in.Count(core.ActionLeft); i++ {
		d.move(-d.cfg.Speed, 0)
	}
	for i := 0; i < in.Count(core.ActionRight); i++ {
		d.move(d.cfg.Speed, 0)
	}

	return core.StepResult{State: d.State()}
}

// move shifts the square unless its center would leave the open interval
// (-1 + size/2, 1 - size/2) on the moved axis.
func (d *Demo) move(dx, dy float64) {
	limit := 1 - d.cfg.RectSize/2
	next := d.pos.Add(geom.Pt(dx, dy))

	if dx > 0 && !(next.X < limit) || dx < 0 && !(next.X > -limit) {
		return
	}
	if dy > 0 && !(next.Y < limit) || dy < 0 && !(next.Y > -limit) {
		return
	}

	d.pos = next
	d.moves++
}

// Position returns the center of the square.
func (d *Demo) Position() geom.Point {
	return d.pos
}

// Bounds returns the square's corners as (min, max) in NDC.
func (d *Demo) Bounds() (geom.Point, geom.Point) {
	h := d.cfg.RectSize / 2
	return d.pos.Sub(geom.Pt(h, h)), d.pos.Add(geom.Pt(h, h))
}

// State returns the movement counter and current position.
func (d *Demo) State() core.DemoState {
	status := fmt.Sprintf("Position: (%.2f, %.2f)", d.pos.X, d.pos.Y)
	if d.loadErr != nil {
		status += "  [config: " + d.loadErr.Error() + "]"
	}
	return core.DemoState{Moves: d.moves, Status: status}
}

// Render draws the square and the footer.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	vp := geom.NewViewport(0, 0, dst.Width(), dst.Height()-1)
	dst.DrawBox(core.NewRect(vp.X-1, vp.Y-1, vp.Cols+2, vp.Rows+2), core.ColorSlate)

	lo, hi := d.Bounds()
	// Nudge the max corner inward so an edge lying exactly on a cell border
	// does not claim the next cell.
	const nudge = 1e-9
	c0, r0 := vp.ToCell(geom.Pt(lo.X, hi.Y))
	c1, r1 := vp.ToCell(geom.Pt(hi.X-nudge, lo.Y+nudge))
	dst.DrawRect(core.RectFromCorners(c0, r0, c1, r1), FillChar, core.ColorRed)

	footer := d.State().Status + "   " + helpLine
	dst.DrawTextColored(0, dst.Height()-1, footer, core.ColorGray)
}
