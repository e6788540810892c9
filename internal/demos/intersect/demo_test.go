package intersect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/sketch"
)

// 80x25 leaves a 48x24 canvas at column 16 with the origin at (40, 12).
func newTestDemo(t *testing.T) *Demo {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	d := New()
	d.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60})
	return d
}

func pointer(d *Demo, kind core.PointerKind, col, row int) bool {
	return d.HandlePointer(core.PointerEvent{Kind: kind, Col: col, Row: row})
}

func drawScene(d *Demo) {
	pointer(d, core.PointerDown, 40, 12)
	pointer(d, core.PointerMove, 52, 12)
	pointer(d, core.PointerUp, 52, 12)

	pointer(d, core.PointerDown, 16, 12)
	pointer(d, core.PointerMove, 63, 12)
	pointer(d, core.PointerUp, 63, 12)
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("intersect") {
		t.Fatal("intersect demo should be registered")
	}
	var d registry.Demo = New()
	if _, ok := d.(registry.PointerHandler); !ok {
		t.Error("demo should accept pointer input")
	}
	if _, ok := d.(registry.Exporter); !ok {
		t.Error("demo should export PNGs")
	}
}

func TestDrawCircleAndSegment(t *testing.T) {
	d := newTestDemo(t)
	drawScene(d)

	if got := d.Scene().State(); got != sketch.SegmentCommitted {
		t.Fatalf("state = %v, want SegmentCommitted", got)
	}

	c, ok := d.Scene().Circle()
	if !ok {
		t.Fatal("circle should be committed")
	}
	if c.Radius < 0.49 || c.Radius > 0.51 {
		t.Errorf("radius = %v, want 0.5", c.Radius)
	}

	in, ok := d.Scene().Intersection()
	if !ok || in.Count() != 2 {
		t.Fatalf("intersection = %v, want 2 points", in)
	}

	st := d.State()
	if st.Shapes != 2 || st.Intersections != 2 {
		t.Errorf("state = %+v, want 2 shapes and 2 intersections", st)
	}
	if !strings.HasPrefix(d.Overlay().Line(sketch.SlotIntersection), "Intersection Points: 2") {
		t.Errorf("overlay = %q", d.Overlay().Line(sketch.SlotIntersection))
	}
}

func TestPressOutsideCanvasIgnored(t *testing.T) {
	d := newTestDemo(t)

	if pointer(d, core.PointerDown, 5, 12) {
		t.Error("press left of the canvas should be ignored")
	}
	if d.Scene().State() != sketch.Idle {
		t.Errorf("state = %v, want Idle", d.Scene().State())
	}
	if pointer(d, core.PointerUp, 5, 12) {
		t.Error("release without press should be ignored")
	}
}

func TestResetClearsDrawing(t *testing.T) {
	tests := []struct {
		name  string
		reset func(d *Demo)
	}{
		{"right click", func(d *Demo) { pointer(d, core.PointerCancel, 0, 0) }},
		{"reset key", func(d *Demo) {
			in := core.NewInputFrame()
			in.Set(core.ActionReset)
			d.Step(in)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDemo(t)
			drawScene(d)
			tt.reset(d)

			if d.Scene().State() != sketch.Idle {
				t.Errorf("state = %v, want Idle", d.Scene().State())
			}
			if _, ok := d.Scene().Circle(); ok {
				t.Error("circle should be cleared")
			}
			if lines := d.Overlay().Lines(); len(lines) != 0 {
				t.Errorf("overlay = %v, want empty", lines)
			}
			// Counters cover the whole session.
			if d.State().Shapes != 2 {
				t.Errorf("shapes = %d, want 2", d.State().Shapes)
			}
		})
	}
}

func TestRender(t *testing.T) {
	d := newTestDemo(t)
	screen := core.NewScreen(80, 25)

	d.Render(screen)
	if got := screen.Get(40, 12); got != OriginChar {
		t.Errorf("origin = %q, want %q", got, OriginChar)
	}
	if got := screen.GetCell(30, 12); got.Rune != AxisXChar || got.Color != core.ColorRed {
		t.Errorf("x axis cell = %+v", got)
	}

	drawScene(d)
	d.Render(screen)

	out := screen.String()
	for _, ch := range []rune{CircleChar, SegmentChar, PointChar} {
		if !strings.ContainsRune(out, ch) {
			t.Errorf("render is missing %q", ch)
		}
	}
	if !strings.Contains(screen.Row(0), "Circle: center") {
		t.Errorf("first overlay row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(24), sketch.SegmentCommitted.Hint()) {
		t.Errorf("footer = %q", screen.Row(24))
	}
}

func TestPreviewIsGray(t *testing.T) {
	d := newTestDemo(t)
	pointer(d, core.PointerDown, 40, 12)
	pointer(d, core.PointerMove, 52, 12)

	screen := core.NewScreen(80, 25)
	d.Render(screen)

	found := false
	for col := 0; col < 80 && !found; col++ {
		for row := 0; row < 24; row++ {
			if c := screen.GetCell(col, row); c.Rune == CircleChar {
				if c.Color != core.ColorGray {
					t.Fatalf("preview cell color = %v, want gray", c.Color)
				}
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("preview circle not drawn")
	}
}

func TestResizeKeepsDrawing(t *testing.T) {
	d := newTestDemo(t)
	drawScene(d)
	d.Resize(120, 41)

	if d.Scene().State() != sketch.SegmentCommitted {
		t.Errorf("state = %v after resize", d.Scene().State())
	}
	if d.renderer.vp.Rows != 40 {
		t.Errorf("viewport rows = %d, want 40", d.renderer.vp.Rows)
	}
}

func TestExportPNG(t *testing.T) {
	d := newTestDemo(t)
	drawScene(d)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := d.ExportPNG(path, 64); err != nil {
		t.Fatalf("ExportPNG() error: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func TestOverlayIgnoresUnknownSlots(t *testing.T) {
	var o Overlay
	o.Show("x", 0)
	o.Show("y", 4)
	if len(o.Lines()) != 0 {
		t.Errorf("lines = %v, want none", o.Lines())
	}
	o.Show("b", 2)
	if o.Line(2) != "b" || len(o.Lines()) != 1 {
		t.Errorf("slot 2 = %q, lines = %v", o.Line(2), o.Lines())
	}
}
