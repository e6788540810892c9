package export

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-sketch/internal/geom"
	"github.com/vovakirdan/tui-sketch/internal/sketch"
)

type labels map[int]string

func (l labels) Show(label string, slot int) {
	l[slot] = label
}

func TestReplayDrivesMachine(t *testing.T) {
	text := labels{}
	m := sketch.NewMachine(nil, text)

	Replay(m, Gestures{
		Circle:  geom.Circle{Center: geom.Pt(0, 0), Radius: 1},
		Segment: geom.Segment{P0: geom.Pt(-2, 0), P1: geom.Pt(2, 0)},
	})

	if m.State() != sketch.SegmentCommitted {
		t.Fatalf("state = %v, want SegmentCommitted", m.State())
	}
	want := "Intersection Points: 2 Point 1: (1.00, 0.00) Point 2: (-1.00, 0.00)"
	if text[sketch.SlotIntersection] != want {
		t.Errorf("label = %q, want %q", text[sketch.SlotIntersection], want)
	}
}

func TestReplayRadius(t *testing.T) {
	tests := []struct {
		name   string
		circle geom.Circle
	}{
		{"origin", geom.Circle{Center: geom.Pt(0, 0), Radius: 0.5}},
		{"offset center", geom.Circle{Center: geom.Pt(0.1, 0), Radius: 0.2}},
		{"negative center", geom.Circle{Center: geom.Pt(-0.7, 0.3), Radius: 0.15}},
		{"zero radius", geom.Circle{Center: geom.Pt(0.25, -0.25), Radius: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := sketch.NewMachine(nil, nil)
			Replay(m, Gestures{
				Circle:  tc.circle,
				Segment: geom.Segment{P0: geom.Pt(-1, -1), P1: geom.Pt(1, 1)},
			})

			got, ok := m.Scene().Circle()
			if !ok {
				t.Fatal("circle was not committed")
			}
			if got.Center != tc.circle.Center {
				t.Errorf("center = %v, want %v", got.Center, tc.circle.Center)
			}
			if math.Abs(got.Radius-tc.circle.Radius) > 1e-15 {
				t.Errorf("radius = %v, want %v", got.Radius, tc.circle.Radius)
			}
		})
	}
}

func TestPNGRendererSave(t *testing.T) {
	const size = 200
	r := NewPNGRenderer(size, DefaultOptions())
	defer r.Close()

	m := sketch.NewMachine(r, nil)
	Replay(m, Gestures{
		Circle:  geom.Circle{Center: geom.Pt(0, 0), Radius: 0.5},
		Segment: geom.Segment{P0: geom.Pt(-1, 0.5), P1: geom.Pt(1, 0.5)},
	})

	path := filepath.Join(t.TempDir(), "scene.png")
	if err := r.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		t.Fatalf("bounds = %v, want %dx%d", b, size, size)
	}

	// Corner pixel keeps the background.
	cr, cg, cb, _ := img.At(2, 2).RGBA()
	if !near(cr>>8, 26) || !near(cg>>8, 51) || !near(cb>>8, 77) {
		t.Errorf("background = (%d, %d, %d), want about (26, 51, 77)", cr>>8, cg>>8, cb>>8)
	}

	// The tangent point (0, 0.5) is drawn as a yellow dot.
	yr, yg, yb, _ := img.At(size/2, size/4).RGBA()
	if yr>>8 < 200 || yg>>8 < 200 || yb>>8 > 100 {
		t.Errorf("tangent point color = (%d, %d, %d), want yellow", yr>>8, yg>>8, yb>>8)
	}
}

func TestNewPNGRendererDefaults(t *testing.T) {
	r := NewPNGRenderer(0, Options{})
	defer r.Close()

	if b := r.Image().Bounds(); b.Dx() != DefaultSize {
		t.Errorf("width = %d, want %d", b.Dx(), DefaultSize)
	}
}

func near(got, want uint32) bool {
	d := int(got) - int(want)
	return d >= -3 && d <= 3
}
