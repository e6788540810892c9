package intersect

import "github.com/vovakirdan/tui-sketch/internal/sketch"

// Overlay keeps the three status lines shown over the canvas.
// It implements sketch.TextDisplay.
type Overlay struct {
	lines [3]string
}

// Show replaces the text in slot. Unknown slots are ignored.
func (o *Overlay) Show(label string, slot int) {
	if slot < sketch.SlotCircle || slot > sketch.SlotIntersection {
		return
	}
	o.lines[slot-1] = label
}

// Line returns the text in slot, or "" for unknown slots.
func (o *Overlay) Line(slot int) string {
	if slot < sketch.SlotCircle || slot > sketch.SlotIntersection {
		return ""
	}
	return o.lines[slot-1]
}

// Lines returns the non-empty lines in slot order.
func (o *Overlay) Lines() []string {
	out := make([]string, 0, len(o.lines))
	for _, l := range o.lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
