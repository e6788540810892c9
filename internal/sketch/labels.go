package sketch

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sketch/internal/geom"
)

// Overlay slots used by the status text.
const (
	SlotCircle       = 1
	SlotSegment      = 2
	SlotIntersection = 3
)

// CircleLabel formats the committed circle status line.
func CircleLabel(c geom.Circle) string {
	return fmt.Sprintf("Circle: center (%.2f, %.2f) radius = %.2f",
		c.Center.X, c.Center.Y, c.Radius)
}

// SegmentLabel formats the committed segment status line.
func SegmentLabel(s geom.Segment) string {
	return fmt.Sprintf("Line segment: (%.2f, %.2f) ~ (%.2f, %.2f)",
		s.P0.X, s.P0.Y, s.P1.X, s.P1.Y)
}

// IntersectionLabel formats the intersection status line.
func IntersectionLabel(in geom.Intersection) string {
	if in.Empty() {
		return "No intersection"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Intersection Points: %d", len(in))
	for i, p := range in {
		fmt.Fprintf(&b, " Point %d: (%.2f, %.2f)", i+1, p.X, p.Y)
	}
	return b.String()
}
