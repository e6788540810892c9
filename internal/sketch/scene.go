package sketch

import "github.com/vovakirdan/tui-sketch/internal/geom"

// Scene holds the shapes of one drawing session.
// Renderers read it through the accessors; only Machine mutates it.
type Scene struct {
	state GestureState

	circle    geom.Circle
	hasCircle bool

	segment    geom.Segment
	hasSegment bool

	intersection    geom.Intersection
	hasIntersection bool

	// Drag anchor: circle center or segment start while pending.
	anchor geom.Point

	// Live preview while pending.
	previewRadius float64
	previewEnd    geom.Point
	hasPreview    bool
}

// State returns the current gesture state.
func (s *Scene) State() GestureState {
	return s.state
}

// Circle returns the committed circle.
func (s *Scene) Circle() (geom.Circle, bool) {
	return s.circle, s.hasCircle
}

// Segment returns the committed segment.
func (s *Scene) Segment() (geom.Segment, bool) {
	return s.segment, s.hasSegment
}

// Intersection returns the points computed when the segment was committed.
// The bool is false until then; a committed but empty result returns true.
func (s *Scene) Intersection() (geom.Intersection, bool) {
	return s.intersection, s.hasIntersection
}

// PreviewCircle returns the circle being dragged in CirclePending.
// It is absent until the first move after the press.
func (s *Scene) PreviewCircle() (geom.Circle, bool) {
	if s.state != CirclePending || !s.hasPreview {
		return geom.Circle{}, false
	}
	return geom.Circle{Center: s.anchor, Radius: s.previewRadius}, true
}

// PreviewSegment returns the segment being dragged in SegmentPending.
// It is absent until the first move after the press.
func (s *Scene) PreviewSegment() (geom.Segment, bool) {
	if s.state != SegmentPending || !s.hasPreview {
		return geom.Segment{}, false
	}
	return geom.Segment{P0: s.anchor, P1: s.previewEnd}, true
}

// Anchor returns the pressed point while a drag is pending.
func (s *Scene) Anchor() (geom.Point, bool) {
	if !s.state.Pending() {
		return geom.Point{}, false
	}
	return s.anchor, true
}

// clearPreview drops drag-only values.
func (s *Scene) clearPreview() {
	s.anchor = geom.Point{}
	s.previewRadius = 0
	s.previewEnd = geom.Point{}
	s.hasPreview = false
}

// reset returns the scene to an empty Idle session.
func (s *Scene) reset() {
	*s = Scene{}
}
