// Package sketch implements the circle/segment drawing tool: the scene model
// that holds the committed shapes and their intersection, and the gesture
// state machine that turns pointer events into those shapes.
//
// Rendering and text display are collaborators behind the Renderer and
// TextDisplay interfaces, so the whole tool can be driven from tests.
package sketch

// GestureState is the progress of a drawing session.
type GestureState int

const (
	Idle             GestureState = iota // Nothing drawn yet
	CirclePending                        // Center placed, radius being dragged
	CircleCommitted                      // Circle done, waiting for the segment
	SegmentPending                       // First endpoint placed, dragging
	SegmentCommitted                     // Segment done, intersection computed
)

// String returns a human-readable name for the state.
func (s GestureState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case CirclePending:
		return "CirclePending"
	case CircleCommitted:
		return "CircleCommitted"
	case SegmentPending:
		return "SegmentPending"
	case SegmentCommitted:
		return "SegmentCommitted"
	default:
		return "Unknown"
	}
}

// Legacy returns the 0..4 drawing counter this state corresponds to.
func (s GestureState) Legacy() int {
	return int(s)
}

// Pending reports whether a drag is in progress.
func (s GestureState) Pending() bool {
	return s == CirclePending || s == SegmentPending
}

// Hint returns the instruction shown to the user in this state.
func (s GestureState) Hint() string {
	switch s {
	case Idle:
		return "Press to place the circle center"
	case CirclePending:
		return "Drag and release to set the radius"
	case CircleCommitted:
		return "Press to start the line segment"
	case SegmentPending:
		return "Drag and release to end the segment"
	case SegmentCommitted:
		return "Done. Press r or right-click to start over"
	default:
		return ""
	}
}
