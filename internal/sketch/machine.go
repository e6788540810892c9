package sketch

import "github.com/vovakirdan/tui-sketch/internal/geom"

// Renderer draws a scene. Redraw is called synchronously after every
// accepted mutation and must not modify the scene.
type Renderer interface {
	Redraw(scene *Scene)
}

// TextDisplay shows a status line in one of the overlay slots (1 to 3).
type TextDisplay interface {
	Show(label string, slot int)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(scene *Scene)

// Redraw calls f(scene).
func (f RendererFunc) Redraw(scene *Scene) {
	f(scene)
}

type nopRenderer struct{}

func (nopRenderer) Redraw(*Scene) {}

type nopText struct{}

func (nopText) Show(string, int) {}

// Machine converts pointer events into committed shapes.
//
// Events that do not apply to the current state are ignored: they return
// false, leave the scene untouched and do not trigger a redraw.
type Machine struct {
	scene    Scene
	renderer Renderer
	text     TextDisplay
}

// NewMachine creates a machine in the Idle state.
// A nil renderer or text display is replaced by a no-op.
func NewMachine(r Renderer, t TextDisplay) *Machine {
	if r == nil {
		r = nopRenderer{}
	}
	if t == nil {
		t = nopText{}
	}
	return &Machine{renderer: r, text: t}
}

// Scene returns the scene owned by the machine.
func (m *Machine) Scene() *Scene {
	return &m.scene
}

// State returns the current gesture state.
func (m *Machine) State() GestureState {
	return m.scene.state
}

// OnPointerDown anchors a new shape. Valid in Idle (circle center) and
// CircleCommitted (segment start).
func (m *Machine) OnPointerDown(p geom.Point) bool {
	switch m.scene.state {
	case Idle:
		m.scene.anchor = p
		m.scene.state = CirclePending
	case CircleCommitted:
		m.scene.anchor = p
		m.scene.state = SegmentPending
	default:
		return false
	}
	return true
}

// OnPointerMove updates the live preview while a drag is pending.
func (m *Machine) OnPointerMove(p geom.Point) bool {
	switch m.scene.state {
	case CirclePending:
		m.scene.previewRadius = geom.Distance(m.scene.anchor, p)
	case SegmentPending:
		m.scene.previewEnd = p
	default:
		return false
	}
	m.scene.hasPreview = true
	m.renderer.Redraw(&m.scene)
	return true
}

// OnPointerUp commits the shape being dragged. Committing the segment also
// computes its intersection with the circle.
func (m *Machine) OnPointerUp(p geom.Point) bool {
	switch m.scene.state {
	case CirclePending:
		m.scene.circle = geom.Circle{
			Center: m.scene.anchor,
			Radius: geom.Distance(m.scene.anchor, p),
		}
		m.scene.hasCircle = true
		m.scene.clearPreview()
		m.scene.state = CircleCommitted

		m.text.Show(CircleLabel(m.scene.circle), SlotCircle)

	case SegmentPending:
		m.scene.segment = geom.Segment{P0: m.scene.anchor, P1: p}
		m.scene.hasSegment = true
		m.scene.clearPreview()
		m.scene.state = SegmentCommitted

		m.scene.intersection = geom.IntersectCircleSegment(m.scene.circle, m.scene.segment)
		m.scene.hasIntersection = true

		m.text.Show(SegmentLabel(m.scene.segment), SlotSegment)
		m.text.Show(IntersectionLabel(m.scene.intersection), SlotIntersection)

	default:
		return false
	}
	m.renderer.Redraw(&m.scene)
	return true
}

// Reset discards the circle, segment and intersection together and returns
// to Idle so a new drawing can start.
func (m *Machine) Reset() {
	m.scene.reset()
	for _, slot := range []int{SlotCircle, SlotSegment, SlotIntersection} {
		m.text.Show("", slot)
	}
	m.renderer.Redraw(&m.scene)
}
