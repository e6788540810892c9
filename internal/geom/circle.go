package geom

import "math"

// DefaultCircleSegments is the polygon resolution used to draw circles.
const DefaultCircleSegments = 360

// Circle is a committed circle. A zero radius is a valid degenerate circle.
type Circle struct {
	Center Point
	Radius float64
}

// Segment is a line segment between two endpoints.
type Segment struct {
	P0, P1 Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return Distance(s.P0, s.P1)
}

// At returns the point P0 + t*(P1-P0).
func (s Segment) At(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}

// Samples returns the closed sample polygon of c. See SampleCircle.
func (c Circle) Samples(segments int) []Point {
	return SampleCircle(c.Center, c.Radius, segments)
}

// SampleCircle returns segments+1 points evenly spaced by angle around the
// circle, starting and ending at angle 0 so the polygon is closed.
// Returns nil when segments is not positive.
func SampleCircle(center Point, radius float64, segments int) []Point {
	if segments <= 0 {
		return nil
	}

	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		points = append(points, Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		})
	}
	return points
}
