package geom

import "math"

// DegenerateEpsilon is the smallest squared segment length treated as a real
// segment. Shorter segments have no direction and never intersect.
const DegenerateEpsilon = 1e-12

// tangentTolerance is the relative size under which a discriminant counts as
// zero, so tangents computed in floating point still report one point.
const tangentTolerance = 1e-12

// Intersection is the ordered result of a circle/segment intersection.
// It holds 0, 1 or 2 points.
type Intersection []Point

// Count returns the number of intersection points.
func (in Intersection) Count() int {
	return len(in)
}

// Empty reports whether there are no intersection points.
func (in Intersection) Empty() bool {
	return len(in) == 0
}

// IntersectCircleSegment returns the points where seg crosses or touches c.
//
// The segment is parametrized as P(t) = P0 + t*(P1-P0) and substituted into
// the circle equation, giving A*t^2 + B*t + C = 0. Roots outside [0, 1] are
// dropped. With two roots the "+sqrt" root is reported first; callers must not
// assume any spatial ordering.
func IntersectCircleSegment(c Circle, seg Segment) Intersection {
	dx := seg.P1.X - seg.P0.X
	dy := seg.P1.Y - seg.P0.Y
	fx := seg.P0.X - c.Center.X
	fy := seg.P0.Y - c.Center.Y

	a := dx*dx + dy*dy
	if a < DegenerateEpsilon {
		return nil
	}
	b := 2 * (dx*fx + dy*fy)
	cc := fx*fx + fy*fy - c.Radius*c.Radius

	disc := b*b - 4*a*cc
	scale := math.Max(b*b, math.Abs(4*a*cc))

	var out Intersection
	switch {
	case math.Abs(disc) <= tangentTolerance*scale:
		if t := -b / (2 * a); inUnit(t) {
			out = append(out, seg.At(t))
		}
	case disc < 0:
		return nil
	default:
		sq := math.Sqrt(disc)
		if t1 := (-b + sq) / (2 * a); inUnit(t1) {
			out = append(out, seg.At(t1))
		}
		if t2 := (-b - sq) / (2 * a); inUnit(t2) {
			out = append(out, seg.At(t2))
		}
	}
	return out
}

// inUnit reports whether t lies in the closed interval [0, 1].
func inUnit(t float64) bool {
	return t >= 0 && t <= 1
}
