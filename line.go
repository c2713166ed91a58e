package valley

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// IsDegenerate reports whether the line has zero length.
func (l Line) IsDegenerate() bool {
	return l.P0 == l.P1
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

// BoundingBox returns the smallest rectangle enclosing both end points.
func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Eval returns the point at parameter t ∈ [0, 1].
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the closest point on the
// line, and the parameter of that closest point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0 || dSquared == 0 {
		return pt.Sub(l.P0).Hypot2(), 0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Angle returns the direction of the line in radians, as per [Vec2.Angle].
func (l Line) Angle() float64 {
	if l.IsDegenerate() {
		return 0
	}
	return math.Atan2(l.P1.Y-l.P0.Y, l.P1.X-l.P0.X)
}
