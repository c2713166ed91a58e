package valley

import (
	"iter"
	"math"
)

// Polyline is an ordered sequence of points joined by straight lines. It is the
// sampled form of a curve, as produced by [BSpline.Sample].
type Polyline []Point

// Len returns the number of points.
func (pl Polyline) Len() int {
	return len(pl)
}

// NumSegments returns the number of lines joining consecutive points.
func (pl Polyline) NumSegments() int {
	return max(len(pl)-1, 0)
}

// Segments returns an iterator over the lines joining consecutive points.
// Coincident points yield zero-length lines; they are not skipped.
func (pl Polyline) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pl); i++ {
			if !yield(Line{pl[i-1], pl[i]}) {
				return
			}
		}
	}
}

// Length returns the total length of all segments.
func (pl Polyline) Length() float64 {
	var total float64
	for l := range pl.Segments() {
		total += l.Length()
	}
	return total
}

// BoundingBox returns the smallest rectangle enclosing all points. It returns
// the zero Rect for an empty polyline.
func (pl Polyline) BoundingBox() Rect {
	if len(pl) == 0 {
		return Rect{}
	}
	r := Rect{pl[0].X, pl[0].Y, pl[0].X, pl[0].Y}
	for _, pt := range pl[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Nearest returns the point on the polyline closest to pt and its distance.
// For an empty polyline the distance is +Inf.
func (pl Polyline) Nearest(pt Point) (Point, float64) {
	switch len(pl) {
	case 0:
		return Point{}, math.Inf(1)
	case 1:
		return pl[0], pt.Distance(pl[0])
	}
	best := pl[0]
	bestSq := math.Inf(1)
	for l := range pl.Segments() {
		distSq, t := l.Nearest(pt)
		if distSq < bestSq {
			bestSq = distSq
			best = l.Eval(t)
		}
	}
	return best, math.Sqrt(bestSq)
}

// Clearance returns the distance from pt to the polyline, signed by the side of
// the nearest segment pt lies on. In y-down coordinates, a point above a
// polyline that runs left to right has positive clearance. Zero-length segments
// are ignored. It returns +Inf if the polyline has no segment of positive
// length.
func (pl Polyline) Clearance(pt Point) float64 {
	bestSq := math.Inf(1)
	var side float64
	for l := range pl.Segments() {
		if l.IsDegenerate() {
			continue
		}
		distSq, _ := l.Nearest(pt)
		if distSq < bestSq {
			bestSq = distSq
			dir := l.P1.Sub(l.P0).Normalize()
			side = -dir.Cross(pt.Sub(l.P0))
		}
	}
	if math.IsInf(bestSq, 1) {
		return bestSq
	}
	d := math.Sqrt(bestSq)
	if side < 0 {
		return -d
	}
	return d
}

// First returns the first point. It panics on an empty polyline.
func (pl Polyline) First() Point {
	return pl[0]
}

// Last returns the last point. It panics on an empty polyline.
func (pl Polyline) Last() Point {
	return pl[len(pl)-1]
}

// Clone returns a copy of pl that doesn't share storage with it.
func (pl Polyline) Clone() Polyline {
	if pl == nil {
		return nil
	}
	out := make(Polyline, len(pl))
	copy(out, pl)
	return out
}
