package valley

import (
	"fmt"
	"iter"
	"math"
)

// BSpline is the control polygon of a B-spline curve. The order of the points
// is the parameter order of the curve.
//
// The curve is evaluated with an interpolating-ends variant of the open uniform
// B-spline: the first and last control points are each repeated degree times
// (see [BSpline.Pad]) and the knot vector starts with degree copies of the value
// degree (see [Knots]). As a consequence, the curve passes exactly through the
// first and last control point, while all other control points only shape it.
type BSpline []Point

// checkSpline panics if the curve can't be evaluated. These are programmer
// errors, not runtime conditions.
func checkSpline(n, degree, smoothness int) {
	if n < 2 {
		panic(fmt.Sprintf("B-spline needs at least 2 control points, got %d", n))
	}
	if degree < 1 {
		panic(fmt.Sprintf("invalid B-spline degree %d", degree))
	}
	if smoothness < 1 {
		panic(fmt.Sprintf("invalid B-spline smoothness %d", smoothness))
	}
}

// Pad returns the control points with the first point repeated degree times at
// the front and the last point repeated degree times at the back. The result has
// len(b) + 2·degree points.
func (b BSpline) Pad(degree int) []Point {
	n := len(b)
	out := make([]Point, 0, n+2*degree)
	for range degree {
		out = append(out, b[0])
	}
	out = append(out, b...)
	for range degree {
		out = append(out, b[n-1])
	}
	return out
}

// Knots returns the knot vector for padded control points and the given degree:
// degree copies of the value degree, followed by one knot per padded point with
// the value degree + i. The result has padded + degree elements.
//
// Consecutive knots from index degree onwards differ by exactly one, which keeps
// every blending denominator at or above one.
func Knots(padded, degree int) []float64 {
	knots := make([]float64, padded+degree)
	for i := range degree {
		knots[i] = float64(degree)
	}
	for i := range padded {
		knots[degree+i] = float64(degree + i)
	}
	return knots
}

// SampleCount returns the number of points produced by [BSpline.Sample] for n
// control points.
func SampleCount(n, degree, smoothness int) int {
	return (n+degree)*smoothness + 1
}

// Domain returns the parameter range [lo, hi] of the curve for the given degree.
func (b BSpline) Domain(degree int) (lo, hi float64) {
	return float64(degree), float64(len(b) + 2*degree)
}

// Eval evaluates the curve at parameter t. t is clamped to [BSpline.Domain].
//
// Eval pads the control points and builds the knot vector on every call; use
// [BSpline.Samples] to evaluate many parameters.
func (b BSpline) Eval(t float64, degree int) Point {
	checkSpline(len(b), degree, 1)
	lo, hi := b.Domain(degree)
	t = min(max(t, lo), hi)
	pts := b.Pad(degree)
	return deBoor(pts, Knots(len(pts), degree), degree, t, make([]Point, degree+1))
}

// Samples returns an iterator over the curve evaluated at t = degree + k/smoothness,
// for k = 0 up to and including the end of the domain. It yields
// [SampleCount](len(b), degree, smoothness) points.
//
// Samples panics if b has fewer than two points, or if degree or smoothness are
// not positive. A degree larger than the number of points is allowed.
func (b BSpline) Samples(degree, smoothness int) iter.Seq[Point] {
	checkSpline(len(b), degree, smoothness)
	return func(yield func(Point) bool) {
		pts := b.Pad(degree)
		knots := Knots(len(pts), degree)
		tmp := make([]Point, degree+1)
		steps := (len(pts) - degree) * smoothness
		for k := 0; k <= steps; k++ {
			// Computed from k rather than accumulated, so that the number of
			// samples doesn't depend on rounding.
			t := float64(degree) + float64(k)/float64(smoothness)
			if !yield(deBoor(pts, knots, degree, t, tmp)) {
				return
			}
		}
	}
}

// Sample evaluates the curve like [BSpline.Samples] and collects the points.
func (b BSpline) Sample(degree, smoothness int) Polyline {
	out := make(Polyline, 0, SampleCount(len(b), degree, smoothness))
	for pt := range b.Samples(degree, smoothness) {
		out = append(out, pt)
	}
	return out
}

// deBoor computes the point at t by blending the padded control points level by
// level. tmp must have room for degree+1 points; row k of the triangular table
// holds the blend for control point i−degree+k.
//
// At level d, point j is (1−α)·P(j−1, d−1) + α·P(j, d−1) with
// α = (t − knots[j]) / (knots[j+1+degree−d] − knots[j]).
func deBoor(pts []Point, knots []float64, degree int, t float64, tmp []Point) Point {
	i := int(math.Floor(t))
	// t at the very end of the domain would select a span past the last point.
	i = min(max(i, degree), len(pts)-1)

	for k := 0; k <= degree; k++ {
		tmp[k] = pts[i-degree+k]
	}
	for level := 1; level <= degree; level++ {
		// Descending, so that tmp[k-1] still holds the previous level.
		for k := degree; k >= level; k-- {
			j := i - degree + k
			lo := knots[j]
			alpha := (t - lo) / (knots[j+1+degree-level] - lo)
			tmp[k] = tmp[k-1].Blend(tmp[k], alpha)
		}
	}
	return tmp[degree]
}
