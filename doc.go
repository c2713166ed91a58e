// Package valley provides the geometry behind an interactive terrain sandbox: a
// user places control points, a smooth curve is fitted through them, the curve
// becomes static collision geometry, and a two-wheeled vehicle rolls over it.
//
// This package holds the pure parts: 2D primitives and the curve evaluator. The
// sub-packages add the physics world ([honnef.co/go/valley/physics]), the
// editable control points and their terrain ([honnef.co/go/valley/terrain]), the
// vehicle ([honnef.co/go/valley/vehicle]), and the per-tick loop tying them
// together ([honnef.co/go/valley/sandbox]).
//
// # Primitives
//
// [Point] and [Vec2] distinguish positions from displacements. [Line], [Rect],
// [Circle] and [Size] are the shapes the sandbox needs: terrain segments,
// bounding boxes, control point hit areas and vehicle dimensions. [Affine]
// transforms points; the physics package uses it to map between the y-down
// scene and the y-up physics space.
//
// # B-splines
//
// [BSpline] evaluates a curve of a given degree through a control polygon with
// De Boor's algorithm, sampling it into a [Polyline]. The smoothness parameter
// is the number of samples per control point interval.
//
// The evaluation uses a specific interpolating-ends scheme: the first and last
// control points are repeated degree times and the knot vector is padded with
// degree copies of the value degree. The curve therefore starts exactly at the
// first control point and ends exactly at the last one, which is what users
// expect when dragging the end points around. Changing either the padding or
// the knots changes the shape of every curve.
//
// All functions in this package are free of side effects and safe to call
// concurrently.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [De Boor's algorithm]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [De Boor's algorithm]: https://en.wikipedia.org/wiki/De_Boor%27s_algorithm
package valley
