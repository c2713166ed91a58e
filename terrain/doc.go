/*
Package terrain holds the user-editable control points of the sandbox and turns
them into static terrain colliders.

A Set is an ordered list of control points. Points are only ever appended and
moved, never deleted. Any mutation marks the set dirty. RebuildIfDirty evaluates
the B-spline through the points (see [valley.BSpline]) and replaces the terrain
colliders in the physics world with one line segment per pair of consecutive
curve samples. All old segments are removed before any new one is inserted, so
the world never holds a mix of old and new terrain.

Selection follows the pointer: a point under the pointer is moused over, and a
point that was moused over when the pointer goes down becomes selected and
follows the pointer until it is released. At most one point is selected at a
time.

A Set is not safe for concurrent use.
*/
package terrain

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'valley.terrain'.
func tracer() tracing.Trace {
	return tracing.Select("valley.terrain")
}
