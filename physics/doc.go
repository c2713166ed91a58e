/*
Package physics is the sandbox's boundary to the rigid-body engine.

The engine itself, collision detection and the constraint solver, is Chipmunk2D
as ported by github.com/jakecoffman/cp. This package only exposes the handful of
operations the sandbox needs: adding and removing static line colliders, adding
a dynamic body with circle and box colliders, stepping the world, and reading a
body's state back.

Callers work in scene coordinates, which are y-down like the window. The physics
space is y-up, so that gravity pulls towards negative y as Chipmunk expects.
World converts between the two with a pair of [valley.Affine] transforms.

The World is not safe for concurrent use. Colliders must not be added or removed
while Step runs; the sandbox guarantees this by doing all terrain mutation for a
tick before stepping.
*/
package physics

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'valley.physics'.
func tracer() tracing.Trace {
	return tracing.Select("valley.physics")
}
