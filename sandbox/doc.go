/*
Package sandbox runs the sandbox's tick loop.

One call to Sandbox.Update is one tick. A tick performs, strictly in this order:

  - fold the tick's input events into the accumulated Input
  - mutate control points (add, select, drag) and spawn the vehicle on request
  - rebuild the terrain colliders if the control points changed
  - advance the physics world by one fixed time step
  - read the vehicle state back and assemble a Frame for drawing

All terrain mutation for a tick is complete before the physics step runs. A quit
request is honored at the start of a tick, before anything is mutated.

The loop is single-threaded. Update must not be called concurrently.
*/
package sandbox

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'valley.sandbox'.
func tracer() tracing.Trace {
	return tracing.Select("valley.sandbox")
}
