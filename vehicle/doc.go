// Package vehicle spawns the sandbox's car, a single dynamic body made of a
// chassis box and two wheel circles, and reads its state back for drawing.
package vehicle

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'valley.vehicle'.
func tracer() tracing.Trace {
	return tracing.Select("valley.vehicle")
}
