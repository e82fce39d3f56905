// Package steps lets callers watch the elementary operations an algorithm
// performs, so that its complexity class shows up as a number instead of a
// claim.
//
// What
//
//   - Tracer: a single-method hook, Step(op, n), invoked by every algorithm
//     package in this module when WithTracer is supplied.
//   - Counter: an atomic tally per Op, safe to share between goroutines.
//   - NewLogger: a Tracer that emits each step as a zap Debug entry.
//   - Multi: fan-out to several tracers at once.
//
// Operation kinds
//
//   - Probe:   one midpoint inspection of a binary search.
//   - Compare: one element-to-element (or element-to-target) comparison.
//   - Move:    one element written to an output buffer during a merge.
//   - Emit:    one item yielded by a lazy enumerator.
//
// Usage
//
//	var c steps.Counter
//	idx, err := search.Binary(xs, 42, search.WithTracer(&c))
//	fmt.Println(idx, c.Load(steps.Probe)) // ~log2(len(xs)) probes
//
// Algorithms never log on their own. A Tracer that writes somewhere does so
// only because the caller wired it in.
package steps
