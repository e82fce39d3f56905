package mergesort

import (
	"errors"

	"github.com/katalvlaran/bigo/steps"
)

// ErrNilCompare indicates SortFunc received a nil comparator.
var ErrNilCompare = errors.New("mergesort: comparator is nil")

// Option configures a sort call.
type Option func(*Options)

// Options holds per-call parameters.
//
// Fields:
//   - Tracer: receives steps.Compare and steps.Move events.
type Options struct {
	Tracer steps.Tracer
}

// DefaultOptions returns Options with a steps.Nop tracer.
func DefaultOptions() Options {
	return Options{Tracer: steps.Nop}
}

// WithTracer attaches t to the call. Panics on nil.
func WithTracer(t steps.Tracer) Option {
	if t == nil {
		panic("mergesort: WithTracer(nil)")
	}
	return func(o *Options) {
		o.Tracer = t
	}
}
