package subsets

import (
	"errors"

	"github.com/katalvlaran/bigo/steps"
)

// Sentinel errors for subset enumeration.
var (
	// ErrBadSize indicates a negative size, or a subset size larger than the input.
	ErrBadSize = errors.New("subsets: invalid size")

	// ErrTooLarge indicates the requested count overflows uint64.
	ErrTooLarge = errors.New("subsets: count overflows uint64")
)

// Option configures an enumeration.
type Option func(*Options)

// Options holds per-enumeration parameters.
type Options struct {
	// Tracer receives one steps.Emit per yielded subset.
	Tracer steps.Tracer
}

// DefaultOptions returns Options with a steps.Nop tracer.
func DefaultOptions() Options {
	return Options{Tracer: steps.Nop}
}

// WithTracer attaches t to the enumeration. Panics on nil.
func WithTracer(t steps.Tracer) Option {
	if t == nil {
		panic("subsets: WithTracer(nil)")
	}
	return func(o *Options) {
		o.Tracer = t
	}
}
