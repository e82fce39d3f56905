package permutations

import (
	"errors"

	"github.com/katalvlaran/bigo/steps"
)

// Sentinel errors for permutation enumeration.
var (
	// ErrBadSize indicates a negative collection size.
	ErrBadSize = errors.New("permutations: invalid size")

	// ErrTooLarge indicates the requested count overflows uint64.
	ErrTooLarge = errors.New("permutations: count overflows uint64")
)

// maxCountable is the largest n whose factorial fits in uint64.
const maxCountable = 20

// Option configures an enumeration.
type Option func(*Options)

// Options holds per-enumeration parameters.
type Options struct {
	// Tracer receives one steps.Emit per yielded ordering.
	Tracer steps.Tracer
}

// DefaultOptions returns Options with a steps.Nop tracer.
func DefaultOptions() Options {
	return Options{Tracer: steps.Nop}
}

// WithTracer attaches t to the enumeration. Panics on nil.
func WithTracer(t steps.Tracer) Option {
	if t == nil {
		panic("permutations: WithTracer(nil)")
	}
	return func(o *Options) {
		o.Tracer = t
	}
}
