package search

import (
	"errors"

	"github.com/katalvlaran/bigo/steps"
)

// NotFound is the index returned when the target is absent.
const NotFound = -1

// Sentinel errors for search execution.
var (
	// ErrNilCompare is returned when BinaryFunc receives a nil comparator.
	ErrNilCompare = errors.New("search: comparator is nil")

	// ErrNilEqual is returned when LinearFunc receives a nil equality predicate.
	ErrNilEqual = errors.New("search: equality predicate is nil")

	// ErrUncomparable is returned by Linear when the target or an element
	// holds a dynamic value that cannot be compared with ==.
	ErrUncomparable = errors.New("search: element is not comparable")

	// ErrNotSorted is returned by Binary under WithVerifySorted when the
	// input is not in non-decreasing order.
	ErrNotSorted = errors.New("search: input is not sorted")
)

// Option configures a search call via functional arguments.
type Option func(*Options)

// Options holds per-call search parameters.
type Options struct {
	// VerifySorted makes Binary check its precondition in O(n) before searching.
	VerifySorted bool

	// Tracer receives a step per probe (Binary) or per comparison (Linear).
	Tracer steps.Tracer
}

// DefaultOptions returns Options with:
//   - no precondition check
//   - steps.Nop tracer
func DefaultOptions() Options {
	return Options{
		VerifySorted: false,
		Tracer:       steps.Nop,
	}
}

// WithVerifySorted enables the O(n) sortedness check in Binary.
func WithVerifySorted() Option {
	return func(o *Options) {
		o.VerifySorted = true
	}
}

// WithTracer attaches t to the call. Panics on nil.
func WithTracer(t steps.Tracer) Option {
	if t == nil {
		panic("search: WithTracer(nil)")
	}
	return func(o *Options) {
		o.Tracer = t
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
