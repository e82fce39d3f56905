package duplicates

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bigo/internal/eqcheck"

	"github.com/katalvlaran/bigo/steps"
)

// Sentinel errors for duplicate detection.
var (
	// ErrNilEqual indicates NestedFunc received a nil equality predicate.
	ErrNilEqual = errors.New("duplicates: equality predicate is nil")

	// ErrUncomparable indicates an element whose dynamic value cannot be
	// compared with ==, e.g. a slice or map stored in an []any.
	ErrUncomparable = errors.New("duplicates: element is not comparable")
)

// Pair holds two positions I<J whose values are equal.
type Pair struct {
	I int
	J int
}

// Option configures a detector call.
type Option func(*Options)

// Options holds per-call parameters.
type Options struct {
	// Tracer receives one steps.Compare per equality check or set lookup.
	Tracer steps.Tracer
}

// DefaultOptions returns Options with a steps.Nop tracer.
func DefaultOptions() Options {
	return Options{Tracer: steps.Nop}
}

// WithTracer attaches t to the call. Panics on nil.
func WithTracer(t steps.Tracer) Option {
	if t == nil {
		panic("duplicates: WithTracer(nil)")
	}
	return func(o *Options) {
		o.Tracer = t
	}
}

// checkComparable rejects inputs holding a value that would panic under ==
// or as a map key.
func checkComparable[E comparable](s []E) error {
	if i := eqcheck.FirstUncomparable(s); i >= 0 {
		return fmt.Errorf("%w: s[%d] holds %T", ErrUncomparable, i, s[i])
	}

	return nil
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
