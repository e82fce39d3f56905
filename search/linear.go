package search

import (
	"fmt"

	"github.com/katalvlaran/bigo/internal/eqcheck"
	"github.com/katalvlaran/bigo/steps"
)

// Linear returns the index of the first element of s equal to target,
// or NotFound. No ordering is required.
//
// Returns ErrUncomparable if target or any element holds a dynamic value
// that cannot be compared, e.g. a map inside an []any. Those inputs are
// rejected before scanning.
//
// Complexity: O(n) time, O(1) space.
func Linear[S ~[]E, E comparable](s S, target E, opts ...Option) (int, error) {
	if !eqcheck.Comparable(target) {
		return NotFound, fmt.Errorf("%w: target holds %T", ErrUncomparable, target)
	}
	if i := eqcheck.FirstUncomparable[E](s); i >= 0 {
		return NotFound, fmt.Errorf("%w: s[%d] holds %T", ErrUncomparable, i, s[i])
	}

	return LinearFunc(s, target, func(a, b E) bool { return a == b }, opts...)
}

// LinearFunc is Linear with a caller-supplied equality predicate.
// Returns ErrNilEqual if eq is nil.
func LinearFunc[S ~[]E, E any](s S, target E, eq func(a, b E) bool, opts ...Option) (int, error) {
	if eq == nil {
		return NotFound, ErrNilEqual
	}
	o := resolve(opts)
	for i := range s {
		o.Tracer.Step(steps.Compare, 1)
		if eq(s[i], target) {
			return i, nil
		}
	}

	return NotFound, nil
}
