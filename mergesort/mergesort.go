package mergesort

import (
	"cmp"

	"github.com/katalvlaran/bigo/steps"
)

// Sort returns a new slice holding the elements of s in non-decreasing order.
// s is not modified. The sort is stable.
//
// Complexity: O(n log n) time, O(n) extra space.
func Sort[S ~[]E, E cmp.Ordered](s S, opts ...Option) S {
	out, _ := SortFunc(s, cmp.Compare[E], opts...)

	return out
}

// SortFunc is Sort with a caller-supplied three-way comparator.
// Returns ErrNilCompare if compare is nil.
//
// Algorithm:
//  1. Copy s into out; allocate one scratch buffer of the same length.
//  2. sortRange(out[lo:hi]):
//     hi-lo <= 1 → done
//     mid = lo + (hi-lo)/2; sortRange(lo, mid); sortRange(mid, hi)
//     merge out[lo:mid] and out[mid:hi] through scratch back into out[lo:hi]
//  3. Return out.
func SortFunc[S ~[]E, E any](s S, compare func(a, b E) int, opts ...Option) (S, error) {
	if compare == nil {
		return nil, ErrNilCompare
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := make(S, len(s))
	copy(out, s)
	if len(out) <= 1 {
		return out, nil
	}

	m := &merger[E]{
		compare: compare,
		tracer:  o.Tracer,
		scratch: make([]E, len(out)),
	}
	m.sortRange(out, 0, len(out))

	return out, nil
}

// merger carries the per-call state shared by every recursion level.
type merger[E any] struct {
	compare func(a, b E) int
	tracer  steps.Tracer
	scratch []E
}

// sortRange sorts a[lo:hi] in place.
func (m *merger[E]) sortRange(a []E, lo, hi int) {
	if hi-lo <= 1 {
		return
	}
	mid := lo + (hi-lo)/2
	m.sortRange(a, lo, mid)
	m.sortRange(a, mid, hi)
	m.merge(a, lo, mid, hi)
}

// merge combines the sorted runs a[lo:mid] and a[mid:hi].
// The left run is staged in scratch, then the smaller front is written back
// into a. On equal fronts the left element is taken, which keeps the sort stable.
// Once the left run is exhausted the rest of the right run is already in place.
func (m *merger[E]) merge(a []E, lo, mid, hi int) {
	// Already ordered across the seam: nothing to move.
	m.tracer.Step(steps.Compare, 1)
	if m.compare(a[mid-1], a[mid]) <= 0 {
		return
	}

	left := m.scratch[lo:mid]
	copy(left, a[lo:mid])

	i, j, k := 0, mid, lo
	compares, moves := 0, 0
	for i < len(left) && j < hi {
		compares++
		if m.compare(a[j], left[i]) < 0 {
			a[k] = a[j]
			j++
		} else {
			a[k] = left[i]
			i++
		}
		k++
		moves++
	}
	// Remainder of the left run; a right remainder is already in position.
	moves += copy(a[k:], left[i:])

	m.tracer.Step(steps.Compare, compares)
	m.tracer.Step(steps.Move, moves)
}
