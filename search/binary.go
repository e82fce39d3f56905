package search

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/bigo/steps"
)

// Binary returns the index of an occurrence of target in s, or NotFound.
//
// Algorithm:
//  1. low, high = 0, len(s)-1.
//  2. While low <= high:
//     mid = low + (high-low)/2
//     target > s[mid] → low = mid+1
//     target < s[mid] → high = mid-1
//     otherwise       → return mid
//  3. Return NotFound.
//
// s must be sorted in non-decreasing order; see WithVerifySorted.
//
// Complexity: O(log n) time, O(1) space (O(n) with WithVerifySorted).
func Binary[S ~[]E, E cmp.Ordered](s S, target E, opts ...Option) (int, error) {
	return BinaryFunc(s, target, cmp.Compare[E], opts...)
}

// BinaryFunc is Binary with a caller-supplied three-way comparator:
// compare(a, b) < 0 when a sorts before b, 0 when equal, > 0 otherwise.
// Returns ErrNilCompare if compare is nil.
func BinaryFunc[S ~[]E, E any](s S, target E, compare func(a, b E) int, opts ...Option) (int, error) {
	if compare == nil {
		return NotFound, ErrNilCompare
	}
	o := resolve(opts)
	if o.VerifySorted {
		if i := firstInversion(s, compare); i > 0 {
			return NotFound, fmt.Errorf("%w: s[%d] sorts before s[%d]", ErrNotSorted, i, i-1)
		}
	}

	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2 // avoids overflow of low+high
		o.Tracer.Step(steps.Probe, 1)
		switch c := compare(target, s[mid]); {
		case c > 0:
			low = mid + 1
		case c < 0:
			high = mid - 1
		default:
			return mid, nil
		}
	}

	return NotFound, nil
}

// firstInversion returns the first i with s[i] < s[i-1], or 0 if s is sorted.
func firstInversion[S ~[]E, E any](s S, compare func(a, b E) int) int {
	for i := 1; i < len(s); i++ {
		if compare(s[i], s[i-1]) < 0 {
			return i
		}
	}

	return 0
}
