package subsets

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/bigo/steps"
)

// All returns a lazy sequence of every subset of items, 2ⁿ in total,
// in ascending size and lexicographic index order within a size.
//
// Complexity: O(2ⁿ·n) time over a full enumeration, O(n) live memory.
func All[S ~[]E, E any](items S, opts ...Option) iter.Seq[S] {
	src := slices.Clone(items)
	o := resolve(opts)

	return func(yield func(S) bool) {
		for k := 0; k <= len(src); k++ {
			if !combinations(src, k, o.Tracer, yield) {
				return
			}
		}
	}
}

// OfSize returns a lazy sequence of the k-element subsets of items,
// C(n,k) in total, in lexicographic index order.
// Returns ErrBadSize if k<0 or k>len(items).
func OfSize[S ~[]E, E any](items S, k int, opts ...Option) (iter.Seq[S], error) {
	if k < 0 || k > len(items) {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrBadSize, k, len(items))
	}
	src := slices.Clone(items)
	o := resolve(opts)

	return func(yield func(S) bool) {
		combinations(src, k, o.Tracer, yield)
	}, nil
}

// Count returns 2ⁿ, the number of subsets of an n-element collection.
// Returns ErrBadSize for n<0 and ErrTooLarge for n>=64.
func Count(n int) (uint64, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	case n >= 64:
		return 0, fmt.Errorf("%w: 2^%d", ErrTooLarge, n)
	}

	return uint64(1) << uint(n), nil
}

// combinations yields every k-subset of src and reports whether the consumer
// asked for more.
//
// idx holds the current index tuple, strictly increasing. To advance, find
// the rightmost position i that can still grow (idx[i] < n-k+i), bump it and
// reset every later position to the smallest increasing tail.
func combinations[S ~[]E, E any](src S, k int, tr steps.Tracer, yield func(S) bool) bool {
	n := len(src)
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		out := make(S, k)
		for i, p := range idx {
			out[i] = src[p]
		}
		tr.Step(steps.Emit, 1)
		if !yield(out) {
			return false
		}

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
