package permutations

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/bigo/steps"
)

// All returns a lazy sequence of every ordering of items, n! in total,
// in lexicographic order of position indices.
// An empty input yields exactly one empty ordering.
//
// Complexity: O(n!·n) time over a full enumeration, O(n) live memory.
func All[S ~[]E, E any](items S, opts ...Option) iter.Seq[S] {
	src := slices.Clone(items)
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(S) bool) {
		n := len(src)
		p := make([]int, n)
		for i := range p {
			p[i] = i
		}

		for {
			out := make(S, n)
			for i, j := range p {
				out[i] = src[j]
			}
			o.Tracer.Step(steps.Emit, 1)
			if !yield(out) {
				return
			}
			if !nextPermutation(p) {
				return
			}
		}
	}
}

// Count returns n!, the number of orderings of an n-element collection.
// Returns ErrBadSize for n<0 and ErrTooLarge for n>20.
func Count(n int) (uint64, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	case n > maxCountable:
		return 0, fmt.Errorf("%w: %d!", ErrTooLarge, n)
	}

	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}

	return f, nil
}

// nextPermutation rewrites p into its lexicographic successor and reports
// whether one existed.
//
//  1. Find the largest i with p[i] < p[i+1]; none means p is the last one.
//  2. Find the largest j > i with p[j] > p[i] and swap p[i], p[j].
//  3. Reverse the suffix p[i+1:], which was non-increasing.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}
