// Package seqgen builds the integer inputs that the sorting, searching and
// duplicate-detection tests and benchmarks run against.
//
// It offers four shapes: ascending, descending, uniformly random, and a
// small alphabet that forces heavy repetition. Shapes bundles all four under
// stable names so a property test can loop over them. Random inputs are
// driven by an explicit seed (0 selects a fixed default), so a failing case
// can be replayed from its seed alone. Shuffle reorders any slice in place
// for tests that need a scrambled copy of known data.
//
// Every generator returns a fresh slice owned by the caller.
package seqgen

import "math/rand"

// defaultSeed stands in for a zero seed.
const defaultSeed int64 = 1

// NewRand returns a generator whose stream depends only on seed.
// A zero seed is replaced by defaultSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Ascending returns [0, 1, ..., n-1]. n<=0 yields an empty slice.
//
// Complexity: O(n).
func Ascending(n int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Descending returns [n-1, ..., 1, 0]. n<=0 yields an empty slice.
//
// Complexity: O(n).
func Descending(n int) []int {
	out := Ascending(n)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Random returns n values drawn uniformly from [0, 4n), seeded by seed.
//
// Complexity: O(n).
func Random(n int, seed int64) []int {
	if n <= 0 {
		return []int{}
	}
	r := NewRand(seed)
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(4 * n)
	}

	return out
}

// WithDuplicates returns n values drawn from only `distinct` different
// values, so most values repeat. distinct<=0 is treated as 1.
//
// Complexity: O(n).
func WithDuplicates(n, distinct int, seed int64) []int {
	if n <= 0 {
		return []int{}
	}
	if distinct <= 0 {
		distinct = 1
	}
	r := NewRand(seed)
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(distinct)
	}

	return out
}

// Shuffle reorders s in place, drawing swap positions from r
// (NewRand(0) when r is nil). Each of the len(s)! orderings is equally likely.
func Shuffle[E any](s []E, r *rand.Rand) {
	if len(s) <= 1 {
		return
	}
	if r == nil {
		r = NewRand(0)
	}
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Shapes returns the named inputs of length n every sorting and searching
// property test runs against. The map is freshly built on every call.
func Shapes(n int, seed int64) map[string][]int {
	return map[string][]int{
		"ascending":  Ascending(n),
		"descending": Descending(n),
		"random":     Random(n, seed),
		"duplicates": WithDuplicates(n, 3, seed),
	}
}
