// Package permutations enumerates every ordering of a collection: n!
// results, the factorial-time end of the complexity scale.
//
// What
//
//   - All:   every ordering, lazily, as an iter.Seq.
//   - Count: n!, with overflow protection.
//
// Order
//
//	Orderings follow lexicographic order of position indices, so the first
//	ordering is the input itself and the last is its reverse. Elements are
//	distinct by position: ["a","a"] yields two (equal-looking) orderings.
//
// Laziness & restartability
//
//	Each step rewrites one index permutation in place (next-permutation), so
//	live memory is O(n) however many orderings are consumed. Every range
//	over the returned sequence starts again from the first ordering. The
//	input is copied when All is called; every yielded slice is freshly
//	allocated and safe to retain.
//
// Input size
//
//	Callers bound n: 12! is already 479,001,600.
//
// Errors
//
//   - ErrBadSize   if n<0 (Count).
//   - ErrTooLarge  if n! does not fit in uint64, i.e. n>20 (Count).
//
// Usage
//
//	for p := range permutations.All([]string{"a", "b", "c"}) {
//	    fmt.Println(p) // 6 orderings, starting with [a b c]
//	}
package permutations
