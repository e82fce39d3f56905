// Package subsets enumerates every subset (combination) of a collection:
// 2ⁿ results, the textbook exponential-time workload.
//
// What
//
//   - All:    every subset of every size 0..n, lazily, as an iter.Seq.
//   - OfSize: only the subsets of one size k.
//   - Count:  2ⁿ, with overflow protection.
//
// Order
//
//	Subsets come in ascending size. Within a size they follow lexicographic
//	order of position indices, so for ["a","b","c"] the 2-subsets are
//	[a b], [a c], [b c]. The order depends only on the input order.
//
// Laziness & restartability
//
//	Nothing is computed until the sequence is ranged over, and only one
//	index tuple lives in memory at a time, so consuming a prefix costs only
//	that prefix. Every range over the returned sequence starts again from the
//	empty subset. The input is copied when All/OfSize is called, so later
//	changes to the caller's slice do not leak into the enumeration. Every
//	yielded slice is freshly allocated and safe to retain.
//
// Input size
//
//	Elements are treated as distinct by position. Callers bound n: at n=30
//	there are already over a billion subsets.
//
// Errors
//
//   - ErrBadSize   if k<0 or k>n (OfSize), or n<0 (Count).
//   - ErrTooLarge  if 2ⁿ does not fit in uint64 (Count).
//
// Usage
//
//	for s := range subsets.All([]string{"a", "b"}) {
//	    fmt.Println(s) // [] [a] [b] [a b]
//	}
package subsets
