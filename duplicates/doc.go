// Package duplicates finds values that occur more than once, in two ways
// that contrast quadratic and linear time.
//
// What
//
//   - Nested / NestedFunc: compare every position with every earlier
//     position. O(n²) comparisons, O(1) extra memory beyond the result.
//   - Seen: one pass with a set of values seen so far. O(n) expected time,
//     O(n) memory.
//   - Pairs: every unordered pair of positions {I<J} holding equal values.
//
// Reporting contract
//
//	Nested and Seen return the same result: each duplicated value exactly
//	once, in the order of its first repeat. The classic textbook nested
//	loop reports a matching pair twice (once as (i,j), once as (j,i)); this
//	package does not. Callers that want the pairwise view ask Pairs for it,
//	which lists each unordered pair once.
//
// Options
//
//   - WithTracer(t): report steps.Compare for every equality check (Nested,
//     Pairs) or set lookup (Seen).
//
// Errors
//
//   - ErrNilEqual       if NestedFunc receives a nil equality predicate.
//   - ErrUncomparable   if Nested, Seen or Pairs meets an element whose
//     dynamic value cannot be compared, such as a slice inside an []any.
//     The check runs before any work, so no partial result is returned.
//
// Usage
//
//	dups, err := duplicates.Seen([]string{"apple", "banana", "apple", "mango"}) // [apple]
package duplicates
