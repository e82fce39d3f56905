// Package search locates a target in a slice two ways, to contrast
// logarithmic and linear time.
//
// What
//
//   - Binary / BinaryFunc: O(log n) search over a slice sorted in
//     non-decreasing order. Each probe halves the remaining range.
//   - Linear / LinearFunc: O(n) scan from the first element, no ordering
//     precondition.
//
// Not found
//
//	Both searches return the sentinel index NotFound (-1) when the target is
//	absent. Absence is a result, not an error; the error slot is reserved for
//	invalid calls.
//
// Precondition
//
//	Binary requires sorted input. By default this is a caller contract and is
//	not checked, since checking costs O(n) and would erase the point of a
//	logarithmic search. WithVerifySorted() opts into the check; unsorted
//	input then fails with ErrNotSorted instead of returning a wrong answer.
//
// Duplicates
//
//	When the target occurs several times, Binary may return any matching
//	index; Linear always returns the first.
//
// Options
//
//   - WithVerifySorted(): validate Binary's precondition (ignored by Linear).
//   - WithTracer(t):      report steps.Probe (Binary) or steps.Compare (Linear).
//
// Errors
//
//   - ErrNilCompare    if BinaryFunc receives a nil comparator.
//   - ErrNilEqual      if LinearFunc receives a nil equality predicate.
//   - ErrUncomparable  if Linear meets a target or element whose dynamic
//     value cannot be compared, such as a map inside an []any.
//   - ErrNotSorted     if WithVerifySorted is set and the input is unsorted.
//
// Usage
//
//	i, err := search.Binary([]int{1, 3, 5, 7, 9}, 7) // 3, nil
//	i, err = search.Linear([]string{"a", "b"}, "z")  // search.NotFound, nil
package search
