// Package mergesort provides a stable, top-down merge sort: the log-linear,
// O(n log n), member of the complexity zoo.
//
// 🚀 What is merge sort?
//
//	Divide and conquer. Split the slice at its midpoint, sort each half the
//	same way, then merge the two sorted halves by repeatedly taking the
//	smaller front element. A slice of length 0 or 1 is already sorted.
//
// ✨ Guarantees:
//   - Non-mutating: the input slice is never written; a new slice is returned.
//   - Stable: equal elements keep their input order (left wins ties).
//   - Worst case O(n log n): sorted, reverse-sorted or duplicate-heavy
//     inputs cost the same order of work. There is no quadratic fallback.
//
// ⚙️ Usage:
//
//	sorted := mergesort.Sort([]int{5, 3, 1, 4, 2}) // [1 2 3 4 5]
//
//	byAge := func(a, b person) int { return a.Age - b.Age }
//	people, err := mergesort.SortFunc(people, byAge)
//
// Options:
//   - WithTracer(t): report steps.Compare per comparison and steps.Move per
//     element written during merges.
//
// Performance:
//
//   - Time:   O(n log n)
//   - Memory: O(n) (result + one scratch buffer, allocated once per call),
//     plus O(log n) recursion depth.
package mergesort
