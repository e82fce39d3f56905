// Package bigo is a small field guide to algorithmic complexity: one
// runnable algorithm per Big-O class, each small enough to read in a minute
// and each able to report the steps it takes.
//
// 🚀 What is in the box?
//
//	Pure, generic, non-mutating functions, one package per class:
//		• O(1)        access.First / Last / At
//		• O(log n)    search.Binary
//		• O(n)        search.Linear, duplicates.Seen
//		• O(n log n)  mergesort.Sort / SortFunc (stable)
//		• O(n²)       duplicates.Nested / Pairs
//		• O(2ⁿ)       subsets.All / OfSize (lazy)
//		• O(n!)       permutations.All (lazy)
//
// ✨ Why bigo?
//
//   - Watch the class, don't just read it: every algorithm above O(1) accepts
//     WithTracer(steps.Tracer) and reports probes, comparisons, moves or
//     emitted items. steps.Counter tallies them; steps.NewLogger sends
//     them to a zap logger.
//   - Honest errors: sentinel values checked with errors.Is, never a wrong
//     answer returned silently.
//   - Lazy enumerators: subsets and permutations are iter.Seq values, so a
//     prefix of 2⁴⁰ subsets costs only that prefix.
//   - Safe to share: no global state, inputs are never written, concurrent
//     calls are fine.
//
// Under the hood:
//
//	access/       : constant-time indexed reads
//	search/       : binary & linear search, NotFound sentinel (-1)
//	mergesort/    : top-down merge sort with a single scratch buffer
//	duplicates/   : nested-loop vs seen-set duplicate detection
//	subsets/      : combinations of every size, restartable iter.Seq
//	permutations/ : lexicographic next-permutation, restartable iter.Seq
//	steps/        : Tracer, Counter, zap-backed logger
//
// Quick comparison for n = 20:
//
//	O(1)=1  O(log n)≈5  O(n)=20  O(n log n)≈87  O(n²)=400  O(2ⁿ)≈1e6  O(n!)≈2.4e18
//
//	go get github.com/katalvlaran/bigo
package bigo
