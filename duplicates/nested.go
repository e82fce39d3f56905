package duplicates

import "github.com/katalvlaran/bigo/steps"

// Nested reports every value of s that occurs more than once, each exactly
// once, in first-repeat order.
//
// For each position i it counts equal values among positions [0, i). The
// value is reported when that count is exactly one, i.e. s[i] is its first
// repeat; later repeats see two or more earlier matches and stay silent.
//
// Returns ErrUncomparable, and no result, if any element's dynamic value
// cannot be compared with ==.
//
// Complexity: O(n²) time, O(1) extra space beyond the result.
func Nested[S ~[]E, E comparable](s S, opts ...Option) (S, error) {
	if err := checkComparable[E](s); err != nil {
		return nil, err
	}

	return NestedFunc(s, func(a, b E) bool { return a == b }, opts...)
}

// NestedFunc is Nested with a caller-supplied equality predicate, for
// element types that are not comparable with ==.
// Returns ErrNilEqual if eq is nil.
func NestedFunc[S ~[]E, E any](s S, eq func(a, b E) bool, opts ...Option) (S, error) {
	if eq == nil {
		return nil, ErrNilEqual
	}
	o := resolve(opts)

	var out S
	for i := 1; i < len(s); i++ {
		earlier := 0
		for j := 0; j < i; j++ {
			if eq(s[j], s[i]) {
				earlier++
			}
		}
		o.Tracer.Step(steps.Compare, i)
		if earlier == 1 {
			out = append(out, s[i])
		}
	}

	return out, nil
}

// Pairs lists every unordered pair of positions {I<J} with s[I] == s[J],
// ordered by I then J. A value occurring k times contributes k(k-1)/2 pairs.
// Returns ErrUncomparable under the same condition as Nested.
//
// Complexity: O(n²) time.
func Pairs[S ~[]E, E comparable](s S, opts ...Option) ([]Pair, error) {
	if err := checkComparable[E](s); err != nil {
		return nil, err
	}
	o := resolve(opts)

	var out []Pair
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if s[i] == s[j] {
				out = append(out, Pair{I: i, J: j})
			}
		}
		o.Tracer.Step(steps.Compare, len(s)-i-1)
	}

	return out, nil
}
