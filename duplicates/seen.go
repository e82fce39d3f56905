package duplicates

import "github.com/katalvlaran/bigo/steps"

// Seen reports every value of s that occurs more than once, each exactly
// once, on its first repeat.
//
// It keeps a map from value to "already reported": an unseen value is
// inserted as false, a value found with false is reported and flipped to true,
// a value found with true is ignored.
// Returns ErrUncomparable, and no result, if any element's dynamic value
// cannot be hashed.
//
// Complexity: O(n) expected time, O(n) space.
func Seen[S ~[]E, E comparable](s S, opts ...Option) (S, error) {
	if err := checkComparable[E](s); err != nil {
		return nil, err
	}
	o := resolve(opts)

	var out S
	seen := make(map[E]bool, len(s))
	for _, v := range s {
		reported, ok := seen[v]
		switch {
		case !ok:
			seen[v] = false
		case !reported:
			seen[v] = true
			out = append(out, v)
		}
	}
	o.Tracer.Step(steps.Compare, len(s))

	return out, nil
}
