package access

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the access functions.
var (
	// ErrEmptyInput indicates the operation requires at least one element.
	ErrEmptyInput = errors.New("access: input must be non-empty")

	// ErrOutOfRange indicates an index outside [0, len).
	ErrOutOfRange = errors.New("access: index out of range")
)

// First returns s[0].
// Returns ErrEmptyInput when s is empty.
//
// Complexity: O(1) time, O(1) space.
func First[S ~[]E, E any](s S) (E, error) {
	var zero E
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}

	return s[0], nil
}

// Last returns s[len(s)-1].
// Returns ErrEmptyInput when s is empty.
//
// Complexity: O(1) time, O(1) space.
func Last[S ~[]E, E any](s S) (E, error) {
	var zero E
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}

	return s[len(s)-1], nil
}

// At returns s[i].
// Returns ErrEmptyInput when s is empty and ErrOutOfRange (wrapped with the
// offending index) when i falls outside [0, len(s)).
//
// Complexity: O(1) time, O(1) space.
func At[S ~[]E, E any](s S, i int) (E, error) {
	var zero E
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}
	if i < 0 || i >= len(s) {
		return zero, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, len(s))
	}

	return s[i], nil
}
