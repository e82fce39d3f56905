package eqcheck_test

import (
	"testing"

	"github.com/katalvlaran/bigo/internal/eqcheck"
	"github.com/stretchr/testify/assert"
)

func TestFirstUncomparable(t *testing.T) {
	type boxed struct {
		Key any
	}
	assert.Equal(t, -1, eqcheck.FirstUncomparable([]int{1, 2, 3}))
	assert.Equal(t, -1, eqcheck.FirstUncomparable([]any{1, "a", nil, [2]int{}}))
	assert.Equal(t, 1, eqcheck.FirstUncomparable([]any{1, []int{1}, map[string]int{}}))
	assert.Equal(t, 2, eqcheck.FirstUncomparable([]boxed{{1}, {"x"}, {[]byte("b")}}))
	assert.Equal(t, 0, eqcheck.FirstUncomparable([][1]any{{func() {}}}))
	assert.Equal(t, -1, eqcheck.FirstUncomparable([]any(nil)))
}

func TestComparable(t *testing.T) {
	assert.True(t, eqcheck.Comparable(42))
	assert.True(t, eqcheck.Comparable[any]("go"))
	assert.True(t, eqcheck.Comparable[any](nil))
	assert.False(t, eqcheck.Comparable[any](map[string]int{}))
	assert.False(t, eqcheck.Comparable[any]([]int{1}))
}
