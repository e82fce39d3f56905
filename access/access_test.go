package access_test

import (
	"testing"

	"github.com/katalvlaran/bigo/access"
	"github.com/katalvlaran/bigo/internal/seqgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFirst_EmptyInput verifies that an empty slice is rejected with ErrEmptyInput.
func TestFirst_EmptyInput(t *testing.T) {
	_, err := access.First([]int{})
	assert.ErrorIs(t, err, access.ErrEmptyInput)

	_, err = access.First[[]string](nil)
	assert.ErrorIs(t, err, access.ErrEmptyInput, "nil slice counts as empty")
}

// TestFirst_ReturnsHead covers single and multi-element inputs, and named slice types.
func TestFirst_ReturnsHead(t *testing.T) {
	v, err := access.First([]string{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", v)

	type names []string
	v, err = access.First(names{"ann", "bob"})
	require.NoError(t, err)
	assert.Equal(t, "ann", v)
}

// TestFirst_IndependentOfLength checks the result on large inputs is the same head element.
func TestFirst_IndependentOfLength(t *testing.T) {
	for _, n := range []int{1, 10, 1_000, 100_000} {
		v, err := access.First(seqgen.Ascending(n))
		require.NoError(t, err)
		assert.Equal(t, 0, v, "n=%d", n)
	}
}

// TestFirst_DoesNotMutate guards the caller-owned input.
func TestFirst_DoesNotMutate(t *testing.T) {
	in := []int{3, 2, 1}
	_, _ = access.First(in)
	_, _ = access.Last(in)
	_, _ = access.At(in, 1)
	assert.Equal(t, []int{3, 2, 1}, in)
}

func TestLast(t *testing.T) {
	v, err := access.Last([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = access.Last([]int{})
	assert.ErrorIs(t, err, access.ErrEmptyInput)
}

// TestAt covers in-range reads and both failure classes.
func TestAt(t *testing.T) {
	s := []rune("abc")
	cases := []struct {
		name string
		in   []rune
		i    int
		want rune
		err  error
	}{
		{"first", s, 0, 'a', nil},
		{"middle", s, 1, 'b', nil},
		{"last", s, 2, 'c', nil},
		{"negative", s, -1, 0, access.ErrOutOfRange},
		{"past end", s, 3, 0, access.ErrOutOfRange},
		{"empty", nil, 0, 0, access.ErrEmptyInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := access.At(tc.in, tc.i)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Zero(t, got, "no partial result on failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
