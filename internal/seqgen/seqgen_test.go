package seqgen_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/bigo/internal/seqgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAscendingDescending(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, seqgen.Ascending(4))
	assert.Equal(t, []int{3, 2, 1, 0}, seqgen.Descending(4))
	assert.Empty(t, seqgen.Ascending(-1))
	assert.Empty(t, seqgen.Descending(0))
}

// TestRandom_Deterministic verifies same seed ⇒ same sequence, and seed 0 maps to the default.
func TestRandom_Deterministic(t *testing.T) {
	a := seqgen.Random(50, 7)
	b := seqgen.Random(50, 7)
	require.Equal(t, a, b)
	assert.Equal(t, seqgen.Random(50, 0), seqgen.Random(50, 1), "seed 0 uses the default seed")
	for _, v := range a {
		assert.True(t, v >= 0 && v < 200)
	}
}

func TestWithDuplicates_BoundedAlphabet(t *testing.T) {
	s := seqgen.WithDuplicates(100, 3, 42)
	require.Len(t, s, 100)
	seen := map[int]bool{}
	for _, v := range s {
		seen[v] = true
	}
	assert.LessOrEqual(t, len(seen), 3)
	assert.Equal(t, []int{0, 0, 0}, seqgen.WithDuplicates(3, 0, 1), "distinct<=0 collapses to one value")
}

// TestShuffle_IsPermutation checks the shuffle keeps the multiset intact.
func TestShuffle_IsPermutation(t *testing.T) {
	s := seqgen.Ascending(64)
	seqgen.Shuffle(s, seqgen.NewRand(3))
	assert.NotEqual(t, seqgen.Ascending(64), s, "64 elements should not shuffle to identity")
	sort.Ints(s)
	assert.Equal(t, seqgen.Ascending(64), s)

	one := []string{"x"}
	seqgen.Shuffle(one, nil)
	assert.Equal(t, []string{"x"}, one)
}

func TestShapes(t *testing.T) {
	shapes := seqgen.Shapes(10, 5)
	assert.Len(t, shapes, 4)
	for name, s := range shapes {
		assert.Len(t, s, 10, name)
	}
}
