package access_test

import (
	"testing"

	"github.com/katalvlaran/bigo/access"
	"github.com/katalvlaran/bigo/internal/seqgen"
)

// benchmarkFirst runs First on an ascending slice of length n.
// Timings across sizes should be flat.
func benchmarkFirst(b *testing.B, n int) {
	s := seqgen.Ascending(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := access.First(s); err != nil {
			b.Fatalf("First failed: %v", err)
		}
	}
}

func BenchmarkFirst_10(b *testing.B)      { benchmarkFirst(b, 10) }
func BenchmarkFirst_1000(b *testing.B)    { benchmarkFirst(b, 1_000) }
func BenchmarkFirst_1000000(b *testing.B) { benchmarkFirst(b, 1_000_000) }
