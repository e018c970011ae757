package walker

import (
	"testing"

	"github.com/joshuapare/flexkit/flexb"
	"github.com/joshuapare/flexkit/internal/testutil"
)

// Benchmark_Walk benchmarks a full traversal with a reused walker.
func Benchmark_Walk(b *testing.B) {
	root, err := flexb.Root(testutil.MapBytes)
	if err != nil {
		b.Fatalf("Root failed: %v", err)
	}
	w := New(DefaultOptions())

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		count := 0
		err := w.Walk(root, func(Path, flexb.Ref) error {
			count++
			return nil
		})
		if err != nil {
			b.Fatalf("Walk failed: %v", err)
		}
	}
}

// Benchmark_Count benchmarks counting refs by type.
func Benchmark_Count(b *testing.B) {
	root, err := flexb.Root(testutil.MapBytes)
	if err != nil {
		b.Fatalf("Root failed: %v", err)
	}
	counter := NewCounter(DefaultOptions())

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := counter.Count(root); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}
