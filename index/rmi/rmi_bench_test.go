package rmi

import (
	"testing"

	"github.com/hupe1980/staticindex/testutil"
)

func BenchmarkTrain(b *testing.B) {
	rng := testutil.NewRNG(1)
	keys := rng.GappedKeys(100_000, 1<<16)

	r, err := New()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.Train(keys); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	rng := testutil.NewRNG(1)
	keys := rng.GappedKeys(1_000_000, 1<<16)

	r, err := New(func(o *Options) { o.LeafCount = 256 })
	if err != nil {
		b.Fatal(err)
	}
	if err := r.Train(keys); err != nil {
		b.Fatal(err)
	}

	queries := make([]uint64, 4096)
	for i := range queries {
		queries[i] = keys[rng.Intn(len(keys))]
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := r.Search(queries[i&4095]); !found {
			b.Fatal("missing key")
		}
	}
}
