package bench

import "github.com/hupe1980/staticindex/testutil"

// GenerateQueries samples n keys uniformly (with replacement) from keys.
// Every query is guaranteed to exist in the dataset.
func GenerateQueries(rng *testutil.RNG, keys []uint64, n int) []uint64 {
	qs := make([]uint64, n)
	for i := range qs {
		qs[i] = keys[rng.Intn(len(keys))]
	}
	return qs
}

// GenerateNearMiss samples n probe values, each one past a key drawn from
// the dataset. For gapped datasets these are almost always misses; for
// dense datasets a probe can legitimately hit, which is fine for the
// crash/agreement checks these probes feed.
func GenerateNearMiss(rng *testutil.RNG, keys []uint64, n int) []uint64 {
	qs := make([]uint64, n)
	for i := range qs {
		qs[i] = keys[rng.Intn(len(keys))] + 1
	}
	return qs
}
