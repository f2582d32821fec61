package testutil

import (
	"math/rand"
	"sync"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// SequentialKeys returns the keys 0..n-1. The densest possible dataset; a
// learned index fits it perfectly.
func SequentialKeys(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = uint64(i)
	}
	return keys
}

// GappedKeys returns n strictly increasing keys with uniform random gaps in
// [1, maxGap]. Locks only once per call.
func (r *RNG) GappedKeys(n int, maxGap uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]uint64, n)
	var cur uint64
	for i := range keys {
		cur += 1 + uint64(r.rand.Int63n(int64(maxGap)))
		keys[i] = cur
	}
	return keys
}

// ClusteredKeys returns n sorted keys grouped into the given number of
// dense clusters spread apart by roughly the spread value. Cluster-shaped
// data is the adversarial case for a single linear model and exercises the
// per-leaf error bounds.
func (r *RNG) ClusteredKeys(n, clusters int, spread uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if clusters < 1 {
		clusters = 1
	}

	keys := make([]uint64, 0, n)
	var cur uint64
	per := n / clusters
	for c := 0; c < clusters; c++ {
		cur += spread
		count := per
		if c == clusters-1 {
			count = n - len(keys)
		}
		for i := 0; i < count; i++ {
			cur += 1 + uint64(r.rand.Int63n(8))
			keys = append(keys, cur)
		}
	}
	return keys
}

// DuplicateKeys returns n sorted keys where roughly dupRate of the entries
// repeat their predecessor.
func (r *RNG) DuplicateKeys(n int, dupRate float64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]uint64, n)
	var cur uint64
	for i := range keys {
		if i == 0 || r.rand.Float64() >= dupRate {
			cur += 1 + uint64(r.rand.Int63n(64))
		}
		keys[i] = cur
	}
	return keys
}
