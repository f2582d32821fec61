// Package verify cross-checks two index structures built from the same
// sorted key array against each other.
//
// Agreement is a smoke test, not a proof: both structures are probed with
// keys sampled from the dataset and with near-miss values, and must agree
// on the found outcome and resolve to the same key value at the returned
// positions. Under duplicate keys the positions themselves may differ.
package verify

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/staticindex/index"
	"github.com/hupe1980/staticindex/testutil"
)

// Options contains configuration options for a cross-check.
type Options struct {
	// Samples is the number of existing-key probes; the same number of
	// near-miss probes is issued on top.
	Samples int

	// Seed feeds the sampling RNG.
	Seed int64
}

// DefaultOptions contains the default configuration options for a
// cross-check.
var DefaultOptions = Options{
	Samples: 100,
	Seed:    123,
}

// Mismatch describes one disagreement between the two structures.
type Mismatch struct {
	Key            uint64
	AFound, BFound bool
	APos, BPos     int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("key=%d a=(%v,%d) b=(%v,%d)", m.Key, m.AFound, m.APos, m.BFound, m.BPos)
}

// Result summarizes a cross-check.
type Result struct {
	Samples    int
	Mismatches []Mismatch

	// DistinctPositions counts the distinct array positions resolved
	// across all sampled hits, an indicator of how much of the dataset the
	// sample actually touched.
	DistinctPositions uint64
}

// OK reports whether the structures agreed on every probe.
func (r *Result) OK() bool { return len(r.Mismatches) == 0 }

// CrossCheck probes a and b, both built from keys, with sampled existing
// keys and near-miss values.
func CrossCheck(keys []uint64, a, b index.Index, optFns ...func(o *Options)) (*Result, error) {
	if len(keys) == 0 {
		return nil, index.ErrEmptyKeys
	}

	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	rng := testutil.NewRNG(opts.Seed)
	res := &Result{Samples: opts.Samples}
	seen := roaring64.New()

	// Existing keys: both must find the key, and the positions must
	// resolve back to the probed key value.
	for i := 0; i < opts.Samples; i++ {
		k := keys[rng.Intn(len(keys))]

		aPos, aOK := a.Search(k)
		bPos, bOK := b.Search(k)

		if !aOK || !bOK || keys[aPos] != k || keys[bPos] != k {
			res.Mismatches = append(res.Mismatches, Mismatch{Key: k, AFound: aOK, BFound: bOK, APos: aPos, BPos: bPos})
			continue
		}

		seen.Add(uint64(aPos))
		seen.Add(uint64(bPos))
	}

	// Near-miss probes: the bumped value can legitimately exist in dense
	// datasets; the outcomes still have to agree, and a hit must resolve
	// to the probed value on both sides.
	for i := 0; i < opts.Samples; i++ {
		k := keys[rng.Intn(len(keys))] + 1

		aPos, aOK := a.Search(k)
		bPos, bOK := b.Search(k)

		if aOK != bOK || (aOK && (keys[aPos] != k || keys[bPos] != k)) {
			res.Mismatches = append(res.Mismatches, Mismatch{Key: k, AFound: aOK, BFound: bOK, APos: aPos, BPos: bPos})
		}
	}

	res.DistinctPositions = seen.GetCardinality()
	return res, nil
}
