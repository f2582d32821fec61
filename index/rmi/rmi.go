// Package rmi implements a two-stage recursive model index over a sorted
// array of uint64 keys.
//
// The index replaces tree traversal with linear models: a root model
// predicts a rough position for a key and routes it to one of LeafCount
// second-stage models, whose prediction is verified by a binary search
// bounded by the maximum error that leaf exhibited during training. The
// worst-case probe is therefore 2·maxError+1 positions instead of
// O(log n) over the whole array.
//
// The RMI never copies the key array; it keeps a reference to the caller's
// slice and re-reads it during Search.
package rmi

import (
	"fmt"
	"sort"

	"github.com/hupe1980/staticindex/index"
	"github.com/hupe1980/staticindex/internal/linear"
)

// Compile-time check to ensure RMI satisfies the index contract.
var _ index.Index = (*RMI)(nil)

// modelBytes is the fixed per-model footprint assumed by MemoryUsage: two
// float64 coefficients plus three word-sized fields.
const modelBytes = 40

// Options contains configuration options for the index.
type Options struct {
	// LeafCount is the number of second-stage models. It must be positive
	// and is fixed for the life of the index.
	LeafCount int
}

// DefaultOptions contains the default configuration options for the index.
var DefaultOptions = Options{
	LeafCount: 64,
}

// model is one linear stage: pos ≈ a·key + b over the index range
// [start, end), with the maximum absolute deviation between clamped
// prediction and true index observed during training.
type model struct {
	a, b     float64
	start    int
	end      int
	maxError int
}

// predict applies the model and clamps the result into [0, n-1].
func (m *model) predict(key uint64, n int) int {
	return clampPos(m.a*float64(key)+m.b, n)
}

func clampPos(p float64, n int) int {
	if p < 0 {
		return 0
	}
	if p >= float64(n) {
		return n - 1
	}
	return int(p)
}

// RMI is a static learned point-lookup index. See index.Index for the
// build and concurrency contract.
type RMI struct {
	opts    Options
	keys    []uint64 // the caller's sorted array, never copied
	root    model
	leaves  []model
	trained bool
}

// New creates a new, untrained index.
func New(optFns ...func(o *Options)) (*RMI, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.LeafCount < 1 {
		return nil, index.ErrInvalidLeafCount
	}

	return &RMI{opts: opts}, nil
}

// Name implements index.Index.
func (*RMI) Name() string { return "RMI" }

// bucketOf maps a clamped predicted position to a leaf id. Training and
// Search must run this identical integer arithmetic: a key routed to a
// different leaf than the one whose error bound was computed for it would
// void the bounded-search guarantee.
func (r *RMI) bucketOf(pos, n int) int {
	id := pos * r.opts.LeafCount / n
	if id >= r.opts.LeafCount {
		id = r.opts.LeafCount - 1
	}
	return id
}

// Train fits the root and leaf models on keys, which must be sorted
// ascending. Retraining overwrites all prior state. An empty input is a
// configuration error: Train returns index.ErrEmptyKeys and the instance
// stays untrained, so a subsequent Search reports not found rather than
// answering from stale models.
func (r *RMI) Train(keys []uint64) error {
	r.trained = false

	n := len(keys)
	if n == 0 {
		return fmt.Errorf("rmi: train: %w", index.ErrEmptyKeys)
	}

	// Root stage: one model over the whole array, key -> index.
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}

	a, b := linear.Fit(keys, idxs)
	r.root = model{a: a, b: b, start: 0, end: n}

	// Bucket assignment: route every key by the root's clamped prediction.
	// The partition follows predicted position, not true index, so bucket
	// sizes vary with how well the root fits.
	buckets := make([][]int, r.opts.LeafCount)
	for i, k := range keys {
		id := r.bucketOf(r.root.predict(k, n), n)
		buckets[id] = append(buckets[id], i)
	}

	// Leaf stage: a local model per non-empty bucket, with the observed
	// true-index range and the worst clamped-prediction error. Empty
	// buckets keep the zero model with an empty range.
	r.leaves = make([]model, r.opts.LeafCount)
	for id, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}

		xs := make([]uint64, len(bucket))
		for j, i := range bucket {
			xs[j] = keys[i]
		}

		a, b := linear.Fit(xs, bucket)

		leaf := model{a: a, b: b, start: bucket[0], end: bucket[0]}
		for j, i := range bucket {
			if err := absDiff(leaf.predict(xs[j], n), i); err > leaf.maxError {
				leaf.maxError = err
			}
			if i < leaf.start {
				leaf.start = i
			}
			if i > leaf.end {
				leaf.end = i
			}
		}
		leaf.end++ // recorded range is half-open

		r.leaves[id] = leaf
	}

	r.keys = keys
	r.trained = true
	return nil
}

// Build implements index.Index by training the models.
func (r *RMI) Build(keys []uint64) error {
	return r.Train(keys)
}

// Search implements index.Index. With duplicate keys it returns the
// leftmost match within the probed window.
func (r *RMI) Search(key uint64) (int, bool) {
	if !r.trained {
		return 0, false
	}

	n := len(r.keys)

	leaf := &r.leaves[r.bucketOf(r.root.predict(key, n), n)]
	p := leaf.predict(key, n)

	// The probe window starts from the leaf's recorded range and, when the
	// leaf has a nonzero error bound, tightens to the intersection with
	// [p-maxError, p+maxError]. Every training key routed to this leaf is
	// guaranteed to stay inside the tightened window.
	lo := leaf.start
	hi := leaf.end - 1
	if hi < 0 {
		hi = 0
	}
	if leaf.maxError > 0 {
		if left := p - leaf.maxError; left > lo {
			lo = left
		}
		if right := min(p+leaf.maxError, n-1); right < hi {
			hi = right
		}
	}
	if lo > hi {
		return 0, false
	}

	i := lo + sort.Search(hi-lo+1, func(i int) bool { return r.keys[lo+i] >= key })
	if i <= hi && r.keys[i] == key {
		return i, true
	}
	return 0, false
}

// MemoryUsage implements index.Index: a fixed per-model footprint for the
// root plus every leaf slot.
func (r *RMI) MemoryUsage() int {
	return modelBytes * (1 + len(r.leaves))
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
