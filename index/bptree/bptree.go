// Package bptree implements a static, bulk-loaded B+Tree over a sorted
// array of uint64 keys.
//
// The tree is built bottom-up in one shot: the input is partitioned into
// leaves of up to Order contiguous entries, then parent levels group up to
// Order children each until a single root remains. Construction over
// already-sorted data therefore produces optimal fan-out with no empty
// nodes, O(n/Order) leaves and O(log_Order n) height.
package bptree

import (
	"sort"

	"github.com/hupe1980/staticindex/index"
)

// Compile-time check to ensure BPTree satisfies the index contract.
var _ index.Index = (*BPTree)(nil)

// assumedNodeBytes is the fixed per-node footprint assumed by MemoryUsage.
const assumedNodeBytes = 512

// Options contains configuration options for the tree.
type Options struct {
	// Order is the maximum number of entries per leaf and of children per
	// internal node. It must be at least 2: with a single-entry grouping a
	// parent level would be as wide as the level below it and the build
	// could never converge on a root.
	Order int
}

// DefaultOptions contains the default configuration options for the tree.
var DefaultOptions = Options{
	Order: 64,
}

// node is one tree node. A node is either a leaf, holding (key, position)
// entries and a forward link to the next leaf, or an internal node, holding
// child nodes and the split keys between them. Every node records the
// minimum key of its subtree; split key i of an internal node is the
// minKey of child i+1.
type node struct {
	leaf   bool
	minKey uint64

	// Leaf fields. positions[i] is the index of keys[i] in the array the
	// tree was built from.
	keys      []uint64
	positions []int
	next      *node

	// Internal fields. len(splitKeys) == len(children)-1.
	splitKeys []uint64
	children  []*node
}

// BPTree is a static point-lookup index. See index.Index for the build and
// concurrency contract.
type BPTree struct {
	opts      Options
	root      *node
	nodeCount int
}

// New creates a new, empty tree.
func New(optFns ...func(o *Options)) (*BPTree, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Order < 2 {
		return nil, index.ErrInvalidOrder
	}

	return &BPTree{opts: opts}, nil
}

// Name implements index.Index.
func (*BPTree) Name() string { return "BPTree" }

// Build bulk-loads the tree from keys, which must be sorted ascending.
// Any previously built tree is discarded first, so a rebuild leaves no
// residue of earlier data. An empty input produces an empty tree on which
// every Search reports not found.
//
// Build always returns nil; the error return satisfies index.Index.
func (t *BPTree) Build(keys []uint64) error {
	t.root = nil
	t.nodeCount = 0

	n := len(keys)
	if n == 0 {
		return nil
	}

	order := t.opts.Order

	// Leaf level: contiguous groups of up to order entries, each entry
	// paired with its position in the caller's array.
	leaves := make([]*node, 0, (n+order-1)/order)
	for i := 0; i < n; i += order {
		end := min(i+order, n)

		leaf := &node{
			leaf:      true,
			minKey:    keys[i],
			keys:      append([]uint64(nil), keys[i:end]...),
			positions: make([]int, end-i),
		}
		for j := range leaf.positions {
			leaf.positions[j] = i + j
		}

		leaves = append(leaves, leaf)
	}
	for i := 0; i+1 < len(leaves); i++ {
		leaves[i].next = leaves[i+1]
	}
	t.nodeCount += len(leaves)

	// Internal levels: group up to order consecutive children under one
	// parent until a single node remains.
	level := leaves
	for len(level) > 1 {
		parents := make([]*node, 0, (len(level)+order-1)/order)
		for i := 0; i < len(level); i += order {
			end := min(i+order, len(level))

			parent := &node{
				minKey:   level[i].minKey,
				children: level[i:end:end],
			}
			for _, child := range level[i+1 : end] {
				parent.splitKeys = append(parent.splitKeys, child.minKey)
			}

			parents = append(parents, parent)
		}
		t.nodeCount += len(parents)
		level = parents
	}

	t.root = level[0]
	return nil
}

// Search implements index.Index. With duplicate keys it returns the
// leftmost match within the reached leaf; duplicates spilling into a
// neighboring leaf are resolved to the occurrence local to the leaf the
// descent lands on.
func (t *BPTree) Search(key uint64) (int, bool) {
	nd := t.root
	if nd == nil {
		return 0, false
	}

	for !nd.leaf {
		// First split key strictly greater than the target decides the
		// child. The clamp routes keys >= all split keys into the
		// rightmost subtree.
		i := sort.Search(len(nd.splitKeys), func(i int) bool { return key < nd.splitKeys[i] })
		if i >= len(nd.children) {
			i = len(nd.children) - 1
		}
		nd = nd.children[i]
	}

	i := sort.Search(len(nd.keys), func(i int) bool { return nd.keys[i] >= key })
	if i < len(nd.keys) && nd.keys[i] == key {
		return nd.positions[i], true
	}
	return 0, false
}

// MemoryUsage implements index.Index. The estimate is node count times an
// assumed fixed footprint, not a byte-exact measurement.
func (t *BPTree) MemoryUsage() int {
	return t.nodeCount * assumedNodeBytes
}
