package staticindex

import (
	"github.com/hupe1980/staticindex/index/bptree"
	"github.com/hupe1980/staticindex/index/rmi"
)

// BPTree creates a new B+Tree index builder.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	tree, err := staticindex.BPTree().Order(128).Build()
func BPTree() BPTreeBuilder {
	return BPTreeBuilder{
		order: bptree.DefaultOptions.Order,
	}
}

// BPTreeBuilder is an immutable fluent builder for B+Tree indexes.
type BPTreeBuilder struct {
	order int
}

// Order sets the tree fan-out: the maximum number of entries per leaf and
// of children per internal node. Default: 64.
func (b BPTreeBuilder) Order(order int) BPTreeBuilder {
	b.order = order
	return b
}

// Build constructs the (empty) index. Load it with BPTree.Build.
func (b BPTreeBuilder) Build() (*bptree.BPTree, error) {
	return bptree.New(func(o *bptree.Options) {
		o.Order = b.order
	})
}

// RMI creates a new recursive model index builder.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	learned, err := staticindex.RMI().LeafCount(256).Build()
func RMI() RMIBuilder {
	return RMIBuilder{
		leafCount: rmi.DefaultOptions.LeafCount,
	}
}

// RMIBuilder is an immutable fluent builder for recursive model indexes.
type RMIBuilder struct {
	leafCount int
}

// LeafCount sets the number of second-stage models. Default: 64.
func (b RMIBuilder) LeafCount(n int) RMIBuilder {
	b.leafCount = n
	return b
}

// Build constructs the (untrained) index. Train it with RMI.Train.
func (b RMIBuilder) Build() (*rmi.RMI, error) {
	return rmi.New(func(o *rmi.Options) {
		o.LeafCount = b.leafCount
	})
}
