package bptree

import "iter"

// Stats describes the shape of a built tree.
type Stats struct {
	Order  int
	Keys   int
	Nodes  int
	Leaves int
	Height int
}

// Stats returns shape statistics of the current tree. An empty tree
// reports zero nodes and zero height.
func (t *BPTree) Stats() Stats {
	s := Stats{Order: t.opts.Order, Nodes: t.nodeCount}
	if t.root == nil {
		return s
	}

	nd := t.root
	for {
		s.Height++
		if nd.leaf {
			break
		}
		nd = nd.children[0]
	}

	for leaf := nd; leaf != nil; leaf = leaf.next {
		s.Leaves++
		s.Keys += len(leaf.keys)
	}

	return s
}

// All iterates over every (key, position) pair in key order by following
// the leaf sibling chain.
func (t *BPTree) All() iter.Seq2[uint64, int] {
	return func(yield func(uint64, int) bool) {
		nd := t.root
		if nd == nil {
			return
		}
		for !nd.leaf {
			nd = nd.children[0]
		}
		for ; nd != nil; nd = nd.next {
			for i, k := range nd.keys {
				if !yield(k, nd.positions[i]) {
					return
				}
			}
		}
	}
}
