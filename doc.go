// Package staticindex provides static point-lookup index structures over
// an immutable, sorted array of uint64 keys.
//
// Two structures answer "does key k exist, and at what position in the
// sorted array", trading build cost, memory footprint and worst-case
// lookup cost against each other:
//
//   - a bulk-loaded B+Tree (index/bptree), built bottom-up in one shot
//     with O(log n) lookups, and
//   - a two-stage recursive model index (index/rmi), which predicts a
//     position with trained linear models and corrects it with a search
//     bounded by the per-leaf training error.
//
// # Quick Start
//
//	keys := []uint64{1, 3, 5, 7, 9, 11, 13, 15} // sorted, immutable
//
//	tree, _ := staticindex.BPTree().Order(64).Build()
//	_ = tree.Build(keys)
//	pos, found := tree.Search(7) // 3, true
//
//	learned, _ := staticindex.RMI().LeafCount(64).Build()
//	_ = learned.Train(keys)
//	pos, found = learned.Search(7) // 3, true
//
// Both structures are read-only after building and safe for concurrent
// Search calls. The keys must be sorted ascending; this precondition is a
// documented contract, not a runtime check.
//
// The bench, verify and dataset packages contain the benchmarking harness:
// binary dataset loading (local, S3 or MinIO), latency measurement with
// percentile reporting, CSV emission and cross-structure sanity checks.
// See cmd/indexbench for the driver.
package staticindex
