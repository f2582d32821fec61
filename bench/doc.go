// Package bench measures point-lookup latency of built index structures
// and reports build cost, memory estimates and latency percentiles.
//
// Built structures are read-only, so a run can fan queries out over
// several workers without any synchronization in the index itself. Query
// issuance can optionally be paced at a fixed rate to keep latency samples
// free of coordinated omission.
package bench
