// Package dataset loads benchmark key sets stored as raw 8-byte
// little-endian uint64 values with no header; the key count is implied by
// the file size. This is the layout used by the SOSD benchmark datasets.
//
// Raw files are memory-mapped. Files ending in .zst, .lz4 or .gz are
// decompressed on the fly.
//
// Loading does not verify that keys are sorted; both index structures
// require sorted input as a build-time precondition.
package dataset
