// Package testutil provides seeded random number generation and sorted
// key-set generators for tests and benchmarks.
//
// All generators return keys sorted ascending, the precondition both index
// structures require.
package testutil
