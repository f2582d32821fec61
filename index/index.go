// Package index defines the shared contract for static point-lookup
// structures over a sorted array of uint64 keys.
package index

import "errors"

var (
	// ErrEmptyKeys is returned when an index that requires data is built
	// from an empty key set.
	ErrEmptyKeys = errors.New("index: empty key set")

	// ErrInvalidOrder is returned for a non-usable B+Tree fan-out.
	ErrInvalidOrder = errors.New("index: order must be at least 2")

	// ErrInvalidLeafCount is returned for a non-positive RMI leaf count.
	ErrInvalidLeafCount = errors.New("index: leaf count must be positive")
)

// Index is a static point-lookup structure. It is built exactly once (or
// rebuilt, discarding prior state) from a sorted array and is read-only
// afterwards.
//
// The keys passed to Build must be sorted ascending and must not change for
// the life of the structure. This precondition is not verified; violating
// it yields silently incorrect lookups.
//
// Build must not run concurrently with itself or with Search on the same
// instance. A built instance is safe for concurrent Search calls from any
// number of goroutines, since querying touches no mutable state.
type Index interface {
	// Build constructs the structure from the sorted keys.
	Build(keys []uint64) error

	// Search reports whether key exists and, if so, a position pos into the
	// array supplied to Build with keys[pos] == key. With duplicate keys the
	// position of some matching occurrence is returned; see the
	// implementations for the exact tie-break.
	Search(key uint64) (pos int, found bool)

	// MemoryUsage returns a rough byte estimate of the built structure.
	// It is a fixed-footprint accounting for reporting, not a measurement.
	MemoryUsage() int

	// Name identifies the structure kind in reports.
	Name() string
}
