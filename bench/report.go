package bench

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// LookupRecord is one row of the lookup-latency report.
type LookupRecord struct {
	Dataset string
	Index   string
	NumKeys int
	// NumLeaves is the RMI leaf count; zero leaves the column empty, as
	// for the B+Tree.
	NumLeaves int
	Result    *Result
}

// BuildRecord is one row of the build-cost report.
type BuildRecord struct {
	Dataset   string
	Index     string
	NumKeys   int
	NumLeaves int
	BuildTime time.Duration
	MemBytes  int
}

var (
	lookupHeader = []string{"dataset", "index", "num_keys", "num_leaves", "metric", "mean_ns", "p95_ns", "p99_ns"}
	buildHeader  = []string{"dataset", "index", "num_keys", "num_leaves", "build_time_s", "mem_bytes"}
)

// LookupWriter emits lookup-latency rows as CSV.
type LookupWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewLookupWriter creates a LookupWriter on w.
func NewLookupWriter(w io.Writer) *LookupWriter {
	return &LookupWriter{w: csv.NewWriter(w)}
}

// Write appends one row, emitting the header first if needed.
func (lw *LookupWriter) Write(rec LookupRecord) error {
	if !lw.wroteHeader {
		if err := lw.w.Write(lookupHeader); err != nil {
			return err
		}
		lw.wroteHeader = true
	}
	return lw.w.Write([]string{
		rec.Dataset,
		rec.Index,
		strconv.Itoa(rec.NumKeys),
		formatLeaves(rec.NumLeaves),
		"lookup",
		strconv.FormatInt(rec.Result.Mean.Nanoseconds(), 10),
		strconv.FormatInt(rec.Result.P95.Nanoseconds(), 10),
		strconv.FormatInt(rec.Result.P99.Nanoseconds(), 10),
	})
}

// Flush writes buffered rows through.
func (lw *LookupWriter) Flush() error {
	lw.w.Flush()
	return lw.w.Error()
}

// BuildWriter emits build-cost rows as CSV.
type BuildWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewBuildWriter creates a BuildWriter on w.
func NewBuildWriter(w io.Writer) *BuildWriter {
	return &BuildWriter{w: csv.NewWriter(w)}
}

// Write appends one row, emitting the header first if needed.
func (bw *BuildWriter) Write(rec BuildRecord) error {
	if !bw.wroteHeader {
		if err := bw.w.Write(buildHeader); err != nil {
			return err
		}
		bw.wroteHeader = true
	}
	return bw.w.Write([]string{
		rec.Dataset,
		rec.Index,
		strconv.Itoa(rec.NumKeys),
		formatLeaves(rec.NumLeaves),
		strconv.FormatFloat(rec.BuildTime.Seconds(), 'f', -1, 64),
		strconv.Itoa(rec.MemBytes),
	})
}

// Flush writes buffered rows through.
func (bw *BuildWriter) Flush() error {
	bw.w.Flush()
	return bw.w.Error()
}

func formatLeaves(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
