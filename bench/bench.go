package bench

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/staticindex/index"
)

// Options contains configuration options for a benchmark run.
type Options struct {
	// Workers is the number of concurrent searchers.
	Workers int

	// Rate caps query issuance in queries per second across all workers.
	// Zero means unpaced, closed-loop issuance.
	Rate float64
}

// DefaultOptions contains the default configuration options for a run.
var DefaultOptions = Options{
	Workers: 1,
}

// Result aggregates per-call search latencies of one run.
type Result struct {
	Queries int
	Found   int
	Mean    time.Duration
	P95     time.Duration
	P99     time.Duration
}

// Run issues every query against idx, recording per-call latency. The
// index must already be built.
func Run(ctx context.Context, idx index.Index, queries []uint64, optFns ...func(o *Options)) (*Result, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	latencies := make([]time.Duration, len(queries))
	found := make([]bool, len(queries))

	var limiter *rate.Limiter
	if opts.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.Rate), 1)
	}

	g, ctx := errgroup.WithContext(ctx)

	chunk := (len(queries) + opts.Workers - 1) / opts.Workers
	for lo := 0; lo < len(queries); lo += chunk {
		hi := min(lo+chunk, len(queries))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						return err
					}
				} else if err := ctx.Err(); err != nil {
					return err
				}

				start := time.Now()
				_, ok := idx.Search(queries[i])
				latencies[i] = time.Since(start)
				found[i] = ok
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Queries: len(queries)}
	for _, ok := range found {
		if ok {
			res.Found++
		}
	}
	res.Mean, res.P95, res.P99 = summarize(latencies)

	return res, nil
}

// MeasureBuild builds idx from keys once and reports the wall time
// together with the index's own memory estimate.
func MeasureBuild(idx index.Index, keys []uint64) (time.Duration, int, error) {
	start := time.Now()
	if err := idx.Build(keys); err != nil {
		return 0, 0, err
	}
	return time.Since(start), idx.MemoryUsage(), nil
}

// summarize computes the mean and the 95th/99th percentiles by sorted
// rank.
func summarize(latencies []time.Duration) (mean, p95, p99 time.Duration) {
	n := len(latencies)
	if n == 0 {
		return
	}

	v := append([]time.Duration(nil), latencies...)
	sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })

	var sum time.Duration
	for _, d := range v {
		sum += d
	}

	mean = sum / time.Duration(n)
	p95 = v[rankIndex(n, 0.95)]
	p99 = v[rankIndex(n, 0.99)]
	return mean, p95, p99
}

func rankIndex(n int, q float64) int {
	i := int(q * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
