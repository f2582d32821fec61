package bench

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/staticindex/index/bptree"
	"github.com/hupe1980/staticindex/index/rmi"
	"github.com/hupe1980/staticindex/testutil"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(1)
	keys := rng.GappedKeys(10_000, 1<<20)

	tree, err := bptree.New()
	require.NoError(t, err)
	require.NoError(t, tree.Build(keys))

	t.Run("AllHits", func(t *testing.T) {
		queries := GenerateQueries(rng, keys, 1_000)

		res, err := Run(ctx, tree, queries)
		require.NoError(t, err)
		assert.Equal(t, 1_000, res.Queries)
		assert.Equal(t, 1_000, res.Found)
		assert.LessOrEqual(t, res.P95, res.P99)
	})

	t.Run("Workers", func(t *testing.T) {
		queries := GenerateQueries(rng, keys, 1_000)

		res, err := Run(ctx, tree, queries, func(o *Options) { o.Workers = 8 })
		require.NoError(t, err)
		assert.Equal(t, 1_000, res.Found)
	})

	t.Run("Paced", func(t *testing.T) {
		queries := GenerateQueries(rng, keys, 20)

		res, err := Run(ctx, tree, queries, func(o *Options) { o.Rate = 100_000 })
		require.NoError(t, err)
		assert.Equal(t, 20, res.Found)
	})

	t.Run("Canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := Run(canceled, tree, GenerateQueries(rng, keys, 100))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("NoQueries", func(t *testing.T) {
		res, err := Run(ctx, tree, nil)
		require.NoError(t, err)
		assert.Zero(t, res.Queries)
		assert.Zero(t, res.Mean)
	})
}

func TestMeasureBuild(t *testing.T) {
	rng := testutil.NewRNG(2)
	keys := rng.GappedKeys(1_000, 1<<20)

	t.Run("BPTree", func(t *testing.T) {
		tree, err := bptree.New()
		require.NoError(t, err)

		elapsed, mem, err := MeasureBuild(tree, keys)
		require.NoError(t, err)
		assert.Greater(t, elapsed, time.Duration(0))
		assert.Greater(t, mem, 0)
	})

	t.Run("TrainFailure", func(t *testing.T) {
		r, err := rmi.New()
		require.NoError(t, err)

		_, _, err = MeasureBuild(r, nil)
		assert.Error(t, err)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("Constant", func(t *testing.T) {
		v := make([]time.Duration, 200)
		for i := range v {
			v[i] = 5 * time.Microsecond
		}

		mean, p95, p99 := summarize(v)
		assert.Equal(t, 5*time.Microsecond, mean)
		assert.Equal(t, 5*time.Microsecond, p95)
		assert.Equal(t, 5*time.Microsecond, p99)
	})

	t.Run("Ascending", func(t *testing.T) {
		v := make([]time.Duration, 100)
		for i := range v {
			v[i] = time.Duration(i+1) * time.Microsecond
		}

		mean, p95, p99 := summarize(v)
		assert.Equal(t, 50500*time.Nanosecond, mean)

		// The rank index truncates, so the percentile lands on the sample
		// at or just above the nominal rank.
		assert.GreaterOrEqual(t, p95, 95*time.Microsecond)
		assert.LessOrEqual(t, p95, 96*time.Microsecond)
		assert.GreaterOrEqual(t, p99, 99*time.Microsecond)
		assert.LessOrEqual(t, p99, 100*time.Microsecond)
		assert.LessOrEqual(t, p95, p99)
	})
}

func TestGenerateNearMiss(t *testing.T) {
	rng := testutil.NewRNG(3)
	keys := rng.GappedKeys(1_000, 1<<30)

	probes := GenerateNearMiss(rng, keys, 100)
	require.Len(t, probes, 100)
	for _, p := range probes {
		assert.NotZero(t, p)
	}
}

func TestReportWriters(t *testing.T) {
	t.Run("Lookup", func(t *testing.T) {
		var sb strings.Builder

		lw := NewLookupWriter(&sb)
		require.NoError(t, lw.Write(LookupRecord{
			Dataset: "books",
			Index:   "BPTree",
			NumKeys: 1000,
			Result:  &Result{Mean: 120 * time.Nanosecond, P95: 300 * time.Nanosecond, P99: 450 * time.Nanosecond},
		}))
		require.NoError(t, lw.Write(LookupRecord{
			Dataset:   "books",
			Index:     "RMI",
			NumKeys:   1000,
			NumLeaves: 64,
			Result:    &Result{Mean: 80 * time.Nanosecond, P95: 150 * time.Nanosecond, P99: 200 * time.Nanosecond},
		}))
		require.NoError(t, lw.Flush())

		lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "dataset,index,num_keys,num_leaves,metric,mean_ns,p95_ns,p99_ns", lines[0])
		assert.Equal(t, "books,BPTree,1000,,lookup,120,300,450", lines[1])
		assert.Equal(t, "books,RMI,1000,64,lookup,80,150,200", lines[2])
	})

	t.Run("Build", func(t *testing.T) {
		var sb strings.Builder

		bw := NewBuildWriter(&sb)
		require.NoError(t, bw.Write(BuildRecord{
			Dataset:   "books",
			Index:     "BPTree",
			NumKeys:   1000,
			BuildTime: 1500 * time.Millisecond,
			MemBytes:  4096,
		}))
		require.NoError(t, bw.Flush())

		lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "dataset,index,num_keys,num_leaves,build_time_s,mem_bytes", lines[0])
		assert.Equal(t, "books,BPTree,1000,,1.5,4096", lines[1])
	})
}
