// Command indexbench benchmarks point lookups of a bulk-loaded B+Tree
// against a two-stage recursive model index on sorted uint64 datasets.
//
// Datasets are raw 8-byte little-endian key files (optionally .zst/.lz4/.gz
// compressed). For every dataset the tool builds both structures,
// cross-checks them against each other, measures lookup latency and writes
// two CSV reports: lookup percentiles and build time / memory.
//
// Example:
//
//	indexbench -data data/books_200M_uint64,data/osm_cellids_200M_uint64 \
//	    -max-keys 100000000 -queries 100000 -rmi-leaves 32,64,128,256
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hupe1980/staticindex"
	"github.com/hupe1980/staticindex/bench"
	"github.com/hupe1980/staticindex/dataset"
	"github.com/hupe1980/staticindex/testutil"
	"github.com/hupe1980/staticindex/verify"
)

func main() {
	var (
		dataFlag   = flag.String("data", "", "comma-separated dataset files (raw little-endian uint64; .zst/.lz4/.gz supported)")
		maxKeys    = flag.Int("max-keys", 0, "truncate each dataset after this many keys (0 = all)")
		numQueries = flag.Int("queries", 100_000, "lookup queries per index")
		order      = flag.Int("order", 64, "B+Tree fan-out")
		leavesFlag = flag.String("rmi-leaves", "64", "comma-separated RMI leaf counts to sweep")
		workers    = flag.Int("workers", 1, "concurrent search workers")
		qps        = flag.Float64("rate", 0, "paced query rate in queries/s (0 = unpaced)")
		seed       = flag.Int64("seed", 42, "query sampling seed")
		lookupCSV  = flag.String("lookup-csv", "results_lookup.csv", "lookup latency CSV output")
		buildCSV   = flag.String("build-csv", "results_build.csv", "build time / memory CSV output")
	)
	flag.Parse()

	if *dataFlag == "" {
		fmt.Fprintln(os.Stderr, "indexbench: -data is required")
		flag.Usage()
		os.Exit(2)
	}

	leafCounts, err := parseLeafCounts(*leavesFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "indexbench:", err)
		os.Exit(2)
	}

	cfg := config{
		paths:      strings.Split(*dataFlag, ","),
		maxKeys:    *maxKeys,
		numQueries: *numQueries,
		order:      *order,
		leafCounts: leafCounts,
		workers:    *workers,
		rate:       *qps,
		seed:       *seed,
		lookupCSV:  *lookupCSV,
		buildCSV:   *buildCSV,
	}

	if err := run(context.Background(), cfg); err != nil {
		fmt.Fprintln(os.Stderr, "indexbench:", err)
		os.Exit(1)
	}
}

type config struct {
	paths      []string
	maxKeys    int
	numQueries int
	order      int
	leafCounts []int
	workers    int
	rate       float64
	seed       int64
	lookupCSV  string
	buildCSV   string
}

func run(ctx context.Context, cfg config) error {
	lookupFile, err := os.Create(cfg.lookupCSV)
	if err != nil {
		return err
	}
	defer lookupFile.Close()
	lookupWriter := bench.NewLookupWriter(lookupFile)

	buildFile, err := os.Create(cfg.buildCSV)
	if err != nil {
		return err
	}
	defer buildFile.Close()
	buildWriter := bench.NewBuildWriter(buildFile)

	for _, path := range cfg.paths {
		if err := runDataset(ctx, cfg, strings.TrimSpace(path), lookupWriter, buildWriter); err != nil {
			return err
		}
	}

	if err := lookupWriter.Flush(); err != nil {
		return err
	}
	return buildWriter.Flush()
}

func runDataset(ctx context.Context, cfg config, path string, lookupWriter *bench.LookupWriter, buildWriter *bench.BuildWriter) error {
	name := datasetName(path)
	fmt.Printf("\n==== Dataset: %s ====\n", name)

	keys, err := dataset.Load(path, func(o *dataset.Options) { o.MaxKeys = cfg.maxKeys })
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("dataset %s is empty", name)
	}
	fmt.Printf("Loaded %d keys from %s\n", len(keys), path)

	// B+Tree
	tree, err := staticindex.BPTree().Order(cfg.order).Build()
	if err != nil {
		return err
	}

	buildTime, mem, err := bench.MeasureBuild(tree, keys)
	if err != nil {
		return err
	}
	fmt.Printf("B+Tree build time: %v, approx mem %.2f MB\n", buildTime, float64(mem)/1024/1024)

	if err := buildWriter.Write(bench.BuildRecord{
		Dataset: name, Index: tree.Name(), NumKeys: len(keys),
		BuildTime: buildTime, MemBytes: mem,
	}); err != nil {
		return err
	}

	// Queries are shared across all indexes of this dataset.
	rng := testutil.NewRNG(cfg.seed)
	queries := bench.GenerateQueries(rng, keys, cfg.numQueries)

	benchOpts := func(o *bench.Options) {
		o.Workers = cfg.workers
		o.Rate = cfg.rate
	}

	res, err := bench.Run(ctx, tree, queries, benchOpts)
	if err != nil {
		return err
	}
	fmt.Printf("B+Tree lookup: mean=%v p95=%v p99=%v\n", res.Mean, res.P95, res.P99)

	if err := lookupWriter.Write(bench.LookupRecord{
		Dataset: name, Index: tree.Name(), NumKeys: len(keys), Result: res,
	}); err != nil {
		return err
	}

	// RMI leaf-count sweep
	for _, leaves := range cfg.leafCounts {
		fmt.Printf("\n--- RMI with %d leaves ---\n", leaves)

		learned, err := staticindex.RMI().LeafCount(leaves).Build()
		if err != nil {
			return err
		}

		trainTime, mem, err := bench.MeasureBuild(learned, keys)
		if err != nil {
			return err
		}
		fmt.Printf("RMI(%d) train time: %v, approx mem %.2f KB\n", leaves, trainTime, float64(mem)/1024)

		if err := buildWriter.Write(bench.BuildRecord{
			Dataset: name, Index: learned.Name(), NumKeys: len(keys), NumLeaves: leaves,
			BuildTime: trainTime, MemBytes: mem,
		}); err != nil {
			return err
		}

		check, err := verify.CrossCheck(keys, tree, learned)
		if err != nil {
			return err
		}
		if !check.OK() {
			return fmt.Errorf("sanity check failed on %s: %v", name, check.Mismatches[0])
		}
		fmt.Printf("Sanity: %d samples agreed, %d distinct positions\n", check.Samples, check.DistinctPositions)

		res, err := bench.Run(ctx, learned, queries, benchOpts)
		if err != nil {
			return err
		}
		fmt.Printf("RMI(%d) lookup: mean=%v p95=%v p99=%v\n", leaves, res.Mean, res.P95, res.P99)

		if err := lookupWriter.Write(bench.LookupRecord{
			Dataset: name, Index: learned.Name(), NumKeys: len(keys), NumLeaves: leaves, Result: res,
		}); err != nil {
			return err
		}
	}

	return nil
}

// datasetName derives a short report name from the file path, e.g.
// "data/books_200M_uint64" -> "books".
func datasetName(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{".zst", ".lz4", ".gz"} {
		base = strings.TrimSuffix(base, ext)
	}
	if i := strings.IndexByte(base, '_'); i > 0 {
		return base[:i]
	}
	return base
}

func parseLeafCounts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid -rmi-leaves value %q", p)
		}
		counts = append(counts, n)
	}
	return counts, nil
}
