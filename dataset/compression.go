package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

func loadCompressed(path, ext string, opts Options) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader
	switch ext {
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	case ".lz4":
		r = lz4.NewReader(f)
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	default:
		return nil, fmt.Errorf("dataset: %s: unsupported extension %q", path, ext)
	}

	// With a key budget there is no point decompressing past it.
	if opts.MaxKeys > 0 {
		r = io.LimitReader(r, int64(opts.MaxKeys)*keySize)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return decode(path, data, opts)
}
