package minio

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

// Options contains configuration options for the fetcher.
type Options struct {
	// Prefix is prepended to every object key (e.g. "sosd/").
	Prefix string

	// CacheDir is where downloaded datasets are kept. Defaults to a
	// staticindex directory under the user cache dir.
	CacheDir string
}

// Fetcher downloads dataset objects and caches them locally. A dataset
// that already exists in the cache is not downloaded again.
type Fetcher struct {
	client   *minio.Client
	bucket   string
	prefix   string
	cacheDir string
}

// New creates a Fetcher around an existing MinIO client.
func New(client *minio.Client, bucket string, optFns ...func(o *Options)) *Fetcher {
	opts := Options{}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.CacheDir == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			opts.CacheDir = filepath.Join(dir, "staticindex")
		} else {
			opts.CacheDir = os.TempDir()
		}
	}

	return &Fetcher{
		client:   client,
		bucket:   bucket,
		prefix:   opts.Prefix,
		cacheDir: opts.CacheDir,
	}
}

// Fetch ensures the named dataset object is present in the cache and
// returns its local path. FGetObject downloads through a temp file, so a
// cached file is never partial.
func (f *Fetcher) Fetch(ctx context.Context, name string) (string, error) {
	local := filepath.Join(f.cacheDir, filepath.FromSlash(name))
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return "", err
	}

	key := path.Join(f.prefix, name)
	if err := f.client.FGetObject(ctx, f.bucket, key, local, minio.GetObjectOptions{}); err != nil {
		return "", fmt.Errorf("minio: download %s: %w", name, err)
	}
	return local, nil
}
