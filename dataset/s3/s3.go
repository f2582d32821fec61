package s3

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client is the subset of the S3 API the fetcher needs. *s3.Client
// satisfies it; tests can substitute a fake.
type Client interface {
	manager.DownloadAPIClient
}

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
	client   Client
	bucket   string
	prefix   string
	cacheDir string
}

// New creates a Fetcher with region and credentials resolved from the
// default AWS config chain.
func New(ctx context.Context, bucket string, optFns ...func(o *Options)) (*Fetcher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}
	return NewFromClient(s3.NewFromConfig(cfg), bucket, optFns...), nil
}

// NewFromClient creates a Fetcher around an existing client.
func NewFromClient(client Client, bucket string, optFns ...func(o *Options)) *Fetcher {
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
// returns its local path. Downloads go through a temp file and are renamed
// into place, so a cached file is never partial.
func (f *Fetcher) Fetch(ctx context.Context, name string) (string, error) {
	local := filepath.Join(f.cacheDir, filepath.FromSlash(name))
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(local), ".download-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	downloader := manager.NewDownloader(f.client)
	_, err = downloader.Download(ctx, tmp, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(path.Join(f.prefix, name)),
	})
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("s3: download %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), local); err != nil {
		return "", err
	}
	return local, nil
}
