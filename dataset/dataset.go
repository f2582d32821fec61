package dataset

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/staticindex/internal/mmap"
)

// keySize is the width of one stored key in bytes.
const keySize = 8

// Options contains configuration options for loading.
type Options struct {
	// MaxKeys truncates the dataset after this many keys. Zero loads the
	// whole file.
	MaxKeys int
}

// DefaultOptions contains the default configuration options for loading.
var DefaultOptions = Options{}

// Load reads the dataset at path. Compression is chosen by file extension
// (.zst, .lz4, .gz); anything else is treated as a raw key file.
func Load(path string, optFns ...func(o *Options)) ([]uint64, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".zst", ".lz4", ".gz":
		return loadCompressed(path, ext, opts)
	default:
		return loadRaw(path, opts)
	}
}

func loadRaw(path string, opts Options) ([]uint64, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	return decode(path, m.Data, opts)
}

// decode converts raw little-endian bytes into keys, honoring MaxKeys.
func decode(path string, data []byte, opts Options) ([]uint64, error) {
	if len(data)%keySize != 0 {
		return nil, fmt.Errorf("dataset: %s: size %d is not a multiple of %d", path, len(data), keySize)
	}

	n := len(data) / keySize
	if opts.MaxKeys > 0 && opts.MaxKeys < n {
		n = opts.MaxKeys
	}

	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = binary.LittleEndian.Uint64(data[i*keySize:])
	}
	return keys, nil
}

// Write stores keys at path in the raw layout Load reads.
func Write(path string, keys []uint64) error {
	buf := make([]byte, len(keys)*keySize)
	for i, k := range keys {
		binary.LittleEndian.PutUint64(buf[i*keySize:], k)
	}
	return os.WriteFile(path, buf, 0o644)
}
