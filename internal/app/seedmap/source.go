package seedmap

import (
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/akmistry/almanac/internal/almanac"
	"github.com/akmistry/almanac/internal/storage"
	"github.com/akmistry/almanac/internal/storage/cloud"
	"github.com/akmistry/almanac/internal/storage/local"
	"github.com/akmistry/almanac/internal/util"
)

const (
	defaultCacheSize = 64 * (1 << 20)
)

type SourceOptions struct {
	// Blob store URL. If empty, the input is a local file path.
	BlobStore string

	// Optional local cache for blob store reads.
	CacheDir  string
	CacheSize int64
}

// OpenSource returns the source holding |input|, and the name of |input|
// within it.
func OpenSource(input string, opts SourceOptions) (storage.BlobSource, string, error) {
	if opts.BlobStore != "" {
		util.SetDefaultIfZero(&opts.CacheSize, defaultCacheSize)
		bs, err := cloud.NewBlobStore(opts.BlobStore, opts.CacheDir, opts.CacheSize)
		if err != nil {
			return nil, "", err
		}
		return bs, input, nil
	}

	bs, err := local.NewBlobStore(filepath.Dir(input))
	if err != nil {
		return nil, "", err
	}
	return bs, filepath.Base(input), nil
}

// LoadAlmanac reads and parses |input|.
func LoadAlmanac(input string, opts SourceOptions) (*almanac.Almanac, error) {
	src, name, err := OpenSource(input, opts)
	if err != nil {
		return nil, err
	}
	text, err := storage.ReadAll(src, name)
	if err != nil {
		return nil, err
	}
	a, err := almanac.Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", input)
	}
	return a, nil
}
