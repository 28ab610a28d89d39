package cloud

import (
	"log/slog"

	cu "github.com/akmistry/cloud-util"
	_ "github.com/akmistry/cloud-util/all"
	"github.com/akmistry/cloud-util/cache"
	"github.com/cockroachdb/errors"

	"github.com/akmistry/almanac/internal/storage"
)

// BlobStore reads blobs from any blob store URL supported by cloud-util,
// optionally through a local block cache.
type BlobStore struct {
	bs cu.BlobStore
}

var _ = (storage.BlobSource)((*BlobStore)(nil))

func NewBlobStore(url, cacheDir string, cacheSize int64) (*BlobStore, error) {
	bs, err := cu.OpenBlobStore(url)
	if err != nil {
		return nil, errors.Wrapf(err, "cloud.BlobStore: error opening %s", url)
	}
	if cacheDir != "" {
		bs, err = cache.NewBlockBlobCache(bs, cacheDir, cacheSize)
		if err != nil {
			return nil, errors.Wrapf(err, "cloud.BlobStore: error creating cache in %s", cacheDir)
		}
	}
	return &BlobStore{bs: bs}, nil
}

func (s *BlobStore) Open(name string) (storage.BlobReader, error) {
	slog.Debug("cloud.BlobStore.Open", "name", name)
	return s.bs.Get(name)
}
