package local

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/akmistry/almanac/internal/storage"
)

var (
	_ = (storage.BlobSource)((*BlobStore)(nil))
)

type fileReader struct {
	*os.File
	size int64
}

func (r *fileReader) Size() int64 {
	return r.size
}

func openFileReader(fpath string) (*fileReader, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.IsDir() {
		f.Close()
		return nil, errors.Newf("local.BlobStore: %s is a directory", fpath)
	}

	r := &fileReader{
		File: f,
		size: fi.Size(),
	}
	return r, nil
}

// BlobStore reads blobs as files under a directory.
type BlobStore struct {
	dir string
}

func NewBlobStore(dir string) (*BlobStore, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "local.BlobStore: error opening dir %s", dir)
	} else if !fi.IsDir() {
		return nil, errors.Newf("local.BlobStore: %s is not a directory", dir)
	}

	s := &BlobStore{
		dir: dir,
	}
	return s, nil
}

func (s *BlobStore) makeFilePath(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *BlobStore) Open(name string) (storage.BlobReader, error) {
	fpath := s.makeFilePath(name)
	slog.Debug("local.BlobStore.Open", "path", fpath)
	return openFileReader(fpath)
}
