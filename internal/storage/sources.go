package storage

import (
	"io"

	"github.com/cockroachdb/errors"
)

type BlobReader interface {
	io.ReaderAt
	io.Closer
	Size() int64
}

// BlobSource opens named, read-only blobs.
type BlobSource interface {
	Open(name string) (BlobReader, error)
}

// ReadAll reads the whole of blob |name| from |src| as text.
func ReadAll(src BlobSource, name string) (string, error) {
	r, err := src.Open(name)
	if err != nil {
		return "", errors.Wrapf(err, "storage: error opening %s", name)
	}
	defer r.Close()

	buf := make([]byte, r.Size())
	n, err := r.ReadAt(buf, 0)
	if err != nil && !(err == io.EOF && n == len(buf)) {
		return "", errors.Wrapf(err, "storage: error reading %s", name)
	} else if n != len(buf) {
		return "", errors.Newf("storage: short read of %s, %d != %d", name, n, len(buf))
	}
	return string(buf), nil
}
