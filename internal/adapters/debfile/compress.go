package debfile

import (
	"io"
	"path"

	"github.com/Debian/apt/internal/core/domain"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"go.trai.ch/zerr"
)

// Decompress wraps r with the decompressor matching the file name extension.
// Uncompressed names are passed through.
func Decompress(name string, r io.Reader) (io.ReadCloser, error) {
	switch path.Ext(name) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailure.Error()), "member", name)
		}
		return zr, nil
	case ".xz":
		zr, err := xz.NewReader(r)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailure.Error()), "member", name)
		}
		return io.NopCloser(zr), nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailure.Error()), "member", name)
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}
