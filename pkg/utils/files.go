package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// MaxImageSize is the largest image Decode will produce, the size
// of the biggest cartridge ROM (8MB).
const MaxImageSize = 8 << 20

var (
	// ErrEmptyArchive is returned when an archive holds no files.
	ErrEmptyArchive = errors.New("archive contains no files")
	// ErrImageTooLarge is returned when a decoded image exceeds MaxImageSize.
	ErrImageTooLarge = errors.New("image exceeds maximum cartridge size")
)

// LoadFile loads the given file and performs decompression if necessary.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decode(filename, data)
}

// Decode decompresses data according to the extension of name. Archives
// (.zip, .7z) yield their first file. Unknown extensions, including the
// plain .gb/.gbc/.bin images, are returned as is. Decompressed output
// is capped at MaxImageSize.
func Decode(name string, data []byte) ([]byte, error) {
	var decoder io.Reader
	var err error

	// try to assert the compression type from the file extension
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".xz":
		decoder, err = xz.NewReader(bytes.NewReader(data))
	case ".br":
		decoder = brotli.NewReader(bytes.NewReader(data))
	case ".zst":
		var d *zstd.Decoder
		if d, err = zstd.NewReader(bytes.NewReader(data)); err != nil {
			break
		}
		defer d.Close()
		decoder = d
	case ".zip":
		var r *zip.Reader
		if r, err = zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("utils: decoding %s: %w", name, ErrEmptyArchive)
		}

		// read the first file in the zip file
		var rc io.ReadCloser
		if rc, err = r.File[0].Open(); err != nil {
			break
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		var r *sevenzip.Reader
		if r, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("utils: decoding %s: %w", name, ErrEmptyArchive)
		}

		// read the first file in the archive
		var rc io.ReadCloser
		if rc, err = r.File[0].Open(); err != nil {
			break
		}
		defer rc.Close()
		decoder = rc
	default:
		// return the data as is
		return data, nil
	}

	if err != nil {
		return nil, fmt.Errorf("utils: opening %s: %w", name, err)
	}

	// read the decompressed data into a byte slice, one byte past
	// the limit so that oversized images can be told apart
	out, err := io.ReadAll(io.LimitReader(decoder, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("utils: decoding %s: %w", name, err)
	}
	if len(out) > MaxImageSize {
		return nil, fmt.Errorf("utils: decoding %s: %w", name, ErrImageTooLarge)
	}

	return out, nil
}
