package fileutil

import (
	"io"
	"os"

	"github.com/sorenmortensen/bathpack/internal/errors"
)

// MaxConfigSize is the maximum config file size we'll read (1MB).
// A bathpack.toml larger than this is certainly a mistake, and the cap
// prevents memory exhaustion from reading an arbitrary file by accident.
const MaxConfigSize = 1024 * 1024 // 1MB

// ErrFileTooLarge indicates that a file exceeded MaxConfigSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxConfigSize)

// ReadFileWithLimit reads a file up to MaxConfigSize.
// It returns an error if the file is larger than the limit.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Get file info to fail fast if size is already too large
	info, err := f.Stat()
	if err == nil {
		if info.Size() > MaxConfigSize {
			return nil, ErrFileTooLarge
		}
	}

	// Read with limit
	r := io.LimitReader(f, MaxConfigSize+1)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if len(data) > MaxConfigSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}
