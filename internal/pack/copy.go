package pack

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sorenmortensen/bathpack/internal/errors"
)

// copyFile copies a single file from src to dst, creating dst exclusively:
// an existing destination fails with ErrDestinationExists and is left
// untouched. The source's permission bits are preserved and the content is
// hashed while it streams.
func copyFile(src, dst string) (File, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return File{}, errors.Wrapf(err, "opening %s", src)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return File{}, errors.Wrapf(err, "stat %s", src)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		if os.IsExist(err) {
			return File{}, errors.Wrapf(errors.ErrDestinationExists, "%s", dst)
		}
		return File{}, errors.Wrapf(err, "creating %s", dst)
	}
	defer dstFile.Close()

	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(dstFile, hasher), srcFile)
	if err != nil {
		return File{}, errors.Wrapf(err, "copying %s to %s", src, dst)
	}

	if err := dstFile.Close(); err != nil {
		return File{}, errors.Wrapf(err, "closing %s", dst)
	}

	return File{
		SHA256: hex.EncodeToString(hasher.Sum(nil)),
		Mode:   srcInfo.Mode().Perm(),
		Size:   size,
	}, nil
}

// copyDir recursively copies the directory at src to dst, which must not
// exist yet. Returns a File record per copied file with Source and Dest
// relative to src and dst respectively.
func copyDir(src, dst string) ([]File, error) {
	var files []File

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm())
		}

		f, err := copyFile(path, target)
		if err != nil {
			return err
		}
		f.Source = rel
		f.Dest = rel
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
