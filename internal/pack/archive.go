package pack

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sorenmortensen/bathpack/internal/errors"
)

// Archive zips the tree rooted at dir into zipPath. The archive is created
// exclusively: an existing file at zipPath fails with ErrDestinationExists.
// Entry names are relative to dir with forward slashes, and file modes are
// carried in the headers.
func Archive(dir, zipPath string) (err error) {
	out, err := os.OpenFile(zipPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(errors.ErrDestinationExists, "%s", zipPath)
		}
		return errors.Wrapf(err, "creating %s", zipPath)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "closing %s", zipPath)
		}
	}()

	zw := zip.NewWriter(out)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return errors.Wrapf(err, "building header for %s", rel)
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return errors.Wrapf(err, "adding %s", rel)
		}

		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()

		if _, err := io.Copy(w, f); err != nil {
			return errors.Wrapf(err, "writing %s", rel)
		}
		return nil
	})
	if walkErr != nil {
		zw.Close()
		return errors.Wrapf(walkErr, "archiving %s", dir)
	}

	if err := zw.Close(); err != nil {
		return errors.Wrapf(err, "finalizing %s", zipPath)
	}
	return nil
}
