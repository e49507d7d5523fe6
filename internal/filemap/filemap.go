package filemap

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/sorenmortensen/bathpack/internal/config"
	"github.com/sorenmortensen/bathpack/internal/errors"
)

// Entry pairs a concrete location on disk with its relative destination
// inside the destination root.
type Entry struct {
	// Key is the source name the entry was resolved from.
	Key string

	// Source is the path to copy from, under the project root.
	Source string

	// Dest is the destination path, relative to the destination root.
	Dest string

	// Dir marks a source directory that is copied recursively as-is.
	Dir bool
}

// FileMap is the resolved mapping from configured sources to destination
// paths for one run. Entries are ordered by source key, then path.
type FileMap struct {
	// Root is the project root directory sources were resolved against.
	Root string

	// Entries are the resolved (source, destination) pairs.
	Entries []Entry
}

// Build resolves every source in cfg against rootDir. File sources map to
// a single entry and must exist. Folder sources are walked and matched
// against their glob pattern; a pattern that matches nothing is an error,
// since it almost always means a typo in the config.
//
// The config must already be validated: Build assumes every source key has
// a destination location.
func Build(cfg *config.Config, rootDir string) (*FileMap, error) {
	fm := &FileMap{Root: rootDir}

	for _, key := range cfg.SourceKeys() {
		src := cfg.Sources[key]
		loc := cfg.Destination.Locations[key]

		if src.IsGlob() {
			entries, err := expandGlob(key, src, loc, rootDir)
			if err != nil {
				return nil, err
			}
			fm.Entries = append(fm.Entries, entries...)
			continue
		}

		entry, err := resolveFile(key, src, loc, rootDir)
		if err != nil {
			return nil, err
		}
		fm.Entries = append(fm.Entries, entry)
	}

	return fm, nil
}

// resolveFile maps a plain source to a single entry. The named file or
// directory keeps its base name under the destination location.
func resolveFile(key string, src config.Source, loc, rootDir string) (Entry, error) {
	path := filepath.Join(rootDir, src.Path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, errors.Wrapf(errors.ErrSourceMissing, "source %q: %s", key, src.Path)
		}
		return Entry{}, errors.Wrapf(err, "source %q: stat %s", key, src.Path)
	}

	return Entry{
		Key:    key,
		Source: path,
		Dest:   filepath.Join(loc, filepath.Base(src.Path)),
		Dir:    info.IsDir(),
	}, nil
}

// expandGlob walks the source folder and maps every file whose path
// relative to the folder matches the pattern. Matches keep their relative
// layout under the destination location.
func expandGlob(key string, src config.Source, loc, rootDir string) ([]Entry, error) {
	base := filepath.Join(rootDir, src.Path)

	info, err := os.Stat(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrSourceMissing, "source %q: %s", key, src.Path)
		}
		return nil, errors.Wrapf(err, "source %q: stat %s", key, src.Path)
	}
	if !info.IsDir() {
		return nil, errors.Newf("source %q: %s is not a directory but has a pattern", key, src.Path)
	}

	matcher, err := glob.Compile(src.Pattern, '/')
	if err != nil {
		return nil, errors.Wrapf(errors.ErrBadPattern, "source %q: %q: %v", key, src.Pattern, err)
	}

	var entries []Entry
	walkErr := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !matcher.Match(rel) {
			return nil
		}

		entries = append(entries, Entry{
			Key:    key,
			Source: path,
			Dest:   filepath.Join(loc, filepath.FromSlash(rel)),
		})
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "source %q: walking %s", key, src.Path)
	}

	if len(entries) == 0 {
		return nil, errors.Wrapf(errors.ErrNoMatches, "source %q: %q under %s", key, src.Pattern, src.Path)
	}

	return entries, nil
}
