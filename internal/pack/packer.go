package pack

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sorenmortensen/bathpack/cmd"
	"github.com/sorenmortensen/bathpack/internal/config"
	"github.com/sorenmortensen/bathpack/internal/errors"
	"github.com/sorenmortensen/bathpack/internal/filemap"
	"github.com/sorenmortensen/bathpack/internal/logging"
	"github.com/sorenmortensen/bathpack/pkg/fileutil"
)

// Packer copies a resolved file map into the destination tree and
// optionally archives it. It never overwrites: any existing destination
// file, the destination root, or an existing archive aborts the run.
type Packer struct {
	outDir string
	logger *slog.Logger
}

// Option configures a Packer.
type Option func(*Packer)

// WithOutputDir sets the directory the destination root is created in.
// It defaults to the project root the file map was built against.
func WithOutputDir(dir string) Option {
	return func(p *Packer) {
		p.outDir = dir
	}
}

// WithLogger sets the logger used for per-file progress output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Packer) {
		p.logger = logger
	}
}

// NewPacker creates a Packer with the given options.
func NewPacker(opts ...Option) *Packer {
	p := &Packer{
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes a pack: creates the destination root named by the config,
// copies every file map entry into it, writes the run manifest, and zips
// the tree when the config asks for an archive. Returns the manifest.
func (p *Packer) Run(cfg *config.Config, fm *filemap.FileMap) (*Manifest, error) {
	outDir := p.outDir
	if outDir == "" {
		outDir = fm.Root
	}

	destRoot := filepath.Join(outDir, cfg.Destination.Name)
	if _, err := os.Stat(destRoot); err == nil {
		return nil, errors.Wrapf(errors.ErrDestinationExists, "%s", destRoot)
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", destRoot)
	}
	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", destRoot)
	}

	var files []File
	for _, entry := range fm.Entries {
		copied, err := p.copyEntry(entry, fm.Root, destRoot)
		if err != nil {
			return nil, errors.Wrapf(err, "source %q", entry.Key)
		}
		files = append(files, copied...)
		p.logger.Info("packed", "source", entry.Key, "files", len(copied))
	}

	manifest := &Manifest{
		Version:         ManifestVersion,
		CreatedAt:       time.Now().UTC(),
		Name:            cfg.Destination.Name,
		Archive:         cfg.Destination.Archive,
		BathpackVersion: cmd.Version,
		Files:           files,
	}

	manifestPath := filepath.Join(destRoot, ManifestName)
	if err := fileutil.AtomicWriteJSON(manifestPath, manifest); err != nil {
		return nil, errors.Wrap(err, "writing manifest")
	}

	if cfg.Destination.Archive {
		zipPath := destRoot + ".zip"
		p.logger.Debug("archiving", "zip", zipPath)
		if err := Archive(destRoot, zipPath); err != nil {
			return nil, err
		}
	}

	return manifest, nil
}

// copyEntry copies one file map entry into the destination root and
// returns the manifest records for it, with Source relative to the
// project root and Dest relative to the destination root.
func (p *Packer) copyEntry(entry filemap.Entry, projectRoot, destRoot string) ([]File, error) {
	ctx := context.Background()
	dst := filepath.Join(destRoot, entry.Dest)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating directory for %s", entry.Dest)
	}

	if entry.Dir {
		if _, err := os.Stat(dst); err == nil {
			return nil, errors.Wrapf(errors.ErrDestinationExists, "%s", dst)
		}
		files, err := copyDir(entry.Source, dst)
		if err != nil {
			return nil, err
		}
		for i := range files {
			files[i].Source = manifestPath(projectRoot, filepath.Join(entry.Source, files[i].Source))
			files[i].Dest = filepath.ToSlash(filepath.Join(entry.Dest, files[i].Dest))
			p.logger.Log(ctx, logging.LevelTrace, "copied", "dest", files[i].Dest)
		}
		return files, nil
	}

	f, err := copyFile(entry.Source, dst)
	if err != nil {
		return nil, err
	}
	f.Source = manifestPath(projectRoot, entry.Source)
	f.Dest = filepath.ToSlash(entry.Dest)
	p.logger.Log(ctx, logging.LevelTrace, "copied", "dest", f.Dest)
	return []File{f}, nil
}

// manifestPath renders path relative to root with forward slashes for the
// manifest; if that fails the path is recorded as-is.
func manifestPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
