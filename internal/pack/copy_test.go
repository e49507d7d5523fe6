package pack

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorenmortensen/bathpack/internal/errors"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	content := []byte("lab report contents")
	require.NoError(t, os.WriteFile(src, content, 0o644))

	f, err := copyFile(src, dst)
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	wantHash := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(wantHash[:]), f.SHA256)
	assert.Equal(t, int64(len(content)), f.Size)
}

func TestCopyFile_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("precious"), 0o644))

	_, err := copyFile(src, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDestinationExists))

	got, _ := os.ReadFile(dst)
	assert.Equal(t, "precious", string(got), "existing file must be untouched")
}

func TestCopyFile_PreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "run.sh")
	dst := filepath.Join(dir, "copy.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755))

	f, err := copyFile(src, dst)
	require.NoError(t, err)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	assert.Equal(t, os.FileMode(0o755), f.Mode)
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := copyFile(filepath.Join(dir, "gone"), filepath.Join(dir, "dst"))
	require.Error(t, err)
}

func TestCopyDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "assets")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "style.css"), []byte("css"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "img", "logo.png"), []byte("png"), 0o644))

	dst := filepath.Join(dir, "out")
	files, err := copyDir(src, dst)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	for _, rel := range []string{"style.css", filepath.Join("img", "logo.png")} {
		if _, err := os.Stat(filepath.Join(dst, rel)); err != nil {
			t.Errorf("expected %s to be copied: %v", rel, err)
		}
	}
}

func TestCopyDir_CollisionStopsRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "assets")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("a"), 0o644))

	dst := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "a.txt"), []byte("precious"), 0o644))

	_, err := copyDir(src, dst)
	assert.True(t, errors.Is(err, errors.ErrDestinationExists))
}
