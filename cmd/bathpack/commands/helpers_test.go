package commands

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// projectToml is a complete config used by the command tests.
const projectToml = `[user]
username = "user987"

[sources]
labs = { path = "labs", pattern = "**.java" }
report = "report/report.pdf"

[destination]
name = "popl-{username}"
archive = true

[destination.locations]
labs = "code"
report = "."
`

// writeProject creates a temp project with a config and matching files and
// returns its root.
func writeProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bathpack.toml"), []byte(projectToml), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	for _, rel := range []string{
		"labs/lab1/Main.java",
		"labs/lab2/Main.java",
		"report/report.pdf",
	} {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(rel+"\n"), 0o644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
	return dir
}

// pointAt targets the command flags at dir and restores them afterwards.
func pointAt(t *testing.T, dir string) {
	t.Helper()

	oldDir, oldConfig := dirFlag, configFlag
	oldDryRun, oldOutput := dryRun, outputDir
	oldInitUsername := initUsername
	t.Cleanup(func() {
		dirFlag, configFlag = oldDir, oldConfig
		dryRun, outputDir = oldDryRun, oldOutput
		initUsername = oldInitUsername
	})

	dirFlag = dir
	configFlag = ""
	dryRun = false
	outputDir = ""
	initUsername = ""
}

// treeFiles returns every regular file under root, slash-separated and
// sorted, for comparing produced trees.
func treeFiles(t *testing.T, root string) []string {
	t.Helper()

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}
