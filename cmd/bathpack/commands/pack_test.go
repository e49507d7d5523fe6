package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sorenmortensen/bathpack/internal/errors"
)

func TestPackCommand_Metadata(t *testing.T) {
	if packCmd.Use != "pack" {
		t.Errorf("Use = %q, want %q", packCmd.Use, "pack")
	}

	if packCmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if packCmd.Flags().Lookup("dry-run") == nil {
		t.Error("--dry-run flag should be defined")
	}
	if packCmd.Flags().Lookup("output") == nil {
		t.Error("--output flag should be defined")
	}
}

func TestRunPack_CreatesDestinationTree(t *testing.T) {
	dir := writeProject(t)
	pointAt(t, dir)

	var buf bytes.Buffer
	if err := runPackWithWriter(packCmd, &buf); err != nil {
		t.Fatalf("runPackWithWriter() error = %v", err)
	}

	destRoot := filepath.Join(dir, "popl-user987")
	got := treeFiles(t, destRoot)
	want := []string{
		"bathpack.manifest.json",
		"code/lab1/Main.java",
		"code/lab2/Main.java",
		"report.pdf",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("destination tree = %v, want %v", got, want)
	}

	if _, err := os.Stat(destRoot + ".zip"); err != nil {
		t.Errorf("archive should exist: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "packed 3 files into popl-user987") {
		t.Errorf("output should report the pack, got:\n%s", output)
	}
	if !strings.Contains(output, "popl-user987.zip") {
		t.Errorf("output should mention the archive, got:\n%s", output)
	}
}

func TestRunPack_DryRunTouchesNothing(t *testing.T) {
	dir := writeProject(t)
	pointAt(t, dir)
	dryRun = true

	var buf bytes.Buffer
	if err := runPackWithWriter(packCmd, &buf); err != nil {
		t.Fatalf("runPackWithWriter() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Would pack 3 entries into popl-user987") {
		t.Errorf("dry run should describe the plan, got:\n%s", buf.String())
	}

	if _, err := os.Stat(filepath.Join(dir, "popl-user987")); !os.IsNotExist(err) {
		t.Error("dry run should not create the destination")
	}
}

func TestRunPack_RefusesExistingDestination(t *testing.T) {
	dir := writeProject(t)
	pointAt(t, dir)

	if err := os.Mkdir(filepath.Join(dir, "popl-user987"), 0o755); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := runPackWithWriter(packCmd, &buf)
	if err == nil {
		t.Fatal("expected an error for an existing destination")
	}
	if !errors.Is(err, errors.ErrDestinationExists) {
		t.Errorf("error = %v, want ErrDestinationExists in chain", err)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should be an ExitError, got %T", err)
	}
	if exitErr.Code != errors.ExitUser {
		t.Errorf("exit code = %d, want %d", exitErr.Code, errors.ExitUser)
	}
}

func TestRunPack_OutputDir(t *testing.T) {
	dir := writeProject(t)
	pointAt(t, dir)

	out := t.TempDir()
	outputDir = out

	var buf bytes.Buffer
	if err := runPackWithWriter(packCmd, &buf); err != nil {
		t.Fatalf("runPackWithWriter() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "popl-user987")); err != nil {
		t.Errorf("destination should be created under --output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "popl-user987")); !os.IsNotExist(err) {
		t.Error("destination should not be created in the project directory")
	}
}

func TestRunPack_NoConfig(t *testing.T) {
	pointAt(t, t.TempDir())

	var buf bytes.Buffer
	err := runPackWithWriter(packCmd, &buf)
	if err == nil {
		t.Fatal("expected an error when no config exists")
	}
	if !errors.Is(err, errors.ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound in chain", err)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should be an ExitError, got %T", err)
	}
	if !strings.Contains(exitErr.Suggestion, "bathpack init") {
		t.Errorf("suggestion = %q, want it to point at init", exitErr.Suggestion)
	}
}

func TestRunPack_MissingSource(t *testing.T) {
	dir := writeProject(t)
	pointAt(t, dir)

	if err := os.Remove(filepath.Join(dir, "report", "report.pdf")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := runPackWithWriter(packCmd, &buf)
	if err == nil {
		t.Fatal("expected an error for a missing source")
	}
	if !errors.Is(err, errors.ErrSourceMissing) {
		t.Errorf("error = %v, want ErrSourceMissing in chain", err)
	}
}
