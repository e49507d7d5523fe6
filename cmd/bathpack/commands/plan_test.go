package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlanCommand_Metadata(t *testing.T) {
	if planCmd.Use != "plan" {
		t.Errorf("Use = %q, want %q", planCmd.Use, "plan")
	}

	if planCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestRunPlan_PrintsResolvedEntries(t *testing.T) {
	dir := writeProject(t)
	pointAt(t, dir)

	var buf bytes.Buffer
	if err := runPlanWithWriter(&buf); err != nil {
		t.Fatalf("runPlanWithWriter() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"3 entries -> popl-user987",
		"(archived as popl-user987.zip)",
		"labs",
		"report.pdf",
		"code",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("plan output missing %q\nGot:\n%s", want, output)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "popl-user987")); !os.IsNotExist(err) {
		t.Error("plan should not create the destination")
	}
}

func TestRunPlan_NoConfig(t *testing.T) {
	pointAt(t, t.TempDir())

	var buf bytes.Buffer
	if err := runPlanWithWriter(&buf); err == nil {
		t.Fatal("expected an error when no config exists")
	}
}
