package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what a pack run would copy",
	Long: `Plan resolves the configuration and prints every (source, destination)
pair a pack run would copy, without touching the filesystem.

This is the same resolution a real run uses: glob patterns are expanded
and placeholders substituted, so the output is an exact preview.`,
	Example: `  # Preview the current project
  bathpack plan

  # Preview another project
  bathpack plan --dir ~/uni/cw1`,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, _ []string) error {
	return runPlanWithWriter(cmd.OutOrStdout())
}

func runPlanWithWriter(w io.Writer) error {
	cfg, fm, err := resolve()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d entries -> %s", len(fm.Entries), cfg.Destination.Name)
	if cfg.Destination.Archive {
		fmt.Fprintf(w, " (archived as %s.zip)", cfg.Destination.Name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, planTable(fm))

	return nil
}
