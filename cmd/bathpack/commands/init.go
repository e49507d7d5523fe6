package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sorenmortensen/bathpack/internal/errors"
	"github.com/sorenmortensen/bathpack/internal/paths"
)

// initUsername holds the value of the --username flag.
var initUsername string

func init() {
	initCmd.Flags().StringVarP(&initUsername, "username", "u", "",
		"username to write into the [user] section")

	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter bathpack.toml",
	Long: `Init creates a starter bathpack.toml in the project directory, ready to
be edited with the project's sources and destinations.

Like every other bathpack operation it refuses to overwrite: if a
bathpack.toml already exists, init fails and leaves it alone.`,
	Example: `  # Create bathpack.toml in the current directory
  bathpack init --username user987

  # Create it in another project
  bathpack init --dir ~/uni/cw1 --username user987`,
	RunE: runInit,
}

const configTemplate = `# bathpack configuration
# https://github.com/sorenmortensen/bathpack

[user]
username = %q

# Each source names a file, a directory, or a folder with a glob pattern.
[sources]
# labs = { path = "labs", pattern = "**.java" }
# report = "report/report.pdf"

[destination]
name = "submission-{username}"
archive = true

# Every source key needs a location here: a path relative to the
# destination root ("." for the root itself).
[destination.locations]
# labs = "code"
# report = "."
`

func runInit(cmd *cobra.Command, _ []string) error {
	return runInitWithWriter(cmd.OutOrStdout())
}

func runInitWithWriter(w io.Writer) error {
	path := paths.ProjectConfig(dirFlag)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrDestinationExists, "%s", path),
				"Edit the existing config instead, or move it aside")
		}
		return errors.NewSystemError(errors.Wrapf(err, "creating %s", path), "")
	}
	defer f.Close()

	username := initUsername
	if username == "" {
		username = "your-username"
	}

	if _, err := fmt.Fprintf(f, configTemplate, username); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "writing %s", path), "")
	}
	if err := f.Close(); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "closing %s", path), "")
	}

	fmt.Fprintf(w, "%s wrote %s\n", color.GreenString("✓"), path)
	if initUsername == "" {
		fmt.Fprintln(w, "Edit the [user] section to set your username.")
	}
	return nil
}
