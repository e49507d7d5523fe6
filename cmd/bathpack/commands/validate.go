package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sorenmortensen/bathpack/internal/config"
	"github.com/sorenmortensen/bathpack/internal/errors"
	"github.com/sorenmortensen/bathpack/internal/paths"
	"github.com/sorenmortensen/bathpack/pkg/fileutil"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration without touching any files",
	Long: `Validate parses bathpack.toml and reports every problem it finds:
missing required sections, source keys without a destination location (and
vice versa), malformed destination paths, and placeholders that cannot be
resolved.`,
	Example: `  # Validate the current project
  bathpack validate

  # Validate a distributed config before using it
  bathpack validate --config cw1.toml`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	return runValidateWithWriter(cmd.OutOrStdout())
}

func runValidateWithWriter(w io.Writer) error {
	path, err := paths.FindConfig(dirFlag, configFlag)
	if err != nil {
		return errors.NewUserError(err, "Run: bathpack init")
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	cfg, err := config.Parse(data)
	if err != nil {
		// A distributed config may omit [user] on purpose; the username
		// then comes from the user-level config or BATHPACK_USERNAME.
		if errors.Is(err, config.ErrMissingUsername) {
			return errors.NewUserError(errors.Wrapf(err, "parsing %s", path),
				"Add a [user] section, set BATHPACK_USERNAME, or put the username in "+paths.UserConfig())
		}
		return errors.NewConfigError(errors.Wrapf(err, "parsing %s", path))
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(w, "%s %v\n", color.RedString("✗"), e)
		}
		return errors.NewUserError(
			errors.Newf("%s: %d problem(s) found", path, len(errs)), "")
	}

	fmt.Fprintf(w, "%s %s is valid: %d source(s), destination %q\n",
		color.GreenString("✓"), path, len(cfg.Sources), cfg.Destination.Name)
	return nil
}
