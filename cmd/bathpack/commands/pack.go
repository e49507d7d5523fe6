package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sorenmortensen/bathpack/internal/config"
	"github.com/sorenmortensen/bathpack/internal/errors"
	"github.com/sorenmortensen/bathpack/internal/filemap"
	"github.com/sorenmortensen/bathpack/internal/logging"
	"github.com/sorenmortensen/bathpack/internal/pack"
	"github.com/sorenmortensen/bathpack/internal/paths"
)

// dryRun holds the value of the --dry-run flag.
var dryRun bool

// outputDir holds the value of the --output flag.
var outputDir string

func init() {
	packCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false,
		"resolve and print the plan without copying anything")
	packCmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"directory to create the destination tree in (default: project directory)")

	rootCmd.AddCommand(packCmd)
}

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Copy configured sources into the destination tree",
	Long: `Pack resolves bathpack.toml, copies every configured source into the
destination tree, writes a manifest of what was copied, and zips the tree
when destination.archive is set.

Nothing is ever overwritten. If the destination folder, any file inside
it, or the archive already exists, the run stops before damage is done.`,
	Example: `  # Pack the current directory
  bathpack pack

  # See the plan without copying
  bathpack pack --dry-run

  # Create the destination tree somewhere else
  bathpack pack --output ~/submissions`,
	RunE: runPack,
}

func runPack(cmd *cobra.Command, _ []string) error {
	return runPackWithWriter(cmd, cmd.OutOrStdout())
}

func runPackWithWriter(cmd *cobra.Command, w io.Writer) error {
	cfg, fm, err := resolve()
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintf(w, "Would pack %d entries into %s:\n\n", len(fm.Entries), cfg.Destination.Name)
		fmt.Fprintln(w, planTable(fm))
		return nil
	}

	opts := []pack.Option{pack.WithLogger(logging.FromContext(cmd.Context()))}
	if outputDir != "" {
		opts = append(opts, pack.WithOutputDir(paths.ExpandHome(outputDir)))
	}

	manifest, err := pack.NewPacker(opts...).Run(cfg, fm)
	if err != nil {
		if errors.Is(err, errors.ErrDestinationExists) {
			return errors.NewUserError(err,
				"Remove the existing destination or change destination.name; bathpack never overwrites")
		}
		return errors.NewSystemError(err, "")
	}

	fmt.Fprintf(w, "%s packed %d files into %s\n",
		color.GreenString("✓"), len(manifest.Files), manifest.Name)
	if manifest.Archive {
		fmt.Fprintf(w, "%s wrote %s.zip\n", color.GreenString("✓"), manifest.Name)
	}

	return nil
}

// resolve loads, validates, and interpolates the config, then builds the
// file map. Shared by pack and plan.
func resolve() (*config.Config, *filemap.FileMap, error) {
	cfg, err := config.Load(dirFlag, configFlag)
	if err != nil {
		if errors.Is(err, errors.ErrConfigNotFound) {
			return nil, nil, errors.NewUserError(err, "Run: bathpack init")
		}
		return nil, nil, errors.NewConfigError(err)
	}

	fm, err := filemap.Build(cfg, dirFlag)
	if err != nil {
		switch {
		case errors.Is(err, errors.ErrSourceMissing),
			errors.Is(err, errors.ErrNoMatches),
			errors.Is(err, errors.ErrBadPattern):
			return nil, nil, errors.NewUserError(err, "Check the [sources] paths and patterns in bathpack.toml")
		}
		return nil, nil, errors.NewSystemError(err, "")
	}

	return cfg, fm, nil
}
