// Package commands implements the CLI commands for bathpack.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sorenmortensen/bathpack/cmd"
	"github.com/sorenmortensen/bathpack/internal/errors"
	"github.com/sorenmortensen/bathpack/internal/logging"
	"github.com/sorenmortensen/bathpack/internal/paths"
)

// dirFlag holds the value of the --dir flag: the project directory to run in.
var dirFlag string

// configFlag holds the value of the --config flag: an explicit config path.
var configFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", ".",
		"project directory containing bathpack.toml")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"path to config file (default: bathpack.toml in the project directory)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("bathpack version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "bathpack",
	Short: "Package coursework files for submission",
	Long: `bathpack copies a configured set of files and folders into a destination
tree and optionally bundles that tree into a zip archive.

It reads a bathpack.toml describing named sources (files, or folders with
glob patterns) and the destination each source maps to. Names can reference
{username} and {root} placeholders. bathpack never overwrites: if any
destination file, the destination folder, or the archive already exists,
the run stops and nothing is clobbered.

Running bathpack with no subcommand performs a full pack run, equivalent
to 'bathpack pack'.`,
	Example: `  # Pack the current directory
  bathpack

  # Pack another project
  bathpack --dir ~/uni/cw1

  # Preview what would be copied
  bathpack plan

  # Check the config without touching any files
  bathpack validate`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Shell-less invocations (aliases, cron) can hand us literal ~
		// paths; expand them once here so every command sees real paths.
		dirFlag = paths.ExpandHome(dirFlag)
		configFlag = paths.ExpandHome(configFlag)
		return setupLogging(cmd)
	},
	RunE: runPack,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("BATHPACK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command. Errors are printed here, with their
// suggestion when they carry one, so main only has to map the exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("hint:"), exitErr.Suggestion)
		}
	}
	return err
}
