// Package errors provides error handling conventions for the bathpack CLI.
//
// This package defines sentinel errors for common failure conditions, an
// ExitError type for CLI exit code handling, and thin re-exports of the
// cockroachdb/errors constructors so the rest of the codebase imports a
// single errors package.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrDestinationExists) {
//	    // a copy target already existed; nothing was overwritten
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. main extracts the code via [ExitCode]:
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Check bathpack.toml")
//	os.Exit(errors.ExitCode(err))
package errors
