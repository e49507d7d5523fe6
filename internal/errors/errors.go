package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for the bathpack CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid configuration, bad
	// flag usage, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrConfigNotFound indicates no bathpack.toml could be located.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates configuration parsing or validation failed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnresolvedPlaceholder indicates a {field} placeholder could not be
	// substituted.
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")

	// ErrSourceMissing indicates a configured source path does not exist.
	ErrSourceMissing = errors.New("source path does not exist")

	// ErrBadPattern indicates a source glob pattern is malformed.
	ErrBadPattern = errors.New("invalid glob pattern")

	// ErrNoMatches indicates a source glob pattern matched no files.
	ErrNoMatches = errors.New("pattern matched no files")

	// ErrDestinationExists indicates a copy or archive target already
	// exists. bathpack never overwrites.
	ErrDestinationExists = errors.New("destination already exists")
)

// Re-exports so callers get wrapping and inspection from a single import.
var (
	New    = errors.New
	Newf   = errors.Newf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// ExitError wraps an error with an exit code and optional suggestion for the
// CLI. It implements the error interface and supports unwrapping via
// errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit
// code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard
// suggestion pointing at the validate command.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: bathpack validate",
	}
}

// Error returns the error message from the underlying error. If the
// underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As to
// examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from an error chain. A nil error maps to
// ExitSuccess; an error without an ExitError in its chain maps to ExitUser.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
