package errors

import (
	stderrors "errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "wraps underlying message",
			err:  NewExitError(New("boom"), ExitSystem),
			want: "boom",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	wrapped := NewUserError(ErrInvalidConfig, "fix the config")

	if !stderrors.Is(wrapped, ErrInvalidConfig) {
		t.Error("errors.Is should find the sentinel through ExitError")
	}

	var exitErr *ExitError
	if !stderrors.As(wrapped, &exitErr) {
		t.Fatal("errors.As should find the ExitError")
	}
	if exitErr.Suggestion != "fix the config" {
		t.Errorf("Suggestion = %q, want %q", exitErr.Suggestion, "fix the config")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"plain error", New("boom"), ExitUser},
		{"user error", NewUserError(New("bad input"), ""), ExitUser},
		{"system error", NewSystemError(New("disk full"), ""), ExitSystem},
		{"wrapped exit error", Wrap(NewSystemError(New("io"), ""), "packing"), ExitSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewConfigError(t *testing.T) {
	err := NewConfigError(ErrInvalidConfig)
	if err.Code != ExitUser {
		t.Errorf("Code = %d, want %d", err.Code, ExitUser)
	}
	if err.Suggestion == "" {
		t.Error("config errors should carry a suggestion")
	}
}
