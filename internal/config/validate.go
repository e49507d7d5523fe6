package config

import (
	"path/filepath"
	"strings"

	"github.com/sorenmortensen/bathpack/internal/errors"
)

// Validate checks a parsed Config for internal consistency:
//
//   - every [sources] key has a matching [destination.locations] key,
//   - every [destination.locations] key has a matching [sources] key,
//   - destination.name interpolates cleanly with the username,
//   - destination paths are well-formed relative paths.
//
// Returns nil if valid, or a slice of all validation errors found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.User.Username == "" {
		errs = append(errs, ErrMissingUsername)
	}

	for _, key := range cfg.SourceKeys() {
		if _, ok := cfg.Destination.Locations[key]; !ok {
			errs = append(errs, &KeyError{
				Key:     key,
				Section: "sources",
				Missing: "destination.locations",
			})
		}
	}

	for key := range cfg.Destination.Locations {
		if _, ok := cfg.Sources[key]; !ok {
			errs = append(errs, &KeyError{
				Key:     key,
				Section: "destination.locations",
				Missing: "sources",
			})
		}
	}

	if cfg.Destination.Name == "" {
		errs = append(errs, errors.New("destination.name must not be empty"))
	} else if _, err := Expand(cfg.Destination.Name, map[string]string{
		VarUsername: cfg.User.Username,
	}); err != nil {
		errs = append(errs, errors.Wrap(err, "destination.name"))
	}

	for key, loc := range cfg.Destination.Locations {
		if err := validatePath(loc); err != nil {
			errs = append(errs, &PathError{Key: key, Path: loc, Err: err})
		}
	}

	return errs
}

// validatePath checks that a destination location is a well-formed path
// that stays inside the destination root. Existence is not checked.
func validatePath(path string) error {
	if path == "" {
		return errors.New("path must not be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return errors.New("path contains a null byte")
	}
	if filepath.IsAbs(path) {
		return errors.New("path must be relative")
	}

	cleaned := filepath.ToSlash(filepath.Clean(path))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return errors.New("path escapes the destination root")
	}
	return nil
}

// KeyError reports a source/location key present in one table but missing
// from its counterpart.
type KeyError struct {
	Key     string
	Section string
	Missing string
}

func (e *KeyError) Error() string {
	return "key `" + e.Key + "` from [" + e.Section + "] does not exist in [" + e.Missing + "]"
}

func (e *KeyError) Unwrap() error {
	return errors.ErrInvalidConfig
}

// PathError reports a malformed destination location path.
type PathError struct {
	Key  string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return "location `" + e.Key + "`: " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
