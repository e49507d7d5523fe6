package config

import (
	"strings"

	"github.com/sorenmortensen/bathpack/internal/errors"
)

// Placeholder variable names available in configuration values.
const (
	// VarUsername is replaced with the configured username.
	VarUsername = "username"

	// VarRoot is replaced with the resolved destination root name. It is
	// only available after destination.name itself has been resolved, so
	// destination.name must not reference it.
	VarRoot = "root"
)

// Expand substitutes {field} placeholders in s with values from vars.
// Doubled braces ({{ and }}) produce literal braces. An unterminated
// placeholder, a stray closing brace, or a field not present in vars is an
// ErrUnresolvedPlaceholder. The result never contains an unresolved
// {...} token.
func Expand(s string, vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				return "", errors.Wrapf(errors.ErrUnresolvedPlaceholder,
					"unterminated placeholder in %q", s)
			}
			name := s[i+1 : i+1+end]
			val, ok := vars[name]
			if !ok {
				return "", errors.Wrapf(errors.ErrUnresolvedPlaceholder,
					"unknown field {%s} in %q", name, s)
			}
			b.WriteString(val)
			i += end + 1
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", errors.Wrapf(errors.ErrUnresolvedPlaceholder,
				"stray '}' in %q", s)
		default:
			b.WriteByte(s[i])
		}
	}

	return b.String(), nil
}

// Interpolate resolves every placeholder in the config in place: first
// destination.name against {username}, then all source paths, patterns,
// and destination locations against {username} and {root}. It is called
// once after parsing; afterwards the config contains no {...} tokens.
func (c *Config) Interpolate() error {
	vars := map[string]string{
		VarUsername: c.User.Username,
	}

	name, err := Expand(c.Destination.Name, vars)
	if err != nil {
		return errors.Wrap(err, "destination.name")
	}
	c.Destination.Name = name
	vars[VarRoot] = name

	for key, src := range c.Sources {
		if src.Path, err = Expand(src.Path, vars); err != nil {
			return errors.Wrapf(err, "source %q path", key)
		}
		if src.Pattern, err = Expand(src.Pattern, vars); err != nil {
			return errors.Wrapf(err, "source %q pattern", key)
		}
		c.Sources[key] = src
	}

	for key, loc := range c.Destination.Locations {
		if c.Destination.Locations[key], err = Expand(loc, vars); err != nil {
			return errors.Wrapf(err, "destination location %q", key)
		}
	}

	return nil
}
