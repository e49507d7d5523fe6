package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/sorenmortensen/bathpack/internal/errors"
	"github.com/sorenmortensen/bathpack/internal/paths"
	"github.com/sorenmortensen/bathpack/pkg/fileutil"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// BATHPACK_USERNAME.
const EnvPrefix = "BATHPACK"

// Load reads, resolves, and validates the configuration for a run.
//
// The project config is found in dir, or at explicit when given. A project
// config distributed without a [user] section picks up the username from
// the user-level config, and BATHPACK_USERNAME overrides both. The
// returned config is fully interpolated and read-only from here on.
func Load(dir, explicit string) (*Config, error) {
	path, err := paths.FindConfig(dir, explicit)
	if err != nil {
		return nil, err
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	raw, err := parseRaw(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	cfg, err := raw.build()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	if cfg.User.Username == "" {
		cfg.User.Username = userConfigUsername()
	}
	if username := envUsername(); username != "" {
		cfg.User.Username = username
	}
	if cfg.User.Username == "" {
		return nil, errors.Wrapf(ErrMissingUsername,
			"not in %s, %s, or %s_USERNAME", path, paths.UserConfig(), EnvPrefix)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errors.Wrapf(errors.Join(errs...), "validating %s", path)
	}

	if err := cfg.Interpolate(); err != nil {
		return nil, errors.Wrapf(err, "resolving %s", path)
	}

	return cfg, nil
}

// envUsername returns the username override from the environment, or "".
func envUsername() string {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v.GetString("username")
}

// userConfigUsername returns the username from the user-level config, or ""
// when the file is absent or carries no username. Errors here are
// deliberately swallowed: the user-level config is a fallback, and Load
// reports the missing username with all the places it looked.
func userConfigUsername() string {
	data, err := os.ReadFile(paths.UserConfig())
	if err != nil {
		return ""
	}

	raw, err := parseRaw(data)
	if err != nil {
		return ""
	}
	switch {
	case raw.User != nil && raw.User.Username != nil:
		return *raw.User.Username
	case raw.Username != nil:
		return *raw.Username
	}
	return ""
}
