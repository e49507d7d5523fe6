package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/sorenmortensen/bathpack/internal/errors"
)

// ConfigFileName is the name of the per-project configuration file.
const ConfigFileName = "bathpack.toml"

// AppName is the directory name used under the XDG config home.
const AppName = "bathpack"

// ProjectConfig returns the path to the project configuration file inside
// dir. It does not check for existence.
func ProjectConfig(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// UserConfig returns the path to the user-level configuration file,
// typically ~/.config/bathpack/bathpack.toml. Destination specs can be
// distributed per coursework while the username lives here.
func UserConfig() string {
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName)
}

// FindConfig locates the configuration file for a run. If explicit is
// non-empty it is used verbatim and must exist. Otherwise the project
// config in dir is used.
func FindConfig(dir, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.Wrapf(errors.ErrConfigNotFound, "%s", explicit)
			}
			return "", errors.Wrapf(err, "checking %s", explicit)
		}
		return explicit, nil
	}

	candidate := ProjectConfig(dir)
	if _, err := os.Stat(candidate); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(errors.ErrConfigNotFound, "no %s in %s", ConfigFileName, dir)
		}
		return "", errors.Wrapf(err, "checking %s", candidate)
	}
	return candidate, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
// Paths without a leading ~ are returned unchanged, as is the input when
// the home directory cannot be determined.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
