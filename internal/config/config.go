package config

import (
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/sorenmortensen/bathpack/internal/errors"
	"github.com/sorenmortensen/bathpack/pkg/fileutil"
)

// Parse errors for required configuration sections and keys. All of them
// mark the configuration invalid; commands convert them to user errors.
var (
	// ErrMissingUsername indicates neither [user] username nor the
	// top-level username key is present.
	ErrMissingUsername = errors.New("missing required key: username")

	// ErrMissingSources indicates the [sources] table is absent.
	ErrMissingSources = errors.New("missing required table: [sources]")

	// ErrMissingDestination indicates the [destination] table is absent.
	ErrMissingDestination = errors.New("missing required table: [destination]")

	// ErrMissingDestinationName indicates destination.name is absent.
	ErrMissingDestinationName = errors.New("missing required key: destination.name")

	// ErrMissingDestinationArchive indicates destination.archive is absent.
	ErrMissingDestinationArchive = errors.New("missing required key: destination.archive")

	// ErrMissingLocations indicates the [destination.locations] table is
	// absent. An empty table is fine; a missing one is not.
	ErrMissingLocations = errors.New("missing required table: [destination.locations]")
)

// Config specifies source and destination locations for files, and user
// information. It is parsed once, interpolated once, and read-only for the
// rest of a run.
type Config struct {
	// User identifies the person packing, currently just a username.
	User User

	// Sources maps source names to locations (a file or a folder with a
	// glob pattern).
	Sources map[string]Source

	// Destination describes the tree the sources are copied into.
	Destination Destination
}

// User holds user information referenced by placeholders.
type User struct {
	Username string
}

// Source is a location files are copied from. A bare string in the config
// is a file (or a directory copied as-is); a {path, pattern} table is a
// folder whose contents are glob-matched.
type Source struct {
	Path    string
	Pattern string
}

// IsGlob reports whether the source selects folder contents by pattern
// rather than naming a single file or directory.
func (s Source) IsGlob() bool {
	return s.Pattern != ""
}

// Destination is the final destination of a bathpack run.
type Destination struct {
	// Name of the destination folder and, when Archive is set, the basis
	// for the archive name. May contain a {username} placeholder.
	Name string

	// Archive indicates whether the destination folder is zipped.
	Archive bool

	// Locations maps source names to relative paths under the destination
	// root.
	Locations map[string]string
}

// SourceKeys returns the source names in sorted order, so every traversal
// of the config is deterministic.
func (c *Config) SourceKeys() []string {
	keys := make([]string, 0, len(c.Sources))
	for k := range c.Sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// rawConfig mirrors the TOML document with pointer fields so a missing key
// can be told apart from a zero value. Table presence cannot use the same
// trick: go-toml leaves a map field nil for an empty table header, so the
// has* flags are filled from a generic decode of the whole document, where
// an empty table does appear as an empty map.
type rawConfig struct {
	Username    *string         `toml:"username"`
	User        *rawUser        `toml:"user"`
	Sources     map[string]any  `toml:"sources"`
	Destination *rawDestination `toml:"destination"`

	hasSources     bool
	hasDestination bool
	hasLocations   bool
}

type rawUser struct {
	Username *string `toml:"username"`
}

type rawDestination struct {
	Name      *string           `toml:"name"`
	Archive   *bool             `toml:"archive"`
	Locations map[string]string `toml:"locations"`
}

// Parse parses a Config from TOML data. Every required section must be
// present: the username (top-level or under [user]), the [sources] table,
// and a complete [destination] with a [destination.locations] table. Empty
// tables are allowed, missing ones are not.
func Parse(data []byte) (*Config, error) {
	raw, err := parseRaw(data)
	if err != nil {
		return nil, err
	}

	cfg, err := raw.build()
	if err != nil {
		return nil, err
	}

	if cfg.User.Username == "" {
		return nil, ErrMissingUsername
	}
	return cfg, nil
}

// ParseFile parses a Config from a TOML file at path.
func ParseFile(path string) (*Config, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

func parseRaw(data []byte) (*rawConfig, error) {
	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding TOML")
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding TOML")
	}
	_, raw.hasSources = doc["sources"]
	if dest, ok := doc["destination"].(map[string]any); ok {
		raw.hasDestination = true
		_, raw.hasLocations = dest["locations"]
	}

	return &raw, nil
}

// build converts the raw document into a Config, enforcing every required
// section except the username, which Load may supply from the user-level
// config or the environment.
func (raw *rawConfig) build() (*Config, error) {
	cfg := &Config{}

	// [user] username wins over the legacy top-level key.
	switch {
	case raw.User != nil && raw.User.Username != nil:
		cfg.User.Username = *raw.User.Username
	case raw.Username != nil:
		cfg.User.Username = *raw.Username
	}

	if !raw.hasSources {
		return nil, ErrMissingSources
	}
	cfg.Sources = make(map[string]Source, len(raw.Sources))
	for name, v := range raw.Sources {
		src, err := parseSource(v)
		if err != nil {
			return nil, errors.Wrapf(err, "source %q", name)
		}
		cfg.Sources[name] = src
	}

	if !raw.hasDestination {
		return nil, ErrMissingDestination
	}
	dest := raw.Destination
	if dest == nil {
		// Present but empty: [destination] with no keys at all.
		dest = &rawDestination{}
	}
	if dest.Name == nil {
		return nil, ErrMissingDestinationName
	}
	if dest.Archive == nil {
		return nil, ErrMissingDestinationArchive
	}
	if !raw.hasLocations {
		return nil, ErrMissingLocations
	}
	locations := dest.Locations
	if locations == nil {
		locations = map[string]string{}
	}
	cfg.Destination = Destination{
		Name:      *dest.Name,
		Archive:   *dest.Archive,
		Locations: locations,
	}

	return cfg, nil
}

// parseSource normalizes the untagged source union: a bare string is a
// file path, a table must carry string path and pattern keys.
func parseSource(v any) (Source, error) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return Source{}, errors.New("path must not be empty")
		}
		return Source{Path: val}, nil

	case map[string]any:
		path, ok := val["path"].(string)
		if !ok || path == "" {
			return Source{}, errors.New("folder source requires a string path")
		}
		pattern, ok := val["pattern"].(string)
		if !ok || pattern == "" {
			return Source{}, errors.New("folder source requires a string pattern")
		}
		for key := range val {
			if key != "path" && key != "pattern" {
				return Source{}, errors.Newf("unknown key %q in folder source", key)
			}
		}
		return Source{Path: path, Pattern: pattern}, nil

	default:
		return Source{}, errors.Newf("must be a path string or a {path, pattern} table, got %T", v)
	}
}
