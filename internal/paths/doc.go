// Package paths resolves the locations of bathpack configuration files.
//
// A project carries its own bathpack.toml in the project root. A user-level
// config under the XDG config home can supply the [user] section when a
// distributed project config omits it.
package paths
