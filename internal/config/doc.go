// Package config parses and resolves the bathpack.toml configuration file.
//
// # Configuration File
//
// A project's bathpack.toml names sources (files, or folders with glob
// patterns), a destination tree, and user information:
//
//	[user]
//	username = "user987"
//
//	[sources]
//	labs = { path = "labs", pattern = "**/*.java" }
//	report = "report/report.pdf"
//
//	[destination]
//	name = "cw1-{username}"
//	archive = true
//
//	[destination.locations]
//	labs = "code"
//	report = "."
//
// The top-level `username` key is accepted as a legacy spelling of
// [user] username. The [sources] and [destination.locations] tables may be
// empty but must be present, and every key in one must appear in the other.
//
// # Placeholders
//
// Values may reference {username} and, outside destination.name itself,
// {root} (the resolved destination name). [Config.Interpolate] substitutes
// these textually once after parsing; unresolved or malformed {...} tokens
// are errors, so a resolved config never contains one.
//
// # Split configs
//
// A project config distributed to a group may omit [user] entirely; [Load]
// then reads the username from the user-level config under the XDG config
// home, and BATHPACK_USERNAME overrides both.
package config
