// Package pack copies a resolved file map into the destination tree,
// records a manifest of what was copied, and optionally zips the result.
//
// The one rule the whole package is built around: bathpack never
// overwrites. Destination files are created with O_EXCL, the destination
// root must not exist before a run, and neither may the archive. Any
// collision fails the run with ErrDestinationExists and leaves existing
// data untouched.
package pack
