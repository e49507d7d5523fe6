// Package filemap resolves configured sources into the concrete list of
// (source path, destination path) pairs a pack run will copy.
//
// Resolution is purely a read of the filesystem: nothing is copied or
// created here, which is what lets `bathpack plan` and --dry-run show an
// exact preview of a run.
package filemap
