// Package cmd holds the build identity of a bathpack binary, injected via
// ldflags by release builds. The values end up in `bathpack version`
// output and in the bathpack_version field of run manifests, so a packed
// tree records which build produced it.
package cmd

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
