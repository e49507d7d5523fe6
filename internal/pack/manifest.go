package pack

import (
	"io/fs"
	"time"
)

// ManifestName is the file name the run manifest is written under, inside
// the destination root.
const ManifestName = "bathpack.manifest.json"

// ManifestVersion is the current manifest schema version.
const ManifestVersion = 1

// Manifest records what a pack run produced.
type Manifest struct {
	// Version is the manifest schema version.
	Version int `json:"version"`

	// CreatedAt is when the run happened, in UTC.
	CreatedAt time.Time `json:"created_at"`

	// Name is the resolved destination root name.
	Name string `json:"name"`

	// Archive indicates whether a zip was written next to the root.
	Archive bool `json:"archive"`

	// BathpackVersion is the version of bathpack that produced the run.
	BathpackVersion string `json:"bathpack_version"`

	// Files lists every copied file.
	Files []File `json:"files"`
}

// File describes one copied file.
type File struct {
	// Source is the origin path, relative to the project root.
	Source string `json:"source"`

	// Dest is the copied path, relative to the destination root.
	Dest string `json:"dest"`

	// SHA256 is the hex digest of the file content.
	SHA256 string `json:"sha256"`

	// Mode is the file mode the copy was created with.
	Mode fs.FileMode `json:"mode"`

	// Size is the content length in bytes.
	Size int64 `json:"size"`
}
