// Package buildinfo exposes the version metadata stamped into release
// binaries.
package buildinfo

// Overridden with -ldflags "-X ..." by release builds; the defaults show
// up when running from source.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
