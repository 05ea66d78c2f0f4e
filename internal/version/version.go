// Package version provides build version information.
package version

import "runtime"

var (
	// Version is the semantic version (set by build flags)
	Version = "dev"

	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"

	// GoVersion is the Go version used to build
	GoVersion = runtime.Version()
)

// String is the one-line form printed by --version.
func String() string {
	return Version + " (" + GitCommit + ", " + GoVersion + ")"
}
