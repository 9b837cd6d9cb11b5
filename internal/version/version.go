// Package version carries build metadata.
package version

import "fmt"

// Version is set via build-time ldflags in release builds:
// go build -ldflags "-X git.home.luguber.info/inful/mdbuild/internal/version.Version=v1.0.0".
var Version = "dev"

// Additional build metadata, also ldflags-populated.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns a single-line human-readable version summary.
func String() string {
	return fmt.Sprintf("mdbuild %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
