// Package cmd holds oaslint build metadata. Release builds set the
// variables with -ldflags "-X github.com/thoreinstein/oaslint/cmd.Version=...".
package cmd

import "fmt"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// BuildInfo renders the build metadata on one line.
func BuildInfo() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
