// Package build provides build-time information for the CLI application.
// Version is read from the VERSION file or set via ldflags during build.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Overridable via ldflags:
// -X github.com/tacogips/create-bun-stack/internal/build.version=x.y.z
var (
	version   string
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Version returns the application version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// GitCommit returns the commit the binary was built from.
func GitCommit() string {
	return gitCommit
}

// BuildDate returns the build timestamp.
func BuildDate() string {
	return buildDate
}
