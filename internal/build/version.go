// Package build provides version and build information for fizzy.
// It has no dependencies on other internal packages.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Info returns a multi-line summary of the build, one field per line.
func Info() string {
	return fmt.Sprintf("fizzy %s\ncommit: %s\nbuilt: %s\ngo: %s\nplatform: %s/%s\n",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
