// Package version reports the build version of apihelper.
package version

import (
	"fmt"

	"github.com/example/apihelper/internal/core/stub"
)

// These variables are set at build time via ldflags:
//
//	-X github.com/example/apihelper/internal/version.Version=v1.2.0
//	-X github.com/example/apihelper/internal/version.Commit=$(git rev-parse HEAD)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line shown by --version.
func String() string {
	return fmt.Sprintf("apihelper %s (commit: %s, built: %s, templates: v%d)", Version, shortCommit(), BuildTime, stub.TokenSetVersion)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
