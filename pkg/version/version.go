// Package version holds build information injected at link time via
// -ldflags.
package version

// Build metadata, overridden at build time:
//
//	go build -ldflags "-X github.com/bookradar/bookradar-api/pkg/version.Version=1.2.3"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
