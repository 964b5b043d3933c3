// Package version holds the prettysql build version.
package version

// Version is printed by --version. It's set via ldflags at build time.
var Version = "v0.0.0-dev" //nolint:gochecknoglobals // Set by ldflags at build time.
