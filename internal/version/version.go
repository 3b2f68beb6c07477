// Package version reports the relmeta build version.
package version

import "runtime/debug"

// Version is set at build time via
// -ldflags "-X github.com/indaco/relmeta/internal/version.Version=1.2.3".
var Version = ""

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the injected version, the module version recorded by
// "go install", or "dev".
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}
