// Package version reports the joblist build version.
package version

import "runtime/debug"

// version is set at build time with
// -ldflags "-X github.com/placementhub/joblist/pkg/version.version=v1.2.3".
var version = "" //nolint:gochecknoglobals // Set via ldflags.

const devVersion = "dev"

// GetVersion returns the ldflags version, the module version recorded in the
// build info, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}
