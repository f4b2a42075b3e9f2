// Package version provides information about the build version of the binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about a build.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// String renders a one line summary for --version output
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", b.Service, b.Version, b.Commit, b.Date, b.GoVersion)
}

// Info returns the build information for service. The version, commit and date
// variables are set at build time using -ldflags:
//
//	-X 'termswap/internal/core/version.version=v0.1.0' -X 'termswap/internal/core/version.commit=abcd'
//
// Without ldflags the module version recorded by the toolchain is used when present
func Info(service string) BuildInfo {
	v := version
	if v == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = bi.Main.Version
		}
	}
	return BuildInfo{
		Service:   service,
		Version:   v,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
