// Package version reports build information for binaries and the probe API.
package version

import (
	"runtime"
	"runtime/debug"

	"langshim/internal/core/engine"
)

// BuildInfo holds version information about a build
type BuildInfo struct {
	Version   string   `json:"version" msgpack:"version"`
	Commit    string   `json:"commit" msgpack:"commit"`
	Date      string   `json:"date" msgpack:"date"`
	GoVersion string   `json:"go_version" msgpack:"go_version"`
	Engines   []string `json:"engines" msgpack:"engines"`
}

// Set via -ldflags "-X 'langshim/internal/core/version.version=v0.1.0'
// -X 'langshim/internal/core/version.commit=abcd' -X 'langshim/internal/core/version.date=2026-10-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// readBuildInfo is a seam for tests
var readBuildInfo = debug.ReadBuildInfo

// Info returns the build information. Without ldflags the commit and date
// come from the VCS stamp the go tool embeds, when present
func Info() BuildInfo {
	bi := BuildInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Engines:   engine.Names(),
	}
	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && bi.Commit == "none":
				bi.Commit = s.Value
			case s.Key == "vcs.time" && bi.Date == "unknown":
				bi.Date = s.Value
			}
		}
	}
	return bi
}
