package version

import (
	"fmt"
	"runtime/debug"
)

var (
	VersionPrefix = "dev"     // Set via -ldflags
	VersionDate   = "edge"    // Set via -ldflags - Value should be: YYYYMMDD
	CommitHash    = "unknown" // Set via -ldflags
)

// Print returns the version information
func Print() string {
	commit := CommitHash
	if commit == "unknown" {
		commit = vcsRevision()
	}
	return fmt.Sprintf(`%s-%s-%s`, VersionPrefix, VersionDate, commit)
}

// vcsRevision falls back to the revision stamped by `go build` when no
// commit was injected.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return "unknown"
}
