package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are stamped with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/heartmarshall/casedesk-backend/internal/app.Version=1.4.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
	Modified  bool
}

// Build returns the stamped build info. Fields left at their defaults are
// filled from the VCS metadata the Go toolchain embeds, when present.
func Build() BuildInfo {
	return buildInfo(debug.ReadBuildInfo)
}

func buildInfo(read func() (*debug.BuildInfo, bool)) BuildInfo {
	b := BuildInfo{Version: Version, Commit: Commit, BuildTime: BuildTime}
	bi, ok := read()
	if !ok {
		return b
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "unknown" {
				b.Commit = s.Value
				if len(b.Commit) > 12 {
					b.Commit = b.Commit[:12]
				}
			}
		case "vcs.time":
			if b.BuildTime == "unknown" {
				b.BuildTime = s.Value
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

func (b BuildInfo) String() string {
	commit := b.Commit
	if b.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, commit, b.BuildTime)
}

// BuildVersion is Build().String(), used in startup logs and /health.
func BuildVersion() string {
	return Build().String()
}
