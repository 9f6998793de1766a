package buildtime

import (
	"runtime/debug"
	"strings"
)

// overwritten with -ldflags "-X github.com/opst/leadline/pkg/buildtime.version=..."
var (
	version  = "dev"
	revision = ""
)

func init() {
	version = strings.TrimSpace(version)
	revision = strings.TrimSpace(revision)
	if revision != "" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			revision = s.Value
		}
	}
}

// VERSION is the version of leadline when this binary has been built.
func VERSION() string {
	return version
}

func GIT_REVISION() string {
	if revision == "" {
		return "unknown"
	}
	return revision
}

func VersionString() string {
	return VERSION() + " (commit: " + GIT_REVISION() + ")"
}
