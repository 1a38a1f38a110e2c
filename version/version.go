// Package version exposes build identity, stamped at build time via
// -ldflags or recovered from the toolchain's embedded VCS info.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time with -ldflags "-X .../version.Version=v1.2.3 ...".
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info is the build identity reported by GET /info.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	IsDirty   bool   `json:"is_dirty"`
}

// Get assembles build information, preferring -ldflags values and falling
// back to what the Go toolchain embedded.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" && len(setting.Value) >= 7 {
					info.GitCommit = setting.Value[:7]
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = setting.Value
				}
			}
		}
	}

	if info.BuildTime == "" {
		info.BuildTime = time.Now().UTC().Format(time.RFC3339)
	}
	return info
}

// Short returns a compact version string for logs.
func Short() string {
	info := Get()
	switch {
	case info.GitCommit == "":
		return info.Version
	case info.IsDirty:
		return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
	default:
		return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
	}
}
