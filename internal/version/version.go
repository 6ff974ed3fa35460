// Package version holds build information. Values can be set at link time:
// go build -ldflags "-X firstelem/internal/version.Version=1.0.0 -X firstelem/internal/version.Commit=abc123"
package version

import "runtime/debug"

var (
	// Version is the semantic version of firstelem
	Version = "1.0.0"

	// Commit is the git commit hash
	Commit = ""

	// BuildDate is the build timestamp
	BuildDate = ""
)

// fromBuildInfo fills Commit and BuildDate from embedded VCS settings when ldflags left them empty.
func fromBuildInfo(settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "" {
				Commit = s.Value
			}
		case "vcs.time":
			if BuildDate == "" {
				BuildDate = s.Value
			}
		}
	}
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info.Settings)
	}
}

// Short returns the version with an abbreviated commit when one is known.
func Short() string {
	if len(Commit) > 7 {
		return Version + " (" + Commit[:7] + ")"
	}
	return Version
}

// Full returns complete version information
func Full() string {
	commit, built := Commit, BuildDate
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return "firstelem " + Version + "\n" +
		"commit: " + commit + "\n" +
		"built:  " + built
}
