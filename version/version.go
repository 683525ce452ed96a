package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Set with -ldflags "-X .../version.Version=v1.0.0" at release time.
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info contains version information
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Program string `json:"program"`
}

// GetVersion returns the version string, preferring the linker-injected value.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the VCS revision the binary was built from.
func GetCommit() string {
	return injectedOrSetting(Commit, "vcs.revision")
}

// GetBuildDate returns the time of the commit the binary was built from.
func GetBuildDate() string {
	return injectedOrSetting(Date, "vcs.time")
}

func injectedOrSetting(injected, key string) string {
	if injected != "unknown" && injected != "" {
		return injected
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == key {
				return setting.Value
			}
		}
	}
	return "unknown"
}

// GetInfo returns complete version information
func GetInfo() Info {
	return Info{
		Version: GetVersion(),
		Commit:  GetCommit(),
		Date:    GetBuildDate(),
		Program: "docval",
	}
}

// GetFullVersion returns the version followed by the short commit and the
// build date when they are known.
func GetFullVersion() string {
	return GetInfo().String()
}

func (i Info) String() string {
	if i.Commit == "unknown" || len(i.Commit) <= 7 {
		return i.Version
	}
	if i.Date == "unknown" {
		return fmt.Sprintf("%s (%s)", i.Version, i.Commit[:7])
	}
	return fmt.Sprintf("%s (%s, built %s)", i.Version, i.Commit[:7], i.Date)
}
