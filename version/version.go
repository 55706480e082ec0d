package version

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags at release build time; module-aware builds fall back to
// the VCS metadata Go embeds in the binary.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// GetVersion returns the bare version string recorded in ledger entries.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "development"
}

// GetFullVersion returns the version with short commit and build date when
// known, as shown by the --version flag.
func GetFullVersion() string {
	commit := fromBuild(Commit, "unknown", "vcs.revision")
	date := fromBuild(Date, "unknown", "vcs.time")

	if commit == "unknown" || len(commit) < 7 {
		return GetVersion()
	}
	if dirty := fromBuild("", "", "vcs.modified"); dirty == "true" {
		commit = commit[:7] + "-dirty"
	} else {
		commit = commit[:7]
	}
	if date == "unknown" {
		return fmt.Sprintf("%s (%s)", GetVersion(), commit)
	}
	return fmt.Sprintf("%s (%s, built %s)", GetVersion(), commit, date)
}

// fromBuild returns the ldflags value unless it still holds its placeholder,
// in which case the named embedded build setting is consulted.
func fromBuild(ldflagValue, placeholder, settingKey string) string {
	if ldflagValue != placeholder && ldflagValue != "" {
		return ldflagValue
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == settingKey {
				return s.Value
			}
		}
	}
	return placeholder
}
