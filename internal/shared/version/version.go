// Package version reports the build version of the binaries.
package version

import (
	"runtime"
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time with -ldflags "-X ...version.Version=v1.2.3".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Release   bool   `json:"release"`
}

// Get returns the build information of the running binary.
func Get() Info {
	v := Normalize(Version)
	return Info{
		Version:   v,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Release:   IsRelease(v),
	}
}

// Normalize ensures version string has "v" prefix for semver compatibility.
// Non-semver values such as "dev" are returned unchanged.
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" || version == "dev" {
		return version
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version
}

// IsRelease reports whether version is a valid semver without a prerelease tag.
func IsRelease(version string) bool {
	v := Normalize(version)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}
