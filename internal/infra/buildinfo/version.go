// Package buildinfo reports the version of the running bigsum binary,
// printed by "bigsum --version".
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unset = "unknown"

// Set with -ldflags "-X github.com/yndnr/bigsum-go/internal/infra/buildinfo.Version=v1.0.0".
// Values left unset are filled from the VCS stamp the go tool embeds.
var (
	Version   = "dev"
	Commit    = unset
	BuildTime = unset
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	Modified  bool   `json:"modified,omitempty" yaml:"modified,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// Get returns the build information of the running binary.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

// resolve fills ldflags values left at their zero state from bi.
func resolve(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
	if bi == nil {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unset {
				info.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if info.BuildTime == unset {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// String renders i as "<version> (<commit>) built at <time>", with a
// "-dirty" commit suffix for modified trees.
func (i Info) String() string {
	commit := i.Commit
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s) built at %s", i.Version, commit, i.BuildTime)
}

// String returns the version line of the running binary.
func String() string {
	return Get().String()
}
