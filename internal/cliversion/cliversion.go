// Package cliversion reports build information of the qlast binary.
package cliversion

import (
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// ModulePath is the import path of the qlast module.
const ModulePath = "github.com/go-faster/qlast"

// Info is the build information.
type Info struct {
	// Version is the module version, "(devel)" for local builds.
	Version string
	// GoVersion is the toolchain that produced the binary.
	GoVersion string
	// Commit is the VCS revision.
	Commit string
	// Modified is set when the working tree had local changes.
	Modified bool
	// Time is the commit time.
	Time time.Time
}

// Get returns the build information of the running binary.
func Get() (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}
	return fromBuildInfo(bi, ModulePath), true
}

func fromBuildInfo(bi *debug.BuildInfo, modulePath string) (info Info) {
	info.GoVersion = bi.GoVersion
	if bi.Main.Path == modulePath {
		info.Version = bi.Main.Version
	} else {
		// Linked as a dependency: VCS settings belong to the main module.
		for _, m := range bi.Deps {
			if m != nil && m.Path == modulePath {
				info.Version = m.Version
				break
			}
		}
		return info
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339Nano, s.Value); err == nil {
				info.Time = t
			}
		}
	}
	return info
}

// ShortCommit returns the first 12 characters of the commit hash.
func (i Info) ShortCommit() string {
	const n = 12
	if len(i.Commit) > n {
		return i.Commit[:n]
	}
	return i.Commit
}

// String returns string representation of the build information.
func (i Info) String() string {
	var s strings.Builder
	s.WriteString("qlast ")
	if v := i.Version; v != "" {
		s.WriteString(v)
	} else {
		s.WriteString("unknown")
	}
	if c := i.ShortCommit(); c != "" {
		s.WriteByte('-')
		s.WriteString(c)
		if i.Modified {
			s.WriteString("-dirty")
		}
	}
	if t, v := i.Time, i.GoVersion; v != "" || !t.IsZero() {
		s.WriteString(" (built")
		if v != "" {
			s.WriteString(" with ")
			s.WriteString(v)
		}
		if !t.IsZero() {
			s.WriteString(" at ")
			s.WriteString(t.UTC().Format(time.RFC1123))
		}
		s.WriteByte(')')
	}
	const osArch = " " + runtime.GOOS + "/" + runtime.GOARCH
	s.WriteString(osArch)
	return s.String()
}
