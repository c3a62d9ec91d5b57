// Package compileinfo records which build of the analysis produced a report,
// so that a rendered document can be traced back to the exact commit of the
// code that generated it.
package compileinfo

import (
	"fmt"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Commit == "" {
		return fmt.Sprintf("Built from %s with %s (no version-control information embedded).", c.Package, c.GoVersion)
	}

	mod := ""
	if c.Modified {
		mod = ", with uncommitted modifications"
	}

	return fmt.Sprintf("Built from %s with %s at commit %s (%s)%s.", c.Package, c.GoVersion, c.Commit, c.CommitTime, mod)
}

func Get() CompileInfo {
	out := CompileInfo{}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Package = info.Path
	out.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}
