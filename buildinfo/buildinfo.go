// Package buildinfo reports the module versions compiled into the running
// binary.
package buildinfo

import (
	"fmt"
	"io"
	"runtime/debug"
	"sort"
)

// Module is one entry of the build's module graph.
type Module struct {
	Path    string `json:"path" yaml:"path"`
	Version string `json:"version" yaml:"version"`
	Main    bool   `json:"main,omitempty" yaml:"main,omitempty"`
}

// Modules lists the main module and its dependencies, sorted by path.
// Replaced modules report the replacement's version. It returns nil when the
// binary carries no build information.
func Modules() []Module {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) []Module {
	mods := make([]Module, 0, len(info.Deps)+1)
	if info.Main.Path != "" {
		mods = append(mods, Module{Path: info.Main.Path, Version: info.Main.Version, Main: true})
	}
	for _, dep := range info.Deps {
		m := dep
		if dep.Replace != nil {
			m = dep.Replace
		}
		mods = append(mods, Module{Path: dep.Path, Version: m.Version})
	}

	sort.Slice(mods, func(i, j int) bool {
		return mods[i].Path < mods[j].Path
	})
	return mods
}

// Format writes one "path version" line per module.
func Format(w io.Writer, mods []Module) error {
	for _, m := range mods {
		if _, err := fmt.Fprintf(w, "%s %s\n", m.Path, m.Version); err != nil {
			return err
		}
	}
	return nil
}
