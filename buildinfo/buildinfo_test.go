package buildinfo

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/sartorproj/goineq", Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: "gopkg.in/yaml.v3", Version: "v3.0.1"},
			{Path: "github.com/spf13/cobra", Version: "v1.10.1"},
			{
				Path:    "github.com/lmittmann/tint",
				Version: "v1.1.2",
				Replace: &debug.Module{Path: "../tint", Version: "v1.1.3"},
			},
		},
	}

	mods := fromBuildInfo(info)
	assert.Equal(t, []Module{
		{Path: "github.com/lmittmann/tint", Version: "v1.1.3"},
		{Path: "github.com/sartorproj/goineq", Version: "(devel)", Main: true},
		{Path: "github.com/spf13/cobra", Version: "v1.10.1"},
		{Path: "gopkg.in/yaml.v3", Version: "v3.0.1"},
	}, mods)
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Format(&buf, []Module{
		{Path: "a.example/x", Version: "v1.0.0"},
		{Path: "b.example/y", Version: "v0.2.0"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "a.example/x v1.0.0\nb.example/y v0.2.0\n", buf.String())
}

func TestModulesInTestBinary(t *testing.T) {
	// Test binaries carry build info; the list is sorted.
	mods := Modules()
	for i := 1; i < len(mods); i++ {
		assert.LessOrEqual(t, mods[i-1].Path, mods[i].Path)
	}
}
