package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sartorproj/goineq/inequality"
	"github.com/sartorproj/goineq/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestComputeValues(t *testing.T) {
	out, _, err := run(t, "", "compute", "1", "2", "3", "4", "5")
	require.NoError(t, err)
	assert.Equal(t, "0.266667\n", out)
}

func TestComputeVerify(t *testing.T) {
	out, _, err := run(t, "", "compute", "--verify", "1", "2", "3", "4", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "RANK-WEIGHTED")
	assert.Contains(t, out, "0.266667")
	assert.Contains(t, out, "true")
}

func TestComputeRejectsInput(t *testing.T) {
	_, _, err := run(t, "", "compute", "0", "1", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, inequality.ErrValue)
	assert.Equal(t, 3, exitCode(err))

	_, _, err = run(t, "", "compute", "--", "-1", "2")
	assert.ErrorIs(t, err, inequality.ErrValue)

	_, _, err = run(t, "", "compute", "abc")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	_, _, err = run(t, "", "compute")
	assert.ErrorContains(t, err, "no input")
}

func TestExitCode(t *testing.T) {
	_, err := inequality.Gini("nope")
	assert.Equal(t, 2, exitCode(err))
	assert.Equal(t, 1, exitCode(errors.New("other")))
}

func TestComputeFromStdinWithGroup(t *testing.T) {
	csv := "A,Group\n1,a\n100,b\n3,a\n"

	out, _, err := run(t, csv, "compute", "--file", "-", "--column", "A", "--group", "a")
	require.NoError(t, err)
	assert.Equal(t, "0.250000\n", out)
}

func TestComputeAllColumnsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,B,Group\n1,5,a\n2,5,b\n3,5,a\n4,5,b\n5,5,a\n"), 0o644))

	out, _, err := run(t, "", "compute", "--file", path, "--all-columns", "--verify", "-o", "json")
	require.NoError(t, err)

	var results []computeResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Series)
	assert.InDelta(t, 20.0/75.0, results[0].Gini, 1e-12)
	assert.Equal(t, "B", results[1].Series)
	assert.Equal(t, 0.0, results[1].Gini)
	require.NotNil(t, results[0].Check)
	assert.True(t, results[0].Check.Agree)
}

func TestComputeUnknownOutput(t *testing.T) {
	_, _, err := run(t, "", "compute", "-o", "xml", "1", "2")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestSynthThenCompute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "incomes.csv")

	_, _, err := run(t, "", "synth", "--dist", "uniform", "--n", "2000", "--out", path)
	require.NoError(t, err)

	out, _, err := run(t, "", "compute", "--file", path, "--column", "income")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0."))
}

func TestSynthFrame(t *testing.T) {
	out, logs, err := run(t, "", "synth", "--rows", "3", "--cols", "2", "--cats", "0", "--dates=false")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "A,B", lines[0])
	assert.Contains(t, logs, "generated frame")

	_, _, err = run(t, "", "synth", "--cols", "27")
	assert.Error(t, err)

	_, _, err = run(t, "", "synth", "--dist", "gamma")
	assert.ErrorContains(t, err, "unknown distribution")
}

func TestLorenzToStdout(t *testing.T) {
	out, _, err := run(t, "", "lorenz", "--save-as", "-", "--save-type", "csv", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "share_population,lorenz,equality\n0,0,0\n"))
}

func TestLorenzToChartDirectory(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "", "lorenz", "--title", "Test: chart", "--chart-dir", dir, "3", "1", "2")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "Test- chart.svg"), path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gini.yaml")
	cfg := "log_level: debug\ncsv:\n  value_column: B\nreport:\n  chart_directory: " + dir + "\n  save_type: json\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, logs, err := run(t, "A,B\n1,1\n1,3\n", "--config", cfgPath, "compute", "--file", "-")
	require.NoError(t, err)
	assert.Equal(t, "0.250000\n", out)
	assert.Contains(t, logs, "loaded series")

	_, _, err = run(t, "", "--config", filepath.Join(dir, "missing.yaml"), "compute", "1")
	assert.ErrorContains(t, err, "load config")

	_, _, err = run(t, "", "--log-level", "chatty", "compute", "1")
	assert.Error(t, err)
}

func TestVersions(t *testing.T) {
	_, _, err := run(t, "", "versions")
	assert.NoError(t, err)
}

func TestGroupFilterNeedsGroupColumn(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gini.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("csv:\n  group_column: \"\"\n"), 0o644))

	_, _, err := run(t, "A,Group\n1,a\n100,b\n", "--config", cfgPath, "compute", "--file", "-", "--group", "a")
	assert.ErrorIs(t, err, series.ErrNoGroupColumn)
}

func TestSynthRejectsBadFlagsWithoutWriting(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "", "synth", "--dist", "uniform", "--n", "-1")
	assert.ErrorContains(t, err, "non-negative")

	tests := []struct {
		name string
		args []string
	}{
		{"unknown distribution", []string{"--dist", "gamma"}},
		{"bad alpha", []string{"--dist", "pareto", "--alpha", "0"}},
		{"negative n", []string{"--dist", "uniform", "--n", "-5"}},
		{"too many columns", []string{"--cols", "27"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "-")+".csv")
			_, _, err := run(t, "", append([]string{"synth", "--out", path}, tt.args...)...)
			require.Error(t, err)

			_, statErr := os.Stat(path)
			assert.ErrorIs(t, statErr, os.ErrNotExist)
		})
	}
}
