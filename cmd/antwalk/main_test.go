package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antwalk/sim"
)

const smallConfig = `
grid: {width: 3, height: 3}
walk:
  start: {x: 0, y: 0}
  on_exhausted: halt
  seed: 11
window: {width: 90, height: 90}
log: {level: error}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "antwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "antwalk version "+version)

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, version, v["version"])
}

func TestRunCmd_JSONHalts(t *testing.T) {
	path := writeConfig(t, smallConfig)
	out, err := execute(t, "run", "--config", path, "--steps", "50", "--json")
	require.NoError(t, err)

	var sum sim.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	require.True(t, sum.Halted)
	require.Equal(t, uint64(8), sum.Steps)
	require.Equal(t, 9, sum.Distinct)
	require.Equal(t, 3, sum.Width)
	require.NotEmpty(t, sum.RunID)
}

func TestRunCmd_PolicyOverrideAndSVG(t *testing.T) {
	path := writeConfig(t, smallConfig)
	svg := filepath.Join(t.TempDir(), "walk.svg")
	out, err := execute(t, "run", "--config", path, "--steps", "200",
		"--policy", "clear_exclusions", "--svg", svg, "--frame")
	require.NoError(t, err)
	require.Contains(t, out, "steps:       200 of 200")
	require.Contains(t, out, "policy clear_exclusions")
	require.NotContains(t, out, "halted")

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
}

func TestRunCmd_InvalidOverride(t *testing.T) {
	path := writeConfig(t, smallConfig)
	_, err := execute(t, "run", "--config", path, "--policy", "wander")
	require.Error(t, err)

	_, err = execute(t, "run", "--config", path, "--steps", "-1")
	require.Error(t, err)
}

func TestProbeCmd_Corner(t *testing.T) {
	path := writeConfig(t, smallConfig)
	out, err := execute(t, "probe", "0", "0", "--config", path, "--json")
	require.NoError(t, err)

	var rows []probeRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)

	var total float32
	for _, r := range rows {
		total += r.Probability
	}
	require.InDelta(t, 1.0, total, 1e-5)
	// the diagonal neighbor costs √2 and is the least likely
	require.Equal(t, "(1,1)", rows[2].To)
	require.Less(t, rows[2].Probability, rows[0].Probability)
}

func TestProbeCmd_Errors(t *testing.T) {
	path := writeConfig(t, smallConfig)
	_, err := execute(t, "probe", "5", "5", "--config", path)
	require.Error(t, err)

	_, err = execute(t, "probe", "a", "0", "--config", path)
	require.Error(t, err)

	out, err := execute(t, "probe", "1", "1", "--config", path)
	require.NoError(t, err)
	require.Equal(t, 9, len(strings.Split(strings.TrimSpace(out), "\n")), "header plus eight neighbors")
}

func TestProbeCmd_ZeroPheromoneIsDeadEnd(t *testing.T) {
	path := writeConfig(t, smallConfig+"pheromone: {initial: 0}\n")
	out, err := execute(t, "probe", "1", "1", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "dead end")
}
