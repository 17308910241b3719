package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antwalk/config"
	"github.com/katalvlaran/antwalk/sim"
)

func testModel(t *testing.T, policy string) watchModel {
	t.Helper()
	cfg := config.Default()
	cfg.Grid = config.GridConf{Width: 4, Height: 3}
	cfg.Walk.OnExhausted = policy
	cfg.Walk.Seed = 3
	build := func(c *config.Config) (*sim.Simulation, error) { return sim.New(c, nil, nil) }
	s, err := build(cfg)
	require.NoError(t, err)

	return newWatchModel(s, build, 30, 2, t.TempDir())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m watchModel, msg tea.Msg) (watchModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	wm, ok := next.(watchModel)
	require.True(t, ok)

	return wm, cmd
}

func TestWatchModel_FrameAdvances(t *testing.T) {
	m := testModel(t, "clear_exclusions")
	m, cmd := update(t, m, frameMsg(time.Now()))
	require.NotNil(t, cmd, "frames keep ticking")
	require.Equal(t, uint64(2), m.sim.Walker.Stats().Steps)
	require.Contains(t, m.View(), "steps 2")
}

func TestWatchModel_PauseAndSingleStep(t *testing.T) {
	m := testModel(t, "clear_exclusions")
	m, _ = update(t, m, keyRunes("p"))
	require.True(t, m.paused)

	m, _ = update(t, m, frameMsg(time.Now()))
	require.Zero(t, m.sim.Walker.Stats().Steps)
	require.Contains(t, m.View(), "paused")

	m, _ = update(t, m, keyRunes("n"))
	require.Equal(t, uint64(1), m.sim.Walker.Stats().Steps)
}

func TestWatchModel_Speed(t *testing.T) {
	m := testModel(t, "clear_exclusions")
	m, _ = update(t, m, keyRunes("+"))
	require.Equal(t, 4, m.stepsPerFrame)
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, keyRunes("-"))
	}
	require.Equal(t, 1, m.stepsPerFrame)
}

func TestWatchModel_RateEveryWindow(t *testing.T) {
	m := testModel(t, "clear_exclusions")
	start := m.windowStart
	for i := 1; i <= rateWindow; i++ {
		m, _ = update(t, m, frameMsg(start.Add(time.Duration(i)*10*time.Millisecond)))
	}
	// 2 steps per frame over one second
	require.InDelta(t, 200.0, m.rate, 1e-6)
	require.Zero(t, m.windowSteps)
}

func TestWatchModel_ResetAndReload(t *testing.T) {
	m := testModel(t, "clear_exclusions")
	oldID := m.sim.ID
	m, _ = update(t, m, frameMsg(time.Now()))

	m, _ = update(t, m, keyRunes("r"))
	require.NotEqual(t, oldID, m.sim.ID)
	require.Zero(t, m.sim.Walker.Stats().Steps)
	require.Equal(t, "walk restarted", m.status)

	cfg := config.Default()
	cfg.Grid = config.GridConf{Width: 5, Height: 5}
	m, _ = update(t, m, reloadMsg{cfg: cfg})
	require.Equal(t, 5, m.sim.Map.Grid().Width)
	require.Equal(t, "config reloaded", m.status)

	bad := config.Default()
	bad.Grid.Width = 0
	m, _ = update(t, m, reloadMsg{cfg: bad})
	require.Error(t, m.err)
	require.Equal(t, 5, m.sim.Map.Grid().Width, "invalid reloads keep the running walk")
}

func TestWatchModel_HaltIsSticky(t *testing.T) {
	m := testModel(t, "halt")
	for i := 0; i < 100 && !m.sim.Walker.Halted(); i++ {
		m, _ = update(t, m, frameMsg(time.Now()))
	}
	require.True(t, m.sim.Walker.Halted())
	require.NoError(t, m.err)
	require.Contains(t, m.View(), "halted")
}

func TestWatchModel_SaveAndQuit(t *testing.T) {
	m := testModel(t, "clear_exclusions")
	m, _ = update(t, m, keyRunes("s"))
	require.NoError(t, m.err)
	require.Contains(t, m.status, "saved ")

	_, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
