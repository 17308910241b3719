package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/antwalk/config"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Validate(cfg))
	require.Equal(t, config.Point{X: 20, Y: 15}, cfg.StartPoint())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
grid:
  width: 3
  height: 3
walk:
  start: {x: 1, y: 1}
  seed: 9
  on_exhausted: restart
`))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Grid.Width)
	require.Equal(t, config.Point{X: 1, Y: 1}, cfg.StartPoint())
	require.Equal(t, int64(9), cfg.Walk.Seed)
	require.Equal(t, "restart", cfg.Walk.OnExhausted)
	// untouched keys keep defaults
	require.Equal(t, float32(0.5), cfg.Pheromone.EvaporationRate)
	require.Equal(t, 150, cfg.Walk.ExclusionCapacity)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero width":    "grid: {width: 0, height: 3}",
		"rate too high": "pheromone: {evaporation_rate: 1.5}",
		"negative init": "pheromone: {initial: -1}",
		"start outside": "grid: {width: 3, height: 3}\nwalk: {start: {x: 3, y: 0}}",
		"bad policy":    "walk: {on_exhausted: teleport}",
		"bad capacity":  "walk: {exclusion_capacity: 0}",
		"huge grid":     "grid: {width: 1000, height: 1000}",
		"bad window":    "window: {width: 0}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("grid: {depth: 3}"))
	require.Error(t, err, "unknown keys are rejected")
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoader_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: {width: 5, height: 5}\n"), 0o600))

	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)
	require.Equal(t, 5, l.Config().Grid.Width)

	var seen []int
	l.OnChange(func(c *config.Config) { seen = append(seen, c.Grid.Width) })

	require.NoError(t, os.WriteFile(path, []byte("grid: {width: 7, height: 5}\n"), 0o600))
	cfg, err := l.Reload()
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Grid.Width)
	require.Equal(t, []int{7}, seen)

	// An invalid edit keeps the previous config and skips callbacks.
	require.NoError(t, os.WriteFile(path, []byte("grid: {width: 0}\n"), 0o600))
	_, err = l.Reload()
	require.ErrorIs(t, err, config.ErrInvalid)
	require.Equal(t, 7, l.Config().Grid.Width)
	require.Equal(t, []int{7}, seen)
}

func TestLoader_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: {width: 5, height: 5}\n"), 0o600))

	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)

	changed := make(chan int, 16)
	l.OnChange(func(c *config.Config) {
		select {
		case changed <- c.Grid.Width:
		default:
		}
	})

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("grid: {width: 7, height: 5}\n"), 0o600))

	// A write may surface as several events (truncate, then write); wait for the final content.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case w := <-changed:
			if w == 7 {
				return
			}
		case <-deadline:
			t.Fatal("no reload after file write")
		}
	}
}

func TestLoader_WatchWithoutFile(t *testing.T) {
	l, err := config.NewLoader("", nil)
	require.NoError(t, err)
	stop, err := l.Watch()
	require.NoError(t, err)
	stop()
}
