package config

// Config is the top-level YAML structure of an antwalk simulation.
type Config struct {
	Grid      GridConf      `yaml:"grid"`
	Pheromone PheromoneConf `yaml:"pheromone"`
	Walk      WalkConf      `yaml:"walk"`
	Window    WindowConf    `yaml:"window"`
	Log       LogConf       `yaml:"log"`
	Metrics   MetricsConf   `yaml:"metrics"`
}

// GridConf sets the map dimensions.
type GridConf struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PheromoneConf sets the pheromone table.
type PheromoneConf struct {
	Initial         float32 `yaml:"initial"`
	EvaporationRate float32 `yaml:"evaporation_rate"`
}

// Point is a grid coordinate in YAML form.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// WalkConf sets the walker.
type WalkConf struct {
	Start             *Point `yaml:"start"` // nil = grid center
	ExclusionCapacity int    `yaml:"exclusion_capacity"`
	OnExhausted       string `yaml:"on_exhausted"` // halt | clear_exclusions | restart
	Seed              int64  `yaml:"seed"`         // 0 = seeded from the clock
}

// WindowConf is the drawing surface handed to the layout function.
type WindowConf struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConf sets the log level (info, debug, trace, warn, error).
type LogConf struct {
	Level string `yaml:"level"`
}

// MetricsConf enables the Prometheus endpoint when Addr is set.
type MetricsConf struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration. Loaded files are decoded on
// top of it, so any omitted key keeps its default.
func Default() *Config {
	return &Config{
		Grid:      GridConf{Width: 40, Height: 30},
		Pheromone: PheromoneConf{Initial: 1.0, EvaporationRate: 0.5},
		Walk: WalkConf{
			ExclusionCapacity: 150,
			OnExhausted:       "clear_exclusions",
		},
		Window: WindowConf{Width: 1200, Height: 1200},
		Log:    LogConf{Level: "info"},
	}
}

// StartPoint resolves the start vertex, defaulting to the grid center.
func (c *Config) StartPoint() Point {
	if c.Walk.Start != nil {
		return *c.Walk.Start
	}

	return Point{X: c.Grid.Width / 2, Y: c.Grid.Height / 2}
}
