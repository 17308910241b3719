package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/antwalk/walk"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// maxVertices caps W×H: edge tables are dense N×N float32 matrices, two of them.
const maxVertices = 10_000

// Validate checks ranges and names. All problems are reported at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		errs = append(errs, fmt.Sprintf("grid: width and height must be > 0 (got %dx%d)", cfg.Grid.Width, cfg.Grid.Height))
	} else if cfg.Grid.Width*cfg.Grid.Height > maxVertices {
		errs = append(errs, fmt.Sprintf("grid: %dx%d exceeds %d vertices", cfg.Grid.Width, cfg.Grid.Height, maxVertices))
	}

	rate := float64(cfg.Pheromone.EvaporationRate)
	if math.IsNaN(rate) || rate > 1.0 {
		errs = append(errs, fmt.Sprintf("pheromone: evaporation_rate must be <= 1.0 (got %v)", rate))
	}
	initial := float64(cfg.Pheromone.Initial)
	if math.IsNaN(initial) || math.IsInf(initial, 0) || initial < 0 {
		errs = append(errs, fmt.Sprintf("pheromone: initial must be finite and >= 0 (got %v)", initial))
	}

	start := cfg.StartPoint()
	if start.X < 0 || start.X >= cfg.Grid.Width || start.Y < 0 || start.Y >= cfg.Grid.Height {
		errs = append(errs, fmt.Sprintf("walk: start (%d,%d) outside the grid", start.X, start.Y))
	}
	if cfg.Walk.ExclusionCapacity <= 0 {
		errs = append(errs, fmt.Sprintf("walk: exclusion_capacity must be > 0 (got %d)", cfg.Walk.ExclusionCapacity))
	}
	if _, err := walk.ParsePolicy(cfg.Walk.OnExhausted); err != nil {
		errs = append(errs, fmt.Sprintf("walk: on_exhausted %q is not one of halt, clear_exclusions, restart", cfg.Walk.OnExhausted))
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Sprintf("window: width and height must be > 0 (got %dx%d)", cfg.Window.Width, cfg.Window.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}
	return nil
}
