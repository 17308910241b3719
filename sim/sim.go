// Package sim assembles a runnable walk from a validated configuration:
// the map, the walker, its instrumentation and a per-run identifier.
package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/config"
	"github.com/katalvlaran/antwalk/gridgraph"
	"github.com/katalvlaran/antwalk/logging"
	"github.com/katalvlaran/antwalk/metrics"
	"github.com/katalvlaran/antwalk/render"
	"github.com/katalvlaran/antwalk/walk"
)

// Simulation is one configured walk.
type Simulation struct {
	ID     uuid.UUID
	Config *config.Config
	Map    *aco.Map
	Walker *walk.Walker

	logger *slog.Logger
	visits []uint32 // forward arrivals per linear index, start included
}

// Summary describes the outcome of Run.
type Summary struct {
	RunID       string        `json:"run_id"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Policy      string        `json:"policy"`
	Requested   int           `json:"requested_steps"`
	Steps       uint64        `json:"steps"`
	Backtracks  uint64        `json:"backtracks"`
	Exhaustions uint64        `json:"exhaustions"`
	PathLength  int           `json:"path_length"`
	Exclusions  int           `json:"exclusions"`
	Distinct    int           `json:"distinct_visited"`
	Current     string        `json:"current"`
	Halted      bool          `json:"halted"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// New builds a Simulation from cfg. logger and m may be nil.
func New(cfg *config.Config, logger *slog.Logger, m *metrics.Walk) (*Simulation, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	policy, err := walk.ParsePolicy(cfg.Walk.OnExhausted)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	logger = logger.With("run_id", id.String())

	am, err := aco.NewMap(cfg.Grid.Width, cfg.Grid.Height, cfg.Pheromone.EvaporationRate,
		aco.WithInitialPheromone(cfg.Pheromone.Initial))
	if err != nil {
		return nil, fmt.Errorf("sim.New: %w", err)
	}

	opts := []walk.Option{
		walk.WithExclusionCapacity(cfg.Walk.ExclusionCapacity),
		walk.WithExhaustionPolicy(policy),
		walk.WithLogger(logger),
		walk.WithMetrics(m),
	}
	if cfg.Walk.Seed != 0 {
		opts = append(opts, walk.WithSeed(cfg.Walk.Seed))
	}

	p := cfg.StartPoint()
	start := gridgraph.Vertex{X: p.X, Y: p.Y}
	w, err := walk.New(am, start, opts...)
	if err != nil {
		return nil, fmt.Errorf("sim.New: %w", err)
	}

	s := &Simulation{
		ID:     id,
		Config: cfg,
		Map:    am,
		Walker: w,
		logger: logger,
		visits: make([]uint32, am.Grid().Len()),
	}
	s.visits[am.Grid().Index(start)]++
	logger.Info("simulation ready",
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"start", start.String(),
		"policy", policy.String(),
		"exclusion_capacity", cfg.Walk.ExclusionCapacity)

	return s, nil
}

// Step advances the walker once and records the arrival. Under the Restart
// policy the vertex the ant jumped to is an arrival too; after a successful
// step it is the only vertex on the path.
func (s *Simulation) Step() error {
	g := s.Map.Grid()
	before := s.Walker.Stats().Exhaustions
	if err := s.Walker.Step(); err != nil {
		return err
	}
	if s.Walker.Policy() == walk.Restart && s.Walker.Stats().Exhaustions > before {
		if path := s.Walker.Path(); len(path) > 0 {
			s.visits[g.Index(path[0])]++
		}
	}
	s.visits[g.Index(s.Walker.Current())]++

	return nil
}

// Run performs up to n steps. A halted walk ends the run early without
// error; any other failure is returned together with the partial summary.
func (s *Simulation) Run(n int) (Summary, error) {
	began := time.Now()
	var err error
	for i := 0; i < n; i++ {
		if err = s.Step(); err != nil {
			if errors.Is(err, walk.ErrPathExhausted) {
				err = nil
			}
			break
		}
	}
	sum := s.Summary(n, time.Since(began))
	s.logger.Info("run finished",
		"steps", sum.Steps,
		"backtracks", sum.Backtracks,
		"exhaustions", sum.Exhaustions,
		"halted", sum.Halted,
		"elapsed", sum.Elapsed)

	return sum, err
}

// Summary reports the current state; requested and elapsed describe the run
// that produced it.
func (s *Simulation) Summary(requested int, elapsed time.Duration) Summary {
	st := s.Walker.Stats()
	g := s.Map.Grid()
	distinct := 0
	for _, n := range s.visits {
		if n > 0 {
			distinct++
		}
	}

	return Summary{
		RunID:       s.ID.String(),
		Width:       g.Width,
		Height:      g.Height,
		Policy:      s.Walker.Policy().String(),
		Requested:   requested,
		Steps:       st.Steps,
		Backtracks:  st.Backtracks,
		Exhaustions: st.Exhaustions,
		PathLength:  len(s.Walker.Path()),
		Exclusions:  len(s.Walker.Exclusions()),
		Distinct:    distinct,
		Current:     s.Walker.Current().String(),
		Halted:      s.Walker.Halted(),
		Elapsed:     elapsed,
	}
}

// Visits returns a copy of the per-vertex arrival counts.
func (s *Simulation) Visits() []uint32 {
	return append([]uint32(nil), s.visits...)
}

// Frame snapshots the walk for a renderer.
func (s *Simulation) Frame() render.Frame {
	return render.Frame{
		Grid:       s.Map.Grid(),
		Current:    s.Walker.Current(),
		Path:       s.Walker.Path(),
		Exclusions: s.Walker.Exclusions(),
		Visits:     s.Visits(),
	}
}

// Window returns the configured drawing surface.
func (s *Simulation) Window() aco.Size {
	return aco.Size{W: s.Config.Window.Width, H: s.Config.Window.Height}
}
