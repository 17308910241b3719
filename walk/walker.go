package walk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/gridgraph"
	"github.com/katalvlaran/antwalk/logging"
	"github.com/katalvlaran/antwalk/metrics"
	"github.com/katalvlaran/antwalk/roulette"
)

// Stats are cumulative counters of a Walker since New or the last Reset.
type Stats struct {
	Steps       uint64 // forward moves
	Backtracks  uint64 // dead ends resolved by popping the path
	Exhaustions uint64 // times the path emptied while backtracking
}

// Walker advances one ant across a map. See the package doc for the step
// procedure and invariants.
type Walker struct {
	m          *aco.Map
	grid       gridgraph.Grid
	sel        *roulette.Selector[gridgraph.Vertex]
	policy     ExhaustionPolicy
	logger     *slog.Logger
	metrics    *metrics.Walk
	current    gridgraph.Vertex
	path       []gridgraph.Vertex
	onPath     []bool // by linear index; mirrors path
	exclusions *Exclusions
	halted     bool
	stats      Stats
}

// New places a walker on start. The path and exclusion set start empty.
// Returns ErrNilMap for a nil map and gridgraph.ErrVertexOutOfRange when
// start is off the grid.
func New(m *aco.Map, start gridgraph.Vertex, opts ...Option) (*Walker, error) {
	if m == nil {
		return nil, fmt.Errorf("walk.New: %w", ErrNilMap)
	}
	grid := m.Grid()
	if err := grid.CheckVertex(start); err != nil {
		return nil, fmt.Errorf("walk.New: start: %w", err)
	}
	cfg := newConfig(opts)
	ex, err := NewExclusions(cfg.capacity)
	if err != nil {
		return nil, fmt.Errorf("walk.New: %w", err)
	}

	return &Walker{
		m:          m,
		grid:       grid,
		sel:        cfg.sel,
		policy:     cfg.policy,
		logger:     cfg.logger,
		metrics:    cfg.metrics,
		current:    start,
		onPath:     make([]bool, grid.Len()),
		exclusions: ex,
	}, nil
}

// Map returns the map the walker moves on.
func (w *Walker) Map() *aco.Map { return w.m }

// Current returns the vertex the ant is on.
func (w *Walker) Current() gridgraph.Vertex { return w.current }

// Path returns a copy of the path stack, oldest vertex first.
func (w *Walker) Path() []gridgraph.Vertex {
	return append([]gridgraph.Vertex(nil), w.path...)
}

// Exclusions returns a copy of the excluded vertices, oldest first.
func (w *Walker) Exclusions() []gridgraph.Vertex { return w.exclusions.Items() }

// Stats returns the cumulative counters.
func (w *Walker) Stats() Stats { return w.stats }

// Policy returns the configured exhaustion policy.
func (w *Walker) Policy() ExhaustionPolicy { return w.policy }

// Halted reports whether a Halt-policy walker has exhausted its path.
func (w *Walker) Halted() bool { return w.halted }

// Reset puts the walker back on start with an empty path and exclusion set
// and zeroed stats. It also lifts a Halt.
func (w *Walker) Reset(start gridgraph.Vertex) error {
	if err := w.grid.CheckVertex(start); err != nil {
		return fmt.Errorf("Reset: %w", err)
	}
	w.clearPath()
	w.exclusions.Clear()
	w.current = start
	w.halted = false
	w.stats = Stats{}

	return nil
}

// excluded is the candidate filter: on the path or abandoned.
func (w *Walker) excluded(v gridgraph.Vertex) bool {
	return w.onPath[w.grid.Index(v)] || w.exclusions.Contains(v)
}

// Step makes one forward move, backtracking through any number of dead
// ends first. It returns ErrPathExhausted (wrapped) when the walk cannot
// move any more under its policy; the walker state stays consistent.
func (w *Walker) Step() error {
	if w.halted {
		return fmt.Errorf("Step from %s: %w", w.current, ErrPathExhausted)
	}

	var pending, stepBacktracks int // since the last stats update; whole step
	var exhaustedOnce bool
	for {
		next, ok, err := w.m.NextVertex(w.current, w.excluded, w.sel)
		if err != nil {
			return fmt.Errorf("Step: %w", err)
		}
		if ok {
			w.push(w.current)
			w.current = next
			w.stats.Steps++
			w.addBacktracks(pending)
			w.metrics.RecordStep(stepBacktracks, len(w.path), w.exclusions.Len())

			return nil
		}

		// Dead end: abandon current.
		if old, evicted := w.exclusions.Add(w.current); evicted {
			w.logger.Log(context.Background(), logging.LevelTrace, "exclusion evicted", "vertex", old.String())
		}
		if len(w.path) > 0 {
			dead := w.current
			w.current = w.pop()
			pending++
			stepBacktracks++
			w.logger.Log(context.Background(), logging.LevelTrace, "backtrack",
				"from", dead.String(), "to", w.current.String())
			continue
		}

		// Path exhausted at the start vertex.
		w.stats.Exhaustions++
		w.addBacktracks(pending)
		pending = 0
		w.metrics.RecordExhaustion(w.policy.String())
		w.logger.Warn("path exhausted",
			"vertex", w.current.String(),
			"policy", w.policy.String(),
			"steps", w.stats.Steps)

		if exhaustedOnce || w.policy == Halt {
			w.halted = w.policy == Halt
			return fmt.Errorf("Step from %s: %w", w.current, ErrPathExhausted)
		}
		exhaustedOnce = true
		w.exclusions.Clear()
		if w.policy == Restart {
			w.current = w.grid.Vertex(w.sel.Uniform(w.grid.Len()))
		}
	}
}

// addBacktracks moves n resolved dead ends into the stats and the metrics.
func (w *Walker) addBacktracks(n int) {
	w.stats.Backtracks += uint64(n)
	w.metrics.RecordBacktracks(n)
}

func (w *Walker) push(v gridgraph.Vertex) {
	w.path = append(w.path, v)
	w.onPath[w.grid.Index(v)] = true
}

func (w *Walker) pop() gridgraph.Vertex {
	last := w.path[len(w.path)-1]
	w.path = w.path[:len(w.path)-1]
	w.onPath[w.grid.Index(last)] = false

	return last
}

func (w *Walker) clearPath() {
	for _, v := range w.path {
		w.onPath[w.grid.Index(v)] = false
	}
	w.path = w.path[:0]
}
