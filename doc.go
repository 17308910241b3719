// Package antwalk is a stochastic single-ant walk over an 8-connected grid
// graph, in the style of ant colony optimization.
//
// 🐜 What does a walk do?
//
//	Every step the ant looks at the up to eight neighbors of its vertex,
//	drops those already on its path or recently abandoned, and draws one by
//	roulette with probability proportional to pheromone/cost. When nothing
//	is left it abandons the vertex and backtracks along its own path.
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/   W×H grid geometry: linear index, neighborhood, step cost
//	matrix/      dense float32 N×N storage with finite-only guards
//	aco/         Map: cost & pheromone tables, likelihood, screen layout
//	roulette/    weighted random selection with an injectable RNG
//	walk/        Walker: path stack, bounded exclusions, exhaustion policies
//	config/      YAML configuration, validation, fsnotify hot-reload
//	logging/     slog loggers with a TRACE level
//	metrics/     Prometheus counters & gauges for a walker
//	render/      terminal frames (lipgloss) and SVG snapshots
//	sim/         assembles map + walker from a config
//	cmd/antwalk  the run | watch | probe | version CLI
//
// Quick ASCII example (3×3, ant at the center):
//
//	    ·  ·  ·
//	    ·  @  ·       @ may move to any of the 8 ·;
//	    ·  ·  ·       diagonals weigh 1/√2 of the others.
//
// The library packages are zero-config; see cmd/antwalk for the shell.
//
//	go install github.com/katalvlaran/antwalk/cmd/antwalk@latest
package antwalk
