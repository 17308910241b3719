// Package gridgraph treats a fixed rectangular grid of cells as an
// 8-connected graph whose vertices are addressed by (x, y) coordinates.
//
// What:
//
//   - Grid maps coordinates to a row-major linear index and back, so that
//     dense per-edge tables can be stored as flat N×N arrays (N = W×H).
//   - Neighbors enumerates the Chebyshev radius-1 window of a cell
//     (up to 8 cells, never the cell itself), clipped to the grid.
//   - NeighborsExcluding drops candidates rejected by a caller predicate.
//   - StepCost prices a move: 1 for orthogonal, √2 for diagonal.
//
// Why:
//
//   - Pheromone walks and other stochastic traversals need cheap,
//     allocation-light neighborhood queries on every step.
//   - A linear index lets weight tables live in matrix.Dense without maps.
//
// Complexity:
//
//   - Index, Vertex, InBounds, StepCost: O(1).
//   - Neighbors, NeighborsExcluding:     O(9·k), k = cost of one exclusion check.
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrVertexOutOfRange: a vertex lies outside [0,W)×[0,H).
package gridgraph
