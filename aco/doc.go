// Package aco models the pheromone map an ant walks on: an 8-connected grid,
// a static traversal-cost table, a mutable pheromone table and the
// likelihood of moving along each directed edge.
//
// What:
//
//   - WeightTable: dense N×N directed edge weights over a gridgraph.Grid,
//     addressed by (from, to) vertices through the grid's linear index.
//   - Map: cost table (1 orthogonal, √2 diagonal, +Inf for non-edges),
//     pheromone table (uniform initial value) and an evaporation rate.
//   - Likelihood(v0,v1) = pheromone(v0,v1) / cost(v0,v1), recomputed on
//     every query so pheromone updates are observed immediately.
//   - NextVertex: likelihood-weighted roulette draw over the non-excluded
//     neighbors of a vertex.
//   - ScreenPosition: pure vertex → pixel layout used by renderers.
//
// Extension point:
//
//   - Evaporate applies a caller supplied EvaporationPolicy to the pheromone
//     table with the map's rate. No policy ships with the package: whether
//     decay should touch every edge or only visited ones is left to the caller.
//
// Concurrency:
//
//   - A Map is built once and then read by a single walker. Pheromone writes
//     (SetPheromone, Evaporate) are not synchronized; a caller running several
//     mutators must serialize them.
//
// Errors:
//
//   - ErrInvalidDimensions, ErrInvalidEvaporationRate: NewMap validation.
//   - ErrSelfEdge: a diagonal entry (v → v) was addressed.
//   - gridgraph.ErrVertexOutOfRange: an out-of-grid vertex was addressed.
package aco
