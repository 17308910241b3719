// Package matrix provides the dense storage behind per-edge weight tables.
//
// The matrix package provides:
//
//   - Dense: a flat, row-major float32 matrix with bounds-checked At/Set,
//     bulk Fill/FillDiagonal and an in-place Apply for element-wise updates.
//   - An optional finite-only numeric policy (WithFiniteOnly) that rejects
//     NaN and ±Inf at Set/Apply time.
//
// Dense tables cost O(r·c) memory. They are intended for N×N edge tables over
// small-to-medium vertex sets, where O(1) lookups matter more than memory.
//
// Dense is not safe for concurrent mutation; callers that share one across
// goroutines must serialize writers.
package matrix
