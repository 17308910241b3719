// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single flag.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Fill/Apply/Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
	ctxFill  = "Fill"  // method tag used in error wrappers
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float32 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c       int       // number of rows and columns
	data       []float32 // flat backing storage, length == r*c
	finiteOnly bool      // reject NaN/±Inf on writes
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and an optional numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (WithFiniteOnly).
//   - Stage 3: allocate a zero-filled flat buffer of length rows*cols.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: DenseOption values; none means NaN/±Inf are accepted.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (wrapped with the requested shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...DenseOption) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	cfg := gatherDenseOptions(opts)

	return &Dense{
		r:          rows,
		c:          cols,
		data:       make([]float32, rows*cols),
		finiteOnly: cfg.finiteOnly,
	}, nil
}

// NewSquare creates an n×n Dense with every off-diagonal element set to fill
// and a zero diagonal.
//
// Implementation:
//   - Stage 1: NewDense(n, n, opts...).
//   - Stage 2: Fill(fill), then FillDiagonal(0).
//
// Inputs:
//   - n: positive side length.
//   - fill: off-diagonal value; +Inf is allowed unless WithFiniteOnly is given.
//
// Errors:
//   - ErrInvalidDimensions for n <= 0.
//   - ErrNaNInf when fill is not finite on a finite-only matrix.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewSquare(n int, fill float32, opts ...DenseOption) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(fill); err != nil {
		return nil, err
	}
	m.FillDiagonal(0)

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// FiniteOnly reports whether the matrix rejects NaN/±Inf writes.
func (m *Dense) FiniteOnly() bool { return m.finiteOnly }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
//
// Inputs:
//   - row in [0,Rows()), col in [0,Cols()).
//
// Returns:
//   - float32: the stored value.
//
// Errors:
//   - ErrIndexOutOfBounds wrapped as "Dense.At(row,col): ...". Never panics.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float32, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
//
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: reject NaN/±Inf when the matrix is finite-only.
//   - Stage 3: write into the flat buffer at row*cols + col.
//
// Errors:
//   - ErrIndexOutOfBounds, ErrNaNInf (wrapped with method and coordinates).
//     On error the matrix is unchanged.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float32) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.finiteOnly && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Fill overwrites every element with v.
// Returns ErrNaNInf (wrapped) when v is not finite and the matrix is finite-only.
// Complexity: O(r*c).
func (m *Dense) Fill(v float32) error {
	if m.finiteOnly && !isFinite(v) {
		return denseErrorf(ctxFill, 0, 0, ErrNaNInf)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return nil
}

// FillDiagonal writes v on the main diagonal (min(r,c) cells).
// Complexity: O(min(r,c)).
func (m *Dense) FillDiagonal(v float32) {
	n := m.r
	if m.c < n {
		n = m.c
	}
	for i := 0; i < n; i++ {
		m.data[i*m.c+i] = v
	}
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Implementation:
//   - Row-major sweep; f sees the current value and its coordinates.
//
// Behavior highlights:
//   - On a finite-only matrix a non-finite result aborts with ErrNaNInf;
//     elements written before the failure stay updated.
//
// Inputs:
//   - f: pure element function; it must not retain the matrix.
//
// Complexity:
//   - Time O(r*c), no allocations.
func (m *Dense) Apply(f func(i, j int, v float32) float32) error {
	var i, j, base int
	var nv float32
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.finiteOnly && !isFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix with the same numeric policy.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, finiteOnly: m.finiteOnly}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c); not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

func isFinite(v float32) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
