// Package matrix_test contains unit tests for the float32 Dense storage.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antwalk/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewSquare(-1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.False(t, m.FiniteOnly())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1.25)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(0, -1, 4.5)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(7.5), val)

	val, err = m.At(2-1, 0) // untouched cell stays zero
	require.NoError(t, err)
	require.Zero(t, val)
}

// TestNewSquareDiagonal checks the zero diagonal and uniform off-diagonal fill.
func TestNewSquareDiagonal(t *testing.T) {
	m, err := matrix.NewSquare(4, 1.0)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Zero(t, v, "diagonal (%d,%d)", i, j)
			} else {
				require.Equal(t, float32(1.0), v, "off-diagonal (%d,%d)", i, j)
			}
		}
	}
}

// TestFiniteOnlyPolicy ensures NaN/Inf writes are rejected only under WithFiniteOnly.
func TestFiniteOnlyPolicy(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	loose, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 1, inf))
	require.NoError(t, loose.Fill(inf))

	strict, err := matrix.NewDense(2, 2, matrix.WithFiniteOnly())
	require.NoError(t, err)
	require.True(t, strict.FiniteOnly())
	require.ErrorIs(t, strict.Set(0, 1, inf), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 1, nan), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Fill(nan), matrix.ErrNaNInf)

	_, err = matrix.NewSquare(2, inf, matrix.WithFiniteOnly())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestApply verifies in-place, row-major element updates and policy enforcement.
func TestApply(t *testing.T) {
	m, err := matrix.NewSquare(3, 2.0, matrix.WithFiniteOnly())
	require.NoError(t, err)

	err = m.Apply(func(i, j int, v float32) float32 {
		if i == j {
			return v
		}
		return v * 0.5
	})
	require.NoError(t, err)

	v, _ := m.At(0, 1)
	require.Equal(t, float32(1.0), v)
	v, _ = m.At(2, 2)
	require.Zero(t, v)

	err = m.Apply(func(i, j int, v float32) float32 { return float32(math.Inf(-1)) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithFiniteOnly())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))
	require.True(t, clone.FiniteOnly())

	orig, _ := m.At(0, 0)
	require.Equal(t, float32(1.0), orig)
	cv, _ := clone.At(0, 0)
	require.Equal(t, float32(3.0), cv)
}

// TestString checks the debugging dump layout.
func TestString(t *testing.T) {
	m, err := matrix.NewSquare(2, 1.5)
	require.NoError(t, err)
	require.Equal(t, "[0, 1.5]\n[1.5, 0]\n", m.String())
}
