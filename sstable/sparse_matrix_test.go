package sstable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseMatrixShape(t *testing.T) {
	m, err := NewSparseMatrix(2, 3)
	require.NoError(t, err)

	r, c := m.Shape()

	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0, m.Nnz())
}

func TestNewSparseMatrixBadShape(t *testing.T) {
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-2, 3}, {3, -1}} {
		_, err := NewSparseMatrix(shape[0], shape[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "shape %v", shape)
	}
}

func TestSparseMatrixFreshIsZero(t *testing.T) {
	m, err := NewSparseMatrix(3, 4)
	require.NoError(t, err)

	for r := 0; r < 3; r += 1 {
		for c := 0; c < 4; c += 1 {
			val, err := m.Get(r, c)
			require.NoError(t, err)
			assert.Equal(t, int64(0), val)
		}
	}
}

func TestSparseMatrixGetSet(t *testing.T) {
	m, err := NewSparseMatrix(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 2, 7))
	require.NoError(t, m.Set(1, 0, -4))
	require.NoError(t, m.Set(0, 2, 9))

	val, err := m.Get(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(9), val)
	val, err = m.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), val)
	assert.Equal(t, 2, m.Nnz())
}

func TestSparseMatrixSetZeroRemoves(t *testing.T) {
	m, err := NewSparseMatrix(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 3))
	require.NoError(t, m.Set(1, 1, 0))

	val, err := m.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), val)
	assert.Equal(t, 0, m.Nnz())
	assert.Empty(t, m.data, "empty rows must not be kept")
	assert.NotContains(t, m.String(), "(1, 1")

	// removing an absent element is a no-op
	require.NoError(t, m.Set(0, 0, 0))
	assert.Empty(t, m.data)
}

func TestSparseMatrixOutOfBounds(t *testing.T) {
	m, err := NewSparseMatrix(2, 2)
	require.NoError(t, err)

	for _, idx := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		_, err := m.Get(idx[0], idx[1])
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)
		assert.ErrorIs(t, m.Set(idx[0], idx[1], 1), ErrIndexOutOfBounds)
	}
	assert.Equal(t, 0, m.Nnz())
}

func TestSparseMatrixIncr(t *testing.T) {
	m, err := NewSparseMatrix(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Incr(1, 1, 2))
	require.NoError(t, m.Incr(1, 1, 3))
	val, _ := m.Get(1, 1)
	assert.Equal(t, int64(5), val)

	require.NoError(t, m.Incr(1, 1, -5))
	assert.Equal(t, 0, m.Nnz())
}

func TestSparseMatrixEntriesOrder(t *testing.T) {
	m, err := NewSparseMatrix(12, 12)
	require.NoError(t, err)

	require.NoError(t, m.Set(10, 2, 1))
	require.NoError(t, m.Set(2, 11, 2))
	require.NoError(t, m.Set(2, 3, 3))
	require.NoError(t, m.Set(0, 9, 4))

	assert.Equal(t, []Entry{
		{Row: 0, Col: 9, Value: 4},
		{Row: 2, Col: 3, Value: 3},
		{Row: 2, Col: 11, Value: 2},
		{Row: 10, Col: 2, Value: 1},
	}, m.Entries())
}

func TestSparseMatrixEqualClone(t *testing.T) {
	m, err := NewSparseMatrix(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(2, 2, -1))

	cp := m.Clone()
	assert.True(t, m.Equal(cp))

	require.NoError(t, cp.Set(0, 1, 0))
	assert.False(t, m.Equal(cp))
	val, _ := m.Get(0, 1)
	assert.Equal(t, int64(2), val, "clone must not share storage")

	other, err := NewSparseMatrix(3, 4)
	require.NoError(t, err)
	assert.False(t, other.Equal(m))
	assert.False(t, m.Equal(nil))
}
