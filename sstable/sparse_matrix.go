package sstable

import (
	"github.com/pkg/errors"

	"github.com/Joellate/Sparse-Matrix/util"
)

// Entry is a stored (row, col, value) triple, value is never zero
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// SparseMatrix keeps only the nonzero elements of a nrow x ncol
// integer matrix. Data maps a row index to the nonzero columns of
// that row; a row without nonzero columns is not present at all.
type SparseMatrix struct {
	nrow int
	ncol int
	data map[int]map[int]int64
}

// NewSparseMatrix creates an empty matrix with r rows and c columns.
// Both dimensions must be positive.
func NewSparseMatrix(r, c int) (*SparseMatrix, error) {
	if r <= 0 || c <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "shape %dx%d", r, c)
	}
	return newSparseMatrix(r, c), nil
}

// newSparseMatrix allows zero extents, as loaded files and
// products over an empty inner dimension can have them
func newSparseMatrix(r, c int) *SparseMatrix {
	return &SparseMatrix{
		nrow: r,
		ncol: c,
		data: make(map[int]map[int]int64),
	}
}

// get the shape of the matrix
func (m *SparseMatrix) Shape() (int, int) {
	return m.nrow, m.ncol
}

// number of stored nonzero elements
func (m *SparseMatrix) Nnz() int {
	n := 0
	for _, row := range m.data {
		n += len(row)
	}
	return n
}

func (m *SparseMatrix) checkIndex(r, c int) error {
	if r < 0 || r >= m.nrow || c < 0 || c >= m.ncol {
		return errors.Wrapf(ErrIndexOutOfBounds,
			"[%d, %d] outside %dx%d", r, c, m.nrow, m.ncol)
	}
	return nil
}

// get the [r, c]-th element of the matrix, absent elements are zero
func (m *SparseMatrix) Get(r, c int) (int64, error) {
	if err := m.checkIndex(r, c); err != nil {
		return 0, err
	}
	return m.data[r][c], nil
}

// set val to the [r, c]-th element of the matrix. Setting zero
// removes the element.
func (m *SparseMatrix) Set(r, c int, val int64) error {
	if err := m.checkIndex(r, c); err != nil {
		return err
	}
	if val == 0 {
		row, ok := m.data[r]
		if !ok {
			return nil
		}
		delete(row, c)
		if len(row) == 0 {
			delete(m.data, r)
		}
		return nil
	}
	row, ok := m.data[r]
	if !ok {
		row = make(map[int]int64)
		m.data[r] = row
	}
	row[c] = val
	return nil
}

// increment the [r, c]-th element of the matrix by val
func (m *SparseMatrix) Incr(r, c int, val int64) error {
	cur, err := m.Get(r, c)
	if err != nil {
		return err
	}
	sum, err := addInt64(cur, val)
	if err != nil {
		return errors.Wrapf(err, "[%d, %d]", r, c)
	}
	return m.Set(r, c, sum)
}

// Entries lists the stored elements, rows ascending and columns
// ascending within a row
func (m *SparseMatrix) Entries() []Entry {
	entries := make([]Entry, 0, m.Nnz())
	for _, r := range util.SortedKeys(m.data) {
		row := m.data[r]
		for _, c := range util.SortedKeys(row) {
			entries = append(entries, Entry{Row: r, Col: c, Value: row[c]})
		}
	}
	return entries
}

// Equal reports whether o has the same shape and the same
// nonzero elements as m
func (m *SparseMatrix) Equal(o *SparseMatrix) bool {
	if o == nil {
		return false
	}
	if m.nrow != o.nrow || m.ncol != o.ncol || len(m.data) != len(o.data) {
		return false
	}
	for r, row := range m.data {
		other, ok := o.data[r]
		if !ok || len(other) != len(row) {
			return false
		}
		for c, val := range row {
			if other[c] != val {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the matrix
func (m *SparseMatrix) Clone() *SparseMatrix {
	cp := &SparseMatrix{
		nrow: m.nrow,
		ncol: m.ncol,
		data: make(map[int]map[int]int64, len(m.data)),
	}
	for r, row := range m.data {
		rowCopy := make(map[int]int64, len(row))
		for c, val := range row {
			rowCopy[c] = val
		}
		cp.data[r] = rowCopy
	}
	return cp
}
