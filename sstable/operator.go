package sstable

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/Joellate/Sparse-Matrix/util"
)

// Add returns a new matrix holding a + b
func Add(a, b *SparseMatrix) (*SparseMatrix, error) {
	if a.nrow != b.nrow || a.ncol != b.ncol {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"add %dx%d and %dx%d", a.nrow, a.ncol, b.nrow, b.ncol)
	}
	return elementwise(a, b, addInt64)
}

// Subtract returns a new matrix holding a - b
func Subtract(a, b *SparseMatrix) (*SparseMatrix, error) {
	if a.nrow != b.nrow || a.ncol != b.ncol {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"subtract %dx%d and %dx%d", a.nrow, a.ncol, b.nrow, b.ncol)
	}
	return elementwise(a, b, subInt64)
}

// elementwise visits only the coordinates that are nonzero in a or b.
// Results that come out as zero are dropped by Set.
func elementwise(a, b *SparseMatrix,
	op func(x, y int64) (int64, error)) (*SparseMatrix, error) {
	result := newSparseMatrix(a.nrow, a.ncol)
	for _, r := range util.UnionKeys(a.data, b.data) {
		arow, brow := a.data[r], b.data[r]
		for _, c := range util.UnionKeys(arow, brow) {
			val, err := op(arow[c], brow[c])
			if err != nil {
				return nil, errors.Wrapf(err, "[%d, %d]", r, c)
			}
			if err := result.Set(r, c, val); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// Multiply returns a new a.rows x b.cols matrix holding a * b.
// Only pairs of a nonzero (r, k) in a and a nonzero (k, c) in b
// are visited. Elements are summed in arbitrary precision; only the
// final value of each element has to fit in int64.
func Multiply(a, b *SparseMatrix) (*SparseMatrix, error) {
	if a.ncol != b.nrow {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"multiply %dx%d by %dx%d", a.nrow, a.ncol, b.nrow, b.ncol)
	}
	result := newSparseMatrix(a.nrow, b.ncol)

	var prod big.Int
	for _, r := range util.SortedKeys(a.data) {
		acc := make(map[int]*big.Int)
		for _, k := range util.SortedKeys(a.data[r]) {
			brow, ok := b.data[k]
			if !ok {
				continue
			}
			v1 := big.NewInt(a.data[r][k])
			for _, c := range util.SortedKeys(brow) {
				sum, ok := acc[c]
				if !ok {
					sum = new(big.Int)
					acc[c] = sum
				}
				sum.Add(sum, prod.Mul(v1, big.NewInt(brow[c])))
			}
		}

		for _, c := range util.SortedKeys(acc) {
			sum := acc[c]
			if !sum.IsInt64() {
				return nil, errors.Wrapf(ErrOverflow, "[%d, %d] = %s", r, c, sum)
			}
			// contributions that cancel leave zero, which Set drops
			if err := result.Set(r, c, sum.Int64()); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

func addInt64(x, y int64) (int64, error) {
	sum := x + y
	if (y > 0 && sum < x) || (y < 0 && sum > x) {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", x, y)
	}
	return sum, nil
}

func subInt64(x, y int64) (int64, error) {
	diff := x - y
	if (y > 0 && diff > x) || (y < 0 && diff < x) {
		return 0, errors.Wrapf(ErrOverflow, "%d - %d", x, y)
	}
	return diff, nil
}
