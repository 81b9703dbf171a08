package sstable

import "errors"

var (
	ErrInvalidDimensions = errors.New("matrix: non-positive dimension not allowed")
	ErrFileNotFound      = errors.New("matrix: file not found")
	ErrMalformedFormat   = errors.New("matrix: input file has wrong format")
	ErrIndexOutOfBounds  = errors.New("matrix: index out of bounds")
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
	ErrIOFailure         = errors.New("matrix: i/o failure")
	// values are int64, arithmetic past its range fails instead of wrapping
	ErrOverflow = errors.New("matrix: integer overflow")
)
