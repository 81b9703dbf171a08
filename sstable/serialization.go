package sstable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	rowsPrefix = "rows="
	colsPrefix = "cols="
)

// serialize the matrix to file fn, the file is truncated first
func (m *SparseMatrix) Serialize(fn string) (err error) {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrapf(ErrIOFailure, "open %s: %v", fn, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(ErrIOFailure, "close %s: %v", fn, cerr)
		}
	}()

	w := bufio.NewWriter(out)
	if _, err := m.WriteTo(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(ErrIOFailure, "write %s: %v", fn, err)
	}
	return nil
}

// WriteTo writes the text encoding of the matrix to w:
//
//	rows=<rows>
//	cols=<cols>
//	(<row>, <col>, <value>)
//
// with one entry line per nonzero element, rows ascending and columns
// ascending within a row.
func (m *SparseMatrix) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		if err != nil {
			return errors.Wrapf(ErrIOFailure, "%v", err)
		}
		return nil
	}

	// write the matrix shape
	if err := write("%s%d\n%s%d\n", rowsPrefix, m.nrow, colsPrefix, m.ncol); err != nil {
		return total, err
	}
	for _, e := range m.Entries() {
		if err := write("(%d, %d, %d)\n", e.Row, e.Col, e.Value); err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the same text WriteTo produces
func (m *SparseMatrix) String() string {
	var sb strings.Builder
	// strings.Builder never fails a write
	_, _ = m.WriteTo(&sb)
	return sb.String()
}

// deserialize a matrix from file fn
func Deserialize(fn string) (*SparseMatrix, error) {
	file, err := os.Open(fn)
	if err != nil {
		return nil, errors.Wrapf(ErrFileNotFound, "%s: %v", fn, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, errors.Wrapf(ErrFileNotFound, "%s: %v", fn, err)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(ErrFileNotFound, "%s is a directory", fn)
	}

	m, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", fn)
	}
	return m, nil
}

// Parse reads the text encoding written by WriteTo. Blank lines are
// skipped and surrounding whitespace is ignored. Zero valued entries
// are accepted but not stored; a repeated coordinate keeps the value
// of its last occurrence.
func Parse(r io.Reader) (*SparseMatrix, error) {
	var m *SparseMatrix
	var nrow int

	lineIdx := 0
	headers := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineIdx += 1
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}

		switch headers {
		case 0:
			n, err := parseHeader(txt, rowsPrefix)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineIdx)
			}
			nrow = n
			headers += 1
			continue
		case 1:
			ncol, err := parseHeader(txt, colsPrefix)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineIdx)
			}
			m = newSparseMatrix(nrow, ncol)
			headers += 1
			continue
		}

		ridx, cidx, val, err := parseEntry(txt)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineIdx)
		}
		if err := m.Set(ridx, cidx, val); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineIdx)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(ErrIOFailure, "read: %v", err)
	}
	if m == nil {
		return nil, errors.Wrapf(ErrMalformedFormat, "missing %s or %s header", rowsPrefix, colsPrefix)
	}
	return m, nil
}

func parseHeader(txt, prefix string) (int, error) {
	if !strings.HasPrefix(txt, prefix) {
		return 0, errors.Wrapf(ErrMalformedFormat, "expected %s, got %q", prefix, txt)
	}
	n, err := strconv.Atoi(strings.TrimSpace(txt[len(prefix):]))
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedFormat, "%q: %v", txt, err)
	}
	if n < 0 {
		return 0, errors.Wrapf(ErrMalformedFormat, "%q: negative extent", txt)
	}
	return n, nil
}

// parse a single "(row, col, value)" line
func parseEntry(txt string) (int, int, int64, error) {
	if len(txt) < 2 || txt[0] != '(' || txt[len(txt)-1] != ')' {
		return 0, 0, 0, errors.Wrapf(ErrMalformedFormat, "entry %q not in parentheses", txt)
	}
	value := strings.Split(txt[1:len(txt)-1], ",")
	if len(value) != 3 {
		return 0, 0, 0, errors.Wrapf(ErrMalformedFormat, "entry %q needs 3 fields", txt)
	}
	ridx, err := strconv.Atoi(strings.TrimSpace(value[0]))
	if err != nil {
		return 0, 0, 0, errors.Wrapf(ErrMalformedFormat, "row in %q: %v", txt, err)
	}
	cidx, err := strconv.Atoi(strings.TrimSpace(value[1]))
	if err != nil {
		return 0, 0, 0, errors.Wrapf(ErrMalformedFormat, "col in %q: %v", txt, err)
	}
	val, err := strconv.ParseInt(strings.TrimSpace(value[2]), 10, 64)
	if err != nil {
		return 0, 0, 0, errors.Wrapf(ErrMalformedFormat, "value in %q: %v", txt, err)
	}
	return ridx, cidx, val, nil
}
