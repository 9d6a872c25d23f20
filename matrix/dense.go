// SPDX-License-Identifier: MIT

// Package matrix - Dense exact storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of *big.Rat with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Never alias caller-owned rationals: values are copied on the way in and out.
//
// AI-Hints:
//   - Prefer Row(i) when a whole row is needed; it returns an independent Vec.
//   - Use FromRows to build a matrix from functional vectors in one step.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1) plus a big.Rat copy; Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the rationals.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - every cell holds its own *big.Rat; cells are never shared.
type Dense struct {
	r, c int
	data []*big.Rat
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]*big.Rat, rows*cols)
	for i := range buf {
		buf[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewIdentity returns I_n with exact ones on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i].SetInt64(1)
	}

	return id, nil
}

// FromRows builds a Dense whose i-th row is a copy of rows[i].
//
// Implementation:
//   - Stage 1: validate non-empty input and equal row lengths.
//   - Stage 2: copy every entry (nil entries are rejected).
//
// Errors:
//   - ErrInvalidDimensions for an empty input or zero-length rows.
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNilEntry for nil entries.
func FromRows(rows []Vec) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), m.c, ErrDimensionMismatch))
		}
		for j, v := range row {
			if v == nil {
				return nil, matrixErrorf(opFromRows, denseErrorf(opSet, i, j, ErrNilEntry))
			}
			m.data[i*m.c+j].Set(v)
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf validates (i,j) and returns the flat offset.
func (m *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return i*m.c + j, nil
}

// At returns a copy of the element at (i,j).
//
// Errors:
//   - ErrNilMatrix on a nil receiver, ErrOutOfRange on bad indices.
func (m *Dense) At(i, j int) (*big.Rat, error) {
	if m == nil {
		return nil, denseErrorf(opAt, i, j, ErrNilMatrix)
	}
	off, err := m.indexOf(i, j)
	if err != nil {
		return nil, denseErrorf(opAt, i, j, err)
	}

	return new(big.Rat).Set(m.data[off]), nil
}

// Set stores a copy of v at (i,j).
//
// Errors:
//   - ErrNilMatrix on a nil receiver, ErrOutOfRange on bad indices, ErrNilEntry on nil v.
func (m *Dense) Set(i, j int, v *big.Rat) error {
	if m == nil {
		return denseErrorf(opSet, i, j, ErrNilMatrix)
	}
	off, err := m.indexOf(i, j)
	if err != nil {
		return denseErrorf(opSet, i, j, err)
	}
	if v == nil {
		return denseErrorf(opSet, i, j, ErrNilEntry)
	}
	m.data[off].Set(v)

	return nil
}

// Row returns an independent copy of row i.
func (m *Dense) Row(i int) (Vec, error) {
	if m == nil {
		return nil, denseErrorf(opAt, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(opAt, i, 0, ErrOutOfRange)
	}

	return Vec(m.data[i*m.c : (i+1)*m.c]).Clone(), nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]*big.Rat, len(m.data))}
	for i, v := range m.data {
		out.data[i] = new(big.Rat).Set(v)
	}

	return out
}

// Equal reports whether m and o have the same shape and identical entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line using exact rational strings.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
