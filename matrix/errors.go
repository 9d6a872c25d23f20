// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf("<Op>", ErrX) at
// the detection site; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or Dot on vectors of different length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilEntry indicates that a nil *big.Rat was offered as a matrix or vector entry.
	ErrNilEntry = errors.New("matrix: nil entry")

	// ErrSingular is returned when no non-zero pivot exists during exact elimination.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotInSpan is returned by Solve when the target is not a combination of the basis.
	ErrNotInSpan = errors.New("matrix: vector not in span")
)

// Operation tags used in error wrappers (grep-able, stable).
const (
	opAt        = "At"
	opSet       = "Set"
	opFromRows  = "FromRows"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
	opSolve     = "Solve"
	opDot       = "Dot"
	opInsert    = "Echelon.Insert"
)

// matrixErrorf wraps err with a call-site tag, preserving errors.Is/As.
// Assumes err != nil; callers gate with `if err != nil`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
