// SPDX-License-Identifier: MIT

// Package matrix - exact linear algebra kernels over Q.
//
// Purpose:
//   - Rank, products, transpose, Gauss–Jordan inverse and exact solves used by
//     the cone solver, the special basis search and ray identification.
//
// Determinism & Policy:
//   - Fixed loop orders; the pivot is the first non-zero entry in the column
//     (no magnitude heuristics are needed in exact arithmetic).
//   - Inputs are never mutated; every kernel works on a private copy.

package matrix

import (
	"fmt"
	"math/big"
)

// Rank returns the rank of the matrix whose rows are the given vectors.
// An empty list has rank 0. Ragged rows yield ErrDimensionMismatch.
//
// Complexity:
//   - O(r*c*min(r,c)) rational operations.
func Rank(rows []Vec) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	e := NewEchelon(len(rows[0]))
	for _, row := range rows {
		if _, err := e.Insert(row); err != nil {
			return 0, err
		}
	}

	return e.Rank(), nil
}

// Transpose returns mᵀ.
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i].Set(m.data[i*m.c+j])
		}
	}

	return out, nil
}

// Mul returns the product a × b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	tmp := new(big.Rat)
	var i, j, k int
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik.Sign() == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				cell := out.data[i*b.c+j]
				cell.Add(cell, tmp.Mul(aik, b.data[k*b.c+j]))
			}
		}
	}

	return out, nil
}

// MulVec returns the row vector x·m (len(x) == m.Rows()).
// This is the "integer combination of basis rows" product used by ray identification.
func MulVec(x Vec, m *Dense) (Vec, error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if len(x) != m.r {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	out := NewVec(m.c)
	tmp := new(big.Rat)
	for i := 0; i < m.r; i++ {
		if x[i].Sign() == 0 {
			continue
		}
		for j := 0; j < m.c; j++ {
			out[j].Add(out[j], tmp.Mul(x[i], m.data[i*m.c+j]))
		}
	}

	return out, nil
}

// Inverse returns A^{-1} by exact Gauss–Jordan elimination.
//
// Implementation:
//   - Stage 1: augment a private copy of A with I.
//   - Stage 2: for each column pick the first non-zero pivot at or below the
//     diagonal, swap, normalise, eliminate above and below.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - O(n^3) rational operations.
func Inverse(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opInverse, ErrNonSquare)
	}
	n := m.r
	a := m.Clone()
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	factor, tmp := new(big.Rat), new(big.Rat)
	for col := 0; col < n; col++ {
		pivot := -1
		for i := col; i < n; i++ {
			if a.data[i*n+col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if pivot != col {
			swapRows(a, pivot, col)
			swapRows(inv, pivot, col)
		}
		// Normalise the pivot row.
		factor.Inv(a.data[col*n+col])
		for j := 0; j < n; j++ {
			a.data[col*n+j].Mul(a.data[col*n+j], factor)
			inv.data[col*n+j].Mul(inv.data[col*n+j], factor)
		}
		// Eliminate the column everywhere else.
		for i := 0; i < n; i++ {
			if i == col || a.data[i*n+col].Sign() == 0 {
				continue
			}
			factor.Set(a.data[i*n+col])
			for j := 0; j < n; j++ {
				a.data[i*n+j].Sub(a.data[i*n+j], tmp.Mul(factor, a.data[col*n+j]))
				inv.data[i*n+j].Sub(inv.data[i*n+j], tmp.Mul(factor, inv.data[col*n+j]))
			}
		}
	}

	return inv, nil
}

// swapRows exchanges rows i and j of m in place (internal; indices trusted).
func swapRows(m *Dense, i, j int) {
	for k := 0; k < m.c; k++ {
		m.data[i*m.c+k], m.data[j*m.c+k] = m.data[j*m.c+k], m.data[i*m.c+k]
	}
}

// Solve returns coefficients c with Σ c[j]·basis[j] == target.
// The basis vectors must be linearly independent.
//
// Implementation:
//   - Build the column system B c = target with B's columns = basis vectors,
//     row reduce the augmented matrix, and read c off the pivot rows.
//
// Errors:
//   - ErrInvalidDimensions (empty basis), ErrDimensionMismatch (ragged input),
//     ErrSingular (dependent basis), ErrNotInSpan (inconsistent system).
func Solve(basis []Vec, target Vec) (Vec, error) {
	k := len(basis)
	if k == 0 {
		return nil, matrixErrorf(opSolve, ErrInvalidDimensions)
	}
	n := len(target)
	for j, b := range basis {
		if len(b) != n {
			return nil, matrixErrorf(opSolve, fmt.Errorf("basis[%d]: %w", j, ErrDimensionMismatch))
		}
	}
	// Augmented n×(k+1) system, one row per coordinate.
	aug := make([]Vec, n)
	for i := 0; i < n; i++ {
		row := make(Vec, k+1)
		for j := 0; j < k; j++ {
			row[j] = new(big.Rat).Set(basis[j][i])
		}
		row[k] = new(big.Rat).Set(target[i])
		aug[i] = row
	}
	factor, tmp := new(big.Rat), new(big.Rat)
	r := 0
	for col := 0; col < k; col++ {
		pivot := -1
		for i := r; i < n; i++ {
			if aug[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		aug[r], aug[pivot] = aug[pivot], aug[r]
		factor.Inv(aug[r][col])
		for j := col; j <= k; j++ {
			aug[r][j].Mul(aug[r][j], factor)
		}
		for i := 0; i < n; i++ {
			if i == r || aug[i][col].Sign() == 0 {
				continue
			}
			factor.Set(aug[i][col])
			for j := col; j <= k; j++ {
				aug[i][j].Sub(aug[i][j], tmp.Mul(factor, aug[r][j]))
			}
		}
		r++
	}
	// Remaining rows must read 0 = 0.
	for i := r; i < n; i++ {
		if aug[i][k].Sign() != 0 {
			return nil, matrixErrorf(opSolve, ErrNotInSpan)
		}
	}
	out := make(Vec, k)
	for j := 0; j < k; j++ {
		out[j] = new(big.Rat).Set(aug[j][k])
	}

	return out, nil
}
