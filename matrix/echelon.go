// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Echelon is an incrementally built row-echelon basis of a subspace of Q^dim.
// Insert reports whether a vector raises the rank, which is exactly the
// "does appending this row increase the rank" test used by greedy basis
// selection.
//
// Invariant: row i has a 1 at pivots[i] and zeros at pivots[j] for j < i.
type Echelon struct {
	dim    int
	rows   []Vec
	pivots []int
}

// NewEchelon returns an empty echelon basis of ambient dimension dim.
func NewEchelon(dim int) *Echelon {
	return &Echelon{dim: dim}
}

// Dim returns the ambient dimension.
func (e *Echelon) Dim() int { return e.dim }

// Rank returns the number of independent vectors inserted so far.
func (e *Echelon) Rank() int { return len(e.rows) }

// Full reports whether the basis spans the whole ambient space.
func (e *Echelon) Full() bool { return len(e.rows) == e.dim }

// Reduce returns the residue of v after elimination against the basis.
// The residue is zero iff v lies in the span.
func (e *Echelon) Reduce(v Vec) (Vec, error) {
	if len(v) != e.dim {
		return nil, matrixErrorf(opInsert, fmt.Errorf("len %d, want %d: %w", len(v), e.dim, ErrDimensionMismatch))
	}
	res := v.Clone()
	tmp := new(big.Rat)
	for i, row := range e.rows {
		c := res[e.pivots[i]]
		if c.Sign() == 0 {
			continue
		}
		c = new(big.Rat).Set(c)
		for j := e.pivots[i]; j < e.dim; j++ {
			res[j].Sub(res[j], tmp.Mul(c, row[j]))
		}
	}

	return res, nil
}

// Insert adds v to the basis if it is independent of it.
// Returns true iff the rank increased.
func (e *Echelon) Insert(v Vec) (bool, error) {
	res, err := e.Reduce(v)
	if err != nil {
		return false, err
	}
	pivot := -1
	for j, x := range res {
		if x.Sign() != 0 {
			pivot = j
			break
		}
	}
	if pivot < 0 {
		return false, nil
	}
	inv := new(big.Rat).Inv(res[pivot])
	for j := pivot; j < e.dim; j++ {
		res[j].Mul(res[j], inv)
	}
	e.rows = append(e.rows, res)
	e.pivots = append(e.pivots, pivot)

	return true, nil
}
