// SPDX-License-Identifier: MIT

package polyhedral

import (
	"math/big"

	"github.com/katalvlaran/heegner/matrix"
)

// bitset is a fixed-size set of constraint indices.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)/64) }

func (b bitset) set(i int)      { b[i/64] |= 1 << (uint(i) % 64) }
func (b bitset) has(i int) bool { return b[i/64]&(1<<(uint(i)%64)) != 0 }

func (b bitset) and(o bitset) bitset {
	out := make(bitset, len(b))
	for i := range b {
		out[i] = b[i] & o[i]
	}

	return out
}

// subsetOf reports b ⊆ o.
func (b bitset) subsetOf(o bitset) bool {
	for i := range b {
		if b[i]&^o[i] != 0 {
			return false
		}
	}

	return true
}

func (b bitset) count() int {
	n := 0
	for _, w := range b {
		for ; w != 0; w &= w - 1 {
			n++
		}
	}

	return n
}

// ddRay is an extreme ray of the partial dual cone with the set of processed
// constraints it satisfies with equality.
type ddRay struct {
	v    matrix.IntVec
	zero bitset
}

// supportHyperplanes runs the double description method on the dual cone
// {a : a·g >= 0 for all generators g}. Its extreme rays are the facet normals
// of the primal cone.
//
// Implementation:
//   - Stage 1: pick dim independent generators B (greedy echelon). The dual
//     cone of B is simplicial; its rays are the columns of B^{-1}.
//   - Stage 2: add the remaining constraints one at a time. Rays on the
//     positive side survive, rays on the negative side are dropped, and every
//     adjacent (positive, negative) pair spawns the ray on the new hyperplane.
//     Adjacency is the combinatorial test: the common zero set has at least
//     dim-2 elements and no third ray's zero set contains it.
//
// Complexity:
//   - Output-sensitive; fine for the few dozen generators this module feeds it.
func supportHyperplanes(dim int, gens []matrix.IntVec) ([]matrix.IntVec, error) {
	m := len(gens)
	rows := make([]matrix.Vec, m)
	for i, g := range gens {
		rows[i] = g.Rat()
	}

	ech := matrix.NewEchelon(dim)
	var basis []int
	for i, r := range rows {
		ok, err := ech.Insert(r)
		if err != nil {
			return nil, err
		}
		if ok {
			basis = append(basis, i)
			if ech.Full() {
				break
			}
		}
	}
	if len(basis) < dim {
		return nil, ErrNotFullDimensional
	}

	bm := make([]matrix.Vec, dim)
	for i, idx := range basis {
		bm[i] = rows[idx]
	}
	a, err := matrix.FromRows(bm)
	if err != nil {
		return nil, err
	}
	inv, err := matrix.Inverse(a)
	if err != nil {
		return nil, err
	}
	invT, err := matrix.Transpose(inv)
	if err != nil {
		return nil, err
	}

	processed := newBitset(m)
	for _, idx := range basis {
		processed.set(idx)
	}
	rays := make([]ddRay, dim)
	for j := 0; j < dim; j++ {
		col, err := invT.Row(j)
		if err != nil {
			return nil, err
		}
		z := newBitset(m)
		for i, idx := range basis {
			if i != j {
				z.set(idx)
			}
		}
		rays[j] = ddRay{v: matrix.PrimitiveIntegral(col), zero: z}
	}

	for i := 0; i < m; i++ {
		if processed.has(i) {
			continue
		}
		rays, err = addConstraint(dim, rays, i, gens[i])
		if err != nil {
			return nil, err
		}
		processed.set(i)
	}

	out := make([]matrix.IntVec, len(rays))
	for i, r := range rays {
		out[i] = r.v
	}

	return out, nil
}

// addConstraint intersects the current dual cone with {a : a·g >= 0}.
func addConstraint(dim int, rays []ddRay, idx int, g matrix.IntVec) ([]ddRay, error) {
	vals := make([]*big.Int, len(rays))
	var pos, neg []int
	next := make([]ddRay, 0, len(rays))
	for k, r := range rays {
		vals[k] = dotInt(r.v, g)
		switch vals[k].Sign() {
		case 1:
			pos = append(pos, k)
			next = append(next, r)
		case 0:
			z := append(bitset(nil), r.zero...)
			z.set(idx)
			next = append(next, ddRay{v: r.v, zero: z})
		default:
			neg = append(neg, k)
		}
	}
	if len(neg) == 0 {
		return next, nil
	}

	for _, p := range pos {
		for _, q := range neg {
			common := rays[p].zero.and(rays[q].zero)
			if common.count() < dim-2 {
				continue
			}
			if !adjacent(rays, p, q, common) {
				continue
			}
			// vals[p] > 0 > vals[q]: vals[p]*r_q - vals[q]*r_p lies on a·g = 0.
			v := make(matrix.IntVec, dim)
			t := new(big.Int)
			for c := 0; c < dim; c++ {
				v[c] = new(big.Int).Mul(vals[p], rays[q].v[c])
				v[c].Sub(v[c], t.Mul(vals[q], rays[p].v[c]))
			}
			common.set(idx)
			next = append(next, ddRay{v: v.Primitive(), zero: common})
		}
	}

	return next, nil
}

// adjacent applies the combinatorial adjacency test for rays p and q.
func adjacent(rays []ddRay, p, q int, common bitset) bool {
	for k, r := range rays {
		if k == p || k == q {
			continue
		}
		if common.subsetOf(r.zero) {
			return false
		}
	}

	return true
}

func dotInt(a, b matrix.IntVec) *big.Int {
	sum, t := new(big.Int), new(big.Int)
	for i := range a {
		sum.Add(sum, t.Mul(a[i], b[i]))
	}

	return sum
}
