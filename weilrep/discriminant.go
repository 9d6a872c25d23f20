// SPDX-License-Identifier: MIT

package weilrep

import (
	"fmt"
	"math/big"
)

// DiscriminantForm is the discriminant form L'/L of an even lattice with a
// diagonal Gram matrix diag(s_1, ..., s_r), each s_i even and non-zero.
// Cosets are the vectors (j_1/|s_1|, ..., j_r/|s_r|) with 0 <= j_i < |s_i|,
// in lexicographic order; q(x) = Σ s_i x_i^2 / 2 mod 1.
type DiscriminantForm struct {
	gram   []int64
	cosets [][]*big.Rat
	norms  []*big.Rat
}

var _ CosetSpace = (*DiscriminantForm)(nil)

// NewDiagonal builds the discriminant form of diag(gram...).
//
// Errors:
//   - ErrBadGram for an empty list or a zero/odd entry.
func NewDiagonal(gram ...int64) (*DiscriminantForm, error) {
	if len(gram) == 0 {
		return nil, fmt.Errorf("empty gram: %w", ErrBadGram)
	}
	for i, s := range gram {
		if s == 0 || s%2 != 0 {
			return nil, fmt.Errorf("gram[%d]=%d: %w", i, s, ErrBadGram)
		}
	}
	d := &DiscriminantForm{gram: append([]int64(nil), gram...)}
	d.build()

	return d, nil
}

// build enumerates cosets in lexicographic order and caches their norms.
func (d *DiscriminantForm) build() {
	r := len(d.gram)
	idx := make([]int64, r)
	for {
		coords := make([]*big.Rat, r)
		for i := range coords {
			coords[i] = big.NewRat(idx[i], abs64(d.gram[i]))
		}
		d.cosets = append(d.cosets, coords)
		d.norms = append(d.norms, d.q(coords))

		// Odometer increment, last coordinate fastest.
		i := r - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < abs64(d.gram[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// q returns Σ s_i x_i^2 / 2 reduced into [0, 1).
func (d *DiscriminantForm) q(x []*big.Rat) *big.Rat {
	sum, t := new(big.Rat), new(big.Rat)
	for i, xi := range x {
		t.Mul(xi, xi)
		t.Mul(t, big.NewRat(d.gram[i], 2))
		sum.Add(sum, t)
	}

	return Frac(sum)
}

// Cosets returns copies of the coset representatives.
func (d *DiscriminantForm) Cosets() [][]*big.Rat {
	out := make([][]*big.Rat, len(d.cosets))
	for i, c := range d.cosets {
		out[i] = copyRats(c)
	}

	return out
}

// Norms returns copies of q(g) mod 1 per coset.
func (d *DiscriminantForm) Norms() []*big.Rat { return copyRats(d.norms) }

// Gram returns the diagonal Gram entries.
func (d *DiscriminantForm) Gram() []int64 { return append([]int64(nil), d.gram...) }

// Rank returns the lattice rank.
func (d *DiscriminantForm) Rank() int { return len(d.gram) }

// Order returns |L'/L|.
func (d *DiscriminantForm) Order() int64 {
	n := int64(1)
	for _, s := range d.gram {
		n *= abs64(s)
	}

	return n
}

// Signature returns b+ - b-.
func (d *DiscriminantForm) Signature() int {
	sig := 0
	for _, s := range d.gram {
		if s > 0 {
			sig++
		} else {
			sig--
		}
	}

	return sig
}

// Discriminant returns (-1)^{floor(s/2)} |L'/L| with s = signature mod 8.
func (d *DiscriminantForm) Discriminant() int64 {
	s := ((d.Signature() % 8) + 8) % 8
	if (s/2)%2 == 1 {
		return -d.Order()
	}

	return d.Order()
}

// Dual returns the discriminant form of diag(-gram...): same cosets, norms negated mod 1.
func (d *DiscriminantForm) Dual() *DiscriminantForm {
	neg := make([]int64, len(d.gram))
	for i, s := range d.gram {
		neg[i] = -s
	}
	out := &DiscriminantForm{gram: neg}
	out.build()

	return out
}

// CosetIndex reduces coords mod 1 and returns the index of the matching coset.
func (d *DiscriminantForm) CosetIndex(coords []*big.Rat) (int, error) {
	if len(coords) != len(d.gram) {
		return 0, fmt.Errorf("rank %d, want %d: %w", len(coords), len(d.gram), ErrUnknownCoset)
	}
	// Mixed-radix index, last coordinate fastest.
	idx := 0
	for i, x := range coords {
		f := Frac(x)
		m := abs64(d.gram[i])
		scaled := new(big.Rat).Mul(f, big.NewRat(m, 1))
		if !scaled.IsInt() {
			return 0, fmt.Errorf("coordinate %d = %s: %w", i, x.RatString(), ErrUnknownCoset)
		}
		idx = idx*int(m) + int(scaled.Num().Int64())
	}

	return idx, nil
}

// Frac returns x - floor(x), in [0, 1).
func Frac(x *big.Rat) *big.Rat {
	fl := Floor(x)

	return new(big.Rat).Sub(x, new(big.Rat).SetInt(fl))
}

// Floor returns floor(x).
func Floor(x *big.Rat) *big.Int {
	// Euclidean division by the positive denominator floors.
	q, _ := new(big.Int).DivMod(x.Num(), x.Denom(), new(big.Int))

	return q
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

func copyRats(xs []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(xs))
	for i, x := range xs {
		out[i] = new(big.Rat).Set(x)
	}

	return out
}
