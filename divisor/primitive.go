// SPDX-License-Identifier: MIT

package divisor

import (
	"math/big"

	"github.com/katalvlaran/heegner/weilrep"
)

// Term is one summand coefficient·[element] of a divisor or a decomposition.
type Term struct {
	Coef    *big.Int
	Element Element
}

// PrimitiveDecomposition writes the Heegner divisor H(g) through primitive
// divisors by Möbius inversion. The result always starts with (1, g).
//
// Implementation:
//   - Stage 1: emit (1, g).
//   - Stage 2: for every y = (y_1..y_r, M) enumerable up to N/4, let
//     m = isqrt(floor(N/M)). Keep y when M·m² == N and g ≡ m·y or g ≡ -m·y
//     (mod 1, every coordinate, one sign for the whole vector). Its
//     coefficient is μ(m), or 1 when forceUnit is set.
//
// Ratios N/M that are not perfect squares are excluded by the truncating
// square root; they cannot correspond to an index multiple.
//
// forceUnit selects the reverse direction (Heegner in terms of primitive
// divisors). It is not the exact inverse of the μ-weighted direction when
// several y share the same multiple; callers must compare functionals, not
// formal sums.
//
// A nil w has no elements to enumerate and yields only (1, g).
func PrimitiveDecomposition(w weilrep.CosetSpace, g Element, forceUnit bool) []Term {
	out := []Term{{Coef: big.NewInt(1), Element: g}}
	if w == nil {
		return out
	}
	n := g.level
	quarter := new(big.Rat).Quo(n, big.NewRat(4, 1))

	en := Enumerate(w, quarter)
	ratio, m2 := new(big.Rat), new(big.Rat)
	for y, ok := en.Next(); ok; y, ok = en.Next() {
		ratio.Quo(n, y.level)
		m := new(big.Int).Sqrt(weilrep.Floor(ratio))
		if m.Sign() == 0 {
			continue
		}
		m2.SetInt(new(big.Int).Mul(m, m))
		if new(big.Rat).Mul(y.level, m2).Cmp(n) != 0 {
			continue
		}
		if !matchesMultiple(g.coords, y.coords, m) {
			continue
		}
		coef := big.NewInt(1)
		if !forceUnit {
			coef.SetInt64(int64(Mobius(m)))
		}
		out = append(out, Term{Coef: coef, Element: y})
	}

	return out
}

// matchesMultiple reports whether g - m·y or g + m·y is integral in every coordinate.
func matchesMultiple(g, y []*big.Rat, m *big.Int) bool {
	if len(g) != len(y) {
		return false
	}
	mr := new(big.Rat).SetInt(m)
	minus, plus := true, true
	t := new(big.Rat)
	for i := range g {
		t.Mul(mr, y[i])
		if !new(big.Rat).Sub(g[i], t).IsInt() {
			minus = false
		}
		if !new(big.Rat).Add(g[i], t).IsInt() {
			plus = false
		}
	}

	return minus || plus
}
