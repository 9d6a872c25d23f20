// SPDX-License-Identifier: MIT

// Package matrix - exact rational and integer vectors.
//
// Purpose:
//   - Vec is the coordinate type of coefficient functionals (one entry per basis form).
//   - IntVec is the primitive integer normal form used to compare rays up to positive scaling.
//
// Determinism:
//   - All helpers return fresh values; inputs are never mutated.

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Vec is a dense vector of exact rationals.
type Vec []*big.Rat

// IntVec is a dense vector of arbitrary-precision integers.
type IntVec []*big.Int

// NewVec returns the zero vector of length n.
func NewVec(n int) Vec {
	v := make(Vec, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v
}

// VecOf builds a Vec from int64 numerators (denominator 1).
func VecOf(xs ...int64) Vec {
	v := make(Vec, len(xs))
	for i, x := range xs {
		v[i] = new(big.Rat).SetInt64(x)
	}

	return v
}

// IntVecOf builds an IntVec from int64 values.
func IntVecOf(xs ...int64) IntVec {
	v := make(IntVec, len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}

	return v
}

// Clone returns a deep copy of v.
func (v Vec) Clone() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).Set(x)
	}

	return out
}

// IsZero reports whether every entry is zero. The empty vector is zero.
func (v Vec) IsZero() bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports exact entry-wise equality.
func (v Vec) Equal(o Vec) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i].Cmp(o[i]) != 0 {
			return false
		}
	}

	return true
}

// Add returns v + o.
func (v Vec) Add(o Vec) (Vec, error) {
	if len(v) != len(o) {
		return nil, ErrDimensionMismatch
	}
	out := make(Vec, len(v))
	for i := range v {
		out[i] = new(big.Rat).Add(v[i], o[i])
	}

	return out, nil
}

// Scale returns alpha*v.
func (v Vec) Scale(alpha *big.Rat) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = new(big.Rat).Mul(v[i], alpha)
	}

	return out
}

// AddScaled accumulates alpha*o into v in place (v += alpha*o).
func (v Vec) AddScaled(alpha *big.Rat, o Vec) error {
	if len(v) != len(o) {
		return ErrDimensionMismatch
	}
	tmp := new(big.Rat)
	for i := range v {
		v[i].Add(v[i], tmp.Mul(alpha, o[i]))
	}

	return nil
}

// Dot returns the exact inner product v·o.
func Dot(v, o Vec) (*big.Rat, error) {
	if len(v) != len(o) {
		return nil, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	sum, tmp := new(big.Rat), new(big.Rat)
	for i := range v {
		sum.Add(sum, tmp.Mul(v[i], o[i]))
	}

	return sum, nil
}

// String renders v as "(a, b, c)" with exact rationals.
func (v Vec) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = x.RatString()
	}

	return "(" + strings.Join(parts, _fmtSep) + ")"
}

// Denominator returns the least common multiple of the entry denominators.
// The empty vector has denominator 1.
func Denominator(v Vec) *big.Int {
	den := big.NewInt(1)
	g := new(big.Int)
	for _, x := range v {
		d := x.Denom()
		g.GCD(nil, nil, den, d)
		den.Mul(den, new(big.Int).Quo(d, g))
	}

	return den
}

// GCD returns the non-negative gcd of the entries; gcd of the zero vector is 0.
func GCD(v IntVec) *big.Int {
	g := new(big.Int)
	abs := new(big.Int)
	for _, x := range v {
		g.GCD(nil, nil, g, abs.Abs(x))
	}

	return g
}

// PrimitiveIntegral scales v by a positive rational so that all entries are
// coprime integers. Direction is preserved; the zero vector maps to zeros.
//
// Implementation:
//   - Stage 1: multiply by Denominator(v) to clear denominators.
//   - Stage 2: divide by the gcd of the resulting integers (if non-zero).
//
// Complexity:
//   - O(n) big-integer operations.
func PrimitiveIntegral(v Vec) IntVec {
	den := Denominator(v)
	out := make(IntVec, len(v))
	for i, x := range v {
		n := new(big.Int).Mul(x.Num(), den)
		out[i] = n.Quo(n, x.Denom())
	}
	g := GCD(out)
	if g.Sign() == 0 || g.Cmp(big.NewInt(1)) == 0 {
		return out
	}
	for i := range out {
		out[i].Quo(out[i], g)
	}

	return out
}

// Primitive returns v divided by the gcd of its entries (positive scaling).
func (v IntVec) Primitive() IntVec {
	out := v.Clone()
	g := GCD(out)
	if g.Sign() == 0 {
		return out
	}
	for i := range out {
		out[i].Quo(out[i], g)
	}

	return out
}

// Clone returns a deep copy of v.
func (v IntVec) Clone() IntVec {
	out := make(IntVec, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}

	return out
}

// Equal reports exact entry-wise equality.
func (v IntVec) Equal(o IntVec) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i].Cmp(o[i]) != 0 {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is zero.
func (v IntVec) IsZero() bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Compare orders integer vectors lexicographically (-1, 0, +1).
// Shorter vectors sort first when one is a prefix of the other.
func (v IntVec) Compare(o IntVec) int {
	for i := 0; i < len(v) && i < len(o); i++ {
		if c := v[i].Cmp(o[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(v) < len(o):
		return -1
	case len(v) > len(o):
		return 1
	}

	return 0
}

// Rat converts v to a rational vector.
func (v IntVec) Rat() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).SetInt(x)
	}

	return out
}

// DotRat returns the inner product of v with a rational vector x.
func (v IntVec) DotRat(x Vec) (*big.Rat, error) {
	if len(v) != len(x) {
		return nil, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	sum, tmp, vi := new(big.Rat), new(big.Rat), new(big.Rat)
	for i := range v {
		vi.SetInt(v[i])
		sum.Add(sum, tmp.Mul(vi, x[i]))
	}

	return sum, nil
}

// String renders v as "(a, b, c)".
func (v IntVec) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = x.String()
	}

	return fmt.Sprintf("(%s)", strings.Join(parts, _fmtSep))
}
