package bound_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heegner/basis"
	"github.com/katalvlaran/heegner/bound"
	"github.com/katalvlaran/heegner/matrix"
)

type disc int64

func (d disc) Discriminant() int64 { return int64(d) }

var k = big.NewRat(21, 2)

func idx(n *big.Rat) basis.Index { return basis.Index{N: n} }

func diamond() []matrix.Vec {
	return []matrix.Vec{
		matrix.VecOf(1, 1, 0), matrix.VecOf(2, -2, 0),
		matrix.VecOf(1, 0, 1), matrix.VecOf(3, 0, -3),
		matrix.VecOf(0, 5, 5), // v0 = 0 is ignored
	}
}

func TestZetaAndL(t *testing.T) {
	assert.InDelta(t, math.Pi*math.Pi/6, bound.Zeta(2), 1e-12)
	assert.InDelta(t, 1.0009945751278180, bound.Zeta(10), 1e-12)
	// Catalan's constant.
	assert.InDelta(t, 0.9159655941772190, bound.LChi(2, -4), 1e-10)
	assert.InDelta(t, 0.8840238117500799, bound.LChi(3, -3), 1e-10)
	// χ_1 is the trivial character.
	assert.InDelta(t, bound.Zeta(2), bound.LChi(2, 1), 1e-10)
}

func TestKronecker(t *testing.T) {
	for _, tc := range []struct {
		a, n int64
		want int
	}{
		{-4, 1, 1}, {-4, 2, 0}, {-4, 3, -1}, {-4, 5, 1},
		{-3, 2, -1}, {-3, 7, 1}, {-3, 3, 0}, {5, 2, -1}, {7, 2, 1},
		{8, 15, 1}, {2, 15, 1}, {3, 4, 1}, {-1, 8, 1}, {12, 0, 0},
	} {
		assert.Equal(t, tc.want, bound.Kronecker(tc.a, tc.n), "(%d/%d)", tc.a, tc.n)
	}
	assert.Equal(t, -1, bound.Jacobi(2, 3))
	assert.Equal(t, 0, bound.Jacobi(6, 9))
	assert.Equal(t, -1, bound.Jacobi(1001, 9907))
}

func TestEisensteinConstant(t *testing.T) {
	h := bound.EisensteinConstant(k, -4, false)
	assert.InDelta(t, 105.9474, h, 1e-3)

	p := bound.EisensteinConstant(k, -4, true)
	assert.InEpsilon(t, bound.PrimitiveEisensteinFactor, p/h, 1e-12)

	// Integral weight with an odd prime in the discriminant.
	assert.InDelta(t, 153.6305, bound.EisensteinConstant(big.NewRat(4, 1), -3, false), 1e-3)
}

func TestCuspConstant(t *testing.T) {
	ix := []basis.Index{idx(big.NewRat(1, 1)), idx(big.NewRat(7, 4))}
	h := bound.CuspConstant(k, -4, ix, false)
	assert.InDelta(t, 79.2954, h, 1e-3)

	p := bound.CuspConstant(k, -4, ix, true)
	assert.InEpsilon(t, bound.Zeta(10.5), p/h, 1e-12)

	assert.Zero(t, bound.CuspConstant(k, -4, nil, false))
}

func TestRadius(t *testing.T) {
	r, err := bound.Radius(diamond())
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt2, r, 1e-12)

	// One-sided points: origin on the boundary.
	r, err = bound.Radius([]matrix.Vec{matrix.VecOf(1, 0, 0), matrix.VecOf(1, 1, 0), matrix.VecOf(1, 0, 1)})
	require.NoError(t, err)
	assert.Zero(t, r)

	r, err = bound.Radius([]matrix.Vec{matrix.VecOf(1, 1, 0), matrix.VecOf(1, -1, 0)})
	require.NoError(t, err)
	assert.Zero(t, r, "flat point sets have no interior")
}

func TestCompute(t *testing.T) {
	ix := []basis.Index{idx(big.NewRat(1, 1)), idx(big.NewRat(7, 4))}
	in := bound.Input{Rep: disc(-4), Weight: k, Indices: ix, Functionals: diamond()}

	b, err := bound.Compute(in)
	require.NoError(t, err)
	assert.InDelta(t, 1.01346, b, 1e-4)

	// The bound solves R·eis/c = B^((2-k)/2).
	lhs := (1 / math.Sqrt2) * bound.EisensteinConstant(k, -4, false) / bound.CuspConstant(k, -4, ix, false)
	assert.InEpsilon(t, lhs, math.Pow(b, (2-10.5)/2), 1e-9)

	in.Primitive = true
	bp, err := bound.Compute(in)
	require.NoError(t, err)
	assert.Greater(t, bp, b, "primitive corrections only enlarge the bound")
}

func TestCompute_Errors(t *testing.T) {
	ix := []basis.Index{idx(big.NewRat(1, 1))}

	_, err := bound.Compute(bound.Input{Rep: disc(-4), Weight: big.NewRat(2, 1), Indices: ix, Functionals: diamond()})
	assert.ErrorIs(t, err, bound.ErrWeightTooSmall)

	_, err = bound.Compute(bound.Input{Rep: disc(-4), Weight: k, Functionals: diamond()})
	assert.ErrorIs(t, err, bound.ErrEmptyBasis)

	_, err = bound.Compute(bound.Input{Rep: disc(-4), Weight: k, Indices: ix, Functionals: diamond()[:2]})
	assert.ErrorIs(t, err, bound.ErrOriginNotInterior)
}
