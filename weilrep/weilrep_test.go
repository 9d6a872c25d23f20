package weilrep_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/heegner/internal/weiltest"
	"github.com/katalvlaran/heegner/matrix"
	"github.com/katalvlaran/heegner/weilrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rats(xs ...*big.Rat) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.RatString()
	}

	return out
}

func TestNewDiagonal_CosetsAndNorms(t *testing.T) {
	d, err := weilrep.NewDiagonal(2, 2)
	require.NoError(t, err)

	cosets := d.Cosets()
	require.Len(t, cosets, 4)
	assert.Equal(t, []string{"0", "0"}, rats(cosets[0]...))
	assert.Equal(t, []string{"0", "1/2"}, rats(cosets[1]...))
	assert.Equal(t, []string{"1/2", "0"}, rats(cosets[2]...))
	assert.Equal(t, []string{"1/2", "1/2"}, rats(cosets[3]...))

	assert.Equal(t, []string{"0", "1/4", "1/4", "1/2"}, rats(d.Norms()...))
	assert.Equal(t, []string{"0", "3/4", "3/4", "1/2"}, rats(d.Dual().Norms()...))

	assert.Equal(t, int64(4), d.Order())
	assert.Equal(t, 2, d.Rank())
	assert.Equal(t, 2, d.Signature())
	assert.Equal(t, int64(-4), d.Discriminant())
	assert.Equal(t, int64(-4), d.Dual().Discriminant())
}

func TestNewDiagonal_Discriminants(t *testing.T) {
	for _, tc := range []struct {
		gram []int64
		want int64
	}{
		{[]int64{2}, 2},
		{[]int64{2, 6}, -12},
		{[]int64{2, -2}, 4},
		{[]int64{2, 2, 2, 2}, 16},
		{[]int64{4, 2, 2, 2, 2, 2}, -128},
	} {
		d, err := weilrep.NewDiagonal(tc.gram...)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.Discriminant(), "gram=%v", tc.gram)
	}
}

func TestNewDiagonal_BadGram(t *testing.T) {
	_, err := weilrep.NewDiagonal()
	assert.ErrorIs(t, err, weilrep.ErrBadGram)
	_, err = weilrep.NewDiagonal(2, 3)
	assert.ErrorIs(t, err, weilrep.ErrBadGram)
	_, err = weilrep.NewDiagonal(0)
	assert.ErrorIs(t, err, weilrep.ErrBadGram)
}

func TestCosetIndex(t *testing.T) {
	d, err := weilrep.NewDiagonal(2, 4)
	require.NoError(t, err)

	idx, err := d.CosetIndex([]*big.Rat{big.NewRat(3, 2), big.NewRat(-1, 4)})
	require.NoError(t, err)
	// (1/2, 3/4) is coset 1*4 + 3.
	assert.Equal(t, 7, idx)
	assert.Equal(t, []string{"1/2", "3/4"}, rats(d.Cosets()[idx]...))

	_, err = d.CosetIndex([]*big.Rat{big.NewRat(1, 3), new(big.Rat)})
	assert.ErrorIs(t, err, weilrep.ErrUnknownCoset)
	_, err = d.CosetIndex([]*big.Rat{new(big.Rat)})
	assert.ErrorIs(t, err, weilrep.ErrUnknownCoset)
}

func TestFracFloor(t *testing.T) {
	assert.Equal(t, "-2", weilrep.Floor(big.NewRat(-3, 2)).String())
	assert.Equal(t, "1/2", weilrep.Frac(big.NewRat(-3, 2)).RatString())
	assert.Equal(t, "0", weilrep.Frac(big.NewRat(4, 1)).RatString())
}

func TestRelationDimension(t *testing.T) {
	n, err := weilrep.RelationDimension([]matrix.Vec{
		matrix.VecOf(1, 2), matrix.VecOf(2, 4), matrix.VecOf(0, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = weilrep.RelationDimension(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCombine_RegularisedPoincare(t *testing.T) {
	w := weiltest.MustNew(2, 2, 2).Dual()
	k := big.NewRat(21, 2)
	prec := big.NewRat(3, 1)

	e, err := w.Eisenstein(k, prec)
	require.NoError(t, err)
	p, err := w.Poincare(k, 0, big.NewRat(1, 1), prec)
	require.NoError(t, err)

	f := weilrep.Combine(
		weilrep.Term{Scale: big.NewRat(1, 2), Form: p},
		weilrep.Term{Scale: big.NewRat(-1, 2), Form: e},
	)
	zero := []*big.Rat{new(big.Rat), new(big.Rat)}
	for _, tc := range []struct {
		n    *big.Rat
		want string
	}{
		{big.NewRat(1, 1), "1"},
		{big.NewRat(2, 1), "-1"},
		{big.NewRat(3, 1), "0"},
		{big.NewRat(3, 2), "0"},
	} {
		c, err := f.Coefficient(zero, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, c.RatString(), "n=%s", tc.n.RatString())
	}
	assert.Equal(t, "3", f.Precision().RatString())

	_, err = f.Coefficient(zero, big.NewRat(4, 1))
	assert.ErrorIs(t, err, weilrep.ErrBeyondPrecision)
}
