package polyhedral_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/heegner/matrix"
	"github.com/katalvlaran/heegner/polyhedral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strs renders integer vectors for order-insensitive comparison.
func strs(vs []matrix.IntVec) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}

	return out
}

func ratVec(xs ...string) matrix.Vec {
	v := make(matrix.Vec, len(xs))
	for i, x := range xs {
		v[i], _ = new(big.Rat).SetString(x)
	}

	return v
}

// pyramid is the cone over the square [-1,1]^2 at height 1, plus its axis.
func pyramid() []matrix.Vec {
	return []matrix.Vec{
		matrix.VecOf(1, 1, 1),
		matrix.VecOf(1, -1, 1),
		matrix.VecOf(0, 0, 1),
		matrix.VecOf(-1, 1, 1),
		matrix.VecOf(-1, -1, 1),
	}
}

func TestNew_Orthant(t *testing.T) {
	c, err := polyhedral.New([]matrix.Vec{
		matrix.VecOf(0, 0, 2),
		matrix.VecOf(1, 0, 0),
		matrix.VecOf(0, 3, 0),
		matrix.VecOf(1, 1, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Dim())
	assert.Equal(t, []string{"(0, 0, 1)", "(0, 1, 0)", "(1, 0, 0)"}, strs(c.SupportHyperplanes()))
	assert.Equal(t, []string{"(0, 0, 1)", "(1, 0, 0)", "(0, 1, 0)"}, strs(c.ExtremeRays()))
	assert.Equal(t, []int{0, 1, 2}, c.RayOrigins())
}

func TestNew_SquarePyramid(t *testing.T) {
	c, err := polyhedral.New(pyramid())
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"(-1, 0, 1)", "(0, -1, 1)", "(0, 1, 1)", "(1, 0, 1)"},
		strs(c.SupportHyperplanes()))
	assert.Equal(t,
		[]string{"(1, 1, 1)", "(1, -1, 1)", "(-1, 1, 1)", "(-1, -1, 1)"},
		strs(c.ExtremeRays()), "the axis generator is not extreme")
	assert.Equal(t, []int{0, 1, 3, 4}, c.RayOrigins())
}

func TestNew_DuplicateAndZeroGenerators(t *testing.T) {
	c, err := polyhedral.New([]matrix.Vec{
		matrix.VecOf(0, 0),
		matrix.VecOf(2, 0),
		matrix.VecOf(1, 0),
		matrix.VecOf(0, 5),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"(1, 0)", "(0, 1)"}, strs(c.ExtremeRays()))
	assert.Equal(t, []int{1, 3}, c.RayOrigins(), "origins point at the first equal generator")
}

func TestNew_Errors(t *testing.T) {
	_, err := polyhedral.New(nil)
	assert.ErrorIs(t, err, polyhedral.ErrNoGenerators)

	_, err = polyhedral.New([]matrix.Vec{matrix.VecOf(0, 0)})
	assert.ErrorIs(t, err, polyhedral.ErrNoGenerators)

	_, err = polyhedral.New([]matrix.Vec{matrix.VecOf(1, 0, 0), matrix.VecOf(0, 1, 0)})
	assert.ErrorIs(t, err, polyhedral.ErrNotFullDimensional)

	_, err = polyhedral.New([]matrix.Vec{matrix.VecOf(1, 0), matrix.VecOf(0, 1, 0)})
	assert.ErrorIs(t, err, polyhedral.ErrDimensionMismatch)
}

func TestLocate_ConsistentWithHyperplanes(t *testing.T) {
	c, err := polyhedral.New(pyramid())
	require.NoError(t, err)

	for _, tc := range []struct {
		x    matrix.Vec
		want polyhedral.Position
	}{
		{matrix.VecOf(0, 0, 1), polyhedral.Interior},
		{ratVec("1/2", "-1/3", "1"), polyhedral.Interior},
		{matrix.VecOf(1, 1, 1), polyhedral.Boundary},
		{matrix.VecOf(1, 0, 1), polyhedral.Boundary},
		{matrix.VecOf(2, 0, 1), polyhedral.Outside},
		{matrix.VecOf(0, 0, -1), polyhedral.Outside},
	} {
		got, err := c.Locate(tc.x)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "x=%s", tc.x)

		// Cross-check against the raw hyperplane values.
		vals, err := c.Values(tc.x)
		require.NoError(t, err)
		minSign := 1
		for _, v := range vals {
			if v.Sign() < minSign {
				minSign = v.Sign()
			}
		}
		switch minSign {
		case 1:
			assert.Equal(t, polyhedral.Interior, got)
		case 0:
			assert.Equal(t, polyhedral.Boundary, got)
		default:
			assert.Equal(t, polyhedral.Outside, got)
		}
	}

	_, err = c.Locate(matrix.VecOf(1, 1))
	assert.ErrorIs(t, err, polyhedral.ErrDimensionMismatch)
}

func TestIncircleRadius(t *testing.T) {
	square := []matrix.Vec{
		matrix.VecOf(1, 1), matrix.VecOf(1, -1), matrix.VecOf(-1, 1), matrix.VecOf(-1, -1),
	}
	r, err := polyhedral.IncircleRadius(square)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	triangle := []matrix.Vec{matrix.VecOf(-1, -1), matrix.VecOf(2, -1), matrix.VecOf(-1, 2)}
	r, err = polyhedral.IncircleRadius(triangle)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt2, r, 1e-12)

	offset := []matrix.Vec{matrix.VecOf(1, 1), matrix.VecOf(2, 1), matrix.VecOf(1, 2)}
	r, err = polyhedral.IncircleRadius(offset)
	require.NoError(t, err)
	assert.Zero(t, r, "origin outside the polytope")

	touching := []matrix.Vec{matrix.VecOf(0, 0), matrix.VecOf(1, 0), matrix.VecOf(0, 1)}
	r, err = polyhedral.IncircleRadius(touching)
	require.NoError(t, err)
	assert.Zero(t, r, "origin on the boundary")

	_, err = polyhedral.IncircleRadius([]matrix.Vec{matrix.VecOf(1, 0), matrix.VecOf(2, 0)})
	assert.ErrorIs(t, err, polyhedral.ErrNotFullDimensional)
}
