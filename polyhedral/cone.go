// SPDX-License-Identifier: MIT

package polyhedral

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/heegner/matrix"
)

var (
	// ErrNoGenerators is returned when a cone is requested from an empty (or all-zero) generator list.
	ErrNoGenerators = errors.New("polyhedral: no non-zero generators")

	// ErrNotFullDimensional is returned when the generators do not span the ambient space.
	ErrNotFullDimensional = errors.New("polyhedral: generators do not span the ambient space")

	// ErrDimensionMismatch is returned when vectors of different lengths are mixed.
	ErrDimensionMismatch = errors.New("polyhedral: dimension mismatch")
)

// Position classifies a vector against a cone.
type Position int

const (
	// Outside means some support hyperplane is strictly negative on the vector.
	Outside Position = iota
	// Boundary means all support hyperplanes are non-negative and at least one vanishes.
	Boundary
	// Interior means all support hyperplanes are strictly positive.
	Interior
)

// String returns a lower-case label.
func (p Position) String() string {
	switch p {
	case Interior:
		return "interior"
	case Boundary:
		return "boundary"
	default:
		return "outside"
	}
}

// Cone is a full-dimensional rational polyhedral cone given by generators.
// Support hyperplanes and extreme rays are computed once in New; the value is
// immutable afterwards.
type Cone struct {
	dim         int
	generators  []matrix.IntVec // primitive integer form, zero vectors dropped
	origin      []int           // generators[i] came from input index origin[i]
	hyperplanes []matrix.IntVec // inward normals, primitive, lexicographically sorted
	rays        []matrix.IntVec // extreme rays, primitive, in first-generator order
	rayOrigin   []int           // input index of the first generator equal to rays[i]
}

// New builds the cone generated by vs.
//
// Implementation:
//   - Stage 1: normalise every generator to primitive integer form, drop zeros.
//   - Stage 2: double description on the dual cone gives the support hyperplanes.
//   - Stage 3: a generator is an extreme ray iff the hyperplanes vanishing on it
//     have rank dim-1 (and the cone is pointed).
//
// Errors:
//   - ErrNoGenerators, ErrDimensionMismatch, ErrNotFullDimensional.
func New(vs []matrix.Vec) (*Cone, error) {
	c := &Cone{}
	for i, v := range vs {
		if c.dim == 0 {
			c.dim = len(v)
		}
		if len(v) != c.dim {
			return nil, fmt.Errorf("generator %d has length %d, want %d: %w", i, len(v), c.dim, ErrDimensionMismatch)
		}
		iv := matrix.PrimitiveIntegral(v)
		if iv.IsZero() {
			continue
		}
		c.generators = append(c.generators, iv)
		c.origin = append(c.origin, i)
	}
	if len(c.generators) == 0 {
		return nil, ErrNoGenerators
	}

	hs, err := supportHyperplanes(c.dim, c.generators)
	if err != nil {
		return nil, err
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i].Compare(hs[j]) < 0 })
	c.hyperplanes = hs

	if err = c.computeExtremeRays(); err != nil {
		return nil, err
	}

	return c, nil
}

// computeExtremeRays keeps the generators whose tight hyperplanes have rank dim-1.
func (c *Cone) computeExtremeRays() error {
	hrows := make([]matrix.Vec, len(c.hyperplanes))
	for i, h := range c.hyperplanes {
		hrows[i] = h.Rat()
	}
	// A cone with a lineality space has no extreme rays.
	rk, err := matrix.Rank(hrows)
	if err != nil {
		return err
	}
	if rk < c.dim {
		return nil
	}
	for gi, g := range c.generators {
		dup := false
		for _, r := range c.rays {
			if r.Equal(g) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		var tight []matrix.Vec
		gr := g.Rat()
		for i, h := range c.hyperplanes {
			d, err := h.DotRat(gr)
			if err != nil {
				return err
			}
			if d.Sign() == 0 {
				tight = append(tight, hrows[i])
			}
		}
		r, err := matrix.Rank(tight)
		if err != nil {
			return err
		}
		if r == c.dim-1 {
			c.rays = append(c.rays, g)
			c.rayOrigin = append(c.rayOrigin, c.origin[gi])
		}
	}

	return nil
}

// Dim returns the ambient dimension.
func (c *Cone) Dim() int { return c.dim }

// SupportHyperplanes returns copies of the inward facet normals a (a·x >= 0 on the cone).
func (c *Cone) SupportHyperplanes() []matrix.IntVec { return cloneAll(c.hyperplanes) }

// ExtremeRays returns copies of the extreme rays in primitive integer form.
func (c *Cone) ExtremeRays() []matrix.IntVec { return cloneAll(c.rays) }

// RayOrigins returns, for each extreme ray, the index (in the New input) of
// the first generator equal to it.
func (c *Cone) RayOrigins() []int { return append([]int(nil), c.rayOrigin...) }

// Locate classifies x as Interior, Boundary or Outside.
func (c *Cone) Locate(x matrix.Vec) (Position, error) {
	if len(x) != c.dim {
		return Outside, ErrDimensionMismatch
	}
	pos := Interior
	for _, h := range c.hyperplanes {
		d, err := h.DotRat(x)
		if err != nil {
			return Outside, err
		}
		switch d.Sign() {
		case -1:
			return Outside, nil
		case 0:
			pos = Boundary
		}
	}

	return pos, nil
}

// Values returns h·x for every support hyperplane h, in hyperplane order.
func (c *Cone) Values(x matrix.Vec) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(c.hyperplanes))
	for i, h := range c.hyperplanes {
		d, err := h.DotRat(x)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return out, nil
}

func cloneAll(vs []matrix.IntVec) []matrix.IntVec {
	out := make([]matrix.IntVec, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}

	return out
}
