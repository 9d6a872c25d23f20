// SPDX-License-Identifier: MIT

package polyhedral

import (
	"math"
	"math/big"

	"github.com/katalvlaran/heegner/matrix"
)

// IncircleRadius returns the radius of the largest Euclidean ball centred at
// the origin that fits inside the convex hull of points.
//
// The points are lifted to (1, p) and the facets a0 + a·p >= 0 of the lifted
// cone are the facets of the polytope; the distance from the origin to each
// facet is a0/|a|. The radius is the minimum over facets, and 0 when the
// origin is not an interior point.
//
// Errors:
//   - ErrNoGenerators for an empty point set.
//   - ErrNotFullDimensional when the points do not affinely span their space.
func IncircleRadius(points []matrix.Vec) (float64, error) {
	if len(points) == 0 {
		return 0, ErrNoGenerators
	}
	lifted := make([]matrix.Vec, len(points))
	for i, p := range points {
		v := make(matrix.Vec, 0, len(p)+1)
		v = append(v, big.NewRat(1, 1))
		v = append(v, p...)
		lifted[i] = v
	}
	c, err := New(lifted)
	if err != nil {
		return 0, err
	}

	radius := math.Inf(1)
	for _, h := range c.hyperplanes {
		if h[0].Sign() <= 0 {
			return 0, nil
		}
		norm := 0.0
		for _, a := range h[1:] {
			f, _ := new(big.Float).SetInt(a).Float64()
			norm += f * f
		}
		if norm == 0 {
			continue
		}
		a0, _ := new(big.Float).SetInt(h[0]).Float64()
		if d := a0 / math.Sqrt(norm); d < radius {
			radius = d
		}
	}
	if math.IsInf(radius, 1) {
		return 0, nil
	}

	return radius, nil
}
