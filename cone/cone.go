// SPDX-License-Identifier: MIT

package cone

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/heegner/divisor"
	"github.com/katalvlaran/heegner/matrix"
	"github.com/katalvlaran/heegner/polyhedral"
	"github.com/katalvlaran/heegner/weilrep"
)

// Cone is a solved cone of Heegner (or primitive Heegner) divisors.
// It is immutable; every accessor returns copies.
type Cone struct {
	pending *Pending
	poly    *polyhedral.Cone
	ident   Identification
}

// Kind returns the divisor kind of the generators.
func (c *Cone) Kind() divisor.Kind { return c.pending.kind }

// Weight returns the weight.
func (c *Cone) Weight() *big.Rat { return new(big.Rat).Set(c.pending.weight) }

// Bound returns the generating bound.
func (c *Cone) Bound() *big.Rat { return new(big.Rat).Set(c.pending.bound) }

// Representation returns the representation the divisors live on: the
// dual of the one passed to Heegner.
func (c *Cone) Representation() weilrep.Representation { return c.pending.rep }

// Basis returns the coordinate forms X = [E, f_1, ..., f_d].
func (c *Cone) Basis() []weilrep.Form { return append([]weilrep.Form(nil), c.pending.x...) }

// Elements returns the generating elements in enumeration order.
func (c *Cone) Elements() []divisor.Element {
	return append([]divisor.Element(nil), c.pending.elements...)
}

// Hyperplanes returns the inward support hyperplane normals.
func (c *Cone) Hyperplanes() []matrix.IntVec { return c.poly.SupportHyperplanes() }

// ExtremeRays returns the extreme rays in primitive integer form.
func (c *Cone) ExtremeRays() []matrix.IntVec { return c.poly.ExtremeRays() }

// Identification returns how the extreme rays were attributed to divisors.
func (c *Cone) Identification() Identification {
	id := Identification{Mode: c.ident.Mode}
	id.Rays = append(id.Rays, c.ident.Rays...)
	id.Basis = append(id.Basis, c.ident.Basis...)
	for _, v := range c.ident.Coefficients {
		id.Coefficients = append(id.Coefficients, v.Clone())
	}

	return id
}

// Rays returns the divisor (or divisor combination) of every extreme ray.
func (c *Cone) Rays() []divisor.Divisor { return append([]divisor.Divisor(nil), c.ident.Rays...) }

// H returns the Heegner divisor H(e) on the cone's representation.
func (c *Cone) H(e divisor.Element) divisor.Divisor {
	return divisor.Heegner(c.pending.rep, c.pending.weight, e)
}

// P returns the primitive Heegner divisor P(e) on the cone's representation.
func (c *Cone) P(e divisor.Element) divisor.Divisor {
	return divisor.Primitive(c.pending.rep, c.pending.weight, e)
}

// String lists the extreme rays, one divisor per line.
func (c *Cone) String() string {
	var sb strings.Builder
	name := "Heegner divisors"
	if c.pending.kind == divisor.KindPrimitive {
		name = "primitive Heegner divisors"
	}
	fmt.Fprintf(&sb, "Cone of %s of weight %s up to %s, %d extreme rays (%s):",
		name, c.pending.weight.RatString(), c.pending.bound.FloatString(4), len(c.ident.Rays), c.ident.Mode)
	for _, d := range c.ident.Rays {
		sb.WriteString("\n  ")
		sb.WriteString(d.String())
	}

	return sb.String()
}
