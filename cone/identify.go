// SPDX-License-Identifier: MIT

package cone

import (
	"fmt"

	"github.com/katalvlaran/heegner/divisor"
	"github.com/katalvlaran/heegner/matrix"
)

// Mode tells how rays were attributed to divisors.
type Mode uint8

const (
	// ModeExact labels every ray with the single generator it equals.
	ModeExact Mode = iota
	// ModeBasis writes every ray as an integer combination of a generator basis.
	ModeBasis
)

// String returns "exact" or "basis".
func (m Mode) String() string {
	if m == ModeBasis {
		return "basis"
	}

	return "exact"
}

// Identification attributes extreme rays to divisors.
//
// In ModeExact, Rays[i] is the one divisor whose functional is a positive
// multiple of ray i and Basis is nil. In ModeBasis, Basis lists the
// generator positions of a maximal independent subset and
// Σ_j Coefficients[i][j]·vector(Basis[j]) is a positive multiple of ray i.
type Identification struct {
	Mode         Mode
	Rays         []divisor.Divisor
	Basis        []int
	Coefficients []matrix.IntVec
}

// Identify attributes rays to generators of p.
//
// Implementation:
//   - Stage 1: normalise every generator to primitive integer form and look
//     each ray up by exact equality; the first generator that matches wins.
//   - Stage 2: if some ray has no match, pick generators greedily (in order,
//     keeping those that raise the rank, stopping at full rank), solve every
//     ray in that basis and clear denominators.
func (p *Pending) Identify(rays []matrix.IntVec) (Identification, error) {
	norm := make([]matrix.IntVec, len(p.vectors))
	for i, v := range p.vectors {
		norm[i] = matrix.PrimitiveIntegral(v)
	}

	exact := make([]divisor.Divisor, 0, len(rays))
	for _, r := range rays {
		found := -1
		for i, g := range norm {
			if !g.IsZero() && g.Equal(r) {
				found = i
				break
			}
		}
		if found < 0 {
			return p.identifyInBasis(rays)
		}
		exact = append(exact, p.divisorAt(found))
	}

	return Identification{Mode: ModeExact, Rays: exact}, nil
}

func (p *Pending) identifyInBasis(rays []matrix.IntVec) (Identification, error) {
	dim := 0
	if len(p.vectors) > 0 {
		dim = len(p.vectors[0])
	}
	ech := matrix.NewEchelon(dim)
	var (
		pos []int
		vs  []matrix.Vec
	)
	for i, v := range p.vectors {
		if ech.Full() {
			break
		}
		ok, err := ech.Insert(v)
		if err != nil {
			return Identification{}, err
		}
		if ok {
			pos = append(pos, i)
			vs = append(vs, v)
		}
	}

	id := Identification{Mode: ModeBasis, Basis: pos}
	for _, r := range rays {
		c, err := matrix.Solve(vs, r.Rat())
		if err != nil {
			return Identification{}, fmt.Errorf("cone: ray %s: %w", r, err)
		}
		ci := matrix.PrimitiveIntegral(c)
		d := divisor.Zero(p.kind, p.rep, p.weight)
		for j, n := range ci {
			if n.Sign() == 0 {
				continue
			}
			d, err = d.Add(p.divisorAt(pos[j]).ScaleInt(n))
			if err != nil {
				return Identification{}, err
			}
		}
		id.Rays = append(id.Rays, d)
		id.Coefficients = append(id.Coefficients, ci)
	}

	return id, nil
}

func (p *Pending) divisorAt(i int) divisor.Divisor {
	return divisor.Of(p.kind, p.rep, p.weight, p.elements[i])
}

// Value returns Σ_j Coefficients[i][j]·vectors[Basis[j]] for ray i of a
// ModeBasis identification of p.
func (p *Pending) Value(id Identification, i int) (matrix.Vec, error) {
	rows := make([]matrix.Vec, len(id.Basis))
	for j, b := range id.Basis {
		rows[j] = p.vectors[b]
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, err
	}

	return matrix.MulVec(id.Coefficients[i].Rat(), m)
}
