// SPDX-License-Identifier: MIT

package cone

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/heegner/divisor"
	"github.com/katalvlaran/heegner/matrix"
	"github.com/katalvlaran/heegner/polyhedral"
	"github.com/katalvlaran/heegner/weilrep"
)

var (
	// ErrBoundTooSmall is returned by Check when a divisor up to the bound lies outside the cone.
	ErrBoundTooSmall = errors.New("cone: divisor outside the cone")

	// ErrNotHeegnerDivisor is returned by Contains for divisors with a zero functional.
	ErrNotHeegnerDivisor = errors.New("cone: not a Heegner divisor (zero functional)")

	// ErrLengthMismatch is returned when elements and vectors are not parallel.
	ErrLengthMismatch = errors.New("cone: elements and vectors differ in length")
)

// Pending holds the inputs of a cone: the representation the divisors live
// on, the weight, the generating bound, the divisor kind, the basis X and the
// generators with their functionals. Finalize solves it.
type Pending struct {
	rep      weilrep.Representation
	weight   *big.Rat
	bound    *big.Rat
	kind     divisor.Kind
	x        []weilrep.Form
	elements []divisor.Element
	vectors  []matrix.Vec
}

// NewPending wraps precomputed generators. vectors[i] must be the functional
// of the kind-k divisor at elements[i] against x.
func NewPending(w weilrep.Representation, k, bound *big.Rat, kind divisor.Kind,
	x []weilrep.Form, elements []divisor.Element, vectors []matrix.Vec) (*Pending, error) {
	if len(elements) != len(vectors) {
		return nil, fmt.Errorf("%d elements, %d vectors: %w", len(elements), len(vectors), ErrLengthMismatch)
	}
	p := &Pending{
		rep:      w,
		weight:   new(big.Rat).Set(k),
		bound:    new(big.Rat).Set(bound),
		kind:     kind,
		x:        append([]weilrep.Form(nil), x...),
		elements: append([]divisor.Element(nil), elements...),
		vectors:  make([]matrix.Vec, len(vectors)),
	}
	for i, v := range vectors {
		p.vectors[i] = v.Clone()
	}

	return p, nil
}

// Generate enumerates every divisor up to bound and computes its functional against x.
func Generate(w weilrep.Representation, k, bound *big.Rat, kind divisor.Kind, x []weilrep.Form) (*Pending, error) {
	elements := divisor.Collect(w, bound)
	vectors, err := functionals(w, k, kind, x, elements)
	if err != nil {
		return nil, err
	}

	return NewPending(w, k, bound, kind, x, elements, vectors)
}

func functionals(w weilrep.CosetSpace, k *big.Rat, kind divisor.Kind, x []weilrep.Form, elements []divisor.Element) ([]matrix.Vec, error) {
	out := make([]matrix.Vec, len(elements))
	for i, e := range elements {
		v, err := divisor.Of(kind, w, k, e).Functional(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// Len returns the number of generators.
func (p *Pending) Len() int { return len(p.elements) }

// Vectors returns copies of the generator functionals.
func (p *Pending) Vectors() []matrix.Vec {
	out := make([]matrix.Vec, len(p.vectors))
	for i, v := range p.vectors {
		out[i] = v.Clone()
	}

	return out
}

// Finalize solves the cone: support hyperplanes, extreme rays and the
// identification of every ray with divisors.
//
// Errors:
//   - polyhedral.ErrNoGenerators, polyhedral.ErrNotFullDimensional.
func (p *Pending) Finalize() (*Cone, error) {
	pc, err := polyhedral.New(p.vectors)
	if err != nil {
		return nil, fmt.Errorf("cone: %w", err)
	}
	id, err := p.Identify(pc.ExtremeRays())
	if err != nil {
		return nil, err
	}

	return &Cone{pending: p, poly: pc, ident: id}, nil
}
