// SPDX-License-Identifier: MIT

package weilrep

import (
	"errors"
	"math/big"
)

var (
	// ErrBeyondPrecision is returned by Form.Coefficient for exponents past the form's precision.
	ErrBeyondPrecision = errors.New("weilrep: coefficient beyond precision")

	// ErrUnknownCoset is returned when coordinates do not reduce to a coset of the form.
	ErrUnknownCoset = errors.New("weilrep: coordinates are not a coset representative")

	// ErrBadGram is returned for Gram entries that are zero or odd.
	ErrBadGram = errors.New("weilrep: gram entries must be non-zero and even")
)

// CosetSpace is the finite quadratic side of a Weil representation: an
// ordered list of coset representatives of L'/L and, per coset, the offset
// n(g) in [0, 1) such that the Fourier exponents at g lie in n(g) + Z.
type CosetSpace interface {
	// Cosets returns the sorted coset representatives, coordinates in [0, 1).
	Cosets() [][]*big.Rat
	// Norms returns n(g) for every coset, parallel to Cosets.
	Norms() []*big.Rat
}

// Form is a vector-valued modular form known up to a Fourier precision.
type Form interface {
	// Coefficient returns the coefficient of q^n e_g where g is given by its
	// coordinates. Exponents outside n(g) + Z have coefficient 0.
	Coefficient(coords []*big.Rat, n *big.Rat) (*big.Rat, error)
	// Precision returns the largest exponent for which coefficients are known.
	Precision() *big.Rat
}

// Representation is the modular-forms collaborator this module consumes.
// Implementations come from a modular-forms library; DiscriminantForm covers
// the CosetSpace half.
type Representation interface {
	CosetSpace

	// Dual returns the dual representation (quadratic form negated).
	Dual() Representation
	// Discriminant returns the signed discriminant of the underlying lattice.
	Discriminant() int64
	// Rank returns the number of coset coordinates.
	Rank() int

	// Eisenstein returns the Eisenstein series of weight k to precision prec.
	Eisenstein(k, prec *big.Rat) (Form, error)
	// Poincare returns the Poincaré series of weight k at (coset, n) to precision prec.
	Poincare(k *big.Rat, coset int, n, prec *big.Rat) (Form, error)
	// CuspDimension returns the dimension of the cusp forms of weight k.
	CuspDimension(k *big.Rat) (int, error)
}
