// SPDX-License-Identifier: MIT

// Package bound computes the level past which no new extreme ray of the cone
// of Heegner divisors can appear.
//
// Purpose:
//   - Compare a lower bound for Eisenstein coefficients with an upper bound
//     for cusp-form coefficients, weighted by how far the cone generators can
//     sit from the Eisenstein axis (the incircle radius R).
//   - Solve R·eis/c <= N^((2-k)/2) for N.
//
// Numerics:
//   - float64 throughout; Γ from math, ζ and L(s, χ) through the Hurwitz zeta
//     of gonum's mathext.
package bound

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/heegner/basis"
	"github.com/katalvlaran/heegner/matrix"
	"github.com/katalvlaran/heegner/polyhedral"
)

var (
	// ErrWeightTooSmall is returned for k <= 2, where the cusp estimate diverges.
	ErrWeightTooSmall = errors.New("bound: weight must exceed 2")

	// ErrOriginNotInterior is returned when the normalised functionals do not
	// surround the Eisenstein axis (incircle radius 0).
	ErrOriginNotInterior = errors.New("bound: origin is not interior to the normalised functionals")

	// ErrEmptyBasis is returned when there are no cusp forms to bound.
	ErrEmptyBasis = errors.New("bound: empty cusp basis")
)

// Primitive-mode correction factors.
const (
	// PrimitiveEisensteinFactor rescales the Eisenstein lower constant.
	PrimitiveEisensteinFactor = 0.215
)

// Rep is the part of a representation the bound depends on.
type Rep interface {
	Discriminant() int64
}

// Input collects everything Compute needs.
type Input struct {
	Rep         Rep
	Weight      *big.Rat
	Indices     []basis.Index // Poincaré indices of the cusp basis
	Functionals []matrix.Vec  // coordinates against [E, f_1, ..., f_d]
	Primitive   bool
}

// EisensteinConstant returns the lower constant for Eisenstein coefficients
// of weight k on a lattice of discriminant disc.
//
// Integral k uses L(k, χ_disc), half-integral k uses ζ(k - 1/2); both are
// corrected by local factors at the odd primes dividing |disc|.
func EisensteinConstant(k *big.Rat, disc int64, primitive bool) float64 {
	kf, _ := k.Float64()
	d := float64(abs64(disc))

	var (
		lval     float64
		localExp float64
	)
	if k.IsInt() {
		lval = LChi(kf, disc)
		localExp = 1 - kf
	} else {
		lval = Zeta(kf - 0.5)
		localExp = 0.5 - kf
	}

	eis := math.Pow(2*math.Pi, kf) / (math.Gamma(kf) * math.Sqrt(d) * lval)
	for _, p := range oddPrimeDivisors(disc) {
		eis *= 1 - math.Pow(float64(p), localExp)
	}
	if primitive {
		eis *= PrimitiveEisensteinFactor
	}

	return eis
}

// CuspConstant returns c = sqrt(Σ B_i^2) with
// B_i = 4π²·√D·M_i^(1-k/2)·(1 + 1/(2^(k-1)·Γ(k)·(k-2))).
// Primitive mode multiplies c by ζ(k).
func CuspConstant(k *big.Rat, disc int64, indices []basis.Index, primitive bool) float64 {
	kf, _ := k.Float64()
	d := float64(abs64(disc))
	tail := 1 + 1/(math.Pow(2, kf-1)*math.Gamma(kf)*(kf-2))

	sum := 0.0
	for _, ix := range indices {
		m, _ := ix.N.Float64()
		b := 4 * math.Pi * math.Pi * math.Sqrt(d) * math.Pow(m, 1-kf/2) * tail
		sum += b * b
	}
	c := math.Sqrt(sum)
	if primitive {
		c *= Zeta(kf)
	}

	return c
}

// Radius returns the incircle radius of the points v[1:]/v[0] over all
// functionals with v[0] > 0.
func Radius(functionals []matrix.Vec) (float64, error) {
	var pts []matrix.Vec
	for _, v := range functionals {
		if len(v) < 2 || v[0].Sign() <= 0 {
			continue
		}
		inv := new(big.Rat).Inv(v[0])
		pts = append(pts, v[1:].Scale(inv))
	}
	if len(pts) == 0 {
		return 0, nil
	}
	r, err := polyhedral.IncircleRadius(pts)
	if errors.Is(err, polyhedral.ErrNotFullDimensional) || errors.Is(err, polyhedral.ErrNoGenerators) {
		return 0, nil
	}

	return r, err
}

// Compute returns B* = (R·eis/c)^(2/(2-k)).
//
// Errors:
//   - ErrWeightTooSmall, ErrEmptyBasis, ErrOriginNotInterior.
func Compute(in Input) (float64, error) {
	if in.Weight.Cmp(big.NewRat(2, 1)) <= 0 {
		return 0, fmt.Errorf("k=%s: %w", in.Weight.RatString(), ErrWeightTooSmall)
	}
	if len(in.Indices) == 0 {
		return 0, ErrEmptyBasis
	}
	r, err := Radius(in.Functionals)
	if err != nil {
		return 0, fmt.Errorf("bound: radius: %w", err)
	}
	if r == 0 {
		return 0, ErrOriginNotInterior
	}

	disc := in.Rep.Discriminant()
	eis := EisensteinConstant(in.Weight, disc, in.Primitive)
	c := CuspConstant(in.Weight, disc, in.Indices, in.Primitive)
	kf, _ := in.Weight.Float64()

	return math.Pow(r*eis/c, 2/(2-kf)), nil
}
