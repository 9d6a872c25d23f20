// SPDX-License-Identifier: MIT

package cone

import (
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/heegner/basis"
	"github.com/katalvlaran/heegner/bound"
	"github.com/katalvlaran/heegner/divisor"
	"github.com/katalvlaran/heegner/weilrep"
)

// ErrBadBound is returned when the computed bound is not a finite number.
var ErrBadBound = errors.New("cone: computed bound is not finite")

// Heegner builds the cone of Heegner divisors for w at weight k.
//
// The divisors, the basis and the enumeration all live on w.Dual(), which is
// also what Representation returns. Divisors meant for Contains should come
// from Cone.H and Cone.P: built on w itself they decompose over the norms of
// w, not of its dual.
//
// Implementation:
//   - Stage 1: special basis of the dual representation at the initial bound.
//   - Stage 2: the bound, computed from that basis unless WithBound is given;
//     never below the initial bound.
//   - Stage 3: special basis again at the final bound, every divisor up to
//     it mapped to its functional, the cone solved.
//   - Stage 4: Check at the final bound. Its ErrBoundTooSmall is returned as is.
func Heegner(w weilrep.Representation, k *big.Rat, opts ...Option) (*Cone, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return build(w, k, o)
}

// PrimitiveHeegner is Heegner with WithPrimitive(true) forced.
func PrimitiveHeegner(w weilrep.Representation, k *big.Rat, opts ...Option) (*Cone, error) {
	return Heegner(w, k, append(opts, WithPrimitive(true))...)
}

func build(w weilrep.Representation, k *big.Rat, o options) (*Cone, error) {
	log := o.log.With(zap.String("weight", k.RatString()), zap.Bool("primitive", o.primitive))
	kind := divisor.KindHeegner
	if o.primitive {
		kind = divisor.KindPrimitive
	}
	wd := w.Dual()
	bopts := []basis.Option{basis.WithMaxIndex(o.maxIndex), basis.WithLogger(log)}

	seed, err := basis.Special(wd, k, o.initialBound, bopts...)
	if err != nil {
		return nil, err
	}
	log.Debug("seed basis", zap.String("precision", o.initialBound.RatString()), zap.Int("forms", len(seed.Forms)))

	b, err := resolveBound(wd, k, kind, seed, o)
	if err != nil {
		return nil, err
	}
	if b.Cmp(o.initialBound) < 0 {
		b.Set(o.initialBound)
	}
	log.Debug("bound", zap.String("bound", b.FloatString(6)))

	final, err := basis.Special(wd, k, b, bopts...)
	if err != nil {
		return nil, err
	}
	p, err := Generate(wd, k, b, kind, final.X())
	if err != nil {
		return nil, err
	}
	log.Debug("generators", zap.Int("count", p.Len()), zap.Int("dim", len(final.X())))

	c, err := p.Finalize()
	if err != nil {
		return nil, err
	}
	log.Debug("cone solved",
		zap.Int("hyperplanes", len(c.poly.SupportHyperplanes())),
		zap.Int("rays", len(c.ident.Rays)),
		zap.Stringer("identification", c.ident.Mode))

	if err := c.Check(b); err != nil {
		return nil, err
	}

	return c, nil
}

// resolveBound returns the caller's bound or computes one from the seed basis.
// An empty cusp basis leaves the initial bound in place.
func resolveBound(wd weilrep.Representation, k *big.Rat, kind divisor.Kind, seed basis.Result, o options) (*big.Rat, error) {
	if o.bound != nil {
		return new(big.Rat).Set(o.bound), nil
	}
	gens := divisor.Collect(wd, o.initialBound)
	vs, err := functionals(wd, k, kind, seed.X(), gens)
	if err != nil {
		return nil, err
	}
	f, err := bound.Compute(bound.Input{
		Rep:         wd,
		Weight:      k,
		Indices:     seed.Indices,
		Functionals: vs,
		Primitive:   o.primitive,
	})
	if errors.Is(err, bound.ErrEmptyBasis) {
		return new(big.Rat).Set(o.initialBound), nil
	}
	if err != nil {
		return nil, err
	}
	b := new(big.Rat)
	if b.SetFloat64(f) == nil {
		return nil, fmt.Errorf("%v: %w", f, ErrBadBound)
	}

	return b, nil
}
