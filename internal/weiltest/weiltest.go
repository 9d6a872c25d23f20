// Package weiltest provides a deterministic stand-in for a modular-forms
// library so the cone pipeline can be exercised end to end in tests.
//
// The representation is built on a real diagonal discriminant form. Its
// "Eisenstein series" has coefficient n^p at every admissible exponent n > 0
// (p = floor(k-1)), and its "Poincaré series" at index (g, N) equals
// E + 2s where s is +1 at (±g, N) and -1 at (±g, N+1). Like a real Poincaré
// series it cannot tell g from -g. Regularising with (P - E)/2 therefore
// yields cusp forms with two non-zero coefficients per coset of the pair,
// which keeps every cone small enough to reason about by hand.
package weiltest

import (
	"math/big"

	"github.com/katalvlaran/heegner/weilrep"
)

// Rep is a synthetic Weil representation.
type Rep struct {
	form *weilrep.DiscriminantForm
	cusp int
}

var _ weilrep.Representation = (*Rep)(nil)

// New returns a representation on diag(gram...) whose cusp spaces have dimension cusp.
func New(cusp int, gram ...int64) (*Rep, error) {
	f, err := weilrep.NewDiagonal(gram...)
	if err != nil {
		return nil, err
	}

	return &Rep{form: f, cusp: cusp}, nil
}

// MustNew is New for fixed test inputs.
func MustNew(cusp int, gram ...int64) *Rep {
	r, err := New(cusp, gram...)
	if err != nil {
		panic(err)
	}

	return r
}

func (r *Rep) Cosets() [][]*big.Rat { return r.form.Cosets() }
func (r *Rep) Norms() []*big.Rat    { return r.form.Norms() }
func (r *Rep) Rank() int            { return r.form.Rank() }
func (r *Rep) Discriminant() int64  { return r.form.Discriminant() }

// Dual returns the representation on the dual discriminant form.
func (r *Rep) Dual() weilrep.Representation {
	return &Rep{form: r.form.Dual(), cusp: r.cusp}
}

// CuspDimension returns the configured dimension for every weight.
func (r *Rep) CuspDimension(*big.Rat) (int, error) { return r.cusp, nil }

// Eisenstein returns the synthetic Eisenstein series.
func (r *Rep) Eisenstein(k, prec *big.Rat) (weilrep.Form, error) {
	km1 := new(big.Rat).Sub(k, big.NewRat(1, 1))

	return &eisenstein{rep: r, exp: weilrep.Floor(km1).Int64(), prec: new(big.Rat).Set(prec)}, nil
}

// Poincare returns the synthetic Poincaré series at (coset, n).
func (r *Rep) Poincare(k *big.Rat, coset int, n, prec *big.Rat) (weilrep.Form, error) {
	e, err := r.Eisenstein(k, prec)
	if err != nil {
		return nil, err
	}

	neg, err := r.negation(coset)
	if err != nil {
		return nil, err
	}

	return &poincare{eis: e.(*eisenstein), coset: coset, neg: neg, n: new(big.Rat).Set(n)}, nil
}

// negation returns the index of the coset -g for the coset at position i.
func (r *Rep) negation(i int) (int, error) {
	cosets := r.form.Cosets()
	if i < 0 || i >= len(cosets) {
		return 0, weilrep.ErrUnknownCoset
	}
	g := cosets[i]
	for j := range g {
		g[j].Neg(g[j])
	}

	return r.form.CosetIndex(g)
}

type eisenstein struct {
	rep  *Rep
	exp  int64
	prec *big.Rat
}

// locate validates (coords, n) and reports the coset index and whether n is an admissible exponent.
func (e *eisenstein) locate(coords []*big.Rat, n *big.Rat) (int, bool, error) {
	if n.Cmp(e.prec) > 0 {
		return 0, false, weilrep.ErrBeyondPrecision
	}
	idx, err := e.rep.form.CosetIndex(coords)
	if err != nil {
		return 0, false, err
	}
	if n.Sign() < 0 {
		return idx, false, nil
	}
	diff := new(big.Rat).Sub(n, e.rep.form.Norms()[idx])

	return idx, diff.IsInt(), nil
}

func (e *eisenstein) Coefficient(coords []*big.Rat, n *big.Rat) (*big.Rat, error) {
	idx, ok, err := e.locate(coords, n)
	if err != nil || !ok {
		return new(big.Rat), err
	}
	if n.Sign() == 0 {
		if idx == 0 {
			return big.NewRat(1, 1), nil
		}

		return new(big.Rat), nil
	}
	out := big.NewRat(1, 1)
	for i := int64(0); i < e.exp; i++ {
		out.Mul(out, n)
	}

	return out, nil
}

func (e *eisenstein) Precision() *big.Rat { return new(big.Rat).Set(e.prec) }

type poincare struct {
	eis   *eisenstein
	coset int
	neg   int
	n     *big.Rat
}

func (p *poincare) Coefficient(coords []*big.Rat, n *big.Rat) (*big.Rat, error) {
	c, err := p.eis.Coefficient(coords, n)
	if err != nil {
		return nil, err
	}
	idx, ok, err := p.eis.locate(coords, n)
	if err != nil || !ok || (idx != p.coset && idx != p.neg) {
		return c, err
	}
	next := new(big.Rat).Add(p.n, big.NewRat(1, 1))
	switch {
	case n.Cmp(p.n) == 0:
		c.Add(c, big.NewRat(2, 1))
	case n.Cmp(next) == 0:
		c.Sub(c, big.NewRat(2, 1))
	}

	return c, nil
}

func (p *poincare) Precision() *big.Rat { return p.eis.Precision() }
