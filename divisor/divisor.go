// SPDX-License-Identifier: MIT

package divisor

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/heegner/weilrep"
)

// Kind tags the two dual divisor structures.
type Kind uint8

const (
	// KindHeegner marks formal sums of Heegner divisors H(g).
	KindHeegner Kind = iota
	// KindPrimitive marks formal sums of primitive Heegner divisors P(g).
	KindPrimitive
)

// String returns the letter tag used in renderings: "H" or "P".
func (k Kind) String() string {
	if k == KindPrimitive {
		return "P"
	}

	return "H"
}

type term struct {
	elem Element
	coef *big.Int
}

// Divisor is a formal integer combination Σ c_g·X(g) with X ∈ {H, P}.
//
// Divisors are values: every operation returns a new Divisor. Zero
// coefficients are never stored, so an absent key and a zero coefficient are
// the same thing. Coefficients are arbitrary-precision integers. The
// representation and weight are carried for decompositions only and do not
// take part in equality.
type Divisor struct {
	kind   Kind
	space  weilrep.CosetSpace
	weight *big.Rat
	terms  map[string]term
}

// Zero returns the empty divisor of the given kind. A nil space is allowed;
// such divisors convert between kinds term by term (see ToHeegner).
func Zero(kind Kind, space weilrep.CosetSpace, weight *big.Rat) Divisor {
	d := Divisor{kind: kind, space: space, terms: map[string]term{}}
	if weight != nil {
		d.weight = new(big.Rat).Set(weight)
	}

	return d
}

// Heegner returns H(e).
func Heegner(space weilrep.CosetSpace, weight *big.Rat, e Element) Divisor {
	return Of(KindHeegner, space, weight, e)
}

// Primitive returns P(e).
func Primitive(space weilrep.CosetSpace, weight *big.Rat, e Element) Divisor {
	return Of(KindPrimitive, space, weight, e)
}

// Of returns the single-element divisor of the given kind.
func Of(kind Kind, space weilrep.CosetSpace, weight *big.Rat, e Element) Divisor {
	d := Zero(kind, space, weight)
	d.addInPlace(e, big.NewInt(1))

	return d
}

func (d Divisor) clone() Divisor {
	out := Divisor{kind: d.kind, space: d.space, weight: d.weight, terms: make(map[string]term, len(d.terms))}
	for k, t := range d.terms {
		out.terms[k] = t
	}

	return out
}

// addInPlace adds coef at e. Stored coefficients are never mutated, only
// replaced, so clones may share them.
func (d *Divisor) addInPlace(e Element, coef *big.Int) {
	if coef.Sign() == 0 {
		return
	}
	if d.terms == nil {
		d.terms = map[string]term{}
	}
	sum := new(big.Int).Set(coef)
	if t, ok := d.terms[e.Key()]; ok {
		sum.Add(sum, t.coef)
	}
	if sum.Sign() == 0 {
		delete(d.terms, e.Key())
		return
	}
	d.terms[e.Key()] = term{elem: e, coef: sum}
}

// Kind returns the variant tag.
func (d Divisor) Kind() Kind { return d.kind }

// Space returns the coset space the divisor lives on.
func (d Divisor) Space() weilrep.CosetSpace { return d.space }

// Weight returns a copy of the weight (nil if unset).
func (d Divisor) Weight() *big.Rat {
	if d.weight == nil {
		return nil
	}

	return new(big.Rat).Set(d.weight)
}

// Coefficient returns a copy of the coefficient of e, 0 when absent.
func (d Divisor) Coefficient(e Element) *big.Int {
	t, ok := d.terms[e.Key()]
	if !ok {
		return new(big.Int)
	}

	return new(big.Int).Set(t.coef)
}

// Len returns the number of elements with non-zero coefficient.
func (d Divisor) Len() int { return len(d.terms) }

// IsZero reports whether all coefficients vanish.
func (d Divisor) IsZero() bool { return len(d.terms) == 0 }

// Terms returns the non-zero terms ordered by level, then element key.
func (d Divisor) Terms() []Term {
	out := make([]Term, 0, len(d.terms))
	for _, t := range d.terms {
		out = append(out, Term{Coef: new(big.Int).Set(t.coef), Element: t.elem})
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i].Element, out[j].Element) })

	return out
}

// Equal reports same kind and same coefficients (absent == zero).
func (d Divisor) Equal(o Divisor) bool {
	if d.kind != o.kind || len(d.terms) != len(o.terms) {
		return false
	}
	for k, t := range d.terms {
		ot, ok := o.terms[k]
		if !ok || ot.coef.Cmp(t.coef) != 0 {
			return false
		}
	}

	return true
}

// Add returns d + o. Both operands must have the same kind.
func (d Divisor) Add(o Divisor) (Divisor, error) {
	if d.kind != o.kind {
		return Divisor{}, fmt.Errorf("%s + %s: %w", d.kind, o.kind, ErrKindMismatch)
	}
	out := d.clone()
	if out.space == nil {
		out.space, out.weight = o.space, o.weight
	}
	for _, t := range o.terms {
		out.addInPlace(t.elem, t.coef)
	}

	return out, nil
}

// Sub returns d - o. Both operands must have the same kind.
func (d Divisor) Sub(o Divisor) (Divisor, error) {
	if d.kind != o.kind {
		return Divisor{}, fmt.Errorf("%s - %s: %w", d.kind, o.kind, ErrKindMismatch)
	}

	return d.Add(o.Neg())
}

// Neg returns -d.
func (d Divisor) Neg() Divisor { return d.Scale(-1) }

// Scale returns n·d.
func (d Divisor) Scale(n int64) Divisor { return d.ScaleInt(big.NewInt(n)) }

// ScaleInt returns n·d for an arbitrary-precision n.
func (d Divisor) ScaleInt(n *big.Int) Divisor {
	out := Zero(d.kind, d.space, d.weight)
	if n.Sign() == 0 {
		return out
	}
	for k, t := range d.terms {
		out.terms[k] = term{elem: t.elem, coef: new(big.Int).Mul(t.coef, n)}
	}

	return out
}

// ToHeegner rewrites d as a combination of Heegner divisors. A primitive
// divisor P(g) expands to Σ μ(m)·H(y) over its primitive decomposition.
// Without a coset space there is nothing to decompose over and every P(g)
// becomes H(g).
func (d Divisor) ToHeegner() Divisor {
	if d.kind == KindHeegner {
		return d.clone()
	}

	return d.convert(KindHeegner, false)
}

// ToPrimitive rewrites d as a combination of primitive divisors. A Heegner
// divisor H(g) expands to Σ P(y) over the same decomposition with every
// coefficient forced to 1, so ToPrimitive followed by ToHeegner is not the
// identity in general: on diag(6), H(1/3, 52/3) comes back as
// H(1/3, 52/3) - H(1/6, 13/12) - H(5/6, 13/12).
func (d Divisor) ToPrimitive() Divisor {
	if d.kind == KindPrimitive {
		return d.clone()
	}

	return d.convert(KindPrimitive, true)
}

func (d Divisor) convert(kind Kind, forceUnit bool) Divisor {
	out := Zero(kind, d.space, d.weight)
	c := new(big.Int)
	for _, t := range d.Terms() {
		for _, s := range PrimitiveDecomposition(d.space, t.Element, forceUnit) {
			out.addInPlace(s.Element, c.Mul(t.Coef, s.Coef))
		}
	}

	return out
}

// String renders d as "2*H(0, 0, 1) - H(1/2, 1/2, 3/2)"; the zero divisor is "0".
func (d Divisor) String() string {
	terms := d.Terms()
	if len(terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	one := big.NewInt(1)
	for i, t := range terms {
		c := t.Coef
		switch {
		case i == 0 && c.Sign() < 0:
			sb.WriteString("-")
		case i > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		c.Abs(c)
		if c.Cmp(one) != 0 {
			sb.WriteString(c.String())
			sb.WriteString("*")
		}
		sb.WriteString(d.kind.String())
		sb.WriteString(t.Element.Key())
	}

	return sb.String()
}
