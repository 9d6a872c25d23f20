// SPDX-License-Identifier: MIT

package divisor

import (
	"math/big"

	"github.com/katalvlaran/heegner/weilrep"
)

// Enumerator walks all elements (g, N = m + n(g)) with N <= bound, for
// m = 1, 2, ..., ceil(bound) and, for each m, every coset in order.
// Duplicate levels across cosets are kept. Reset restarts the walk.
type Enumerator struct {
	cosets [][]*big.Rat
	norms  []*big.Rat
	bound  *big.Rat
	top    *big.Int // ceil(bound)
	m      *big.Int
	i      int
}

// Enumerate returns an enumerator over w's cosets up to bound.
func Enumerate(w weilrep.CosetSpace, bound *big.Rat) *Enumerator {
	e := &Enumerator{
		cosets: w.Cosets(),
		norms:  w.Norms(),
		bound:  new(big.Rat).Set(bound),
		top:    ceil(bound),
	}
	e.Reset()

	return e
}

// Reset rewinds the enumerator to its first element.
func (e *Enumerator) Reset() {
	e.m = big.NewInt(1)
	e.i = 0
}

// Next returns the next element and true, or a zero Element and false once exhausted.
func (e *Enumerator) Next() (Element, bool) {
	level := new(big.Rat)
	for e.m.Cmp(e.top) <= 0 {
		for e.i < len(e.cosets) {
			i := e.i
			e.i++
			level.SetInt(e.m)
			level.Add(level, e.norms[i])
			if level.Cmp(e.bound) <= 0 {
				return NewElement(e.cosets[i], level), true
			}
		}
		e.i = 0
		e.m.Add(e.m, big.NewInt(1))
	}

	return Element{}, false
}

// Collect returns every element up to bound, in enumeration order.
func Collect(w weilrep.CosetSpace, bound *big.Rat) []Element {
	var out []Element
	en := Enumerate(w, bound)
	for el, ok := en.Next(); ok; el, ok = en.Next() {
		out = append(out, el)
	}

	return out
}

// ceil returns the least integer >= x.
func ceil(x *big.Rat) *big.Int {
	fl := weilrep.Floor(x)
	if x.IsInt() {
		return fl
	}

	return fl.Add(fl, big.NewInt(1))
}
