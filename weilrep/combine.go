// SPDX-License-Identifier: MIT

package weilrep

import "math/big"

// Term is one summand α·f of a linear combination of forms.
type Term struct {
	Scale *big.Rat
	Form  Form
}

// linearForm is Σ α_i f_i, evaluated lazily coefficient by coefficient.
type linearForm struct {
	terms []Term
}

// Combine returns the form Σ α_i f_i. Its precision is the minimum of the
// summands' precisions.
func Combine(terms ...Term) Form {
	cp := make([]Term, len(terms))
	for i, t := range terms {
		cp[i] = Term{Scale: new(big.Rat).Set(t.Scale), Form: t.Form}
	}

	return &linearForm{terms: cp}
}

func (l *linearForm) Coefficient(coords []*big.Rat, n *big.Rat) (*big.Rat, error) {
	sum := new(big.Rat)
	for _, t := range l.terms {
		c, err := t.Form.Coefficient(coords, n)
		if err != nil {
			return nil, err
		}
		sum.Add(sum, new(big.Rat).Mul(c, t.Scale))
	}

	return sum, nil
}

func (l *linearForm) Precision() *big.Rat {
	var p *big.Rat
	for _, t := range l.terms {
		if tp := t.Form.Precision(); p == nil || tp.Cmp(p) < 0 {
			p = tp
		}
	}
	if p == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p)
}
