// SPDX-License-Identifier: MIT

package divisor

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/heegner/matrix"
	"github.com/katalvlaran/heegner/weilrep"
)

// ElementFunctional returns the coefficient functional of H(e) against the
// basis x: the coefficient of q^N e_g in every form, in basis order.
func ElementFunctional(e Element, x []weilrep.Form) (matrix.Vec, error) {
	v := make(matrix.Vec, len(x))
	for i, f := range x {
		c, err := f.Coefficient(e.coords, e.level)
		if err != nil {
			return nil, fmt.Errorf("functional of %s, form %d: %w", e, i, err)
		}
		v[i] = c
	}

	return v, nil
}

// Functional returns Σ c_g·functional(g) over the Heegner expansion of d.
// Primitive divisors are expanded with ToHeegner first, so two divisors are
// equal as functionals exactly when their vectors agree.
func (d Divisor) Functional(x []weilrep.Form) (matrix.Vec, error) {
	h := d.ToHeegner()
	sum := matrix.NewVec(len(x))
	for _, t := range h.Terms() {
		v, err := ElementFunctional(t.Element, x)
		if err != nil {
			return nil, err
		}
		if err := sum.AddScaled(new(big.Rat).SetInt(t.Coef), v); err != nil {
			return nil, err
		}
	}

	return sum, nil
}
