// SPDX-License-Identifier: MIT

package cone

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/heegner/divisor"
	"github.com/katalvlaran/heegner/matrix"
	"github.com/katalvlaran/heegner/polyhedral"
)

// Membership is the position of a functional relative to the cone.
type Membership = polyhedral.Position

// Membership values.
const (
	Outside  = polyhedral.Outside
	Boundary = polyhedral.Boundary
	Interior = polyhedral.Interior
)

// Classify places a functional: Interior when every support hyperplane is
// strictly positive on it, Boundary when all are non-negative and one
// vanishes, Outside otherwise.
func (c *Cone) Classify(v matrix.Vec) (Membership, error) {
	pos, err := c.poly.Locate(v)
	if err != nil {
		return Outside, fmt.Errorf("cone: classify: %w", err)
	}

	return pos, nil
}

// Contains maps d to its functional against the cone basis and classifies it.
// Primitive divisors are expanded first.
//
// Errors:
//   - ErrNotHeegnerDivisor when the functional is zero.
func (c *Cone) Contains(d divisor.Divisor) (Membership, error) {
	v, err := d.Functional(c.pending.x)
	if err != nil {
		return Outside, fmt.Errorf("cone: functional of %s: %w", d, err)
	}
	if v.IsZero() {
		return Outside, fmt.Errorf("%s: %w", d, ErrNotHeegnerDivisor)
	}

	return c.Classify(v)
}

// Check verifies that every divisor of the cone's kind up to bound lies in
// the cone. The first one strictly outside is reported with ErrBoundTooSmall.
func (c *Cone) Check(bound *big.Rat) error {
	p := c.pending
	en := divisor.Enumerate(p.rep, bound)
	for e, ok := en.Next(); ok; e, ok = en.Next() {
		d := divisor.Of(p.kind, p.rep, p.weight, e)
		v, err := d.Functional(p.x)
		if err != nil {
			return fmt.Errorf("cone: check %s: %w", d, err)
		}
		pos, err := c.Classify(v)
		if err != nil {
			return err
		}
		if pos == Outside {
			return fmt.Errorf("%s is not in the cone, retry with a larger initial bound: %w", d, ErrBoundTooSmall)
		}
	}

	return nil
}
