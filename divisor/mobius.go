// SPDX-License-Identifier: MIT

package divisor

import "math/big"

// Mobius returns μ(n) for n >= 1: 0 if n has a square factor, otherwise
// (-1)^(number of prime factors). μ(n) is 0 for n < 1.
func Mobius(n *big.Int) int {
	if n.Sign() <= 0 {
		return 0
	}
	rest := new(big.Int).Set(n)
	mu := 1
	p := big.NewInt(2)
	q, r := new(big.Int), new(big.Int)
	one := big.NewInt(1)
	for new(big.Int).Mul(p, p).Cmp(rest) <= 0 {
		q.QuoRem(rest, p, r)
		if r.Sign() == 0 {
			rest.Set(q)
			if q.QuoRem(rest, p, r); r.Sign() == 0 {
				return 0
			}
			mu = -mu
		}
		p.Add(p, one)
	}
	if rest.Cmp(one) > 0 {
		mu = -mu
	}

	return mu
}
