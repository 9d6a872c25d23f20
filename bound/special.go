// SPDX-License-Identifier: MIT

package bound

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Zeta returns the Riemann zeta function ζ(s) for s > 1.
func Zeta(s float64) float64 { return mathext.Zeta(s, 1) }

// LChi returns the Dirichlet L-value L(s, χ_Δ) for s > 1, where χ_Δ(n) is
// the Kronecker symbol (Δ/n).
//
// χ_Δ is periodic with period dividing P = 4|Δ|, so
// L(s, χ) = P^(-s) Σ_{a=1..P} χ(a) ζ(s, a/P) with the Hurwitz zeta.
func LChi(s float64, disc int64) float64 {
	p := 4 * abs64(disc)
	if p == 0 {
		return 0
	}
	sum := 0.0
	for a := int64(1); a <= p; a++ {
		chi := Kronecker(disc, a)
		if chi == 0 {
			continue
		}
		sum += float64(chi) * mathext.Zeta(s, float64(a)/float64(p))
	}

	return sum * math.Pow(float64(p), -s)
}

// Kronecker returns the Kronecker symbol (a/n) for n >= 1.
func Kronecker(a, n int64) int {
	if n < 1 {
		return 0
	}
	res := 1
	for n%2 == 0 {
		n /= 2
		if a%2 == 0 {
			return 0
		}
		if r := mod(a, 8); r == 3 || r == 5 {
			res = -res
		}
	}

	return res * Jacobi(mod(a, n), n)
}

// Jacobi returns the Jacobi symbol (a/n) for odd n >= 1.
func Jacobi(a, n int64) int {
	a = mod(a, n)
	res := 1
	for a != 0 {
		for a%2 == 0 {
			a /= 2
			if r := n % 8; r == 3 || r == 5 {
				res = -res
			}
		}
		a, n = n, a
		if a%4 == 3 && n%4 == 3 {
			res = -res
		}
		a %= n
	}
	if n != 1 {
		return 0
	}

	return res
}

// oddPrimeDivisors returns the odd primes dividing n, ascending.
func oddPrimeDivisors(n int64) []int64 {
	n = abs64(n)
	for n > 0 && n%2 == 0 {
		n /= 2
	}
	var out []int64
	for p := int64(3); p*p <= n; p += 2 {
		if n%p != 0 {
			continue
		}
		out = append(out, p)
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 {
		out = append(out, n)
	}

	return out
}

func mod(a, n int64) int64 {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
