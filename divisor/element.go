// SPDX-License-Identifier: MIT

package divisor

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrParse is returned by ParseElement on malformed input.
	ErrParse = errors.New("divisor: malformed element")

	// ErrKindMismatch is returned when Heegner and primitive divisors are mixed in arithmetic.
	ErrKindMismatch = errors.New("divisor: mixed Heegner and primitive divisors")
)

// Element is a discriminant-form element (x_1, ..., x_r, N): coset
// coordinates together with the level N. It indexes one Heegner divisor.
// Elements are immutable; accessors return copies.
type Element struct {
	coords []*big.Rat
	level  *big.Rat
	key    string
}

// NewElement copies coords and level into a new Element.
func NewElement(coords []*big.Rat, level *big.Rat) Element {
	e := Element{coords: make([]*big.Rat, len(coords)), level: new(big.Rat).Set(level)}
	parts := make([]string, 0, len(coords)+1)
	for i, c := range coords {
		e.coords[i] = new(big.Rat).Set(c)
		parts = append(parts, c.RatString())
	}
	parts = append(parts, level.RatString())
	e.key = "(" + strings.Join(parts, ", ") + ")"

	return e
}

// ParseElement parses "(x_1, ..., x_r, N)"; the last entry is the level.
func ParseElement(s string) (Element, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return Element{}, fmt.Errorf("%q: %w", s, ErrParse)
	}
	fields := strings.Split(s[1:len(s)-1], ",")
	if len(fields) < 2 {
		return Element{}, fmt.Errorf("%q needs coordinates and a level: %w", s, ErrParse)
	}
	vals := make([]*big.Rat, len(fields))
	for i, f := range fields {
		v, ok := new(big.Rat).SetString(strings.TrimSpace(f))
		if !ok {
			return Element{}, fmt.Errorf("%q: entry %d: %w", s, i, ErrParse)
		}
		vals[i] = v
	}

	return NewElement(vals[:len(vals)-1], vals[len(vals)-1]), nil
}

// MustParse is ParseElement for literals known to be valid.
func MustParse(s string) Element {
	e, err := ParseElement(s)
	if err != nil {
		panic(err)
	}

	return e
}

// Coords returns a copy of the coset coordinates.
func (e Element) Coords() []*big.Rat {
	out := make([]*big.Rat, len(e.coords))
	for i, c := range e.coords {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}

// Level returns a copy of N.
func (e Element) Level() *big.Rat { return new(big.Rat).Set(e.level) }

// Rank returns the number of coset coordinates.
func (e Element) Rank() int { return len(e.coords) }

// Key returns the canonical string "(x_1, ..., x_r, N)"; equal elements have equal keys.
func (e Element) Key() string { return e.key }

// String is Key.
func (e Element) String() string { return e.key }

// less orders elements by level, then by key.
func less(a, b Element) bool {
	if c := a.level.Cmp(b.level); c != 0 {
		return c < 0
	}

	return a.key < b.key
}
