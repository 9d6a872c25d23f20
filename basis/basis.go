// SPDX-License-Identifier: MIT

// Package basis builds the special cusp-form basis used as coordinates for
// Heegner divisor functionals.
//
// Purpose:
//   - Pick d linearly independent regularised Poincaré series (P - E)/2, where
//     d is the cusp-form dimension, scanning indices m + n(g) in enumeration order.
//   - Record the index of every kept form; the bound computation needs them.
//
// Contract:
//   - Independence is tested on Fourier coefficients up to the precision, so
//     the precision must be large enough for d forms to separate. Without
//     WithMaxIndex the scan has no natural end when it is not.
//
// Determinism:
//   - Same representation, weight and precision give the same basis.
package basis

import (
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/heegner/divisor"
	"github.com/katalvlaran/heegner/matrix"
	"github.com/katalvlaran/heegner/weilrep"
)

// ErrInsufficientPrecision is returned when WithMaxIndex is set and the scan
// passes that index before finding a full basis.
var ErrInsufficientPrecision = errors.New("basis: precision too small for a full cusp basis")

// DefaultMaxIndex disables the scan guard.
const DefaultMaxIndex = 0

const panicMaxIndexInvalid = "basis: WithMaxIndex: limit must be >= 0"

// Index names the Poincaré series a basis form came from: coset position and exponent.
type Index struct {
	Coset int
	N     *big.Rat
}

// Result is the special basis. Forms and Indices are parallel.
type Result struct {
	Eisenstein weilrep.Form
	Forms      []weilrep.Form
	Indices    []Index
}

// X returns the full coordinate system [E, f_1, ..., f_d].
func (r Result) X() []weilrep.Form {
	return append([]weilrep.Form{r.Eisenstein}, r.Forms...)
}

// Option configures Special.
type Option func(*options)

type options struct {
	maxIndex int64
	log      *zap.Logger
}

// WithMaxIndex stops the scan with ErrInsufficientPrecision after index m = limit.
// Zero keeps the scan unbounded. Panics on negative limits.
func WithMaxIndex(limit int64) Option {
	if limit < 0 {
		panic(panicMaxIndexInvalid)
	}

	return func(o *options) { o.maxIndex = limit }
}

// WithLogger sets the logger for scan progress. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func gatherOptions(opts []Option) options {
	o := options{maxIndex: DefaultMaxIndex, log: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Special returns the Eisenstein series of w at weight k and a basis of its
// cusp forms built from regularised Poincaré series, all to precision prec.
//
// Implementation:
//   - Stage 1: d = w.CuspDimension(k); d = 0 returns only the Eisenstein series.
//   - Stage 2: for m = 1, 2, ... and every coset g, form f = (P(g, m+n(g)) - E)/2
//     and read its coefficients at every element up to prec.
//   - Stage 3: keep f iff its coefficient vector adds no linear relation to
//     the vectors kept so far (weilrep.RelationDimension is 0); stop at d forms.
//
// Errors:
//   - ErrInsufficientPrecision (only with WithMaxIndex).
//   - Errors from the representation, wrapped with the failing index.
func Special(w weilrep.Representation, k, prec *big.Rat, opts ...Option) (Result, error) {
	o := gatherOptions(opts)

	d, err := w.CuspDimension(k)
	if err != nil {
		return Result{}, fmt.Errorf("basis: cusp dimension at k=%s: %w", k.RatString(), err)
	}
	e, err := w.Eisenstein(k, prec)
	if err != nil {
		return Result{}, fmt.Errorf("basis: eisenstein at k=%s: %w", k.RatString(), err)
	}
	res := Result{Eisenstein: e}
	if d == 0 {
		return res, nil
	}

	support := divisor.Collect(w, prec)
	var kept []matrix.Vec
	norms := w.Norms()
	half, minusHalf := big.NewRat(1, 2), big.NewRat(-1, 2)

	for m := int64(1); ; m++ {
		if o.maxIndex > 0 && m > o.maxIndex {
			return Result{}, fmt.Errorf("basis: %d of %d forms after index %d: %w",
				len(res.Forms), d, o.maxIndex, ErrInsufficientPrecision)
		}
		for g, ng := range norms {
			n := new(big.Rat).Add(big.NewRat(m, 1), ng)
			p, err := w.Poincare(k, g, n, prec)
			if err != nil {
				return Result{}, fmt.Errorf("basis: poincare at (%d, %s): %w", g, n.RatString(), err)
			}
			f := weilrep.Combine(weilrep.Term{Scale: half, Form: p}, weilrep.Term{Scale: minusHalf, Form: e})

			v, err := coefficients(f, support)
			if err != nil {
				return Result{}, fmt.Errorf("basis: coefficients at (%d, %s): %w", g, n.RatString(), err)
			}
			rel, err := weilrep.RelationDimension(append(kept, v))
			if err != nil {
				return Result{}, fmt.Errorf("basis: relations at (%d, %s): %w", g, n.RatString(), err)
			}
			if rel > 0 {
				continue
			}
			kept = append(kept, v)
			res.Forms = append(res.Forms, f)
			res.Indices = append(res.Indices, Index{Coset: g, N: n})
			o.log.Debug("basis form kept",
				zap.Int("coset", g),
				zap.String("index", n.RatString()),
				zap.Int("rank", len(kept)))
			if len(res.Forms) == d {
				return res, nil
			}
		}
	}
}

// coefficients reads f at every element of support, in order.
func coefficients(f weilrep.Form, support []divisor.Element) (matrix.Vec, error) {
	v := make(matrix.Vec, len(support))
	for i, el := range support {
		c, err := f.Coefficient(el.Coords(), el.Level())
		if err != nil {
			return nil, err
		}
		v[i] = c
	}

	return v, nil
}
