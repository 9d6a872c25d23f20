// SPDX-License-Identifier: MIT

package cone

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/heegner/internal/logging"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultInitialBound is the precision of the seed basis used to compute the bound.
	DefaultInitialBound = 2

	// DefaultPrimitive builds the cone of Heegner divisors, not primitive ones.
	DefaultPrimitive = false

	// DefaultVerbose keeps logging off.
	DefaultVerbose = false

	// DefaultMaxIndex leaves the basis scan unbounded.
	DefaultMaxIndex = 0
)

const (
	panicBoundInvalid        = "cone: WithBound: bound must be positive"
	panicInitialBoundInvalid = "cone: WithInitialBound: bound must be positive"
	panicMaxIndexInvalid     = "cone: WithMaxIndex: limit must be >= 0"
)

// Option configures Heegner and PrimitiveHeegner.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	bound        *big.Rat // nil: compute
	initialBound *big.Rat
	primitive    bool
	verbose      bool
	maxIndex     int64
	log          *zap.Logger
}

// WithBound skips the bound computation and uses b.
func WithBound(b *big.Rat) Option {
	if b == nil || b.Sign() <= 0 {
		panic(panicBoundInvalid)
	}
	v := new(big.Rat).Set(b)

	return func(o *options) { o.bound = v }
}

// WithInitialBound sets the precision of the seed basis.
func WithInitialBound(b *big.Rat) Option {
	if b == nil || b.Sign() <= 0 {
		panic(panicInitialBoundInvalid)
	}
	v := new(big.Rat).Set(b)

	return func(o *options) { o.initialBound = v }
}

// WithPrimitive selects the cone of primitive Heegner divisors.
func WithPrimitive(on bool) Option {
	return func(o *options) { o.primitive = on }
}

// WithVerbose logs every phase at debug level to a production zap logger.
// An explicit WithLogger wins over it.
func WithVerbose(on bool) Option {
	return func(o *options) { o.verbose = on }
}

// WithLogger routes phase logging to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMaxIndex bounds the basis scan; see basis.WithMaxIndex.
func WithMaxIndex(limit int64) Option {
	if limit < 0 {
		panic(panicMaxIndexInvalid)
	}

	return func(o *options) { o.maxIndex = limit }
}

// gatherOptions applies opts over the defaults and resolves the logger.
func gatherOptions(opts []Option) (options, error) {
	o := options{
		initialBound: big.NewRat(DefaultInitialBound, 1),
		primitive:    DefaultPrimitive,
		verbose:      DefaultVerbose,
		maxIndex:     DefaultMaxIndex,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		l, err := logging.New(o.verbose)
		if err != nil {
			return o, err
		}
		o.log = l
	}

	return o, nil
}
