package game

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Rand picks the branch that a measurement collapses onto.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type options struct {
	log  zerolog.Logger
	rand Rand
}

var defaultOptions = options{
	log:  zerolog.Nop(),
	rand: globalRand{},
}

// Option configures a Board or QuantumBoard.
type Option func(*options)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithRand replaces the random source used when a measurement collapses the
// superposition. Boards ignore it.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// NewSeededRand returns a deterministic source for reproducible games.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func buildOptions(opts []Option) options {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
