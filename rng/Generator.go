// Package rng implements seedable pseudo-random generators used to
// initialize network parameters, along with the process-wide default
// generators.
//
// A Generator implements golang.org/x/exp/rand.Source, so it can be
// given directly to gonum distributions as their Src. All Generator
// methods are safe for concurrent use.
package rng

import (
	"sync"

	"golang.org/x/exp/rand"
)

// Generator is a seedable pseudo-random number generator
type Generator struct {
	mu   sync.Mutex
	src  rand.PCGSource
	seed uint64

	rand *rand.Rand
}

// New returns a new Generator seeded with seed
func New(seed uint64) *Generator {
	g := &Generator{}
	g.src.Seed(seed)
	g.seed = seed
	g.rand = rand.New(g)

	return g
}

// Seed resets the state of the Generator to that given by seed. Seed
// implements the rand.Source interface.
func (g *Generator) Seed(seed uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.src.Seed(seed)
	g.seed = seed
}

// Uint64 returns a pseudo-random 64-bit integer and advances the
// state of the Generator. Uint64 implements the rand.Source interface.
func (g *Generator) Uint64() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.src.Uint64()
}

// reseedAndDraw seeds the Generator with seed and returns its first
// draw. No other draw can be interleaved between the two.
func (g *Generator) reseedAndDraw(seed uint64) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.src.Seed(seed)
	g.seed = seed
	return g.src.Uint64()
}

// LastSeed returns the seed the Generator was most recently seeded with
func (g *Generator) LastSeed() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.seed
}

// Float64 returns a pseudo-random number in [0.0, 1.0)
func (g *Generator) Float64() float64 {
	return g.rand.Float64()
}

// NormFloat64 returns a normally distributed float64 with mean 0 and
// standard deviation 1
func (g *Generator) NormFloat64() float64 {
	return g.rand.NormFloat64()
}
