package rng

import (
	"time"
)

// The default generators are created once and only ever reseeded in
// place, so the variables themselves need no locking.
var (
	defaultHost   *Generator
	defaultDevice *Generator
)

func init() {
	defaultHost = New(uint64(time.Now().UnixNano()))
	defaultDevice = New(defaultHost.Uint64())
}

// Default returns the process-wide default generator used for sampling
// parameters on the host
func Default() *Generator {
	return defaultHost
}

// DefaultDevice returns the process-wide default generator intended
// for sampling that is performed by the tensor framework itself, e.g.
// on a device. Nothing in this module samples from it; it is reseeded
// together with the host generator by SetDefaultSeed.
func DefaultDevice() *Generator {
	return defaultDevice
}

// SetDefaultSeed deterministically reseeds the default host generator
// with seed. The default device generator is then reseeded with the
// first value drawn from the freshly seeded host generator. Draws made
// concurrently on the host generator cannot land between the reseed
// and that first draw.
//
// Generators previously returned by Default and DefaultDevice are
// reseeded in place, so callers holding them observe the new streams.
func SetDefaultSeed(seed uint64) {
	defaultDevice.Seed(defaultHost.reseedAndDraw(seed))
}
