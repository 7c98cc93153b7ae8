package initwfn

import (
	"github.com/samuelfneumann/nninit/rng"
	"gorgonia.org/tensor"
)

// RandomInit returns a tensor of the given shape with elements drawn
// from the distribution kind. The first dimension of shape is the
// fan-in. The tensor's dtype is the configured floatX.
//
// If gen is nil, the default generator is used. If kind is Unset, the
// process-wide default kind is used. Sampling advances the state of
// the generator.
func RandomInit(shape []int, gen *rng.Generator, kind Type) (*tensor.Dense, error) {
	init, err := New(kind, gen)
	if err != nil {
		return nil, err
	}

	return init.Sample(shape...)
}
