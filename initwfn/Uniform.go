package initwfn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultUniformConfig implements a configuration of the default
// initializer, which draws weights uniformly from [-s, s] with
// s = sqrt(3 / fanIn) * ScalingFactor. With a scaling factor of 1,
// weights have variance 1 / fanIn. A zero ScalingFactor is treated
// as 1.
type DefaultUniformConfig struct {
	ScalingFactor float64
}

// NewDefaultUniform returns a new default-uniform initializer
func NewDefaultUniform(scalingFactor float64) *InitWFn {
	return newInitWFn(DefaultUniformConfig{scalingFactor}, nil)
}

// Type returns the type of initialization algorithm described by
// the configuration.
func (d DefaultUniformConfig) Type() Type {
	return DefaultUniform
}

// Bound returns the half-width of the sampling interval for fanIn
func (d DefaultUniformConfig) Bound(fanIn int) float64 {
	scale := d.ScalingFactor
	if scale == 0 {
		scale = 1.0
	}
	return math.Sqrt(3.0/float64(fanIn)) * scale
}

// Rander returns the uniform distribution over [-Bound, Bound]
func (d DefaultUniformConfig) Rander(fanIn int, src rand.Source) distuv.Rander {
	bound := d.Bound(fanIn)
	return distuv.Uniform{Min: -bound, Max: bound, Src: src}
}

// UniformConfig implements a configuration of a weight initializer
// that draws weights from the zero-mean, unit-variance uniform
// distribution over [-sqrt(3), sqrt(3)]
type UniformConfig struct{}

// NewUniform returns a new unit-variance uniform initializer
func NewUniform() *InitWFn {
	return newInitWFn(UniformConfig{}, nil)
}

// Type returns the type of initialization algorithm described by
// the configuration.
func (u UniformConfig) Type() Type {
	return Uniform
}

// Rander returns the unit-variance uniform distribution. The fan-in
// is ignored.
func (u UniformConfig) Rander(_ int, src rand.Source) distuv.Rander {
	return distuv.Uniform{Min: -math.Sqrt(3), Max: math.Sqrt(3), Src: src}
}
