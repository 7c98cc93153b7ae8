package initwfn

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalConfig implements a configuration of a weight initializer that
// draws weights from the standard normal distribution
type NormalConfig struct{}

// NewNormal returns a new standard normal initializer
func NewNormal() *InitWFn {
	return newInitWFn(NormalConfig{}, nil)
}

// Type returns the type of initialization algorithm described by
// the configuration.
func (n NormalConfig) Type() Type {
	return Normal
}

// Rander returns the standard normal distribution. The fan-in is
// ignored.
func (n NormalConfig) Rander(_ int, src rand.Source) distuv.Rander {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: src}
}
