package initwfn

import (
	"fmt"
	"sync"

	"github.com/samuelfneumann/nninit/config"
	"github.com/samuelfneumann/nninit/rng"
)

// settings are the process-wide initialization defaults
var settings = struct {
	sync.RWMutex
	kind          Type
	scalingFactor float64
	useXavier     bool
}{
	kind:          DefaultUniform,
	scalingFactor: 1.0,
}

// DefaultType returns the distribution kind used when none is given
func DefaultType() Type {
	settings.RLock()
	defer settings.RUnlock()

	return settings.kind
}

// SetDefaultType sets the distribution kind used when none is given.
// Setting Unset restores default-uniform initialization.
func SetDefaultType(kind Type) error {
	if kind == Unset {
		kind = DefaultUniform
	}
	if _, ok := configTypes[kind]; !ok {
		return &UnknownDistributionKindError{kind}
	}

	settings.Lock()
	defer settings.Unlock()
	settings.kind = kind

	return nil
}

// ScalingFactor returns the process-wide scaling factor applied to
// default-uniform initialization
func ScalingFactor() float64 {
	settings.RLock()
	defer settings.RUnlock()

	return settings.scalingFactor
}

// SetScalingFactor sets the process-wide scaling factor applied to
// default-uniform initialization. A factor of 0 is treated as 1.
func SetScalingFactor(factor float64) error {
	if factor < 0 {
		return fmt.Errorf("setScalingFactor: factor must be non-negative, "+
			"got %v", factor)
	}

	settings.Lock()
	defer settings.Unlock()
	settings.scalingFactor = factor

	return nil
}

// UseXavier returns whether Xavier initialization was requested.
//
// The flag is only recorded: no initializer in this package consults
// it, and default-uniform initialization always uses the fan-in alone.
func UseXavier() bool {
	settings.RLock()
	defer settings.RUnlock()

	return settings.useXavier
}

// SetUseXavier records whether Xavier initialization is requested, see
// UseXavier.
func SetUseXavier(use bool) {
	settings.Lock()
	defer settings.Unlock()

	settings.useXavier = use
}

// Configure applies c to the process-wide settings: the precision of
// sampled tensors, the default distribution kind, the scaling factor,
// the Xavier flag and, if c.Seed is set, the seed of the default
// generators. Nothing is changed if c is invalid.
func Configure(c config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}

	kind := Type(c.InitType)
	if kind == Unset {
		kind = DefaultUniform
	}
	if _, ok := configTypes[kind]; !ok {
		return &UnknownDistributionKindError{kind}
	}

	dt, err := c.FloatX.Dtype()
	if err != nil {
		return err
	}
	if err := config.SetFloatX(dt); err != nil {
		return err
	}

	settings.Lock()
	settings.kind = kind
	settings.scalingFactor = c.InitScalingFactor
	settings.useXavier = c.UseXavierInit
	settings.Unlock()

	if c.Seed != nil {
		rng.SetDefaultSeed(*c.Seed)
	}
	return nil
}
