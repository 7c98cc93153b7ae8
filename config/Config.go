// Package config implements the framework-level configuration of
// parameter initialization: the floating point precision (floatX) of
// sampled tensors, the default initialization scheme, and the seed of
// the default generators. Configurations are JSON serializable and can
// also be given as a comma separated list of key=value flags, for
// example through the NNINIT_FLAGS environment variable:
//
//	NNINIT_FLAGS="floatX=float32,init=normal,seed=42"
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EnvFlags is the environment variable read by FromEnv
const EnvFlags = "NNINIT_FLAGS"

// Precision names a floating point precision
type Precision string

// Available precisions
const (
	Float32 Precision = "float32"
	Float64 Precision = "float64"
)

// Config describes how parameters are initialized
type Config struct {
	// FloatX is the precision sampled tensors are cast to
	FloatX Precision

	// InitType is the default distribution kind. The empty string
	// selects default-uniform initialization.
	InitType string

	// InitScalingFactor scales default-uniform initialization. Zero
	// is treated as 1.
	InitScalingFactor float64

	// UseXavierInit is recorded but not consulted by any initializer
	UseXavierInit bool

	// Seed, if non-nil, reseeds the default generators
	Seed *uint64 `json:",omitempty"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		FloatX:            Float64,
		InitType:          "",
		InitScalingFactor: 1.0,
		UseXavierInit:     false,
	}
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c Config) Validate() error {
	if _, err := c.FloatX.Dtype(); err != nil {
		return err
	}
	if c.InitScalingFactor < 0 {
		return fmt.Errorf("validate: scaling factor must be non-negative, "+
			"got %v", c.InitScalingFactor)
	}
	return nil
}

// Load reads a JSON configuration from the file at path. Fields not
// present in the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load: could not read %v", path)
	}

	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrapf(err, "load: could not decode %v", path)
	}

	return c, c.Validate()
}

// Save writes the configuration to the file at path as JSON
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return errors.Wrap(err, "save: could not encode config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "save: could not write %v", path)
	}
	return nil
}

// ParseFlags parses a comma separated list of key=value pairs on top
// of the default configuration. Recognized keys are floatX, init,
// scaling, xavier and seed. Keys are case-insensitive.
func ParseFlags(flags string) (Config, error) {
	c := Default()

	for _, field := range strings.Split(flags, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		kv := strings.SplitN(field, "=", 2)
		if len(kv) != 2 {
			return Config{}, fmt.Errorf("parseFlags: malformed flag %q", field)
		}
		key, value := strings.ToLower(strings.TrimSpace(kv[0])),
			strings.TrimSpace(kv[1])

		switch key {
		case "floatx":
			c.FloatX = Precision(strings.ToLower(value))

		case "init":
			c.InitType = value

		case "scaling":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Config{}, errors.Wrapf(err, "parseFlags: scaling")
			}
			c.InitScalingFactor = f

		case "xavier":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Config{}, errors.Wrapf(err, "parseFlags: xavier")
			}
			c.UseXavierInit = b

		case "seed":
			s, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return Config{}, errors.Wrapf(err, "parseFlags: seed")
			}
			c.Seed = &s

		default:
			return Config{}, fmt.Errorf("parseFlags: unknown flag %q", key)
		}
	}

	return c, c.Validate()
}

// FromEnv parses the flags stored in the NNINIT_FLAGS environment
// variable. If the variable is unset, the default configuration is
// returned.
func FromEnv() (Config, error) {
	flags, ok := os.LookupEnv(EnvFlags)
	if !ok {
		return Default(), nil
	}
	return ParseFlags(flags)
}
