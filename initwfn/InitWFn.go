// Package initwfn implements random initialization of network
// parameters. Initializers are described by JSON serializable
// configurations and can be used to sample gorgonia tensors directly,
// as Gorgonia InitWFn's, or to fill gonum matrices.
package initwfn

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/samuelfneumann/nninit/config"
	"github.com/samuelfneumann/nninit/rng"
	"github.com/samuelfneumann/nninit/utils/matutils/initializers/weights"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Type describes the distribution that parameters are drawn from
type Type string

// Available distribution kinds. Unset selects the process-wide default
// kind, see SetDefaultType.
const (
	Unset          Type = ""
	DefaultUniform Type = "default"
	Normal         Type = "normal"
	Uniform        Type = "uniform"
)

// configTypes maps each distribution kind to its Config type
var configTypes = map[Type]reflect.Type{
	DefaultUniform: reflect.TypeOf(DefaultUniformConfig{}),
	Normal:         reflect.TypeOf(NormalConfig{}),
	Uniform:        reflect.TypeOf(UniformConfig{}),
}

// Config describes a distribution that parameters are drawn from
type Config interface {
	// Type returns the distribution kind that the Config describes
	Type() Type

	// Rander returns the distribution for a parameter with fan-in
	// fanIn, drawing randomness from src
	Rander(fanIn int, src rand.Source) distuv.Rander
}

// InitWFn samples parameters from the distribution described by its
// Config. An InitWFn can be JSON marshalled and unmarshalled.
type InitWFn struct {
	Type
	Config

	gen *rng.Generator
}

// New returns a new InitWFn which samples from the distribution kind
// using gen. If gen is nil, the default generator at sampling time is
// used. If kind is Unset, the process-wide default kind is used.
func New(kind Type, gen *rng.Generator) (*InitWFn, error) {
	if kind == Unset {
		kind = DefaultType()
	}

	var c Config
	switch kind {
	case DefaultUniform:
		c = DefaultUniformConfig{ScalingFactor: ScalingFactor()}
	case Normal:
		c = NormalConfig{}
	case Uniform:
		c = UniformConfig{}
	default:
		return nil, &UnknownDistributionKindError{kind}
	}

	return newInitWFn(c, gen), nil
}

// newInitWFn returns a new InitWFn
func newInitWFn(c Config, gen *rng.Generator) *InitWFn {
	return &InitWFn{Type: c.Type(), Config: c, gen: gen}
}

// Generator returns the generator that the InitWFn samples with
func (i *InitWFn) Generator() *rng.Generator {
	if i.gen == nil {
		return rng.Default()
	}
	return i.gen
}

// SetGenerator sets the generator that the InitWFn samples with. A nil
// generator selects the default generator.
func (i *InitWFn) SetGenerator(gen *rng.Generator) {
	i.gen = gen
}

// Sample returns a tensor of the given shape with elements drawn from
// the distribution of the InitWFn. The first dimension of the shape is
// taken as the fan-in. The tensor's dtype is config.FloatX().
func (i *InitWFn) Sample(shape ...int) (*tensor.Dense, error) {
	backing, err := i.sample(config.FloatX(), shape)
	if err != nil {
		return nil, err
	}

	s := make([]int, len(shape))
	copy(s, shape)
	return tensor.New(tensor.WithShape(s...), tensor.WithBacking(backing)), nil
}

// sample returns a backing slice of dtype dt filled with samples
func (i *InitWFn) sample(dt tensor.Dtype, shape []int) (interface{}, error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}

	size := 1
	for _, dim := range shape {
		size *= dim
	}
	r := i.Rander(shape[0], i.Generator())

	switch dt {
	case tensor.Float64:
		data := make([]float64, size)
		for j := range data {
			data[j] = r.Rand()
		}
		return data, nil

	case tensor.Float32:
		data := make([]float32, size)
		for j := range data {
			data[j] = float32(r.Rand())
		}
		return data, nil
	}

	return nil, fmt.Errorf("sample: unsupported dtype %v", dt)
}

// InitWFn returns the InitWFn as a Gorgonia InitWFn, so that it can be
// used with G.WithInit. The returned function panics on invalid shapes
// or non-float dtypes, as Gorgonia's own initializers do.
func (i *InitWFn) InitWFn() G.InitWFn {
	return func(dt tensor.Dtype, s ...int) interface{} {
		backing, err := i.sample(dt, s)
		if err != nil {
			panic(err)
		}
		return backing
	}
}

// Initialize fills weights with samples, using the number of rows as
// the fan-in. Initialize implements the weights.Initializer interface.
func (i *InitWFn) Initialize(w *mat.Dense) {
	if w == nil {
		return
	}
	r, _ := w.Dims()
	weights.NewLinearUV(i.Rander(r, i.Generator())).Initialize(w)
}

// String implements the fmt.Stringer interface
func (i *InitWFn) String() string {
	return fmt.Sprintf("{%v InitWFn: %v}", i.Type, i.Config)
}

// UnmarshalJSON implements the json.Unmarshaller interface. The
// unmarshalled InitWFn samples with the default generator.
func (i *InitWFn) UnmarshalJSON(data []byte) error {
	config, typeName, err := unmarshalConfig(data, "Type", "Config",
		configTypes)
	if err != nil {
		return err
	}

	i.Type = typeName
	i.Config = config
	i.gen = nil

	return nil
}

// unmarshalConfig uses reflection to unmarshall a Config into its
// concrete type. Both the Config and its Type are returned.
func unmarshalConfig(data []byte, typeJsonField, valueJsonField string,
	customTypes map[Type]reflect.Type) (Config, Type, error) {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, "", err
	}

	var typeName Type
	if raw, ok := m[typeJsonField]; ok {
		if err := json.Unmarshal(raw, &typeName); err != nil {
			return nil, "", err
		}
	}
	if typeName == Unset {
		typeName = DefaultUniform
	}

	ty, found := customTypes[typeName]
	if !found {
		return nil, "", &UnknownDistributionKindError{typeName}
	}
	value := reflect.New(ty).Interface()

	if raw, ok := m[valueJsonField]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, value); err != nil {
			return nil, "", err
		}
	}
	concreteValue := reflect.ValueOf(value).Elem().Interface().(Config)

	return concreteValue, typeName, nil
}

// validateShape returns an error if shape cannot be sampled
func validateShape(shape []int) error {
	if len(shape) == 0 {
		return fmt.Errorf("%w: shape must have at least one dimension",
			ErrInvalidShape)
	}
	for _, dim := range shape {
		if dim <= 0 {
			return fmt.Errorf("%w: dimensions must be positive, got %v",
				ErrInvalidShape, shape)
		}
	}
	return nil
}
