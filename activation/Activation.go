// Package activation implements the activation functions of network
// layers and their lookup by name.
package activation

import (
	"encoding/json"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	G "gorgonia.org/gorgonia"
)

// Type enumerates the available activation functions
type Type string

// Available activation functions
const (
	ReLU    Type = "relu"
	Sigmoid Type = "sigmoid"
	Tanh    Type = "tanh"
	Softmax Type = "softmax"
	Linear  Type = "linear"
)

// names maps normalized names to activation types
var names = map[string]Type{
	"relu":    ReLU,
	"sigmoid": Sigmoid,
	"tanh":    Tanh,
	"softmax": Softmax,
	"linear":  Linear,
	"none":    Linear,
}

// Activation represents an activation function
type Activation struct {
	Type
	f func(x *G.Node) (*G.Node, error)
	g func(x float64) float64
}

// activations holds the function implementing each Type
var activations = map[Type]Activation{
	ReLU: {
		Type: ReLU,
		f:    G.Rectify,
		g: func(x float64) float64 {
			if x > 0 {
				return x
			}
			return 0
		},
	},
	Sigmoid: {
		Type: Sigmoid,
		f:    G.Sigmoid,
		g: func(x float64) float64 {
			return 1 / (1 + math.Exp(-x))
		},
	},
	Tanh: {
		Type: Tanh,
		f:    G.Tanh,
		g:    math.Tanh,
	},
	Softmax: {
		Type: Softmax,
		f: func(x *G.Node) (*G.Node, error) {
			return G.SoftMax(x)
		},
	},
	Linear: {
		Type: Linear,
		f: func(x *G.Node) (*G.Node, error) {
			return x, nil
		},
		g: func(x float64) float64 { return x },
	},
}

// ByName returns the activation function with the given name. Names
// are case-insensitive and surrounding whitespace is ignored. Both
// "none" and "linear" name the identity function.
func ByName(name string) (*Activation, error) {
	t, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &UnknownActivationError{name}
	}
	return New(t)
}

// New returns the activation function of the given Type
func New(t Type) (*Activation, error) {
	a, ok := activations[t]
	if !ok {
		return nil, &UnknownActivationError{string(t)}
	}
	return &a, nil
}

// Fwd adds the activation function applied to x to x's computational
// graph. Softmax is taken over the last axis of x.
func (a *Activation) Fwd(x *G.Node) (*G.Node, error) {
	return a.f(x)
}

// Apply applies the activation function to a single value. The
// softmax of a single value is 1.
func (a *Activation) Apply(x float64) float64 {
	if a.Type == Softmax {
		return 1
	}
	return a.g(x)
}

// ApplyVec returns the activation function applied to x, which is not
// modified. Softmax normalizes over all of x.
func (a *Activation) ApplyVec(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	if len(out) == 0 {
		return out
	}

	if a.Type == Softmax {
		floats.AddConst(-floats.Max(out), out)
		for i := range out {
			out[i] = math.Exp(out[i])
		}
		floats.Scale(1/floats.Sum(out), out)
		return out
	}

	for i := range out {
		out[i] = a.g(out[i])
	}
	return out
}

// String implements the Stringer interface
func (a *Activation) String() string {
	return string(a.Type)
}

// IsIdentity returns whether or not the Activation is the identity
// function.
func (a *Activation) IsIdentity() bool {
	return a.Type == Linear
}

// GobEncode implements the GobEncoder interface
func (a *Activation) GobEncode() ([]byte, error) {
	return []byte(a.Type), nil
}

// GobDecode implements the GobDecoder interface
func (a *Activation) GobDecode(encoded []byte) error {
	decoded, err := New(Type(encoded))
	if err != nil {
		return err
	}
	*a = *decoded
	return nil
}

// MarshalJSON implements the json.Marshaler interface
func (a *Activation) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a.Type))
}

// UnmarshalJSON implements the json.Unmarshaler interface. Any name
// accepted by ByName is accepted.
func (a *Activation) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	decoded, err := ByName(name)
	if err != nil {
		return err
	}
	*a = *decoded
	return nil
}
