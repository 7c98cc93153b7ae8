// Package shared wraps numeric tensors as named, mutable input nodes
// of a Gorgonia computational graph, so that they can be used as the
// parameters of a network.
package shared

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/nninit/initwfn"
	"github.com/samuelfneumann/nninit/rng"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// New returns a node of g whose value is values. The node is named
// name, unless name is empty. Values are not copied or validated
// beyond what Gorgonia requires; further mutation and use of the node
// is governed by Gorgonia.
func New(g *G.ExprGraph, values tensor.Tensor, name string) (n *G.Node, err error) {
	if values == nil {
		return nil, errors.New("new: values cannot be nil")
	}
	if values.Dims() == 0 {
		return newScalar(g, values.Dtype(), values.Data(), name)
	}

	opts := []G.NodeConsOpt{G.WithShape(values.Shape().Clone()...),
		G.WithValue(values)}
	if name != "" {
		opts = append(opts, G.WithName(name))
	}

	defer func() {
		if r := recover(); r != nil {
			n, err = nil, errors.Errorf("new: could not create node: %v", r)
		}
	}()

	switch values.Dims() {
	case 1:
		return G.NewVector(g, values.Dtype(), opts...), nil
	case 2:
		return G.NewMatrix(g, values.Dtype(), opts...), nil
	default:
		return G.NewTensor(g, values.Dtype(), values.Dims(), opts...), nil
	}
}

// NewScalar returns a scalar node of g whose value is value, a Go
// scalar such as a float64 or an int. The node's dtype is that of
// value. The node is named name, unless name is empty.
func NewScalar(g *G.ExprGraph, value interface{}, name string) (*G.Node, error) {
	if value == nil {
		return nil, errors.New("newScalar: value cannot be nil")
	}
	return newScalar(g, tensor.Dtype{Type: reflect.TypeOf(value)}, value, name)
}

// newScalar returns a scalar node of g of dtype dt holding value
func newScalar(g *G.ExprGraph, dt tensor.Dtype, value interface{},
	name string) (n *G.Node, err error) {
	opts := []G.NodeConsOpt{G.WithValue(value)}
	if name != "" {
		opts = append(opts, G.WithName(name))
	}

	defer func() {
		if r := recover(); r != nil {
			n, err = nil, errors.Errorf("newScalar: could not create node: %v",
				r)
		}
	}()
	return G.NewScalar(g, dt, opts...), nil
}

// NewParam returns a node of g named name holding a tensor of the
// given shape, randomly initialized from the distribution kind using
// gen. A nil gen selects the default generator and an Unset kind
// selects the default distribution kind, as with initwfn.RandomInit.
func NewParam(g *G.ExprGraph, name string, shape []int, gen *rng.Generator,
	kind initwfn.Type) (*G.Node, error) {
	values, err := initwfn.RandomInit(shape, gen, kind)
	if err != nil {
		return nil, errors.Wrapf(err, "newParam: could not initialize %v", name)
	}

	return New(g, values, name)
}

// Set binds values to the input node n, replacing its current value
func Set(n *G.Node, values tensor.Tensor) error {
	if values == nil {
		return errors.New("set: values cannot be nil")
	}
	if !n.Shape().Eq(values.Shape()) {
		return errors.Errorf("set: shape mismatch \n\twant: %v \n\thave: %v",
			n.Shape(), values.Shape())
	}

	return errors.Wrap(G.Let(n, values), "set")
}
