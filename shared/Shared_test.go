package shared

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/nninit/activation"
	"github.com/samuelfneumann/nninit/initwfn"
	"github.com/samuelfneumann/nninit/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

func TestNew(t *testing.T) {
	g := G.NewGraph()

	tests := []struct {
		shape []int
		name  string
	}{
		{[]int{3}, "bias"},
		{[]int{3, 4}, "weights"},
		{[]int{2, 3, 4}, "kernel"},
		{[]int{2, 2}, ""},
	}

	for _, test := range tests {
		size := 1
		for _, dim := range test.shape {
			size *= dim
		}
		backing := make([]float64, size)
		for i := range backing {
			backing[i] = float64(i)
		}
		values := tensor.New(tensor.WithShape(test.shape...),
			tensor.WithBacking(backing))

		n, err := New(g, values, test.name)
		require.NoError(t, err, test.name)

		assert.Equal(t, len(test.shape), n.Dims())
		assert.True(t, n.Shape().Eq(tensor.Shape(test.shape)))
		assert.Equal(t, tensor.Float64, n.Dtype())
		assert.Equal(t, backing, n.Value().Data())
		if test.name != "" {
			assert.Equal(t, test.name, n.Name())
		}
	}
}

func TestNewScalar(t *testing.T) {
	g := G.NewGraph()

	n, err := NewScalar(g, 2.5, "lr")
	require.NoError(t, err)
	assert.True(t, n.IsScalar())
	assert.Equal(t, 2.5, n.Value().Data())
	assert.Equal(t, "lr", n.Name())

	n, err = New(g, tensor.New(tensor.FromScalar(float32(1.5))), "s")
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, n.Dtype())
	assert.Equal(t, float32(1.5), n.Value().Data())

	_, err = NewScalar(g, nil, "bad")
	assert.Error(t, err)
}

func TestNewIntValues(t *testing.T) {
	g := G.NewGraph()

	n, err := New(g, tensor.New(tensor.FromScalar(3)), "is")
	require.NoError(t, err)
	assert.True(t, n.IsScalar())
	assert.Equal(t, tensor.Int, n.Dtype())
	assert.Equal(t, 3, n.Value().Data())

	n, err = NewScalar(g, 7, "js")
	require.NoError(t, err)
	assert.Equal(t, tensor.Int, n.Dtype())
	assert.Equal(t, 7, n.Value().Data())

	n, err = New(g, tensor.New(tensor.WithBacking([]int{1, 2})), "iv")
	require.NoError(t, err)
	assert.Equal(t, tensor.Int, n.Dtype())
	assert.Equal(t, []int{1, 2}, n.Value().Data())
}

func TestNewNil(t *testing.T) {
	_, err := New(G.NewGraph(), nil, "x")
	assert.Error(t, err)
}

func TestNewParam(t *testing.T) {
	g := G.NewGraph()

	w, err := NewParam(g, "w", []int{4, 3}, rng.New(1), initwfn.Uniform)
	require.NoError(t, err)
	assert.Equal(t, "w", w.Name())
	assert.True(t, w.Shape().Eq(tensor.Shape{4, 3}))

	_, err = NewParam(g, "bad", []int{4, 3}, nil, initwfn.Type("bogus"))
	assert.True(t, errors.Is(err, initwfn.ErrUnknownDistributionKind))
}

func TestSet(t *testing.T) {
	g := G.NewGraph()
	x, err := New(g, tensor.New(tensor.WithBacking([]float64{-1, 2})), "x")
	require.NoError(t, err)

	relu, err := activation.ByName("relu")
	require.NoError(t, err)
	out, err := relu.Fwd(x)
	require.NoError(t, err)

	vm := G.NewTapeMachine(g)
	defer vm.Close()
	require.NoError(t, vm.RunAll())
	assert.Equal(t, []float64{0, 2}, out.Value().Data())

	require.NoError(t, Set(x, tensor.New(tensor.WithBacking([]float64{3, -4}))))
	vm.Reset()
	require.NoError(t, vm.RunAll())
	assert.Equal(t, []float64{3, 0}, out.Value().Data())

	err = Set(x, tensor.New(tensor.WithBacking([]float64{1, 2, 3})))
	assert.Error(t, err)
}
