package initwfn

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/samuelfneumann/nninit/config"
	"github.com/samuelfneumann/nninit/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Config
	}{
		{`{"Type": "normal", "Config": {}}`, NormalConfig{}},
		{`{"Type": "uniform"}`, UniformConfig{}},
		{`{"Type": "default", "Config": {"ScalingFactor": 0.5}}`,
			DefaultUniformConfig{ScalingFactor: 0.5}},
		{`{}`, DefaultUniformConfig{}},
	}

	for _, test := range tests {
		var init InitWFn
		require.NoError(t, json.Unmarshal([]byte(test.in), &init), test.in)
		assert.Equal(t, test.want, init.Config, test.in)
		assert.Equal(t, test.want.Type(), init.Type, test.in)
	}
}

func TestUnmarshalJSONUnknown(t *testing.T) {
	var init InitWFn
	err := json.Unmarshal([]byte(`{"Type": "xavier"}`), &init)
	assert.True(t, errors.Is(err, ErrUnknownDistributionKind))
}

func TestMarshalJSON(t *testing.T) {
	init := NewDefaultUniform(2)
	data, err := json.Marshal(init)
	require.NoError(t, err)

	var decoded InitWFn
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, init.Type, decoded.Type)
	assert.Equal(t, init.Config, decoded.Config)
}

func TestGorgoniaInitWFn(t *testing.T) {
	init := NewDefaultUniform(1)
	init.SetGenerator(rng.New(8))

	g := G.NewGraph()
	w := G.NewMatrix(g, tensor.Float64, G.WithShape(12, 6), G.WithName("w"),
		G.WithInit(init.InitWFn()))

	vals, ok := w.Value().Data().([]float64)
	require.True(t, ok)
	require.Len(t, vals, 72)

	bound := math.Sqrt(3.0 / 12)
	for _, v := range vals {
		assert.LessOrEqual(t, v, bound)
		assert.GreaterOrEqual(t, v, -bound)
	}
}

func TestGorgoniaInitWFnFloat32(t *testing.T) {
	init := NewNormal()
	backing := init.InitWFn()(tensor.Float32, 3, 2)

	vals, ok := backing.([]float32)
	require.True(t, ok)
	assert.Len(t, vals, 6)

	assert.Panics(t, func() { init.InitWFn()(tensor.Int, 3, 2) })
}

func TestInitializeMatrix(t *testing.T) {
	init := NewUniform()
	init.SetGenerator(rng.New(9))

	w := mat.NewDense(10, 10, nil)
	init.Initialize(w)

	assert.LessOrEqual(t, mat.Max(w), math.Sqrt(3))
	assert.GreaterOrEqual(t, mat.Min(w), -math.Sqrt(3))
	assert.NotEqual(t, 0.0, mat.Max(w))
}

func TestConfigure(t *testing.T) {
	defer func() {
		require.NoError(t, Configure(config.Default()))
	}()

	seed := uint64(42)
	c := config.Config{
		FloatX:            config.Float32,
		InitType:          "uniform",
		InitScalingFactor: 2,
		UseXavierInit:     true,
		Seed:              &seed,
	}
	require.NoError(t, Configure(c))

	assert.Equal(t, tensor.Float32, config.FloatX())
	assert.Equal(t, Uniform, DefaultType())
	assert.Equal(t, 2.0, ScalingFactor())
	assert.True(t, UseXavier())
	assert.Equal(t, seed, rng.Default().LastSeed())
}

func TestConfigureInvalid(t *testing.T) {
	c := config.Default()
	c.InitType = "bogus"
	assert.True(t, errors.Is(Configure(c), ErrUnknownDistributionKind))
	assert.Equal(t, DefaultUniform, DefaultType())

	c = config.Default()
	c.FloatX = "float16"
	assert.Error(t, Configure(c))
	assert.Equal(t, tensor.Float64, config.FloatX())
}

func TestXavierFlagIsNotConsulted(t *testing.T) {
	defer SetUseXavier(false)

	SetUseXavier(false)
	a, err := RandomInit([]int{4, 5}, rng.New(10), Unset)
	require.NoError(t, err)

	SetUseXavier(true)
	b, err := RandomInit([]int{4, 5}, rng.New(10), Unset)
	require.NoError(t, err)

	assert.Equal(t, a.Data(), b.Data())
}
