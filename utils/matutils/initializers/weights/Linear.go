package weights

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LinearUV initializes a single linear layer of weights, drawn from
// a univariate distribution
type LinearUV struct {
	distuv.Rander
}

// NewLinearUV creates and returns a new LinearUV
func NewLinearUV(rand distuv.Rander) LinearUV {
	if rand == nil {
		panic("rand cannot be nil")
	}
	return LinearUV{rand}
}

// Initialize initializes a matrix of weights using values drawn from
// a univariate distribution. Every element of the matrix is set,
// including when weights is a view into a larger matrix.
func (l LinearUV) Initialize(weights *mat.Dense) {
	if weights == nil {
		return
	}

	r, c := weights.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			weights.Set(i, j, l.Rand())
		}
	}
}
