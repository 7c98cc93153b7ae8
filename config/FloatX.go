package config

import (
	"fmt"
	"sync"

	"gorgonia.org/tensor"
)

var (
	floatXMu sync.RWMutex
	floatX   = tensor.Float64
)

// Dtype returns the tensor.Dtype of the precision
func (p Precision) Dtype() (tensor.Dtype, error) {
	switch p {
	case Float32:
		return tensor.Float32, nil
	case Float64:
		return tensor.Float64, nil
	}
	return tensor.Dtype{}, fmt.Errorf("dtype: unsupported precision %q", p)
}

// FloatX returns the process-wide floating point precision that
// sampled parameters are cast to
func FloatX() tensor.Dtype {
	floatXMu.RLock()
	defer floatXMu.RUnlock()

	return floatX
}

// SetFloatX sets the process-wide floating point precision. Only
// tensor.Float32 and tensor.Float64 are accepted.
func SetFloatX(dt tensor.Dtype) error {
	if dt != tensor.Float32 && dt != tensor.Float64 {
		return fmt.Errorf("setFloatX: unsupported dtype %v", dt)
	}

	floatXMu.Lock()
	defer floatXMu.Unlock()
	floatX = dt

	return nil
}
