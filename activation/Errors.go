package activation

import (
	"errors"
	"fmt"
)

// ErrUnknownActivation is matched by errors.Is for every
// *UnknownActivationError
var ErrUnknownActivation = errors.New("unknown activation")

// UnknownActivationError is returned when an activation function is
// requested by a name that does not exist
type UnknownActivationError struct {
	Name string
}

// Error implements the error interface
func (e *UnknownActivationError) Error() string {
	return fmt.Sprintf("unknown activation type: %v", e.Name)
}

// Is reports whether target is ErrUnknownActivation
func (e *UnknownActivationError) Is(target error) bool {
	return target == ErrUnknownActivation
}
