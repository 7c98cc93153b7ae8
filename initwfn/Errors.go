package initwfn

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDistributionKind is matched by errors.Is for every
	// *UnknownDistributionKindError
	ErrUnknownDistributionKind = errors.New("unknown distribution kind")

	// ErrInvalidShape is returned when a shape has no dimensions or a
	// non-positive dimension
	ErrInvalidShape = errors.New("invalid shape")
)

// UnknownDistributionKindError is returned when an initializer is
// requested for a distribution kind that does not exist
type UnknownDistributionKindError struct {
	Kind Type
}

// Error implements the error interface
func (e *UnknownDistributionKindError) Error() string {
	return fmt.Sprintf("unknown random init type: %q", string(e.Kind))
}

// Is reports whether target is ErrUnknownDistributionKind
func (e *UnknownDistributionKindError) Is(target error) bool {
	return target == ErrUnknownDistributionKind
}
