package array

import "errors"

// Common errors.
var (
	ErrInvalidShape  = errors.New("array: invalid shape")
	ErrShapeMismatch = errors.New("array: data length does not match shape")
)
