package product

import "errors"

var (
	// ErrConfiguration is returned when construction inputs are inconsistent.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrBounds is returned for indexed access outside [0, NumElements).
	ErrBounds = errors.New("index out of range")

	// ErrParsing is returned for malformed or missing serialization fields.
	ErrParsing = errors.New("malformed serialization")

	// ErrNotImplemented marks placeholder product variants.
	ErrNotImplemented = errors.New("not implemented")
)
