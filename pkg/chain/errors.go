package chain

import "errors"

var (
	// ErrUnknownWrapper is returned when a configured wrapper name has no factory.
	ErrUnknownWrapper = errors.New("chain.errors.unknown_wrapper")

	// ErrInvalidConfig is returned when chain configuration fails validation.
	ErrInvalidConfig = errors.New("chain.errors.invalid_config")
)
