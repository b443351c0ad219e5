package notifier

import "errors"

var (
	// ErrInvalidConfig is returned by constructors given unusable configuration.
	ErrInvalidConfig = errors.New("notifier.errors.invalid_config")
)
