package document

import "errors"

var (
	// ErrNotFound is returned by loaders when the named document does not exist.
	ErrNotFound = errors.New("document.errors.not_found")

	// ErrInvalidName is returned for empty names or names escaping the loader's root.
	ErrInvalidName = errors.New("document.errors.invalid_name")

	// ErrTooLarge is returned when a document exceeds the loader's size limit.
	ErrTooLarge = errors.New("document.errors.too_large")

	// ErrLoadFailed wraps backend failures while loading a document.
	ErrLoadFailed = errors.New("document.errors.load_failed")

	// ErrInvalidConfig is returned by loader constructors given unusable configuration.
	ErrInvalidConfig = errors.New("document.errors.invalid_config")
)
