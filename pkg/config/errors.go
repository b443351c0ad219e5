package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("config.errors.parsing_failed")

	// ErrReadingFile is returned when a configuration file cannot be read or decoded.
	ErrReadingFile = errors.New("config.errors.reading_file_failed")

	// ErrNilPointer is returned when a nil pointer is provided to a loader.
	ErrNilPointer = errors.New("config.errors.nil_pointer")
)
