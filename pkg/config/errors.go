package config

import "errors"

var (
	// ErrConfigFileNotFound is returned when config file is not found
	ErrConfigFileNotFound = errors.New("configuration file not found")

	// ErrInputRequired is returned when the input directory is empty
	ErrInputRequired = errors.New("input directory is required")

	// ErrOutputRequired is returned when the output directory is empty
	ErrOutputRequired = errors.New("output directory is required")

	// ErrSameInputOutput is returned when input and output point at the same directory
	ErrSameInputOutput = errors.New("input and output must be different directories")

	// ErrInvalidExtension is returned when the module extension is not alphanumeric
	ErrInvalidExtension = errors.New("extension must be alphanumeric without a leading dot")

	// ErrInvalidIndexName is returned when the index filename contains a path separator
	ErrInvalidIndexName = errors.New("index must be a plain filename")

	// ErrInvalidLogLevel is returned for an unknown logging.level
	ErrInvalidLogLevel = errors.New("logging level must be one of debug, info, warn, error")
)
