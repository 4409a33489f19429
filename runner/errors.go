package runner

import "errors"

// Sentinel errors for the runner package.
var (
	// ErrMaxFailures is returned when the max failure limit is reached.
	ErrMaxFailures = errors.New("runner: max failures reached")

	// ErrNoDatabase is returned when Run is given no registry.
	ErrNoDatabase = errors.New("runner: no database to check")

	// ErrInvalidFilter is returned when the filter pattern does not compile.
	ErrInvalidFilter = errors.New("runner: invalid filter")

	// Test errors for use in unit tests.
	errTestStop = errors.New("test: stop")
)
