package module

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrModuleNotFound is returned when a schema file cannot be located.
	ErrModuleNotFound = errors.New("module: schema file not found")

	// ErrParseError is returned when a schema file cannot be decoded.
	ErrParseError = errors.New("module: parse error")
)

// LoadError wraps a failure to load a schema file.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
