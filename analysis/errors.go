package analysis

import "errors"

// Sentinel errors for the analysis package.
var (
	// ErrUnknownSeverity is returned for unrecognised severity names.
	ErrUnknownSeverity = errors.New("analysis: unknown severity")

	// ErrInvalidRule is returned when a custom rule expression does not compile.
	ErrInvalidRule = errors.New("analysis: invalid rule")

	// ErrUnknownRule is returned when a disabled rule name does not exist.
	ErrUnknownRule = errors.New("analysis: unknown rule")
)
