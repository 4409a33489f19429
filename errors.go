package dbtypes

import "errors"

// Sentinel errors.
var (
	// ErrConfigNotFound is returned when no .dbtypes.yaml or .dbtypes.toml is found.
	ErrConfigNotFound = errors.New("dbtypes: no .dbtypes.yaml found")

	// ErrUnknownConfigFormat is returned for config files that are neither YAML nor TOML.
	ErrUnknownConfigFormat = errors.New("dbtypes: unknown config format")

	// ErrInvalidSelector is returned when a selector string is malformed.
	ErrInvalidSelector = errors.New("dbtypes: invalid selector")

	// ErrUnknownShapeKind is returned when a shape kind name is not recognized.
	ErrUnknownShapeKind = errors.New("dbtypes: unknown shape kind")

	// ErrUnknownDialect is returned when a dialect name is not registered.
	ErrUnknownDialect = errors.New("dbtypes: unknown dialect")

	// ErrUnknownLanguage is returned when a language name is not registered.
	ErrUnknownLanguage = errors.New("dbtypes: unknown language")
)
