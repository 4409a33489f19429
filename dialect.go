package dbtypes

import (
	"fmt"
	"sort"
)

// Dialect turns a database's DDL into a registry.
type Dialect interface {
	// Name returns the dialect identifier (e.g., "postgres").
	Name() string

	// Import parses DDL source and returns the schemas it declares.
	Import(src []byte) (*Database, error)
}

var dialects = make(map[string]Dialect)

// RegisterDialect registers a dialect by its name.
func RegisterDialect(d Dialect) {
	dialects[d.Name()] = d
}

// GetDialect returns a registered dialect.
func GetDialect(name string) (Dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, name)
	}

	return d, nil
}

// RegisteredDialects returns the names of all registered dialects, sorted.
func RegisteredDialects() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
