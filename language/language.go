// Package language provides interfaces for code generation from a schema registry.
//
// Each target language implements the Language interface to generate source
// files holding typed row, insert and update records for every table.
package language

import (
	"sort"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"go.uber.org/zap"
)

// Language represents a target language for code generation.
type Language interface {
	// Name returns the language identifier (e.g., "go").
	Name() string

	// InferPackageName determines the appropriate package/module name for a directory.
	// Each language implements this with its own conventions (e.g., Go uses go/build).
	InferPackageName(dir string) (string, error)

	// Generate produces source files from the given context.
	// Returns a map of filename to content.
	Generate(ctx *GenerateContext) (map[string][]byte, error)
}

// GenerateContext provides information needed for code generation.
type GenerateContext struct {
	// Database is the registry to generate from.
	Database *dbtypes.Database

	// OutputDir is the directory where files will be written.
	OutputDir string

	// PackageName is the package/module name for generated code.
	// If empty, the language should infer it from OutputDir.
	PackageName string

	// FileName overrides the per-schema file name when the registry has a
	// single schema. Empty means "<schema>.gen.go".
	FileName string

	// Logger receives generation warnings. Nil means no logging.
	Logger *zap.Logger
}

// Log returns the context logger, never nil.
func (c *GenerateContext) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}

// Registration for language discovery.
var languages = make(map[string]Language)

// Register registers a language by name.
func Register(lang Language) {
	languages[lang.Name()] = lang
}

// Get returns a language by name, or nil if not registered.
func Get(name string) Language { //nolint:ireturn
	return languages[name]
}

// RegisteredLanguages returns the names of all registered languages, sorted.
func RegisteredLanguages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
