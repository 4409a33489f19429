// Package module loads schema inventory files and merges them into one registry.
package module

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/analysis"
)

// Module is a loaded schema file.
type Module struct {
	Path     string
	Database *dbtypes.Database
}

// Loader handles loading and caching of schema files. It is safe for
// concurrent use; a file reached through several paths is loaded once.
type Loader struct {
	mu sync.Mutex

	// cache stores loaded modules by absolute path.
	cache map[string]*Module

	// Parser decodes a schema file.
	// Defaults to analysis.ParseSchema but can be overridden for testing.
	Parser func(data []byte) (*dbtypes.Database, error)
}

// NewLoader creates a new loader.
func NewLoader() *Loader {
	return &Loader{
		cache:  make(map[string]*Module),
		Parser: analysis.ParseSchema,
	}
}

// Load loads a schema file. Relative paths are resolved from the current
// working directory. Returns a cached module if already loaded.
func (l *Loader) Load(path string) (*Module, error) {
	absPath, err := l.resolvePath(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	if mod, ok := l.cached(absPath); ok {
		return mod, nil
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, &LoadError{Path: absPath, Cause: err}
	}

	db, err := l.Parser(data)
	if err != nil {
		return nil, &LoadError{Path: absPath, Cause: fmt.Errorf("%w: %w", ErrParseError, err)}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// A concurrent Load of the same file may have finished first.
	if mod, ok := l.cache[absPath]; ok {
		return mod, nil
	}

	mod := &Module{Path: absPath, Database: db}
	l.cache[absPath] = mod

	return mod, nil
}

func (l *Loader) cached(absPath string) (*Module, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	mod, ok := l.cache[absPath]

	return mod, ok
}

func (l *Loader) resolvePath(path string) (string, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}

		path = filepath.Join(wd, path)
	}

	return normalizeSchemaPath(path)
}

// normalizeSchemaPath ensures the path exists, trying the .schema.yaml
// extension when it is missing.
func normalizeSchemaPath(path string) (string, error) {
	path = filepath.Clean(path)

	if _, err := os.Stat(path); err == nil {
		return filepath.Abs(path)
	}

	if !strings.HasSuffix(path, dbtypes.SchemaFileExt) {
		withExt := strings.TrimSuffix(path, filepath.Ext(path)) + dbtypes.SchemaFileExt
		if filepath.Ext(path) == "" || filepath.Ext(path) == ".schema" {
			if _, err := os.Stat(withExt); err == nil {
				return filepath.Abs(withExt)
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrModuleNotFound, path)
}

// Clear clears the module cache.
func (l *Loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cache = make(map[string]*Module)
}

// Cached returns all cached modules.
func (l *Loader) Cached() map[string]*Module {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make(map[string]*Module, len(l.cache))
	maps.Copy(result, l.cache)

	return result
}
