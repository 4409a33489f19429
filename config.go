package dbtypes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the .dbtypes.yaml (or .dbtypes.toml) configuration file.
type Config struct {
	// Schemas lists schema inventory files or globs, relative to the config file.
	Schemas []string `yaml:"schemas,omitempty" toml:"schemas"`

	// Generate config for code generation.
	Generate GenerateConfig `yaml:"generate,omitempty" toml:"generate"`

	// Check config for structural checks.
	Check CheckConfig `yaml:"check,omitempty" toml:"check"`

	// Neo4j holds connection settings for the graph export.
	Neo4j *Neo4jConfig `yaml:"neo4j,omitempty" toml:"neo4j"`

	// dir is the directory the config was loaded from.
	dir string
}

// GenerateConfig holds settings for the generate command.
type GenerateConfig struct {
	// Language target (e.g., "go").
	Lang string `yaml:"lang,omitempty" toml:"lang"`

	// Output directory for generated files.
	Out string `yaml:"out,omitempty" toml:"out"`

	// Package name for generated code (Go-specific).
	Package string `yaml:"package,omitempty" toml:"package"`

	// File overrides the generated file name for single-schema inventories.
	File string `yaml:"file,omitempty" toml:"file"`
}

// CheckConfig holds settings for the check command.
type CheckConfig struct {
	// Rules are custom per-table rules written as expr-lang expressions.
	Rules []RuleConfig `yaml:"rules,omitempty" toml:"rules"`

	// Disable lists built-in rule names to skip.
	Disable []string `yaml:"disable,omitempty" toml:"disable"`
}

// RuleConfig is a user-defined check. Expr must evaluate to true for a table
// to pass.
type RuleConfig struct {
	Name     string `yaml:"name" toml:"name"`
	Expr     string `yaml:"expr" toml:"expr"`
	Severity string `yaml:"severity,omitempty" toml:"severity"`
	Doc      string `yaml:"doc,omitempty" toml:"doc"`
}

// Neo4jConfig holds Neo4j connection settings.
type Neo4jConfig struct {
	URI      string `yaml:"uri" toml:"uri"`
	Username string `yaml:"username,omitempty" toml:"username"`
	Password string `yaml:"password,omitempty" toml:"password"`
	Database string `yaml:"database,omitempty" toml:"database"`
}

// Dir returns the directory the config file lives in.
func (c *Config) Dir() string {
	return c.dir
}

// Resolve returns path made absolute against the config directory.
func (c *Config) Resolve(path string) string {
	if filepath.IsAbs(path) || c.dir == "" {
		return path
	}

	return filepath.Join(c.dir, path)
}

// SchemaFiles expands the configured schema globs.
func (c *Config) SchemaFiles() ([]string, error) {
	var files []string

	for _, pattern := range c.Schemas {
		matches, err := filepath.Glob(c.Resolve(pattern))
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}

		files = append(files, matches...)
	}

	return files, nil
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".dbtypes.yaml", ".dbtypes.yml", "dbtypes.yaml", "dbtypes.yml", ".dbtypes.toml", "dbtypes.toml"}

// LoadConfig finds and loads the nearest config walking up from dir.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path. The format follows the
// file extension.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownConfigFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.dir = filepath.Dir(path)
	if abs, err := filepath.Abs(cfg.dir); err == nil {
		cfg.dir = abs
	}

	return &cfg, nil
}
