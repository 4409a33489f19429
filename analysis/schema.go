// Package analysis loads schema inventory files and checks them for
// structural consistency.
package analysis

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"gopkg.in/yaml.v3"
)

// yamlDatabase is the YAML representation of dbtypes.Database.
type yamlDatabase struct {
	Schemas map[string]*yamlSchema `yaml:"schemas"`
}

// yamlSchema is the YAML representation of dbtypes.Schema.
type yamlSchema struct {
	Tables         map[string]*yamlTable       `yaml:"tables,omitempty"`
	Views          map[string]*yamlTable       `yaml:"views,omitempty"`
	Functions      map[string]*yamlFunction    `yaml:"functions,omitempty"`
	Enums          map[string][]string         `yaml:"enums,omitempty"`
	CompositeTypes map[string][]*yamlAttribute `yaml:"composite_types,omitempty"`
}

// yamlTable is the YAML representation of dbtypes.Table.
// Columns are a sequence so declaration order survives a round trip.
type yamlTable struct {
	Columns       []*yamlColumn       `yaml:"columns"`
	Relationships []*yamlRelationship `yaml:"relationships,omitempty"`
}

type yamlColumn struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Nullable   bool   `yaml:"nullable,omitempty"`
	HasDefault bool   `yaml:"has_default,omitempty"`
	Identity   bool   `yaml:"identity,omitempty"`
	Default    string `yaml:"default,omitempty"`
}

type yamlRelationship struct {
	ForeignKeyName     string   `yaml:"foreign_key_name"`
	Columns            []string `yaml:"columns,flow"`
	IsOneToOne         bool     `yaml:"is_one_to_one"`
	ReferencedSchema   string   `yaml:"referenced_schema,omitempty"`
	ReferencedRelation string   `yaml:"referenced_relation"`
	ReferencedColumns  []string `yaml:"referenced_columns,flow"`
}

type yamlFunction struct {
	Args    []*yamlAttribute `yaml:"args,omitempty"`
	Returns string           `yaml:"returns"`
}

type yamlAttribute struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable,omitempty"`
}

// LoadSchema loads a schema inventory from a YAML file.
// The path can be absolute or relative to baseDir.
func LoadSchema(path, baseDir string) (*dbtypes.Database, error) {
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	db, err := ParseSchema(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return db, nil
}

// ParseSchema decodes a schema inventory document.
func ParseSchema(data []byte) (*dbtypes.Database, error) {
	var yd yamlDatabase
	if err := yaml.Unmarshal(data, &yd); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	return yamlToDatabase(&yd)
}

// yamlToDatabase converts the YAML representation to a registry.
func yamlToDatabase(yd *yamlDatabase) (*dbtypes.Database, error) {
	db := &dbtypes.Database{Schemas: make(map[string]*dbtypes.Schema, len(yd.Schemas))}

	for schemaName, ys := range yd.Schemas {
		schema := &dbtypes.Schema{
			Name:           schemaName,
			Tables:         make(map[string]*dbtypes.Table),
			Views:          make(map[string]*dbtypes.Table),
			Functions:      make(map[string]*dbtypes.Function),
			Enums:          make(map[string]*dbtypes.Enum),
			CompositeTypes: make(map[string]*dbtypes.CompositeType),
		}

		if ys == nil {
			db.Schemas[schemaName] = schema
			continue
		}

		for name, yt := range ys.Tables {
			table, err := yamlToTable(name, yt)
			if err != nil {
				return nil, fmt.Errorf("schema %s: %w", schemaName, err)
			}

			schema.Tables[name] = table
		}

		for name, yt := range ys.Views {
			view, err := yamlToTable(name, yt)
			if err != nil {
				return nil, fmt.Errorf("schema %s: view: %w", schemaName, err)
			}

			schema.Views[name] = view
		}

		for name, yf := range ys.Functions {
			fn := &dbtypes.Function{Name: name}
			if yf != nil {
				args, err := yamlToAttributes(yf.Args)
				if err != nil {
					return nil, fmt.Errorf("schema %s, function %s: %w", schemaName, name, err)
				}

				ret, err := dbtypes.ParseType(yf.Returns)
				if err != nil {
					return nil, fmt.Errorf("schema %s, function %s: returns: %w", schemaName, name, err)
				}

				fn.Args, fn.Returns = args, ret
			}

			schema.Functions[name] = fn
		}

		for name, values := range ys.Enums {
			schema.Enums[name] = &dbtypes.Enum{Name: name, Values: values}
		}

		for name, yattrs := range ys.CompositeTypes {
			attrs, err := yamlToAttributes(yattrs)
			if err != nil {
				return nil, fmt.Errorf("schema %s, composite type %s: %w", schemaName, name, err)
			}

			schema.CompositeTypes[name] = &dbtypes.CompositeType{Name: name, Attributes: attrs}
		}

		db.Schemas[schemaName] = schema
	}

	return db, nil
}

func yamlToTable(name string, yt *yamlTable) (*dbtypes.Table, error) {
	table := &dbtypes.Table{Name: name}
	if yt == nil {
		return table, nil
	}

	for _, yc := range yt.Columns {
		typ, err := dbtypes.ParseType(yc.Type)
		if err != nil {
			return nil, fmt.Errorf("table %s, column %s: %w", name, yc.Name, err)
		}

		table.Columns = append(table.Columns, &dbtypes.Column{
			Name:       yc.Name,
			Type:       typ,
			Nullable:   yc.Nullable,
			HasDefault: yc.HasDefault || yc.Default != "",
			Identity:   yc.Identity,
			Default:    yc.Default,
		})
	}

	for _, yr := range yt.Relationships {
		table.Relationships = append(table.Relationships, &dbtypes.Relationship{
			ForeignKeyName:     yr.ForeignKeyName,
			Columns:            yr.Columns,
			IsOneToOne:         yr.IsOneToOne,
			ReferencedRelation: yr.ReferencedRelation,
			ReferencedColumns:  yr.ReferencedColumns,
			ReferencedSchema:   yr.ReferencedSchema,
		})
	}

	return table, nil
}

func yamlToAttributes(yattrs []*yamlAttribute) ([]*dbtypes.Attribute, error) {
	attrs := make([]*dbtypes.Attribute, 0, len(yattrs))

	for _, ya := range yattrs {
		typ, err := dbtypes.ParseType(ya.Type)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", ya.Name, err)
		}

		attrs = append(attrs, &dbtypes.Attribute{Name: ya.Name, Type: typ, Nullable: ya.Nullable})
	}

	return attrs, nil
}

// WriteSchema writes a registry as YAML to the given writer.
// Map keys are emitted sorted by yaml.v3; columns keep declaration order.
func WriteSchema(w io.Writer, db *dbtypes.Database) (err error) {
	if _, err := fmt.Fprintln(w, "# Schema inventory consumed by dbtypes generate."); err != nil {
		return err
	}

	yd := &yamlDatabase{Schemas: make(map[string]*yamlSchema)}

	for _, schemaName := range db.SchemaNames() {
		schema := db.Schemas[schemaName]
		ys := &yamlSchema{}

		if len(schema.Tables) > 0 {
			ys.Tables = make(map[string]*yamlTable)
			for name, t := range schema.Tables {
				ys.Tables[name] = tableToYAML(t)
			}
		}

		if len(schema.Views) > 0 {
			ys.Views = make(map[string]*yamlTable)
			for name, t := range schema.Views {
				ys.Views[name] = tableToYAML(t)
			}
		}

		if len(schema.Functions) > 0 {
			ys.Functions = make(map[string]*yamlFunction)
			for name, fn := range schema.Functions {
				ys.Functions[name] = &yamlFunction{Args: attributesToYAML(fn.Args), Returns: fn.Returns.String()}
			}
		}

		if len(schema.Enums) > 0 {
			ys.Enums = make(map[string][]string)
			for name, e := range schema.Enums {
				ys.Enums[name] = e.Values
			}
		}

		if len(schema.CompositeTypes) > 0 {
			ys.CompositeTypes = make(map[string][]*yamlAttribute)
			for name, ct := range schema.CompositeTypes {
				ys.CompositeTypes[name] = attributesToYAML(ct.Attributes)
			}
		}

		yd.Schemas[schemaName] = ys
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	defer func() {
		if cerr := encoder.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return encoder.Encode(yd)
}

func tableToYAML(t *dbtypes.Table) *yamlTable {
	yt := &yamlTable{Columns: make([]*yamlColumn, 0, len(t.Columns))}

	for _, c := range t.Columns {
		yt.Columns = append(yt.Columns, &yamlColumn{
			Name:       c.Name,
			Type:       c.Type.String(),
			Nullable:   c.Nullable,
			HasDefault: c.HasDefault && c.Default == "",
			Identity:   c.Identity,
			Default:    c.Default,
		})
	}

	for _, r := range t.Relationships {
		yt.Relationships = append(yt.Relationships, &yamlRelationship{
			ForeignKeyName:     r.ForeignKeyName,
			Columns:            r.Columns,
			IsOneToOne:         r.IsOneToOne,
			ReferencedSchema:   r.ReferencedSchema,
			ReferencedRelation: r.ReferencedRelation,
			ReferencedColumns:  r.ReferencedColumns,
		})
	}

	return yt
}

func attributesToYAML(attrs []*dbtypes.Attribute) []*yamlAttribute {
	out := make([]*yamlAttribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, &yamlAttribute{Name: a.Name, Type: a.Type.String(), Nullable: a.Nullable})
	}

	return out
}
