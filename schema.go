package dbtypes

import (
	"slices"
	"sort"
)

// Database is the registry of every schema known to a project.
// Generated packages declare it as a literal; it is never mutated after that.
type Database struct {
	Schemas map[string]*Schema
}

// Schema groups the relations and types declared under one schema name.
type Schema struct {
	Name           string
	Tables         map[string]*Table
	Views          map[string]*Table
	Functions      map[string]*Function
	Enums          map[string]*Enum
	CompositeTypes map[string]*CompositeType
}

// Table describes a table or view: its columns in declaration order and the
// foreign keys it declares.
type Table struct {
	Name          string
	Columns       []*Column
	Relationships []*Relationship
}

// Column is a single column of a table.
type Column struct {
	Name string
	Type *Type

	// Nullable columns read as NULL-able values.
	Nullable bool

	// HasDefault is set when the server fills the column on insert.
	HasDefault bool

	// Identity marks generated values (serial, identity columns).
	Identity bool

	// Default is the default expression, kept for documentation only.
	Default string
}

// Relationship is a foreign key from a table's columns to another relation.
type Relationship struct {
	ForeignKeyName     string
	Columns            []string
	IsOneToOne         bool
	ReferencedRelation string
	ReferencedColumns  []string

	// ReferencedSchema is set when the referenced relation lives in another
	// schema than the declaring table.
	ReferencedSchema string
}

// TargetSchema returns the schema holding the referenced relation, given the
// schema of the declaring table.
func (r *Relationship) TargetSchema(owner string) string {
	if r.ReferencedSchema != "" {
		return r.ReferencedSchema
	}

	return owner
}

// Enum is a user-defined enumerated type.
type Enum struct {
	Name   string
	Values []string
}

// CompositeType is a user-defined record type.
type CompositeType struct {
	Name       string
	Attributes []*Attribute
}

// Function is a stored function signature.
type Function struct {
	Name    string
	Args    []*Attribute
	Returns *Type
}

// Attribute is a named, typed member of a composite type or function argument list.
type Attribute struct {
	Name     string
	Type     *Type
	Nullable bool
}

// SourcedRelationship pairs a relationship with the table declaring it.
type SourcedRelationship struct {
	Schema string
	Table  string
	*Relationship
}

// Schema returns the named schema.
func (d *Database) Schema(name string) (*Schema, bool) {
	if d == nil {
		return nil, false
	}

	s, ok := d.Schemas[name]

	return s, ok
}

// SchemaNames returns all schema names in sorted order.
func (d *Database) SchemaNames() []string {
	if d == nil {
		return nil
	}

	return sortedKeys(d.Schemas)
}

// Relationships flattens every relationship in every schema, ordered by
// schema, table and declaration order.
func (d *Database) Relationships() []SourcedRelationship {
	var out []SourcedRelationship

	for _, schemaName := range d.SchemaNames() {
		s := d.Schemas[schemaName]
		for _, tableName := range s.TableNames() {
			for _, rel := range s.Tables[tableName].Relationships {
				out = append(out, SourcedRelationship{
					Schema:       schemaName,
					Table:        tableName,
					Relationship: rel,
				})
			}
		}
	}

	return out
}

// ReferencedTable resolves the relation a relationship declared in schema
// owner points at.
func (d *Database) ReferencedTable(owner string, r *Relationship) (*Table, bool) {
	s, ok := d.Schema(r.TargetSchema(owner))
	if !ok {
		return nil, false
	}

	return s.Table(r.ReferencedRelation)
}

// Table returns a table by name, falling back to views.
func (s *Schema) Table(name string) (*Table, bool) {
	if s == nil {
		return nil, false
	}

	if t, ok := s.Tables[name]; ok {
		return t, true
	}

	t, ok := s.Views[name]

	return t, ok
}

// IsView reports whether name refers to a view rather than a table.
func (s *Schema) IsView(name string) bool {
	if s == nil {
		return false
	}

	_, isTable := s.Tables[name]
	_, isView := s.Views[name]

	return isView && !isTable
}

// TableNames returns table names in sorted order.
func (s *Schema) TableNames() []string { return sortedKeys(s.Tables) }

// ViewNames returns view names in sorted order.
func (s *Schema) ViewNames() []string { return sortedKeys(s.Views) }

// FunctionNames returns function names in sorted order.
func (s *Schema) FunctionNames() []string { return sortedKeys(s.Functions) }

// EnumNames returns enum names in sorted order.
func (s *Schema) EnumNames() []string { return sortedKeys(s.Enums) }

// CompositeTypeNames returns composite type names in sorted order.
func (s *Schema) CompositeTypeNames() []string { return sortedKeys(s.CompositeTypes) }

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	if t == nil {
		return nil, false
	}

	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}

	return nil, false
}

// ColumnNames returns column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}

	return names
}

// HasColumns reports whether every name is a column of t.
func (t *Table) HasColumns(names ...string) bool {
	cols := t.ColumnNames()
	for _, n := range names {
		if !slices.Contains(cols, n) {
			return false
		}
	}

	return true
}

// Defaultable reports whether the column may be omitted on insert.
// NULL is the implicit default of every nullable column.
func (c *Column) Defaultable() bool {
	return c.HasDefault || c.Identity || c.Nullable
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
