package dbtypes

import (
	"fmt"
	"strings"
)

// Selector addresses a table, view, enum or composite type, optionally
// qualified by schema. An empty Schema means DefaultSchema.
type Selector struct {
	Schema string
	Name   string
}

// Select builds a selector in the default schema.
func Select(name string) Selector {
	return Selector{Schema: DefaultSchema, Name: name}
}

// SelectIn builds a schema-qualified selector.
func SelectIn(schema, name string) Selector {
	return Selector{Schema: schema, Name: name}
}

// ParseSelector parses "name" or "schema.name".
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)

	schema, name, qualified := strings.Cut(s, ".")
	if !qualified {
		schema, name = DefaultSchema, s
	}

	if !isIdentifier(schema) || !isIdentifier(name) {
		return Selector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}

	return Selector{Schema: schema, Name: name}, nil
}

// SchemaName returns the selector's schema, applying the default.
func (s Selector) SchemaName() string {
	if s.Schema == "" {
		return DefaultSchema
	}

	return s.Schema
}

// String returns the qualified "schema.name" form.
func (s Selector) String() string {
	return s.SchemaName() + "." + s.Name
}

// Lookup resolves a selector to a table or view.
func (d *Database) Lookup(sel Selector) (*Table, bool) {
	schema, ok := d.Schema(sel.SchemaName())
	if !ok {
		return nil, false
	}

	return schema.Table(sel.Name)
}

// Project resolves sel to the requested shape kind. When the selector does not
// resolve, or names a view for an insert or update shape, Project returns the
// never-shape rather than failing.
func (d *Database) Project(sel Selector, kind ShapeKind) Shape {
	schemaName := sel.SchemaName()

	schema, ok := d.Schema(schemaName)
	if !ok {
		return Never(kind, sel)
	}

	var shape Shape

	switch kind {
	case ShapeRow, ShapeInsert, ShapeUpdate:
		table, ok := schema.Table(sel.Name)
		if !ok {
			return Never(kind, sel)
		}

		if kind != ShapeRow && schema.IsView(sel.Name) {
			return Never(kind, sel)
		}

		switch kind {
		case ShapeInsert:
			shape = table.Insert()
		case ShapeUpdate:
			shape = table.Update()
		default:
			shape = table.Row()
		}
	case ShapeEnum:
		enum, ok := schema.Enums[sel.Name]
		if !ok {
			return Never(kind, sel)
		}

		shape = enum.Shape()
	case ShapeCompositeType:
		ct, ok := schema.CompositeTypes[sel.Name]
		if !ok {
			return Never(kind, sel)
		}

		shape = ct.Shape()
	default:
		return Never(kind, sel)
	}

	shape.Schema = schemaName
	shape.Name = sel.Name

	return shape
}

// ParseShapeKind parses a shape kind name.
func ParseShapeKind(s string) (ShapeKind, error) {
	for _, k := range ShapeKinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownShapeKind, s)
}
