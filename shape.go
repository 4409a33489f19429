package dbtypes

// ShapeKind identifies which projection of a registry entry a Shape holds.
type ShapeKind string

// Shape kinds.
const (
	ShapeRow           ShapeKind = "row"
	ShapeInsert        ShapeKind = "insert"
	ShapeUpdate        ShapeKind = "update"
	ShapeEnum          ShapeKind = "enum"
	ShapeCompositeType ShapeKind = "composite_type"
)

// ShapeKinds lists every kind in display order.
var ShapeKinds = []ShapeKind{ShapeRow, ShapeInsert, ShapeUpdate, ShapeEnum, ShapeCompositeType}

// Field is one member of a shape.
type Field struct {
	Name string
	Type *Type

	// Nullable fields accept NULL.
	Nullable bool

	// Optional fields may be left out of the record.
	Optional bool
}

// Shape is the field set (or value set, for enums) resolved for a selector.
// A Shape for which IsNever returns true is the no-match result.
type Shape struct {
	Kind ShapeKind

	// Schema is set by Database.Project. Shapes built directly from a Table,
	// Enum or CompositeType leave it empty, since those entries do not know
	// the schema that holds them.
	Schema string
	Name   string

	// Fields is populated for row, insert, update and composite type shapes.
	Fields []Field

	// Values is populated for enum shapes.
	Values []string

	never bool
}

// Never returns the no-match shape for sel.
func Never(kind ShapeKind, sel Selector) Shape {
	return Shape{Kind: kind, Schema: sel.Schema, Name: sel.Name, never: true}
}

// IsNever reports whether the selector did not resolve.
func (s Shape) IsNever() bool {
	return s.never
}

// Field returns the named field.
func (s Shape) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// FieldNames returns field names in declaration order.
func (s Shape) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}

// Required returns the names of mandatory fields.
func (s Shape) Required() []string {
	var names []string

	for _, f := range s.Fields {
		if !f.Optional {
			names = append(names, f.Name)
		}
	}

	return names
}

// Row returns the shape of a record as read from storage: every column present.
// The shape's Schema is empty; use Database.Project for a qualified shape.
func (t *Table) Row() Shape {
	fields := make([]Field, len(t.Columns))
	for i, c := range t.Columns {
		fields[i] = Field{Name: c.Name, Type: c.Type, Nullable: c.Nullable}
	}

	return Shape{Kind: ShapeRow, Name: t.Name, Fields: fields}
}

// Insert derives the insert shape from Row: defaultable columns become optional.
func (t *Table) Insert() Shape {
	return DeriveInsert(t.Row(), func(name string) bool {
		c, ok := t.Column(name)

		return ok && c.Defaultable()
	})
}

// Update derives the update shape from Row: every field becomes optional.
func (t *Table) Update() Shape {
	return DeriveUpdate(t.Row())
}

// DeriveInsert applies the insert rule to a row shape.
func DeriveInsert(row Shape, defaultable func(name string) bool) Shape {
	fields := make([]Field, len(row.Fields))
	for i, f := range row.Fields {
		f.Optional = defaultable(f.Name)
		fields[i] = f
	}

	return Shape{Kind: ShapeInsert, Schema: row.Schema, Name: row.Name, Fields: fields}
}

// DeriveUpdate applies the update rule to a row shape.
func DeriveUpdate(row Shape) Shape {
	fields := make([]Field, len(row.Fields))
	for i, f := range row.Fields {
		f.Optional = true
		fields[i] = f
	}

	return Shape{Kind: ShapeUpdate, Schema: row.Schema, Name: row.Name, Fields: fields}
}

// Shape returns the enum's value shape.
func (e *Enum) Shape() Shape {
	return Shape{Kind: ShapeEnum, Name: e.Name, Values: append([]string(nil), e.Values...)}
}

// Shape returns the composite type's field shape.
func (c *CompositeType) Shape() Shape {
	fields := make([]Field, len(c.Attributes))
	for i, a := range c.Attributes {
		fields[i] = Field{Name: a.Name, Type: a.Type, Nullable: a.Nullable}
	}

	return Shape{Kind: ShapeCompositeType, Name: c.Name, Fields: fields}
}
