// Package sql imports PostgreSQL DDL into a dbtypes registry.
package sql

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	sqlgrammar "github.com/nmsdosti/newquiz4-sub001/dialects/sql/grammar"
)

// DialectName is the registered name of the PostgreSQL importer.
const DialectName = dbtypes.DatabasePostgres

//nolint:gochecknoinits // Dialect self-registration pattern
func init() {
	dbtypes.RegisterDialect(NewDialect())
}

// Sentinel errors.
var (
	// ErrParse is returned when the DDL does not match the supported grammar.
	ErrParse = errors.New("sql: parse error")

	// ErrDuplicate is returned when a table or type is created twice.
	ErrDuplicate = errors.New("sql: duplicate definition")
)

// Dialect implements dbtypes.Dialect for PostgreSQL DDL.
type Dialect struct{}

// NewDialect creates the PostgreSQL importer.
func NewDialect() *Dialect {
	return &Dialect{}
}

// Name returns "postgres".
func (d *Dialect) Name() string {
	return DialectName
}

// Import parses DDL source into a registry.
func (d *Dialect) Import(src []byte) (*dbtypes.Database, error) {
	return Import(src)
}

// Import parses CREATE SCHEMA, CREATE TABLE and CREATE TYPE statements.
// Unqualified names go to the public schema. Foreign keys without a
// constraint name are named <table>_<columns>_fkey, and a foreign key whose
// columns are covered by a primary key or unique constraint is one-to-one.
func Import(src []byte) (*dbtypes.Database, error) {
	script, err := sqlgrammar.ParseBytes(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	imp := &importer{
		src:    src,
		db:     &dbtypes.Database{Schemas: make(map[string]*dbtypes.Schema)},
		unique: make(map[*dbtypes.Table][][]string),
	}

	for _, stmt := range script.Statements {
		if err := imp.statement(stmt); err != nil {
			return nil, err
		}
	}

	imp.resolve()

	return imp.db, nil
}

type pendingRef struct {
	schema string
	table  *dbtypes.Table
	rel    *dbtypes.Relationship
}

type importer struct {
	src []byte
	db  *dbtypes.Database

	// unique holds the primary key (first) and unique column sets per table.
	unique map[*dbtypes.Table][][]string
	refs   []pendingRef
}

func (imp *importer) schema(name string) *dbtypes.Schema {
	if name == "" {
		name = dbtypes.DefaultSchema
	}

	if s, ok := imp.db.Schemas[name]; ok {
		return s
	}

	s := &dbtypes.Schema{
		Name:           name,
		Tables:         make(map[string]*dbtypes.Table),
		Views:          make(map[string]*dbtypes.Table),
		Functions:      make(map[string]*dbtypes.Function),
		Enums:          make(map[string]*dbtypes.Enum),
		CompositeTypes: make(map[string]*dbtypes.CompositeType),
	}
	imp.db.Schemas[name] = s

	return s
}

func (imp *importer) statement(stmt *sqlgrammar.Statement) error {
	c := stmt.Create

	switch {
	case c.Schema != nil:
		imp.schema(ident(c.Schema.Name))

		return nil
	case c.Table != nil:
		return imp.createTable(c.Table)
	case c.Type != nil:
		return imp.createType(c.Type)
	}

	return nil
}

func (imp *importer) createTable(ct *sqlgrammar.CreateTable) error {
	schema := imp.schema(ident(ct.Name.Schema()))
	name := ident(ct.Name.Base())

	if _, exists := schema.Tables[name]; exists {
		if ct.IfNotExists {
			return nil
		}

		return fmt.Errorf("%w: table %s.%s at %s", ErrDuplicate, schema.Name, name, ct.Pos)
	}

	table := &dbtypes.Table{Name: name}
	notNull := map[string]bool{}

	var primaryKey []string

	var uniques [][]string

	for _, el := range ct.Elements {
		if el.Column != nil {
			col, pk, unique := imp.column(schema.Name, table, el.Column)
			table.Columns = append(table.Columns, col)

			if pk {
				primaryKey = []string{col.Name}
			}

			if unique {
				uniques = append(uniques, []string{col.Name})
			}

			continue
		}

		body := el.Constraint.Body

		switch {
		case body.PrimaryKey != nil:
			primaryKey = identList(body.PrimaryKey)
			for _, c := range primaryKey {
				notNull[c] = true
			}
		case body.Unique != nil:
			uniques = append(uniques, identList(body.Unique))
		case body.ForeignKey != nil:
			cols := identList(body.ForeignKey.Columns)

			fkName := ident(el.Constraint.Name)
			if fkName == "" {
				fkName = table.Name + "_" + strings.Join(cols, "_") + "_fkey"
			}

			imp.reference(schema.Name, table, fkName, cols, body.ForeignKey.Reference)
		}
	}

	for _, col := range table.Columns {
		if notNull[col.Name] {
			col.Nullable = false
		}
	}

	imp.unique[table] = append([][]string{primaryKey}, uniques...)
	schema.Tables[name] = table

	return nil
}

// column converts a column definition. Inline REFERENCES constraints are
// queued on the table.
func (imp *importer) column(schemaName string, table *dbtypes.Table, cd *sqlgrammar.ColumnDef) (col *dbtypes.Column, pk, unique bool) {
	typ, identity := MapType(typeName(cd.Type), cd.Type.Array)

	col = &dbtypes.Column{
		Name:     ident(cd.Name),
		Type:     typ,
		Nullable: true,
		Identity: identity,
	}

	for _, cc := range cd.Constraints {
		k := cc.Kind

		switch {
		case k.NotNull:
			col.Nullable = false
		case k.Null:
			col.Nullable = true
		case k.PrimaryKey:
			col.Nullable = false
			pk = true
		case k.Unique:
			unique = true
		case k.Default != nil:
			col.HasDefault = true
			col.Default = k.Default.Text(imp.src)
		case k.Identity:
			col.Identity = true
			col.Nullable = false
		case k.References != nil:
			fkName := ident(cc.Name)
			if fkName == "" {
				fkName = table.Name + "_" + col.Name + "_fkey"
			}

			imp.reference(schemaName, table, fkName, []string{col.Name}, k.References)
		}
	}

	if col.Identity {
		col.Nullable = false
	}

	return col, pk, unique
}

func (imp *importer) reference(schemaName string, table *dbtypes.Table, fkName string, cols []string, ref *sqlgrammar.Reference) {
	rel := &dbtypes.Relationship{
		ForeignKeyName:     fkName,
		Columns:            cols,
		ReferencedRelation: ident(ref.Table.Base()),
	}

	if ref.Columns != nil {
		rel.ReferencedColumns = identList(ref.Columns)
	}

	target := ident(ref.Table.Schema())
	if target == "" {
		target = schemaName
	} else if target != schemaName {
		rel.ReferencedSchema = target
	}

	table.Relationships = append(table.Relationships, rel)

	imp.refs = append(imp.refs, pendingRef{schema: target, table: table, rel: rel})
}

// resolve fills referenced columns left implicit (the target's primary key)
// and derives one-to-one from the source table's unique column sets.
func (imp *importer) resolve() {
	for _, p := range imp.refs {
		if p.rel.ReferencedColumns == nil {
			p.rel.ReferencedColumns = imp.primaryKey(p.schema, p.rel.ReferencedRelation)
		}

		for _, set := range imp.unique[p.table] {
			if len(set) > 0 && sameSet(set, p.rel.Columns) {
				p.rel.IsOneToOne = true
				break
			}
		}
	}
}

func (imp *importer) primaryKey(schemaName, tableName string) []string {
	if s, ok := imp.db.Schemas[schemaName]; ok {
		if t, ok := s.Tables[tableName]; ok {
			if sets := imp.unique[t]; len(sets) > 0 && len(sets[0]) > 0 {
				return slices.Clone(sets[0])
			}
		}
	}

	return []string{"id"}
}

func (imp *importer) createType(ct *sqlgrammar.CreateType) error {
	schema := imp.schema(ident(ct.Name.Schema()))
	name := ident(ct.Name.Base())

	_, isEnum := schema.Enums[name]
	_, isComposite := schema.CompositeTypes[name]

	if isEnum || isComposite {
		return fmt.Errorf("%w: type %s.%s at %s", ErrDuplicate, schema.Name, name, ct.Pos)
	}

	if ct.Body.Enum != nil {
		values := make([]string, len(ct.Body.Enum.Values))
		for i, v := range ct.Body.Enum.Values {
			values[i] = stringLiteral(v)
		}

		schema.Enums[name] = &dbtypes.Enum{Name: name, Values: values}

		return nil
	}

	attrs := make([]*dbtypes.Attribute, len(ct.Body.Attributes))
	for i, a := range ct.Body.Attributes {
		typ, _ := MapType(typeName(a.Type), a.Type.Array)
		attrs[i] = &dbtypes.Attribute{Name: ident(a.Name), Type: typ, Nullable: true}
	}

	schema.CompositeTypes[name] = &dbtypes.CompositeType{Name: name, Attributes: attrs}

	return nil
}

func identList(l *sqlgrammar.ColumnList) []string {
	out := make([]string, len(l.Names))
	for i, n := range l.Names {
		out[i] = ident(n)
	}

	return out
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for _, x := range a {
		if !slices.Contains(b, x) {
			return false
		}
	}

	return true
}
