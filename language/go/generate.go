package golang

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrEmptyDatabase is returned when there is nothing to generate.
	ErrEmptyDatabase = errors.New("golang: registry has no schemas")

	// ErrNameCollision is returned when two entries map to one Go identifier.
	ErrNameCollision = errors.New("golang: name collision")
)

// generator holds state during code generation.
type generator struct {
	ctx *Context
	log *zap.Logger
}

// Generate produces one file per schema plus the registry file.
func (g *generator) Generate() (map[string][]byte, error) {
	db := g.ctx.Database

	schemaNames := db.SchemaNames()
	if len(schemaNames) == 0 {
		return nil, ErrEmptyDatabase
	}

	if err := checkCollisions(db); err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(schemaNames)+1)

	for _, name := range schemaNames {
		fileName := name + dbtypes.GeneratedFileSuffix
		if g.ctx.FileName != "" && len(schemaNames) == 1 {
			fileName = g.ctx.FileName
		}

		if fileName == dbtypes.RegistryFileName {
			return nil, fmt.Errorf("golang: file name %s is reserved for the registry", fileName)
		}

		src, err := g.format(fileName, g.schemaFile(db.Schemas[name]))
		if err != nil {
			return nil, err
		}

		files[fileName] = src

		g.log.Debug("generated schema file", zap.String("schema", name), zap.String("file", fileName))
	}

	src, err := g.format(dbtypes.RegistryFileName, g.registryFile(db))
	if err != nil {
		return nil, err
	}

	files[dbtypes.RegistryFileName] = src

	return files, nil
}

func (g *generator) format(fileName string, src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", fileName, err)
	}

	return out, nil
}

// writer accumulates Go source.
type writer struct {
	bytes.Buffer
}

func (w *writer) line(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
	w.WriteByte('\n')
}

func (g *generator) header(w *writer, usesJSON bool) {
	w.line("%s", dbtypes.GeneratedHeader)
	w.line("")
	w.line("package %s", g.ctx.PackageName)
	w.line("")

	if usesJSON {
		w.line("import (")
		w.line("\t%q", "encoding/json")
		w.line("")
		w.line("\tdbtypes %q", dbtypes.ImportPath)
		w.line(")")
	} else {
		w.line("import dbtypes %q", dbtypes.ImportPath)
	}

	w.line("")
}

// schemaFile renders the types and registry entry of one schema.
func (g *generator) schemaFile(schema *dbtypes.Schema) []byte {
	var body writer

	s := &schemaScope{g: g, schema: schema}

	for _, name := range schema.EnumNames() {
		s.enum(&body, schema.Enums[name])
	}

	for _, name := range schema.CompositeTypeNames() {
		s.composite(&body, schema.CompositeTypes[name])
	}

	for _, name := range schema.TableNames() {
		s.table(&body, schema.Tables[name])
	}

	for _, name := range schema.ViewNames() {
		s.view(&body, schema.Views[name])
	}

	s.registry(&body)

	var w writer

	g.header(&w, s.usesJSON)
	w.Write(body.Bytes())

	return w.Bytes()
}

// registryFile renders Database and Tables.
func (g *generator) registryFile(db *dbtypes.Database) []byte {
	var w writer

	g.header(&w, false)

	w.line("// Database is the registry of every schema in this package.")
	w.line("var Database = &dbtypes.Database{")
	w.line("Schemas: map[string]*dbtypes.Schema{")

	for _, name := range db.SchemaNames() {
		w.line("%q: %s,", name, schemaVar(name))
	}

	w.line("},")
	w.line("}")
	w.line("")
	w.line("// Tables returns a handle for every table, ordered by schema and name.")
	w.line("func Tables() []dbtypes.TableHandle {")
	w.line("return []dbtypes.TableHandle{")

	for _, schemaName := range db.SchemaNames() {
		for _, name := range db.Schemas[schemaName].TableNames() {
			w.line("%s,", typeIdent(schemaName, name, schemaName == dbtypes.DefaultSchema))
		}
	}

	w.line("}")
	w.line("}")

	return w.Bytes()
}

func schemaVar(name string) string {
	id := []rune(GoName(name))
	if len(id) > 1 && strings.ToUpper(string(id)) == string(id) {
		return strings.ToLower(string(id)) + "Schema"
	}

	id[0] = []rune(strings.ToLower(string(id[0])))[0]

	return string(id) + "Schema"
}

// schemaScope renders declarations belonging to one schema.
type schemaScope struct {
	g        *generator
	schema   *dbtypes.Schema
	usesJSON bool
}

func (s *schemaScope) ident(name string) string {
	return typeIdent(s.schema.Name, name, s.schema.Name == dbtypes.DefaultSchema)
}

func (s *schemaScope) qualified(name string) string {
	return s.schema.Name + "." + name
}

// goType maps a column type to a Go type. Nullable scalars become pointers;
// slices and raw JSON already have a null value.
func (s *schemaScope) goType(t *dbtypes.Type, nullable bool) string {
	var base string

	switch t.Kind {
	case dbtypes.TypeKindText:
		base = "string"
	case dbtypes.TypeKindInteger:
		base = "int64"
	case dbtypes.TypeKindNumber:
		base = "float64"
	case dbtypes.TypeKindBoolean:
		base = "bool"
	case dbtypes.TypeKindJSON:
		s.usesJSON = true

		return "json.RawMessage"
	case dbtypes.TypeKindArray:
		return "[]" + s.goType(t.Elem, false)
	case dbtypes.TypeKindNamed:
		_, isEnum := s.schema.Enums[t.Name]
		_, isComposite := s.schema.CompositeTypes[t.Name]

		if !isEnum && !isComposite {
			s.g.log.Warn("undeclared type, using any",
				zap.String("schema", s.schema.Name), zap.String("type", t.Name))

			return "any"
		}

		base = s.ident(t.Name)
	default:
		return "any"
	}

	if nullable {
		return "*" + base
	}

	return base
}

func (s *schemaScope) enum(w *writer, e *dbtypes.Enum) {
	id := s.ident(e.Name)

	w.line("// %s is the %s enum.", id, s.qualified(e.Name))
	w.line("type %s string", id)
	w.line("")
	w.line("// %s values.", id)
	w.line("const (")

	consts := make([]string, len(e.Values))
	for i, v := range e.Values {
		consts[i] = id + GoName(v)
		w.line("%s %s = %q", consts[i], id, v)
	}

	w.line(")")
	w.line("")
	w.line("// Values returns every %s in declaration order.", id)
	w.line("func (%s) Values() []%s {", id, id)
	w.line("return []%s{%s}", id, strings.Join(consts, ", "))
	w.line("}")
	w.line("")
}

func (s *schemaScope) composite(w *writer, c *dbtypes.CompositeType) {
	id := s.ident(c.Name)

	w.line("// %s is the %s composite type.", id, s.qualified(c.Name))
	w.line("type %s struct {", id)

	for _, f := range c.Shape().Fields {
		w.line("%s %s `json:%q`", GoName(f.Name), s.goType(f.Type, f.Nullable), f.Name)
	}

	w.line("}")
	w.line("")
}

// structFields renders the fields of a shape. Optional fields are wrapped in
// dbtypes.Opt and omitted from JSON when absent.
func (s *schemaScope) structFields(w *writer, shape dbtypes.Shape) {
	for _, f := range shape.Fields {
		typ := s.goType(f.Type, f.Nullable)
		jsonTag := f.Name

		if f.Optional {
			typ = "dbtypes.Opt[" + typ + "]"
			jsonTag += ",omitzero"
		}

		w.line("%s %s `db:%q json:%q`", GoName(f.Name), typ, f.Name, jsonTag)
	}
}

func (s *schemaScope) table(w *writer, t *dbtypes.Table) {
	id := s.ident(t.Name)
	q := s.qualified(t.Name)

	w.line("// %sRow is a row of %s.", id, q)
	w.line("type %sRow struct {", id)
	s.structFields(w, t.Row())
	w.line("}")
	w.line("")
	w.line("// %sInsert is the record accepted when inserting into %s.", id, q)
	w.line("type %sInsert struct {", id)
	s.structFields(w, t.Insert())
	w.line("}")
	w.line("")
	w.line("// %sUpdate is the patch accepted when updating %s.", id, q)
	w.line("type %sUpdate struct {", id)
	s.structFields(w, t.Update())
	w.line("}")
	w.line("")
	w.line("// %s is the typed handle for %s.", id, q)
	w.line("var %s = dbtypes.TableRef[%sRow, %sInsert, %sUpdate]{Schema: %q, Name: %q}", id, id, id, id, s.schema.Name, t.Name)
	w.line("")
}

func (s *schemaScope) view(w *writer, t *dbtypes.Table) {
	id := s.ident(t.Name)

	w.line("// %sRow is a row of the %s view.", id, s.qualified(t.Name))
	w.line("type %sRow struct {", id)
	s.structFields(w, t.Row())
	w.line("}")
	w.line("")
}

// registry renders the schema's literal registry entry.
func (s *schemaScope) registry(w *writer) {
	schema := s.schema

	w.line("// %s is the registry entry for schema %s.", schemaVar(schema.Name), schema.Name)
	w.line("var %s = &dbtypes.Schema{", schemaVar(schema.Name))
	w.line("Name: %q,", schema.Name)

	relations := func(key string, names []string, tables map[string]*dbtypes.Table) {
		if len(names) == 0 {
			w.line("%s: map[string]*dbtypes.Table{},", key)
			return
		}

		w.line("%s: map[string]*dbtypes.Table{", key)

		for _, name := range names {
			tableLiteral(w, tables[name])
		}

		w.line("},")
	}

	relations("Tables", schema.TableNames(), schema.Tables)
	relations("Views", schema.ViewNames(), schema.Views)

	if names := schema.FunctionNames(); len(names) == 0 {
		w.line("Functions: map[string]*dbtypes.Function{},")
	} else {
		w.line("Functions: map[string]*dbtypes.Function{")

		for _, name := range names {
			fn := schema.Functions[name]

			ret := ""
			if fn.Returns != nil {
				ret = ", Returns: " + typeExpr(fn.Returns)
			}

			w.line("%q: {Name: %q, Args: %s%s},", name, fn.Name, attributesExpr(fn.Args), ret)
		}

		w.line("},")
	}

	if names := schema.EnumNames(); len(names) == 0 {
		w.line("Enums: map[string]*dbtypes.Enum{},")
	} else {
		w.line("Enums: map[string]*dbtypes.Enum{")

		for _, name := range names {
			e := schema.Enums[name]
			w.line("%q: {Name: %q, Values: %s},", name, e.Name, stringsExpr(e.Values))
		}

		w.line("},")
	}

	if names := schema.CompositeTypeNames(); len(names) == 0 {
		w.line("CompositeTypes: map[string]*dbtypes.CompositeType{},")
	} else {
		w.line("CompositeTypes: map[string]*dbtypes.CompositeType{")

		for _, name := range names {
			c := schema.CompositeTypes[name]
			w.line("%q: {Name: %q, Attributes: %s},", name, c.Name, attributesExpr(c.Attributes))
		}

		w.line("},")
	}

	w.line("}")
}

func tableLiteral(w *writer, t *dbtypes.Table) {
	w.line("%q: {", t.Name)
	w.line("Name: %q,", t.Name)

	if len(t.Columns) > 0 {
		w.line("Columns: []*dbtypes.Column{")

		for _, c := range t.Columns {
			w.line("%s,", columnExpr(c))
		}

		w.line("},")
	}

	if len(t.Relationships) > 0 {
		w.line("Relationships: []*dbtypes.Relationship{")

		for _, r := range t.Relationships {
			w.line("{")
			w.line("ForeignKeyName: %q,", r.ForeignKeyName)
			w.line("Columns: %s,", stringsExpr(r.Columns))
			w.line("IsOneToOne: %t,", r.IsOneToOne)
			w.line("ReferencedRelation: %q,", r.ReferencedRelation)
			w.line("ReferencedColumns: %s,", stringsExpr(r.ReferencedColumns))

			if r.ReferencedSchema != "" {
				w.line("ReferencedSchema: %q,", r.ReferencedSchema)
			}

			w.line("},")
		}

		w.line("},")
	}

	w.line("},")
}

func columnExpr(c *dbtypes.Column) string {
	parts := []string{"Name: " + strconv.Quote(c.Name), "Type: " + typeExpr(c.Type)}

	if c.Nullable {
		parts = append(parts, "Nullable: true")
	}

	if c.HasDefault {
		parts = append(parts, "HasDefault: true")
	}

	if c.Identity {
		parts = append(parts, "Identity: true")
	}

	if c.Default != "" {
		parts = append(parts, "Default: "+strconv.Quote(c.Default))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// typeExpr renders a Go expression constructing t.
func typeExpr(t *dbtypes.Type) string {
	if t == nil {
		return "nil"
	}

	switch t.Kind {
	case dbtypes.TypeKindText:
		return "dbtypes.TypeText"
	case dbtypes.TypeKindInteger:
		return "dbtypes.TypeInteger"
	case dbtypes.TypeKindNumber:
		return "dbtypes.TypeNumber"
	case dbtypes.TypeKindBoolean:
		return "dbtypes.TypeBoolean"
	case dbtypes.TypeKindJSON:
		return "dbtypes.TypeJSON"
	case dbtypes.TypeKindArray:
		return "dbtypes.ArrayOf(" + typeExpr(t.Elem) + ")"
	default:
		return "dbtypes.NamedType(" + strconv.Quote(t.Name) + ")"
	}
}

func attributesExpr(attrs []*dbtypes.Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		p := "{Name: " + strconv.Quote(a.Name) + ", Type: " + typeExpr(a.Type)
		if a.Nullable {
			p += ", Nullable: true"
		}

		parts[i] = p + "}"
	}

	return "[]*dbtypes.Attribute{" + strings.Join(parts, ", ") + "}"
}

func stringsExpr(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}

	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

// checkCollisions reports two registry entries that map to one Go identifier.
func checkCollisions(db *dbtypes.Database) error {
	owners := make(map[string]string)

	for _, schemaName := range db.SchemaNames() {
		schema := db.Schemas[schemaName]
		isDefault := schemaName == dbtypes.DefaultSchema

		claimID := func(id, owner string) error {
			if prev, ok := owners[id]; ok {
				return fmt.Errorf("%w: %s and %s both generate %s", ErrNameCollision, prev, owner, id)
			}

			owners[id] = owner

			return nil
		}

		claim := func(kind, name string, suffixes ...string) error {
			id := typeIdent(schemaName, name, isDefault)

			for _, sfx := range suffixes {
				if err := claimID(id+sfx, kind+" "+schemaName+"."+name); err != nil {
					return err
				}
			}

			return nil
		}

		for _, name := range schema.EnumNames() {
			if err := claim("enum", name, ""); err != nil {
				return err
			}
		}

		// Enum constants share the package scope with the types.
		for _, name := range schema.EnumNames() {
			id := typeIdent(schemaName, name, isDefault)

			for _, v := range schema.Enums[name].Values {
				owner := fmt.Sprintf("enum %s.%s value %q", schemaName, name, v)
				if err := claimID(id+GoName(v), owner); err != nil {
					return err
				}
			}
		}

		for _, name := range schema.CompositeTypeNames() {
			if err := claim("composite type", name, ""); err != nil {
				return err
			}
		}

		for _, name := range schema.TableNames() {
			if err := claim("table", name, "", "Row", "Insert", "Update"); err != nil {
				return err
			}
		}

		for _, name := range schema.ViewNames() {
			if err := claim("view", name, "Row"); err != nil {
				return err
			}
		}
	}

	return nil
}
