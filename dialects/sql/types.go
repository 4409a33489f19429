package sql

import (
	"strings"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	sqlgrammar "github.com/nmsdosti/newquiz4-sub001/dialects/sql/grammar"
)

// scalarTypes maps PostgreSQL type names to column type kinds.
var scalarTypes = map[string]dbtypes.TypeKind{
	"text":                        dbtypes.TypeKindText,
	"varchar":                     dbtypes.TypeKindText,
	"character varying":           dbtypes.TypeKindText,
	"char":                        dbtypes.TypeKindText,
	"character":                   dbtypes.TypeKindText,
	"bpchar":                      dbtypes.TypeKindText,
	"citext":                      dbtypes.TypeKindText,
	"uuid":                        dbtypes.TypeKindText,
	"date":                        dbtypes.TypeKindText,
	"time":                        dbtypes.TypeKindText,
	"timetz":                      dbtypes.TypeKindText,
	"time with time zone":         dbtypes.TypeKindText,
	"time without time zone":      dbtypes.TypeKindText,
	"timestamp":                   dbtypes.TypeKindText,
	"timestamptz":                 dbtypes.TypeKindText,
	"timestamp with time zone":    dbtypes.TypeKindText,
	"timestamp without time zone": dbtypes.TypeKindText,
	"interval":                    dbtypes.TypeKindText,
	"inet":                        dbtypes.TypeKindText,
	"bytea":                       dbtypes.TypeKindText,
	"bit":                         dbtypes.TypeKindText,
	"varbit":                      dbtypes.TypeKindText,
	"bit varying":                 dbtypes.TypeKindText,
	"smallint":                    dbtypes.TypeKindInteger,
	"integer":                     dbtypes.TypeKindInteger,
	"int":                         dbtypes.TypeKindInteger,
	"bigint":                      dbtypes.TypeKindInteger,
	"int2":                        dbtypes.TypeKindInteger,
	"int4":                        dbtypes.TypeKindInteger,
	"int8":                        dbtypes.TypeKindInteger,
	"smallserial":                 dbtypes.TypeKindInteger,
	"serial":                      dbtypes.TypeKindInteger,
	"bigserial":                   dbtypes.TypeKindInteger,
	"serial2":                     dbtypes.TypeKindInteger,
	"serial4":                     dbtypes.TypeKindInteger,
	"serial8":                     dbtypes.TypeKindInteger,
	"numeric":                     dbtypes.TypeKindNumber,
	"decimal":                     dbtypes.TypeKindNumber,
	"real":                        dbtypes.TypeKindNumber,
	"float":                       dbtypes.TypeKindNumber,
	"float4":                      dbtypes.TypeKindNumber,
	"float8":                      dbtypes.TypeKindNumber,
	"double precision":            dbtypes.TypeKindNumber,
	"money":                       dbtypes.TypeKindNumber,
	"bool":                        dbtypes.TypeKindBoolean,
	"boolean":                     dbtypes.TypeKindBoolean,
	"json":                        dbtypes.TypeKindJSON,
	"jsonb":                       dbtypes.TypeKindJSON,
}

// MapType converts a folded PostgreSQL type name to a column type.
// Unknown names become named types, resolved later against declared enums
// and composite types; their spelling is kept, so a quoted "Mood" stays Mood.
// Unknown names that are not plain identifiers, such as "foo varying", fall
// back to text. Serial types report identity.
func MapType(name string, array bool) (typ *dbtypes.Type, identity bool) {
	name = strings.Join(strings.Fields(name), " ")

	if kind, ok := scalarTypes[strings.ToLower(name)]; ok {
		typ = &dbtypes.Type{Kind: kind}
		identity = strings.Contains(strings.ToLower(name), "serial")
	} else if named, err := dbtypes.ParseType(name); err == nil && named.Kind == dbtypes.TypeKindNamed {
		typ = named
	} else {
		typ = &dbtypes.Type{Kind: dbtypes.TypeKindText}
	}

	if array {
		typ = dbtypes.ArrayOf(typ)
	}

	return typ, identity
}

// typeName renders a parsed type name as it is looked up in scalarTypes.
// The schema qualifier of a user type is dropped.
func typeName(t *sqlgrammar.TypeName) string {
	parts := []string{ident(t.Name.Base())}
	for _, m := range t.Modifiers {
		parts = append(parts, strings.ToLower(m))
	}

	return strings.Join(parts, " ")
}

// ident folds an identifier the way PostgreSQL does: quoted names keep their
// spelling, unquoted names are lower-cased.
func ident(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
	}

	return strings.ToLower(s)
}

// stringLiteral strips the quotes from a single-quoted SQL literal.
func stringLiteral(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}

	return s
}
