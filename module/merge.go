package module

import (
	"fmt"
	"slices"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
)

// MergeWarning represents a non-fatal issue detected during merge.
type MergeWarning struct {
	Path    string
	Code    string // e.g., "duplicate-enum"
	Message string
}

// MergeError represents a fatal error during merge.
type MergeError struct {
	Path    string
	Code    string // e.g., "duplicate-table"
	Message string
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("%s in %s: %s", e.Code, e.Path, e.Message)
}

// ParsedFile pairs a decoded schema file with its source path.
type ParsedFile struct {
	Database *dbtypes.Database
	Path     string
}

// Merge unions the schemas of several files into one registry.
//
// A table, view or function declared by two files in the same schema is an
// error. An enum or composite type declared twice is a warning when both
// declarations agree and an error otherwise. Inputs are not modified.
func Merge(inputs []ParsedFile) (*dbtypes.Database, []MergeWarning, error) {
	merged := &dbtypes.Database{Schemas: make(map[string]*dbtypes.Schema)}

	var warnings []MergeWarning

	origin := make(map[string]string) // "schema.kind.name" -> path

	for _, input := range inputs {
		if input.Database == nil {
			continue
		}

		for _, schemaName := range input.Database.SchemaNames() {
			src := input.Database.Schemas[schemaName]
			dst := mergedSchema(merged, schemaName)

			claim := func(kind, name, code string) error {
				key := schemaName + "." + kind + "." + name
				if prev, ok := origin[key]; ok {
					return &MergeError{
						Path:    input.Path,
						Code:    code,
						Message: fmt.Sprintf("%s %s.%s already declared in %s", kind, schemaName, name, prev),
					}
				}

				origin[key] = input.Path

				return nil
			}

			for _, name := range src.TableNames() {
				if err := claim("relation", name, "duplicate-table"); err != nil {
					return nil, warnings, err
				}

				dst.Tables[name] = src.Tables[name]
			}

			for _, name := range src.ViewNames() {
				if err := claim("relation", name, "duplicate-table"); err != nil {
					return nil, warnings, err
				}

				dst.Views[name] = src.Views[name]
			}

			for _, name := range src.FunctionNames() {
				if err := claim("function", name, "duplicate-function"); err != nil {
					return nil, warnings, err
				}

				dst.Functions[name] = src.Functions[name]
			}

			for _, name := range src.EnumNames() {
				enum := src.Enums[name]

				if existing, ok := dst.Enums[name]; ok {
					if !slices.Equal(existing.Values, enum.Values) {
						return nil, warnings, &MergeError{
							Path:    input.Path,
							Code:    "conflicting-enum",
							Message: fmt.Sprintf("enum %s.%s differs from the declaration in %s", schemaName, name, origin[schemaName+".enum."+name]),
						}
					}

					warnings = append(warnings, MergeWarning{
						Path:    input.Path,
						Code:    "duplicate-enum",
						Message: fmt.Sprintf("enum %s.%s is also declared in %s", schemaName, name, origin[schemaName+".enum."+name]),
					})

					continue
				}

				origin[schemaName+".enum."+name] = input.Path
				dst.Enums[name] = enum
			}

			for _, name := range src.CompositeTypeNames() {
				ct := src.CompositeTypes[name]

				if existing, ok := dst.CompositeTypes[name]; ok {
					if !sameAttributes(existing.Attributes, ct.Attributes) {
						return nil, warnings, &MergeError{
							Path:    input.Path,
							Code:    "conflicting-composite-type",
							Message: fmt.Sprintf("composite type %s.%s differs from the declaration in %s", schemaName, name, origin[schemaName+".type."+name]),
						}
					}

					warnings = append(warnings, MergeWarning{
						Path:    input.Path,
						Code:    "duplicate-composite-type",
						Message: fmt.Sprintf("composite type %s.%s is also declared in %s", schemaName, name, origin[schemaName+".type."+name]),
					})

					continue
				}

				origin[schemaName+".type."+name] = input.Path
				dst.CompositeTypes[name] = ct
			}
		}
	}

	return merged, warnings, nil
}

func mergedSchema(db *dbtypes.Database, name string) *dbtypes.Schema {
	if s, ok := db.Schemas[name]; ok {
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
	db.Schemas[name] = s

	return s
}

func sameAttributes(a, b []*dbtypes.Attribute) bool {
	return slices.EqualFunc(a, b, func(x, y *dbtypes.Attribute) bool {
		return x.Name == y.Name && x.Nullable == y.Nullable && x.Type.Equal(y.Type)
	})
}
