package dbtypes

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Type parsing errors.
var (
	ErrEmptyType        = errors.New("empty type string")
	ErrUnrecognizedType = errors.New("unrecognized type")
)

// TypeKind represents the kind of a column type.
type TypeKind string

// Type kind constants.
const (
	TypeKindText    TypeKind = "text"
	TypeKindInteger TypeKind = "integer"
	TypeKindNumber  TypeKind = "number"
	TypeKindBoolean TypeKind = "boolean"
	TypeKindJSON    TypeKind = "json"
	TypeKindNamed   TypeKind = "named" // enum or composite type reference
	TypeKindArray   TypeKind = "array" // T[]
)

// Family is the value family a column type reads as: text, number or boolean.
// JSON values keep their own family.
type Family string

// Family constants.
const (
	FamilyText    Family = "text"
	FamilyNumber  Family = "number"
	FamilyBoolean Family = "boolean"
	FamilyJSON    Family = "json"
)

// Type represents the value type of a column.
// Array types nest: "text[][]" is Array(Array(Text)).
type Type struct {
	// Kind is the category of this type.
	Kind TypeKind

	// Name is the referenced type name for TypeKindNamed.
	Name string

	// Elem is the element type for arrays.
	Elem *Type
}

// String returns the schema-file spelling of the type.
func (t *Type) String() string {
	if t == nil {
		return ""
	}

	switch t.Kind {
	case TypeKindArray:
		return t.Elem.String() + "[]"
	case TypeKindNamed:
		return t.Name
	default:
		return string(t.Kind)
	}
}

// Family returns the value family of the type. Named types are enums or
// composite types; both read back as text.
func (t *Type) Family() Family {
	if t == nil {
		return ""
	}

	switch t.Kind {
	case TypeKindInteger, TypeKindNumber:
		return FamilyNumber
	case TypeKindBoolean:
		return FamilyBoolean
	case TypeKindJSON, TypeKindArray:
		return FamilyJSON
	default:
		return FamilyText
	}
}

// Equal reports whether two types are structurally identical.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}

	return t.Kind == o.Kind && t.Name == o.Name && t.Elem.Equal(o.Elem)
}

// ParseType parses a schema-file type string into a Type.
//
// Examples:
//
//	"text"        -> TypeKindText
//	"integer"     -> TypeKindInteger
//	"text[]"      -> TypeKindArray, Elem=text
//	"quiz_status" -> TypeKindNamed, Name="quiz_status"
func ParseType(s string) (*Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyType
	}

	if elem, ok := strings.CutSuffix(s, "[]"); ok {
		inner, err := ParseType(elem)
		if err != nil {
			return nil, err
		}

		return ArrayOf(inner), nil
	}

	switch TypeKind(s) {
	case TypeKindText, TypeKindInteger, TypeKindNumber, TypeKindBoolean, TypeKindJSON:
		return &Type{Kind: TypeKind(s)}, nil
	case TypeKindNamed, TypeKindArray:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedType, s)
	}

	if isIdentifier(s) {
		return NamedType(s), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnrecognizedType, s)
}

// MustParseType is like ParseType but panics on error.
func MustParseType(s string) *Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}

	return t
}

// isIdentifier returns true if s is a plain SQL identifier.
func isIdentifier(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
		} else if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return s != ""
}

// Scalar type constructors for convenience.
var (
	TypeText    = &Type{Kind: TypeKindText}
	TypeInteger = &Type{Kind: TypeKindInteger}
	TypeNumber  = &Type{Kind: TypeKindNumber}
	TypeBoolean = &Type{Kind: TypeKindBoolean}
	TypeJSON    = &Type{Kind: TypeKindJSON}
)

// ArrayOf creates an array type.
func ArrayOf(elem *Type) *Type {
	return &Type{Kind: TypeKindArray, Elem: elem}
}

// NamedType creates a reference to an enum or composite type.
func NamedType(name string) *Type {
	return &Type{Kind: TypeKindNamed, Name: name}
}
