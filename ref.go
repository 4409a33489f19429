package dbtypes

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// TableRef is a typed handle on a generated table. Its type parameters are the
// generated Row, Insert and Update structs, so code that accepts a
// TableRef[R, I, U] is checked against the table's shapes at compile time.
type TableRef[R, I, U any] struct {
	Schema string
	Name   string
}

// TableHandle is the untyped view of a TableRef, used to enumerate generated
// tables.
type TableHandle interface {
	Selector() Selector
	RowType() reflect.Type
	InsertType() reflect.Type
	UpdateType() reflect.Type
}

// Selector returns the qualified selector of the table.
func (r TableRef[R, I, U]) Selector() Selector {
	return Selector{Schema: r.Schema, Name: r.Name}
}

// RowType returns the generated Row struct type.
func (r TableRef[R, I, U]) RowType() reflect.Type { return reflect.TypeFor[R]() }

// InsertType returns the generated Insert struct type.
func (r TableRef[R, I, U]) InsertType() reflect.Type { return reflect.TypeFor[I]() }

// UpdateType returns the generated Update struct type.
func (r TableRef[R, I, U]) UpdateType() reflect.Type { return reflect.TypeFor[U]() }

// Describe returns the registry entry of the table.
func (r TableRef[R, I, U]) Describe(db *Database) (*Table, bool) {
	return db.Lookup(r.Selector())
}

// Project returns the shape of the given kind for this table.
func (r TableRef[R, I, U]) Project(db *Database, kind ShapeKind) Shape {
	return db.Project(r.Selector(), kind)
}

// Opt is an optional field of an Insert or Update shape. The zero Opt is
// absent and is dropped by encoding/json under the omitzero option.
type Opt[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Set: true}
}

// None returns an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// Or returns the value if present, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.Set {
		return o.Value
	}

	return def
}

// IsZero reports whether the field is absent.
func (o Opt[T]) IsZero() bool {
	return !o.Set
}

// ElemType returns the type of the wrapped value.
func (o Opt[T]) ElemType() reflect.Type {
	return reflect.TypeFor[T]()
}

// MarshalJSON encodes the wrapped value. Absent values encode as null; use the
// omitzero option to leave them out.
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}

// UnmarshalJSON marks the field present. A JSON null is present for pointer
// types (an explicit NULL) and absent otherwise.
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	o.Value = v
	o.Set = !bytes.Equal(bytes.TrimSpace(data), []byte("null")) || reflect.TypeFor[T]().Kind() == reflect.Pointer

	return nil
}

// Optional is implemented by every Opt instantiation.
type Optional interface {
	IsZero() bool
	ElemType() reflect.Type
}

var _ Optional = Opt[string]{}
