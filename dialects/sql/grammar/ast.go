package sqlgrammar

import "github.com/alecthomas/participle/v2/lexer"

// ----------------------------------------------------------------------------
// DDL AST
//
// Covers CREATE SCHEMA, CREATE TABLE and CREATE TYPE as written by pg_dump
// and hand-maintained migration files. Anything else is a parse error.
// ----------------------------------------------------------------------------

// Script is the root of a DDL parse tree.
type Script struct {
	Pos        lexer.Position
	Statements []*Statement `(@@ | ";")*`
}

// Statement is a single CREATE statement.
type Statement struct {
	Pos    lexer.Position
	Create *Create `"CREATE" @@`
}

// Create is the body following CREATE.
type Create struct {
	Pos    lexer.Position
	Schema *CreateSchema `  @@`
	Table  *CreateTable  `| @@`
	Type   *CreateType   `| @@`
}

// CreateSchema is CREATE SCHEMA [IF NOT EXISTS] name.
type CreateSchema struct {
	Pos         lexer.Position
	IfNotExists bool   `"SCHEMA" @("IF" "NOT" "EXISTS")?`
	Name        string `@Ident`
}

// CreateTable is CREATE TABLE [IF NOT EXISTS] [schema.]name ( elements ).
type CreateTable struct {
	Pos         lexer.Position
	IfNotExists bool            `"TABLE" @("IF" "NOT" "EXISTS")?`
	Name        *QualifiedName  `@@`
	Elements    []*TableElement `"(" @@ ("," @@)* ")"`
}

// TableElement is a column definition or a table constraint.
type TableElement struct {
	Pos        lexer.Position
	Constraint *TableConstraint `  @@`
	Column     *ColumnDef       `| @@`
}

// ColumnDef is name type [constraint...].
type ColumnDef struct {
	Pos         lexer.Position
	Name        string              `@Ident`
	Type        *TypeName           `@@`
	Constraints []*ColumnConstraint `@@*`
}

// ColumnConstraint is an optionally named column constraint.
type ColumnConstraint struct {
	Pos  lexer.Position
	Name string                `("CONSTRAINT" @Ident)?`
	Kind *ColumnConstraintKind `@@`
}

// ColumnConstraintKind is one of the supported column constraints.
type ColumnConstraintKind struct {
	Pos        lexer.Position
	NotNull    bool       `  @("NOT" "NULL")`
	Null       bool       `| @"NULL"`
	PrimaryKey bool       `| @("PRIMARY" "KEY")`
	Unique     bool       `| @"UNIQUE"`
	Default    *Expr      `| "DEFAULT" @@`
	Identity   bool       `| @("GENERATED" ("ALWAYS" | "BY" "DEFAULT") "AS" "IDENTITY")`
	References *Reference `| "REFERENCES" @@`
	Check      *Parens    `| "CHECK" @@`
}

// TableConstraint is an optionally named table constraint.
type TableConstraint struct {
	Pos  lexer.Position
	Name string               `("CONSTRAINT" @Ident)?`
	Body *TableConstraintBody `@@`
}

// TableConstraintBody is one of the supported table constraints.
type TableConstraintBody struct {
	Pos        lexer.Position
	PrimaryKey *ColumnList `  "PRIMARY" "KEY" @@`
	Unique     *ColumnList `| "UNIQUE" @@`
	ForeignKey *ForeignKey `| "FOREIGN" "KEY" @@`
	Check      *Parens     `| "CHECK" @@`
}

// ForeignKey is (columns) REFERENCES target.
type ForeignKey struct {
	Pos       lexer.Position
	Columns   *ColumnList `@@`
	Reference *Reference  `"REFERENCES" @@`
}

// Reference is [schema.]table [(columns)] [ON DELETE|UPDATE action]...
type Reference struct {
	Pos     lexer.Position
	Table   *QualifiedName `@@`
	Columns *ColumnList    `@@?`
	Actions []string       `@("ON" ("DELETE" | "UPDATE") ("CASCADE" | "RESTRICT" | "NO" "ACTION" | "SET" ("NULL" | "DEFAULT")))*`
}

// ColumnList is a parenthesised list of column names.
type ColumnList struct {
	Pos   lexer.Position
	Names []string `"(" @Ident ("," @Ident)* ")"`
}

// CreateType is CREATE TYPE name AS ENUM (...) or AS (attributes).
type CreateType struct {
	Pos  lexer.Position
	Name *QualifiedName `"TYPE" @@ "AS"`
	Body *TypeBody      `@@`
}

// TypeBody is an enum value list or a composite attribute list.
type TypeBody struct {
	Pos        lexer.Position
	Enum       *EnumValues     `  "ENUM" @@`
	Attributes []*AttributeDef `| "(" @@ ("," @@)* ")"`
}

// EnumValues is the quoted label list of an enum.
type EnumValues struct {
	Pos    lexer.Position
	Values []string `"(" (@String ("," @String)*)? ")"`
}

// AttributeDef is a composite type member.
type AttributeDef struct {
	Pos  lexer.Position
	Name string    `@Ident`
	Type *TypeName `@@`
}

// QualifiedName is [schema.]name.
type QualifiedName struct {
	Pos   lexer.Position
	Parts []string `@Ident ("." @Ident)?`
}

// TypeName is a column type such as "integer", "character varying(255)",
// "timestamp with time zone" or "quiz_status[]".
type TypeName struct {
	Pos       lexer.Position
	Name      *QualifiedName `@@`
	Modifiers []string       `@("PRECISION" | "VARYING" | ("WITH" | "WITHOUT") "TIME" "ZONE")*`
	Args      []string       `("(" @Int ("," @Int)* ")")?`
	Array     bool           `@("[" Int? "]")*`
}

// Expr is a default expression: a run of literals, calls, casts and binary
// operators such as now() + '7 days'::interval.
type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Terms  []*Term `@@+`
}

// Term is a single element of a default expression.
type Term struct {
	Pos     lexer.Position
	Call    *Call     `  @@`
	String  *string   `| @String`
	Number  *string   `| @("-"? (Float | Int))`
	Keyword *string   `| @("TRUE" | "FALSE" | "NULL" | "CURRENT_TIMESTAMP" | "CURRENT_DATE" | "CURRENT_TIME" | "LOCALTIMESTAMP")`
	Cast    *TypeName `| "::" @@`
	Paren   *Expr     `| "(" @@ ")"`
	Op      *string   `| @Operator`
}

// Call is a function call such as now() or gen_random_uuid().
type Call struct {
	Pos  lexer.Position
	Name string  `@Ident "("`
	Args []*Expr `(@@ ("," @@)*)? ")"`
}

// Parens is a balanced parenthesised token run, used for CHECK bodies.
type Parens struct {
	Pos   lexer.Position
	Items []*ParenItem `"(" @@* ")"`
}

// ParenItem is a nested group or any other token.
type ParenItem struct {
	Nested *Parens `  @@`
	Token  string  `| @~("(" | ")")`
}
