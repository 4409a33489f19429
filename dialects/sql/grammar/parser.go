package sqlgrammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser is the DDL parser instance.
var Parser = participle.MustBuild[Script](
	participle.Lexer(SQLLexer),
	participle.Elide("Whitespace", "LineComment", "BlockComment"),
	participle.UseLookahead(4),          // Call vs keyword terms, constraint vs column
	participle.CaseInsensitive("Ident"), // SQL keywords are case-insensitive
)

// Parse parses DDL source into an AST.
func Parse(src string) (*Script, error) {
	return Parser.ParseString("", src)
}

// ParseBytes parses DDL source from bytes into an AST.
func ParseBytes(src []byte) (*Script, error) {
	return Parser.ParseBytes("", src)
}

// String returns the dotted name.
func (n *QualifiedName) String() string {
	if n == nil {
		return ""
	}

	return strings.Join(n.Parts, ".")
}

// Schema returns the schema qualifier, or "" when the name is unqualified.
func (n *QualifiedName) Schema() string {
	if n == nil || len(n.Parts) < 2 {
		return ""
	}

	return n.Parts[0]
}

// Base returns the unqualified name.
func (n *QualifiedName) Base() string {
	if n == nil || len(n.Parts) == 0 {
		return ""
	}

	return n.Parts[len(n.Parts)-1]
}

// Text returns the source text spanned by the expression.
func (e *Expr) Text(src []byte) string {
	if e == nil {
		return ""
	}

	start, end := e.Pos.Offset, e.EndPos.Offset
	if start < 0 || end > len(src) || start >= end {
		return ""
	}

	return strings.TrimSpace(string(src[start:end]))
}
