package sqlgrammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SQLLexer defines the lexer for the PostgreSQL DDL subset.
// Keywords are matched case-insensitively by the parser; identifiers keep the
// case they were written in and are folded by the importer.
var SQLLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Whitespace and comments (elided from output)
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "LineComment", Pattern: `--[^\r\n]*`},
	{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},

	// Single-quoted string literal, '' escapes a quote
	{Name: "String", Pattern: `'(?:[^']|'')*'`},

	// Plain or double-quoted identifier
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*|"(?:[^"]|"")+"`},

	// Numbers - float must come before int to match longest
	{Name: "Float", Pattern: `\d+\.\d*|\.\d+`},
	{Name: "Int", Pattern: `\d+`},

	{Name: "Cast", Pattern: `::`},
	{Name: "Operator", Pattern: `<>|<=|>=|!=|\|\||[-+*/%<>=]`},
	{Name: "Punct", Pattern: `[(),;.\[\]]`},
})
