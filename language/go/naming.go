package golang

import (
	"strings"
	"unicode"
)

// initialisms are words rendered fully upper-case in Go identifiers.
var initialisms = map[string]bool{
	"api":  true,
	"db":   true,
	"html": true,
	"http": true,
	"id":   true,
	"ip":   true,
	"json": true,
	"sql":  true,
	"uri":  true,
	"url":  true,
	"uuid": true,
}

// reservedNames are declared by every generated package.
var reservedNames = map[string]bool{
	"Database": true,
	"Tables":   true,
}

// GoName converts a snake_case SQL name to an exported Go identifier.
//
//	"anytime_quiz_answers" -> "AnytimeQuizAnswers"
//	"avatar_url"           -> "AvatarURL"
//	"quiz_id"              -> "QuizID"
//	"2fa_codes"            -> "X2faCodes"
func GoName(name string) string {
	var b strings.Builder

	for word := range strings.FieldsFuncSeq(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		lower := strings.ToLower(word)
		if initialisms[lower] {
			b.WriteString(strings.ToUpper(lower))
			continue
		}

		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	out := b.String()
	if out == "" || !unicode.IsLetter([]rune(out)[0]) {
		out = "X" + out
	}

	return out
}

// typeIdent returns the identifier for a relation or type declared in schema.
// Names outside the default schema are prefixed with the schema name.
func typeIdent(schema, name string, defaultSchema bool) string {
	id := GoName(name)
	if !defaultSchema {
		id = GoName(schema) + id
	}

	if reservedNames[id] {
		id += "Table"
	}

	return id
}
