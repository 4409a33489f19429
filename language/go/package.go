package golang

import (
	"go/build"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
)

// InferPackageName determines the Go package name for an output directory.
//
// Strategies, in order:
//  1. the package clause of a previously generated registry file, so a
//     regenerated package never changes name
//  2. go/build.ImportDir, which respects build tags
//  3. the package clause of any other non-test .go file
//  4. SanitizePackageName(filepath.Base(dir))
//
// A missing directory is not an error: generation creates it.
func InferPackageName(dir string) (string, error) {
	if name := packageClause(filepath.Join(dir, dbtypes.RegistryFileName)); name != "" {
		return name, nil
	}

	if pkg, err := build.ImportDir(dir, 0); err == nil && pkg.Name != "" {
		return pkg.Name, nil
	}

	if name := parseAnyPackageClause(dir); name != "" {
		return name, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	return SanitizePackageName(filepath.Base(abs)), nil
}

// SanitizePackageName converts a string to a valid Go package name.
//
// Letters and digits are kept and lower-cased; everything else, including
// underscores, is dropped. An empty result or one starting with a digit is
// prefixed with "pkg"; a Go keyword is suffixed with "pkg".
//
//	"quiz-db"   -> "quizdb"
//	"Quiz_DB"   -> "quizdb"
//	"2024"      -> "pkg2024"
//	"type"      -> "typepkg"
func SanitizePackageName(name string) string {
	var b strings.Builder

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	result := b.String()

	if result == "" || unicode.IsDigit(rune(result[0])) {
		result = "pkg" + result
	}

	if IsKeyword(result) {
		result += "pkg"
	}

	return result
}

// IsKeyword returns true if name is a Go keyword.
func IsKeyword(name string) bool {
	return token.Lookup(name).IsKeyword()
}

// parseAnyPackageClause returns the package name of the first non-test .go
// file in dir, generated files first. Returns "" if there is none.
func parseAnyPackageClause(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var files []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		files = append(files, name)
	}

	slices.SortStableFunc(files, func(a, b string) int {
		ga, gb := strings.HasSuffix(a, dbtypes.GeneratedFileSuffix), strings.HasSuffix(b, dbtypes.GeneratedFileSuffix)
		switch {
		case ga && !gb:
			return -1
		case gb && !ga:
			return 1
		default:
			return 0
		}
	})

	for _, name := range files {
		if pkg := packageClause(filepath.Join(dir, name)); pkg != "" {
			return pkg
		}
	}

	return ""
}

func packageClause(path string) string {
	f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.PackageClauseOnly)
	if err != nil || f.Name == nil {
		return ""
	}

	return f.Name.Name
}
