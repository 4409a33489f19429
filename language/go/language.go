// Package golang provides Go code generation from a schema registry.
//
// For every schema the generator writes "<schema>.gen.go" holding:
//   - a string type with constants per enum
//   - a struct per composite type
//   - Row, Insert and Update structs per table, derived from the table's
//     shapes, plus a dbtypes.TableRef handle binding the three together
//   - the schema's literal registry entry
//
// A separate database.gen.go declares the package-level Database registry
// and Tables, which enumerates every handle.
//
// # Usage
//
// The generator is typically invoked via the dbtypes CLI:
//
//	dbtypes generate --out ./quizdb schema/quiz.schema.yaml
//
// # Insert and Update records
//
// Nullable columns become pointers. Fields that may be left out become
// dbtypes.Opt values tagged omitzero, so an absent field is never sent:
//
//	type UsersInsert struct {
//		ID       dbtypes.Opt[string]  `db:"id" json:"id,omitzero"`
//		Email    string               `db:"email" json:"email"`
//		FullName dbtypes.Opt[*string] `db:"full_name" json:"full_name,omitzero"`
//	}
package golang

import (
	"path/filepath"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/language"
	"go.uber.org/zap"
)

// Context provides Go-specific information needed for code generation.
// It embeds the base language.GenerateContext.
type Context struct {
	language.GenerateContext
}

// GoLanguage implements language.Language for Go code generation.
type GoLanguage struct{}

// Name returns "go".
func (g *GoLanguage) Name() string {
	return dbtypes.LangGo
}

// InferPackageName determines the Go package name for a directory.
func (g *GoLanguage) InferPackageName(dir string) (string, error) {
	return InferPackageName(dir)
}

// Generate produces the generated files for the registry.
func (g *GoLanguage) Generate(ctx *language.GenerateContext) (map[string][]byte, error) {
	goCtx := &Context{GenerateContext: *ctx}

	if goCtx.PackageName == "" {
		packageName, err := g.InferPackageName(ctx.OutputDir)
		if err != nil {
			packageName = dirPackageName(ctx.OutputDir)
		}

		if base := filepath.Base(ctx.OutputDir); IsKeyword(base) {
			ctx.Log().Warn("output folder is a Go keyword",
				zap.String("folder", base), zap.String("package", packageName))
		}

		goCtx.PackageName = packageName
	}

	return g.GenerateWithContext(goCtx)
}

// GenerateWithContext produces the generated files using Go-specific context.
func (g *GoLanguage) GenerateWithContext(ctx *Context) (map[string][]byte, error) {
	if ctx.PackageName == "" {
		ctx.PackageName = dirPackageName(ctx.OutputDir)
	}

	gen := &generator{ctx: ctx, log: ctx.Log()}

	return gen.Generate()
}

// dirPackageName names a package after the last element of dir.
func dirPackageName(dir string) string {
	return SanitizePackageName(filepath.Base(dir))
}

// New creates a new Go language generator.
func New() *GoLanguage {
	return &GoLanguage{}
}

//nolint:gochecknoinits // Language self-registration pattern
func init() {
	language.Register(New())
}
