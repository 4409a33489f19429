package module_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quizFile = `
schemas:
  public:
    tables:
      quizzes:
        columns:
          - {name: id, type: text, default: gen_random_uuid()}
          - {name: title, type: text}
    enums:
      quiz_status: [draft, live]
`

const gameFile = `
schemas:
  public:
    tables:
      game_sessions:
        columns:
          - {name: id, type: text, default: gen_random_uuid()}
          - {name: quiz_id, type: text}
        relationships:
          - {foreign_key_name: game_sessions_quiz_id_fkey, columns: [quiz_id], referenced_relation: quizzes, referenced_columns: [id]}
    enums:
      quiz_status: [draft, live]
  reporting:
    views:
      scores:
        columns:
          - {name: total, type: integer, nullable: true}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "quiz.schema.yaml", quizFile)

	loader := module.NewLoader()

	mod, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, mod.Path)

	again, err := loader.Load(filepath.Join(dir, "quiz"))
	require.NoError(t, err)
	assert.Same(t, mod, again, "extension is added and the cache is hit")
	assert.Len(t, loader.Cached(), 1)

	loader.Clear()
	assert.Empty(t, loader.Cached())

	_, err = loader.Load(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, module.ErrModuleNotFound)

	var loadErr *module.LoadError
	require.ErrorAs(t, err, &loadErr)

	bad := writeFile(t, dir, "bad.schema.yaml", "schemas: [")
	_, err = loader.Load(bad)
	require.ErrorIs(t, err, module.ErrParseError)
}

func TestLoader_Concurrent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	quiz := writeFile(t, dir, "quiz.schema.yaml", quizFile)
	game := writeFile(t, dir, "game.schema.yaml", gameFile)

	loader := module.NewLoader()
	paths := []string{quiz, game, filepath.Join(dir, "quiz"), dir + "/./game.schema.yaml"}
	mods := make([]*module.Module, 16)

	var wg sync.WaitGroup

	for i := range mods {
		wg.Add(1)

		go func() {
			defer wg.Done()

			mod, err := loader.Load(paths[i%len(paths)])
			assert.NoError(t, err)

			mods[i] = mod
		}()
	}

	wg.Wait()

	require.Len(t, loader.Cached(), 2)

	for i, mod := range mods {
		assert.Same(t, loader.Cached()[mod.Path], mod, "load %d", i)
	}

	assert.Same(t, mods[0], mods[2])
	assert.Same(t, mods[1], mods[3])
}

func TestLoader_CustomParser(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "any.schema.yaml", "ignored")

	sentinel := errors.New("boom")
	loader := module.NewLoader()
	loader.Parser = func([]byte) (*dbtypes.Database, error) { return nil, sentinel }

	_, err := loader.Load(path)
	require.ErrorIs(t, err, sentinel)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	loader := module.NewLoader()

	quiz, err := loader.Load(writeFile(t, dir, "quiz.schema.yaml", quizFile))
	require.NoError(t, err)

	game, err := loader.Load(writeFile(t, dir, "game.schema.yaml", gameFile))
	require.NoError(t, err)

	db, warnings, err := module.Merge([]module.ParsedFile{
		{Database: quiz.Database, Path: quiz.Path},
		{Database: game.Database, Path: game.Path},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"public", "reporting"}, db.SchemaNames())

	public, _ := db.Schema("public")
	assert.Equal(t, []string{"game_sessions", "quizzes"}, public.TableNames())

	require.Len(t, warnings, 1)
	assert.Equal(t, "duplicate-enum", warnings[0].Code)
	assert.Equal(t, game.Path, warnings[0].Path)

	quizPublic, _ := quiz.Database.Schema("public")
	assert.Len(t, quizPublic.Tables, 1, "inputs are not modified")
}

func TestMerge_Errors(t *testing.T) {
	t.Parallel()

	table := func(name string) *dbtypes.Database {
		return &dbtypes.Database{Schemas: map[string]*dbtypes.Schema{
			"public": {Name: "public", Tables: map[string]*dbtypes.Table{name: {Name: name}}},
		}}
	}

	enum := func(values ...string) *dbtypes.Database {
		return &dbtypes.Database{Schemas: map[string]*dbtypes.Schema{
			"public": {Name: "public", Enums: map[string]*dbtypes.Enum{"mood": {Name: "mood", Values: values}}},
		}}
	}

	tests := []struct {
		name string
		a, b *dbtypes.Database
		code string
	}{
		{"duplicate table", table("users"), table("users"), "duplicate-table"},
		{"conflicting enum", enum("happy"), enum("sad"), "conflicting-enum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := module.Merge([]module.ParsedFile{
				{Database: tt.a, Path: "a.schema.yaml"},
				{Database: tt.b, Path: "b.schema.yaml"},
			})

			var mergeErr *module.MergeError
			require.ErrorAs(t, err, &mergeErr)
			assert.Equal(t, tt.code, mergeErr.Code)
			assert.Equal(t, "b.schema.yaml", mergeErr.Path)
			assert.Contains(t, mergeErr.Error(), "a.schema.yaml")
		})
	}
}
