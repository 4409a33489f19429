package analysis

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const librarySchemaYAML = `
schemas:
  public:
    tables:
      books:
        columns:
          - name: id
            type: integer
            identity: true
          - name: title
            type: text
          - name: author_id
            type: integer
          - name: genre
            type: genre
            default: "'fiction'::genre"
          - name: tags
            type: text[]
            nullable: true
          - name: shelf
            type: location
            nullable: true
        relationships:
          - foreign_key_name: books_author_id_fkey
            columns: [author_id]
            is_one_to_one: false
            referenced_relation: authors
            referenced_columns: [id]
      authors:
        columns:
          - name: id
            type: integer
            has_default: true
          - name: name
            type: text
    views:
      books_per_author:
        columns:
          - name: author_id
            type: integer
            nullable: true
    functions:
      count_books:
        args:
          - name: author
            type: integer
        returns: integer
    enums:
      genre: [fiction, poetry]
    composite_types:
      location:
        - name: room
          type: text
        - name: row
          type: integer
          nullable: true
`

func TestLoadSchema(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "library.schema.yaml"), []byte(librarySchemaYAML), 0o644))

	db, err := LoadSchema("library.schema.yaml", tmpDir)
	require.NoError(t, err)

	public, ok := db.Schema("public")
	require.True(t, ok)
	assert.Equal(t, "public", public.Name)
	assert.Equal(t, []string{"authors", "books"}, public.TableNames())
	assert.Equal(t, []string{"books_per_author"}, public.ViewNames())

	books := public.Tables["books"]
	assert.Equal(t, []string{"id", "title", "author_id", "genre", "tags", "shelf"}, books.ColumnNames(), "declaration order is kept")

	genre, _ := books.Column("genre")
	assert.True(t, genre.HasDefault, "a default expression implies has_default")
	assert.Equal(t, dbtypes.NamedType("genre"), genre.Type)

	tags, _ := books.Column("tags")
	assert.Equal(t, dbtypes.ArrayOf(dbtypes.TypeText), tags.Type)

	require.Len(t, books.Relationships, 1)
	assert.Equal(t, "authors", books.Relationships[0].ReferencedRelation)
	assert.Equal(t, []string{"author_id"}, books.Relationships[0].Columns)

	assert.Equal(t, []string{"fiction", "poetry"}, public.Enums["genre"].Values)
	require.Len(t, public.CompositeTypes["location"].Attributes, 2)
	assert.True(t, public.CompositeTypes["location"].Attributes[1].Nullable)
	assert.Equal(t, dbtypes.TypeInteger, public.Functions["count_books"].Returns)
}

func TestLoadSchema_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadSchema("missing.schema.yaml", t.TempDir())
	require.Error(t, err)

	_, err = ParseSchema([]byte("schemas: [not, a, map]"))
	require.Error(t, err)

	_, err = ParseSchema([]byte(`
schemas:
  public:
    tables:
      t:
        columns:
          - name: c
            type: "not a type"
`))
	require.ErrorIs(t, err, dbtypes.ErrUnrecognizedType)
	assert.Contains(t, err.Error(), "table t, column c")
}

func TestWriteSchema_RoundTrip(t *testing.T) {
	t.Parallel()

	db, err := ParseSchema([]byte(librarySchemaYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSchema(&buf, db))
	assert.True(t, strings.HasPrefix(buf.String(), "# Schema inventory"))

	again, err := ParseSchema(buf.Bytes())
	require.NoError(t, err)

	if diff := cmp.Diff(db, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	var second bytes.Buffer
	require.NoError(t, WriteSchema(&second, again))
	assert.Equal(t, buf.String(), second.String(), "output is deterministic")
}

func TestWriteSchema_HasDefaultOnlyWithoutExpression(t *testing.T) {
	t.Parallel()

	db := &dbtypes.Database{Schemas: map[string]*dbtypes.Schema{
		"public": {
			Name: "public",
			Tables: map[string]*dbtypes.Table{
				"t": {Name: "t", Columns: []*dbtypes.Column{
					{Name: "a", Type: dbtypes.TypeText, HasDefault: true},
					{Name: "b", Type: dbtypes.TypeText, HasDefault: true, Default: "''"},
				}},
			},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteSchema(&buf, db))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "has_default: true"))
	assert.NotContains(t, out, "identity")
}
