package dbtypes_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_SchemaNames(t *testing.T) {
	t.Parallel()

	db := fixtureDatabase()
	assert.Equal(t, []string{"audit", "public"}, db.SchemaNames())

	_, ok := db.Schema("missing")
	assert.False(t, ok)

	var nilDB *dbtypes.Database
	assert.Nil(t, nilDB.SchemaNames())
}

func TestSchema_Enumeration(t *testing.T) {
	t.Parallel()

	public, ok := fixtureDatabase().Schema("public")
	require.True(t, ok)

	assert.Equal(t, []string{"authors", "posts"}, public.TableNames())
	assert.Equal(t, []string{"post_counts"}, public.ViewNames())
	assert.Equal(t, []string{"post_status"}, public.EnumNames())
	assert.Equal(t, []string{"address"}, public.CompositeTypeNames())
	assert.Empty(t, public.FunctionNames())
}

func TestSchema_TableFallsBackToViews(t *testing.T) {
	t.Parallel()

	public, _ := fixtureDatabase().Schema("public")

	view, ok := public.Table("post_counts")
	require.True(t, ok)
	assert.Equal(t, "post_counts", view.Name)
	assert.True(t, public.IsView("post_counts"))
	assert.False(t, public.IsView("posts"))

	_, ok = public.Table("nonexistent_table")
	assert.False(t, ok)
}

func TestTable_Columns(t *testing.T) {
	t.Parallel()

	public, _ := fixtureDatabase().Schema("public")
	posts := public.Tables["posts"]

	assert.Equal(t, []string{"id", "author_id", "title", "status", "tags"}, posts.ColumnNames())
	assert.True(t, posts.HasColumns("id", "author_id"))
	assert.False(t, posts.HasColumns("id", "body"))

	col, ok := posts.Column("status")
	require.True(t, ok)
	assert.True(t, col.Defaultable())

	col, _ = posts.Column("title")
	assert.False(t, col.Defaultable())
}

func TestDatabase_Relationships(t *testing.T) {
	t.Parallel()

	rels := fixtureDatabase().Relationships()
	require.Len(t, rels, 1)

	got := []string{rels[0].Schema, rels[0].Table, rels[0].ForeignKeyName, rels[0].ReferencedRelation}
	want := []string{"public", "posts", "posts_author_id_fkey", "authors"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Relationships() mismatch (-want +got):\n%s", diff)
	}
}
