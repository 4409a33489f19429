//nolint:testpackage
package neo4j

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/quizdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabase() *dbtypes.Database {
	return &dbtypes.Database{Schemas: map[string]*dbtypes.Schema{
		"public": {
			Name: "public",
			Tables: map[string]*dbtypes.Table{
				"users": {Name: "users", Columns: []*dbtypes.Column{
					{Name: "id", Type: dbtypes.TypeText, HasDefault: true, Default: "gen_random_uuid()::text"},
					{Name: "email", Type: dbtypes.TypeText},
				}},
				"quizzes": {
					Name: "quizzes",
					Columns: []*dbtypes.Column{
						{Name: "id", Type: dbtypes.TypeText},
						{Name: "created_by", Type: dbtypes.TypeText, Nullable: true},
					},
					Relationships: []*dbtypes.Relationship{{
						ForeignKeyName:     "quizzes_created_by_fkey",
						Columns:            []string{"created_by"},
						ReferencedRelation: "users",
						ReferencedColumns:  []string{"id"},
					}},
				},
				"drafts": {Name: "drafts"},
			},
			Views: map[string]*dbtypes.Table{
				"active_users": {Name: "active_users", Columns: []*dbtypes.Column{
					{Name: "tags", Type: dbtypes.ArrayOf(dbtypes.TypeText), Nullable: true},
				}},
			},
		},
	}}
}

func TestStatements(t *testing.T) {
	t.Parallel()

	stmts := Statements(testDatabase())

	kinds := make([]string, len(stmts))
	for i, st := range stmts {
		kinds[i] = strings.Fields(st.Cypher)[0] + " " + firstParam(st)
	}

	assert.Equal(t, []string{
		"MERGE public",
		"MATCH drafts",
		"MATCH quizzes",
		"MATCH quizzes",
		"MATCH users",
		"MATCH users",
		"MATCH active_users",
		"MATCH active_users",
		"MATCH quizzes_created_by_fkey",
	}, kinds)

	assert.Equal(t, map[string]any{"schema": "public", "name": "active_users", "isView": true}, stmts[6].Params)

	want := map[string]any{
		"schema": "public",
		"table":  "users",
		"columns": []any{
			map[string]any{
				"name": "id", "type": "text", "position": int64(0),
				"nullable": false, "hasDefault": true, "identity": false, "default": "gen_random_uuid()::text",
			},
			map[string]any{
				"name": "email", "type": "text", "position": int64(1),
				"nullable": false, "hasDefault": false, "identity": false, "default": "",
			},
		},
	}
	if diff := cmp.Diff(want, stmts[5].Params); diff != "" {
		t.Errorf("column params mismatch (-want +got):\n%s", diff)
	}

	ref := stmts[len(stmts)-1]
	assert.Contains(t, ref.Cypher, "MERGE (src)-[r:REFERENCES {name: $name}]->(dst)")
	assert.Equal(t, map[string]any{
		"schema":             "public",
		"table":              "quizzes",
		"name":               "quizzes_created_by_fkey",
		"referencedSchema":   "public",
		"referencedRelation": "users",
		"columns":            []any{"created_by"},
		"referencedColumns":  []any{"id"},
		"isOneToOne":         false,
	}, ref.Params)
}

// firstParam returns the parameter naming the statement's subject.
func firstParam(st Statement) string {
	for _, key := range []string{"name", "table", "schema"} {
		if v, ok := st.Params[key].(string); ok {
			return v
		}
	}

	return ""
}

func TestStatements_CrossSchemaReference(t *testing.T) {
	t.Parallel()

	db := &dbtypes.Database{Schemas: map[string]*dbtypes.Schema{
		"auth": {Name: "auth", Tables: map[string]*dbtypes.Table{
			"users": {Name: "users", Columns: []*dbtypes.Column{{Name: "id", Type: dbtypes.TypeText}}},
		}},
		"public": {Name: "public", Tables: map[string]*dbtypes.Table{
			"profiles": {
				Name:    "profiles",
				Columns: []*dbtypes.Column{{Name: "user_id", Type: dbtypes.TypeText}},
				Relationships: []*dbtypes.Relationship{{
					ForeignKeyName:     "profiles_user_id_fkey",
					Columns:            []string{"user_id"},
					ReferencedSchema:   "auth",
					ReferencedRelation: "users",
					ReferencedColumns:  []string{"id"},
				}},
			},
		}},
	}}

	stmts := Statements(db)
	ref := stmts[len(stmts)-1]
	require.Equal(t, mergeReference, ref.Cypher)
	assert.Equal(t, "public", ref.Params["schema"])
	assert.Equal(t, "auth", ref.Params["referencedSchema"])
}

func TestStatements_ArrayTypeSpelling(t *testing.T) {
	t.Parallel()

	stmts := Statements(testDatabase())

	cols, ok := stmts[7].Params["columns"].([]any)
	require.True(t, ok)
	require.Len(t, cols, 1)
	assert.Equal(t, "text[]", cols[0].(map[string]any)["type"])
}

func TestStatements_QuizRegistry(t *testing.T) {
	t.Parallel()

	var schemas, tables, columns, refs int

	for _, st := range Statements(quizdb.Database) {
		switch st.Cypher {
		case mergeSchema:
			schemas++
		case mergeTable:
			tables++
		case mergeColumns:
			columns++
		case mergeReference:
			refs++
		}
	}

	assert.Equal(t, 1, schemas)
	assert.Equal(t, 15, tables)
	assert.Equal(t, 15, columns)
	assert.Equal(t, 14, refs)
}

func TestStatements_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Statements(&dbtypes.Database{}))
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(t.Context(), nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(t.Context(), &dbtypes.Neo4jConfig{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(t.Context(), &dbtypes.Neo4jConfig{URI: "ftp://localhost:7687"})
	require.Error(t, err)
}

func TestExport_NoDatabase(t *testing.T) {
	t.Parallel()

	_, err := NewWithDriver(nil).Export(t.Context(), nil)
	require.ErrorIs(t, err, ErrNoDatabase)
}

func TestFlattenRecord_Primitives(t *testing.T) {
	t.Parallel()

	result := flattenRecord([]string{"schema", "tables"}, []any{"public", int64(15)})

	want := map[string]any{"schema": "public", "tables": int64(15)}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("flattenRecord() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenRecord_Node(t *testing.T) {
	t.Parallel()

	result := flattenRecord([]string{"t"}, []any{
		dbtype.Node{
			ElementId: "4:abc:123",
			Labels:    []string{"Table"},
			Props:     map[string]any{"name": "users", "isView": false},
		},
	})

	want := map[string]any{
		"t.name":      "users",
		"t.isView":    false,
		"t.labels":    []string{"Table"},
		"t.elementId": "4:abc:123",
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("flattenRecord() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenRecord_Relationship(t *testing.T) {
	t.Parallel()

	result := flattenRecord([]string{"r"}, []any{
		dbtype.Relationship{
			ElementId: "5:abc:456",
			Type:      "REFERENCES",
			Props:     map[string]any{"isOneToOne": false},
		},
	})

	want := map[string]any{
		"r.isOneToOne": false,
		"r.type":       "REFERENCES",
		"r.elementId":  "5:abc:456",
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("flattenRecord() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenRecord_NestedMap(t *testing.T) {
	t.Parallel()

	result := flattenRecord([]string{"col"}, []any{map[string]any{"name": "id", "position": int64(0)}})

	want := map[string]any{"col.name": "id", "col.position": int64(0)}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("flattenRecord() mismatch (-want +got):\n%s", diff)
	}
}

// Integration test - only runs with a real Neo4j instance.
// Set DBTYPES_NEO4J_URI (and DBTYPES_NEO4J_USERNAME, DBTYPES_NEO4J_PASSWORD) to run.
func TestTableCounts(t *testing.T) {
	t.Parallel()

	rows := []map[string]any{
		flattenRecord([]string{"schema", "tables"}, []any{"public", int64(15)}),
		flattenRecord([]string{"schema", "tables"}, []any{"reporting", int64(2)}),
		flattenRecord([]string{"schema", "tables"}, []any{nil, int64(9)}),
	}

	assert.Equal(t, map[string]int64{"public": 15, "reporting": 2}, tableCounts(rows))
	assert.Empty(t, tableCounts(nil))
}

func TestExport_Integration(t *testing.T) {
	uri := os.Getenv("DBTYPES_NEO4J_URI")
	if uri == "" {
		t.Skip("DBTYPES_NEO4J_URI not set")
	}

	ctx := t.Context()

	exp, err := New(ctx, &dbtypes.Neo4jConfig{
		URI:      uri,
		Username: os.Getenv("DBTYPES_NEO4J_USERNAME"),
		Password: os.Getenv("DBTYPES_NEO4J_PASSWORD"),
	})
	require.NoError(t, err)

	defer func() { _ = exp.Close(ctx) }()

	stats, err := exp.Export(ctx, quizdb.Database)
	require.NoError(t, err)
	assert.Equal(t, len(Statements(quizdb.Database)), stats.Statements)

	again, err := exp.Export(ctx, quizdb.Database)
	require.NoError(t, err)
	assert.Zero(t, again.NodesCreated, "export is idempotent")
	assert.Zero(t, again.RelationshipsCreated, "export is idempotent")

	counts, err := exp.CountTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15), counts["public"])
}
