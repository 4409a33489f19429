package quizdb_test

import (
	"encoding/json"
	"os"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/analysis"
	"github.com/nmsdosti/newquiz4-sub001/dialects/sql"
	"github.com/nmsdosti/newquiz4-sub001/quizdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tableNames = []string{
	"anytime_participants",
	"anytime_quiz_answers",
	"anytime_quiz_players",
	"anytime_quiz_sessions",
	"email_queue",
	"game_answers",
	"game_players",
	"game_sessions",
	"options",
	"poll_answers",
	"poll_players",
	"poll_sessions",
	"questions",
	"quizzes",
	"users",
}

func TestDatabase_MatchesInventory(t *testing.T) {
	t.Parallel()

	inventory, err := analysis.LoadSchema("../schema/quiz.schema.yaml", "")
	require.NoError(t, err)

	if diff := cmp.Diff(inventory, quizdb.Database); diff != "" {
		t.Errorf("registry drifted from schema/quiz.schema.yaml (-inventory +generated):\n%s", diff)
	}
}

func TestDatabase_MatchesDDL(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("../schema/quiz.sql")
	require.NoError(t, err)

	imported, err := sql.Import(src)
	require.NoError(t, err)

	if diff := cmp.Diff(imported, quizdb.Database); diff != "" {
		t.Errorf("registry drifted from schema/quiz.sql (-imported +generated):\n%s", diff)
	}
}

func TestDatabase_Inventory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"public"}, quizdb.Database.SchemaNames())

	public, ok := quizdb.Database.Schema("public")
	require.True(t, ok)

	assert.Equal(t, tableNames, public.TableNames())
	assert.Empty(t, public.ViewNames())
	assert.Empty(t, public.FunctionNames())
	assert.Empty(t, public.EnumNames())
	assert.Empty(t, public.CompositeTypeNames())

	assert.Len(t, quizdb.Database.Relationships(), 14)

	for _, name := range tableNames {
		table, _ := public.Table(name)

		switch name {
		case "email_queue", "quizzes", "users":
			assert.Empty(t, table.Relationships, name)
		default:
			assert.NotEmpty(t, table.Relationships, name)
		}

		for _, rel := range table.Relationships {
			assert.False(t, rel.IsOneToOne, rel.ForeignKeyName)
			assert.Equal(t, []string{"id"}, rel.ReferencedColumns, rel.ForeignKeyName)
		}
	}
}

func TestDatabase_PassesChecks(t *testing.T) {
	t.Parallel()

	report := analysis.Check(quizdb.Database)
	assert.False(t, report.HasErrors(), "%v", report.Errors())
}

func TestTables(t *testing.T) {
	t.Parallel()

	handles := quizdb.Tables()
	require.Len(t, handles, len(tableNames))

	for i, h := range handles {
		assert.Equal(t, dbtypes.SelectIn("public", tableNames[i]), h.Selector())
	}
}

// TestGeneratedStructs checks every generated struct field against the
// projected shape: same names in order, Opt exactly where a field may be left
// out, a pointer exactly where the column is nullable.
func TestGeneratedStructs(t *testing.T) {
	t.Parallel()

	optional := reflect.TypeFor[dbtypes.Optional]()

	for _, h := range quizdb.Tables() {
		for kind, typ := range map[dbtypes.ShapeKind]reflect.Type{
			dbtypes.ShapeRow:    h.RowType(),
			dbtypes.ShapeInsert: h.InsertType(),
			dbtypes.ShapeUpdate: h.UpdateType(),
		} {
			shape := quizdb.Database.Project(h.Selector(), kind)
			require.False(t, shape.IsNever(), "%s %s", h.Selector(), kind)
			require.Equal(t, len(shape.Fields), typ.NumField(), "%s", typ.Name())

			for i, field := range shape.Fields {
				sf := typ.Field(i)
				name := typ.Name() + "." + sf.Name

				assert.Equal(t, field.Name, sf.Tag.Get("db"), name)

				goType := sf.Type
				if sf.Type.Implements(optional) {
					assert.True(t, field.Optional, "%s should be required", name)

					goType = reflect.Zero(sf.Type).Interface().(dbtypes.Optional).ElemType()
				} else {
					assert.False(t, field.Optional, "%s should be optional", name)
				}

				assert.Equal(t, field.Nullable, goType.Kind() == reflect.Pointer, name)

				if goType.Kind() == reflect.Pointer {
					goType = goType.Elem()
				}

				assert.Equal(t, wantKind(field.Type), goType.Kind(), name)
			}
		}
	}
}

func wantKind(t *dbtypes.Type) reflect.Kind {
	switch t.Kind {
	case dbtypes.TypeKindInteger:
		return reflect.Int64
	case dbtypes.TypeKindNumber:
		return reflect.Float64
	case dbtypes.TypeKindBoolean:
		return reflect.Bool
	default:
		return reflect.String
	}
}

func TestShapesDeriveFromRow(t *testing.T) {
	t.Parallel()

	for _, h := range quizdb.Tables() {
		table, ok := h.Describe(quizdb.Database)
		require.True(t, ok)

		row := h.Project(quizdb.Database, dbtypes.ShapeRow)

		assert.Empty(t, analysis.CheckInsertShape(table, row, h.Project(quizdb.Database, dbtypes.ShapeInsert)), h.Selector())
		assert.Empty(t, analysis.CheckUpdateShape(row, h.Project(quizdb.Database, dbtypes.ShapeUpdate)), h.Selector())
	}
}

func TestUnknownTableIsNever(t *testing.T) {
	t.Parallel()

	for _, kind := range []dbtypes.ShapeKind{dbtypes.ShapeRow, dbtypes.ShapeInsert, dbtypes.ShapeUpdate} {
		shape := quizdb.Database.Project(dbtypes.Select("nonexistent_table"), kind)
		assert.True(t, shape.IsNever(), kind)
		assert.Empty(t, shape.Fields)
	}
}

func TestUsersShapes(t *testing.T) {
	t.Parallel()

	insert := quizdb.Users.Project(quizdb.Database, dbtypes.ShapeInsert)
	assert.Equal(t, []string{"email"}, insert.Required())

	update := quizdb.Users.Project(quizdb.Database, dbtypes.ShapeUpdate)
	assert.Empty(t, update.Required())

	row := quizdb.Users.Project(quizdb.Database, dbtypes.ShapeRow)
	assert.Equal(t, []string{"id", "email", "full_name", "avatar_url", "created_at", "updated_at"}, row.FieldNames())
}

func TestInsertJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(quizdb.UsersInsert{Email: "host@example.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"host@example.com"}`, string(data))

	data, err = json.Marshal(quizdb.UsersInsert{
		Email:    "host@example.com",
		FullName: dbtypes.Some[*string](nil),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"host@example.com","full_name":null}`, string(data))

	data, err = json.Marshal(quizdb.GameSessionsUpdate{Status: dbtypes.Some("active")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"active"}`, string(data))
}
