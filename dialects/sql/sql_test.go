package sql_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/analysis"
	"github.com/nmsdosti/newquiz4-sub001/dialects/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport(t *testing.T) {
	t.Parallel()

	db, err := sql.Import([]byte(`
CREATE TYPE quiz_status AS ENUM ('draft', 'live');
CREATE TYPE reporting.score_card AS (player text, points int4);

CREATE TABLE quizzes (
    id bigserial PRIMARY KEY,
    title varchar(200) NOT NULL,
    status quiz_status DEFAULT 'draft'::quiz_status NOT NULL,
    settings jsonb,
    ratio double precision
);

CREATE TABLE public.quiz_covers (
    quiz_id bigint PRIMARY KEY REFERENCES quizzes,
    url text NOT NULL
);

CREATE TABLE public.questions (
    id integer GENERATED ALWAYS AS IDENTITY,
    quiz_id bigint NOT NULL,
    labels text[] NOT NULL,
    PRIMARY KEY (id),
    FOREIGN KEY (quiz_id) REFERENCES quizzes (id) ON DELETE CASCADE
);
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"public", "reporting"}, db.SchemaNames())

	public, _ := db.Schema("public")
	assert.Equal(t, []string{"questions", "quiz_covers", "quizzes"}, public.TableNames())
	assert.Equal(t, []string{"draft", "live"}, public.Enums["quiz_status"].Values)

	want := []*dbtypes.Column{
		{Name: "id", Type: dbtypes.TypeInteger, Identity: true},
		{Name: "title", Type: dbtypes.TypeText},
		{Name: "status", Type: dbtypes.NamedType("quiz_status"), HasDefault: true, Default: "'draft'::quiz_status"},
		{Name: "settings", Type: dbtypes.TypeJSON, Nullable: true},
		{Name: "ratio", Type: dbtypes.TypeNumber, Nullable: true},
	}
	if diff := cmp.Diff(want, public.Tables["quizzes"].Columns); diff != "" {
		t.Errorf("quizzes columns mismatch (-want +got):\n%s", diff)
	}

	covers := public.Tables["quiz_covers"]
	require.Len(t, covers.Relationships, 1)
	assert.Equal(t, &dbtypes.Relationship{
		ForeignKeyName:     "quiz_covers_quiz_id_fkey",
		Columns:            []string{"quiz_id"},
		IsOneToOne:         true,
		ReferencedRelation: "quizzes",
		ReferencedColumns:  []string{"id"},
	}, covers.Relationships[0])

	questions := public.Tables["questions"]
	id, _ := questions.Column("id")
	assert.True(t, id.Identity)
	assert.False(t, id.Nullable)

	labels, _ := questions.Column("labels")
	assert.Equal(t, dbtypes.ArrayOf(dbtypes.TypeText), labels.Type)

	require.Len(t, questions.Relationships, 1)
	assert.Equal(t, "questions_quiz_id_fkey", questions.Relationships[0].ForeignKeyName)
	assert.False(t, questions.Relationships[0].IsOneToOne)

	reporting, _ := db.Schema("reporting")
	card := reporting.CompositeTypes["score_card"]
	require.Len(t, card.Attributes, 2)
	assert.Equal(t, dbtypes.TypeInteger, card.Attributes[1].Type)

	assert.False(t, analysis.Check(db).HasErrors())
}

func TestImport_Errors(t *testing.T) {
	t.Parallel()

	_, err := sql.Import([]byte("CREATE TABLE t (id text"))
	require.ErrorIs(t, err, sql.ErrParse)

	_, err = sql.Import([]byte("CREATE TABLE t (id text); CREATE TABLE t (id text);"))
	require.ErrorIs(t, err, sql.ErrDuplicate)

	_, err = sql.Import([]byte("CREATE TABLE t (id text); CREATE TABLE IF NOT EXISTS t (id text);"))
	require.NoError(t, err)

	_, err = sql.Import([]byte("CREATE TYPE m AS ENUM ('a'); CREATE TYPE m AS (x text);"))
	require.ErrorIs(t, err, sql.ErrDuplicate)
}

func TestMapType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		array    bool
		want     *dbtypes.Type
		identity bool
	}{
		{"TEXT", false, dbtypes.TypeText, false},
		{"timestamp  with time zone", false, dbtypes.TypeText, false},
		{"serial", false, dbtypes.TypeInteger, true},
		{"numeric", true, dbtypes.ArrayOf(dbtypes.TypeNumber), false},
		{"bool", false, dbtypes.TypeBoolean, false},
		{"mood", false, dbtypes.NamedType("mood"), false},
		{"Mood", false, dbtypes.NamedType("Mood"), false},
		{"bit varying", false, dbtypes.TypeText, false},
		{"foo varying", true, dbtypes.ArrayOf(dbtypes.TypeText), false},
	}

	for _, tt := range tests {
		got, identity := sql.MapType(tt.in, tt.array)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.identity, identity, tt.in)
	}
}

// importRoundTrip imports src, writes the schema file and loads it back.
func importRoundTrip(t *testing.T, src string) *dbtypes.Database {
	t.Helper()

	imported, err := sql.Import([]byte(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, analysis.WriteSchema(&buf, imported))

	db, err := analysis.ParseSchema(buf.Bytes())
	require.NoError(t, err, buf.String())

	return db
}

func TestImport_RoundTripTypes(t *testing.T) {
	t.Parallel()

	db := importRoundTrip(t, `
CREATE TYPE "Mood" AS ENUM ('happy', 'sad');

CREATE TABLE moods (
    id integer PRIMARY KEY,
    m "Mood" NOT NULL,
    history "Mood"[],
    flags bit varying(8),
    expires_at timestamptz DEFAULT (now() + '7 days'::interval) NOT NULL
);
`)

	public, _ := db.Schema("public")
	require.Contains(t, public.Enums, "Mood")

	moods := public.Tables["moods"]
	m, _ := moods.Column("m")
	assert.Equal(t, dbtypes.NamedType("Mood"), m.Type)

	history, _ := moods.Column("history")
	assert.Equal(t, dbtypes.ArrayOf(dbtypes.NamedType("Mood")), history.Type)

	flags, _ := moods.Column("flags")
	assert.Equal(t, dbtypes.TypeText, flags.Type)

	expires, _ := moods.Column("expires_at")
	assert.Equal(t, "(now() + '7 days'::interval)", expires.Default)
	assert.True(t, expires.HasDefault)

	report := analysis.Check(db)
	assert.False(t, report.HasErrors(), "%v", report.Errors())
}

func TestImport_CrossSchemaReference(t *testing.T) {
	t.Parallel()

	db := importRoundTrip(t, `
CREATE SCHEMA auth;
CREATE TABLE auth.users (id uuid PRIMARY KEY);
CREATE TABLE users (handle text PRIMARY KEY);
CREATE TABLE public.profiles (
    user_id uuid NOT NULL REFERENCES auth.users(id),
    owner uuid REFERENCES auth.users,
    handle text REFERENCES public.users
);
`)

	public, _ := db.Schema("public")
	rels := public.Tables["profiles"].Relationships
	require.Len(t, rels, 3)

	assert.Equal(t, "auth", rels[0].ReferencedSchema)
	assert.Equal(t, "users", rels[0].ReferencedRelation)
	assert.Equal(t, []string{"id"}, rels[1].ReferencedColumns)
	assert.Equal(t, "auth", rels[1].TargetSchema("public"))
	assert.Empty(t, rels[2].ReferencedSchema)
	assert.Equal(t, []string{"handle"}, rels[2].ReferencedColumns)

	target, ok := db.ReferencedTable("public", rels[0])
	require.True(t, ok)
	assert.Equal(t, []string{"id"}, target.ColumnNames())

	report := analysis.Check(db)
	assert.False(t, report.HasErrors(), "%v", report.Errors())
}

func TestImport_QuizSchema(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("../../schema/quiz.sql")
	require.NoError(t, err)

	db, err := sql.Import(src)
	require.NoError(t, err)

	public, ok := db.Schema(dbtypes.DefaultSchema)
	require.True(t, ok)
	assert.Len(t, public.Tables, 15)
	assert.Len(t, db.Relationships(), 14)

	for _, r := range db.Relationships() {
		assert.False(t, r.IsOneToOne, r.ForeignKeyName)
	}

	report := analysis.Check(db)
	assert.False(t, report.HasErrors(), "%v", report.Errors())
}

func TestDialectRegistered(t *testing.T) {
	t.Parallel()

	d, err := dbtypes.GetDialect("postgres")
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())
}
