package analysis_test

import (
	"testing"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) *dbtypes.Database {
	t.Helper()

	db, err := analysis.ParseSchema([]byte(input))
	require.NoError(t, err)

	return db
}

func analyze(t *testing.T, input string, opts ...analysis.Option) *analysis.Report {
	t.Helper()

	return analysis.Check(parse(t, input), opts...)
}

func assertHasDiagnostic(t *testing.T, result *analysis.Report, code string) {
	t.Helper()

	for _, d := range result.Diagnostics {
		if d.Code == code {
			return
		}
	}

	t.Errorf("expected diagnostic %q, got:", code)

	for _, d := range result.Diagnostics {
		t.Logf("  %s", d)
	}
}

func assertNoDiagnostic(t *testing.T, result *analysis.Report, code string) {
	t.Helper()

	for _, d := range result.Diagnostics {
		if d.Code == code {
			t.Errorf("unexpected diagnostic %q: %s", code, d.Message)
		}
	}
}

const validSchema = `
schemas:
  public:
    tables:
      quizzes:
        columns:
          - {name: id, type: text, default: gen_random_uuid()}
          - {name: title, type: text}
          - {name: status, type: quiz_status, default: "'draft'"}
      questions:
        columns:
          - {name: id, type: text, default: gen_random_uuid()}
          - {name: quiz_id, type: text}
          - {name: question_text, type: text}
          - {name: image_url, type: text, nullable: true}
        relationships:
          - foreign_key_name: questions_quiz_id_fkey
            columns: [quiz_id]
            referenced_relation: quizzes
            referenced_columns: [id]
    enums:
      quiz_status: [draft, live]
`

func TestValidSchema_NoDiagnostics(t *testing.T) {
	t.Parallel()

	result := analyze(t, validSchema)
	assert.Empty(t, result.Diagnostics)
	assert.False(t, result.HasErrors())
}

func TestEmptyTable(t *testing.T) {
	t.Parallel()

	result := analyze(t, `
schemas:
  public:
    tables:
      nothing:
        columns: []
`)
	assertHasDiagnostic(t, result, "empty-table")
	assertNoDiagnostic(t, result, "no-primary-key-column")
	assert.True(t, result.HasErrors())
}

func TestDuplicateColumn(t *testing.T) {
	t.Parallel()

	result := analyze(t, `
schemas:
  public:
    tables:
      users:
        columns:
          - {name: id, type: text}
          - {name: email, type: text}
          - {name: email, type: text}
`)
	assertHasDiagnostic(t, result, "duplicate-column")
	require.Len(t, result.ByCode("duplicate-column"), 1)
	assert.Equal(t, "users", result.ByCode("duplicate-column")[0].Table)
}

func TestUnknownType(t *testing.T) {
	t.Parallel()

	result := analyze(t, `
schemas:
  public:
    tables:
      users:
        columns:
          - {name: id, type: text}
          - {name: role, type: user_role}
          - {name: roles, type: "user_role[]"}
          - {name: home, type: address}
    composite_types:
      address:
        - {name: street, type: text}
`)
	diags := result.ByCode("unknown-type")
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Message, "role")
	assert.Contains(t, diags[1].Message, "roles")
}

func TestRelationshipRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rel  string
		code string
	}{
		{
			name: "unknown source column",
			rel:  "{foreign_key_name: fk, columns: [missing], referenced_relation: quizzes, referenced_columns: [id]}",
			code: "unknown-relationship-column",
		},
		{
			name: "unknown target",
			rel:  "{foreign_key_name: fk, columns: [quiz_id], referenced_relation: nowhere, referenced_columns: [id]}",
			code: "unknown-relationship-target",
		},
		{
			name: "unknown target schema",
			rel:  "{foreign_key_name: fk, columns: [quiz_id], referenced_schema: archive, referenced_relation: quizzes, referenced_columns: [id]}",
			code: "unknown-relationship-target",
		},
		{
			name: "unknown referenced column",
			rel:  "{foreign_key_name: fk, columns: [quiz_id], referenced_relation: quizzes, referenced_columns: [uuid]}",
			code: "unknown-referenced-column",
		},
		{
			name: "arity",
			rel:  "{foreign_key_name: fk, columns: [quiz_id], referenced_relation: quizzes, referenced_columns: [id, title]}",
			code: "relationship-arity",
		},
		{
			name: "no columns",
			rel:  "{foreign_key_name: fk, columns: [], referenced_relation: quizzes, referenced_columns: []}",
			code: "relationship-arity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := analyze(t, `
schemas:
  public:
    tables:
      quizzes:
        columns:
          - {name: id, type: text}
          - {name: title, type: text}
      questions:
        columns:
          - {name: id, type: text}
          - {name: quiz_id, type: text}
        relationships:
          - `+tt.rel+`
`)
			assertHasDiagnostic(t, result, tt.code)
			assert.True(t, result.HasErrors())
		})
	}
}

func TestRelationshipToView(t *testing.T) {
	t.Parallel()

	result := analyze(t, `
schemas:
  public:
    tables:
      notes:
        columns:
          - {name: id, type: text}
          - {name: summary_id, type: text}
        relationships:
          - {foreign_key_name: notes_summary_id_fkey, columns: [summary_id], referenced_relation: summaries, referenced_columns: [id]}
    views:
      summaries:
        columns:
          - {name: id, type: text, nullable: true}
`)
	assertNoDiagnostic(t, result, "unknown-relationship-target")
	assertNoDiagnostic(t, result, "unknown-referenced-column")
}

func TestCrossSchemaRelationship(t *testing.T) {
	t.Parallel()

	result := analyze(t, `
schemas:
  auth:
    tables:
      users:
        columns:
          - {name: id, type: text}
  public:
    tables:
      users:
        columns:
          - {name: uuid, type: text}
      profiles:
        columns:
          - {name: user_id, type: text}
        relationships:
          - {foreign_key_name: profiles_user_id_fkey, columns: [user_id], referenced_schema: auth, referenced_relation: users, referenced_columns: [id]}
`)
	assert.False(t, result.HasErrors(), "%v", result.Errors())
	assertNoDiagnostic(t, result, "unknown-referenced-column")
}

func TestDuplicateForeignKey(t *testing.T) {
	t.Parallel()

	result := analyze(t, `
schemas:
  public:
    tables:
      a:
        columns:
          - {name: id, type: text}
          - {name: b_id, type: text}
        relationships:
          - {foreign_key_name: shared_fkey, columns: [b_id], referenced_relation: b, referenced_columns: [id]}
      b:
        columns:
          - {name: id, type: text}
          - {name: a_id, type: text}
        relationships:
          - {foreign_key_name: shared_fkey, columns: [a_id], referenced_relation: a, referenced_columns: [id]}
`)
	diags := result.ByCode("duplicate-foreign-key")
	require.Len(t, diags, 1)
	assert.Equal(t, "b", diags[0].Table)
	assert.Contains(t, diags[0].Message, "already declared on a")
}

func TestWarnings(t *testing.T) {
	t.Parallel()

	result := analyze(t, `
schemas:
  public:
    tables:
      scores:
        columns:
          - {name: player, type: text, nullable: true}
          - {name: points, type: integer}
        relationships:
          - {foreign_key_name: scores_player_fkey, columns: [player], referenced_relation: players, referenced_columns: [nickname]}
      players:
        columns:
          - {name: id, type: text}
          - {name: nickname, type: text}
    views:
      leaderboard:
        columns:
          - {name: nickname, type: text, nullable: true}
`)
	assertHasDiagnostic(t, result, "no-primary-key-column")
	assertHasDiagnostic(t, result, "nullable-foreign-key")
	assert.False(t, result.HasErrors())
	assert.Len(t, result.Warnings(), 2, "views are not expected to carry an id")
}

func TestShapeDrift(t *testing.T) {
	t.Parallel()

	table := &dbtypes.Table{
		Name: "players",
		Columns: []*dbtypes.Column{
			{Name: "id", Type: dbtypes.TypeText, HasDefault: true},
			{Name: "nickname", Type: dbtypes.TypeText},
			{Name: "avatar", Type: dbtypes.TypeText, Nullable: true},
		},
	}

	row := table.Row()
	assert.Empty(t, analysis.CheckInsertShape(table, row, table.Insert()))
	assert.Empty(t, analysis.CheckUpdateShape(row, table.Update()))

	insert := table.Insert()
	insert.Fields[0].Optional = false
	insert.Fields = append(insert.Fields, dbtypes.Field{Name: "invented", Type: dbtypes.TypeText})
	problems := analysis.CheckInsertShape(table, row, insert)
	assert.Len(t, problems, 2)

	update := table.Update()
	update.Fields = update.Fields[:2]
	update.Fields[1].Optional = false
	update.Fields[1].Type = dbtypes.TypeInteger
	problems = analysis.CheckUpdateShape(row, update)
	assert.Len(t, problems, 3)
}

func TestExprRules(t *testing.T) {
	t.Parallel()

	rules, err := analysis.RulesFromConfig(dbtypes.CheckConfig{
		Disable: []string{"no-primary-key-column"},
		Rules: []dbtypes.RuleConfig{
			{Name: "has-created-at", Expr: `"created_at" in Columns`, Severity: "warning"},
			{Name: "small-tables", Expr: "ColumnCount < 3"},
			{Name: "broken", Expr: "Columns +"},
		},
	})
	require.NoError(t, err)

	result := analyze(t, validSchema, analysis.WithRules(rules))

	created := result.ByCode("has-created-at")
	require.Len(t, created, 2)
	assert.Equal(t, analysis.SeverityWarning, created[0].Severity)

	small := result.ByCode("small-tables")
	require.Len(t, small, 2)
	assert.Equal(t, analysis.SeverityError, small[0].Severity)

	assertHasDiagnostic(t, result, analysis.InvalidRuleCode)
}

func TestRulesFromConfig_Errors(t *testing.T) {
	t.Parallel()

	_, err := analysis.RulesFromConfig(dbtypes.CheckConfig{Disable: []string{"no-such-rule"}})
	require.ErrorIs(t, err, analysis.ErrUnknownRule)

	_, err = analysis.RulesFromConfig(dbtypes.CheckConfig{
		Rules: []dbtypes.RuleConfig{{Name: "x", Expr: "true", Severity: "fatal"}},
	})
	require.ErrorIs(t, err, analysis.ErrUnknownSeverity)

	_, err = analysis.NewExprRule("x", "ColumnCount", "", analysis.SeverityError)
	require.ErrorIs(t, err, analysis.ErrInvalidRule)
}

func TestWithoutRules(t *testing.T) {
	t.Parallel()

	a := analysis.NewAnalyzer(analysis.WithoutRules("empty-table", "duplicate-column"))

	for _, r := range a.Rules() {
		assert.NotEqual(t, "empty-table", r.Name)
		assert.NotEqual(t, "duplicate-column", r.Name)
	}

	assert.Len(t, a.Rules(), len(analysis.DefaultRules())-2)
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]analysis.DiagnosticSeverity{
		"":        analysis.SeverityError,
		"ERROR":   analysis.SeverityError,
		"warn":    analysis.SeverityWarning,
		"warning": analysis.SeverityWarning,
		"info":    analysis.SeverityInfo,
	} {
		got, err := analysis.ParseSeverity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
