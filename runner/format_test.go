package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nmsdosti/newquiz4-sub001/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var missingPK = analysis.Diagnostic{
	Code:     "no-primary-key-column",
	Severity: analysis.SeverityWarning,
	Schema:   "public",
	Table:    "users",
	Message:  "table has no id column",
}

var emptyTable = analysis.Diagnostic{
	Code:     "empty-table",
	Severity: analysis.SeverityError,
	Schema:   "public",
	Table:    "users",
	Message:  "table declares no columns",
}

func TestDotsFormatter_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	f := NewDotsFormatter(&buf)

	require.NoError(t, f.Format(Event{Action: ActionRun}, nil))
	require.NoError(t, f.Format(Event{Action: ActionOutput}, nil))
	assert.Zero(t, buf.Len(), "non-terminal events produce no output")

	_ = f.Format(Event{Action: ActionPass}, nil)
	_ = f.Format(Event{Action: ActionPass, Diagnostics: []analysis.Diagnostic{missingPK}}, nil)
	_ = f.Format(Event{Action: ActionFail}, nil)
	_ = f.Format(Event{Action: ActionSkip}, nil)
	_ = f.Format(Event{Action: ActionError}, nil)

	assert.Equal(t, ".WFSE", buf.String())
}

func TestDotsFormatter_Summary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	f := NewDotsFormatter(&buf)

	result := NewResult()
	result.Add(Event{Action: ActionPass, Path: []string{"public", "users", "duplicate-column"}})
	result.Add(Event{
		Action:      ActionPass,
		Path:        []string{"public", "users", "no-primary-key-column"},
		Diagnostics: []analysis.Diagnostic{missingPK},
	})
	result.Add(Event{
		Action:      ActionFail,
		Path:        []string{"public", "users", "empty-table"},
		Diagnostics: []analysis.Diagnostic{emptyTable},
	})
	result.Add(Event{Action: ActionError, Path: []string{"public", "users", "custom"}, Error: errors.New("boom")})
	result.Finish()

	require.NoError(t, f.Summary(result))

	got := buf.String()
	assert.Contains(t, got, "public.users\n"+
		"  FAIL empty-table\n"+
		"    public.users: error: table declares no columns [empty-table]\n"+
		"  ERROR custom: boom\n")
	assert.Contains(t, got, "warnings:\n  public.users: warning: table has no id column [no-primary-key-column]\n")
	assert.Contains(t, got, "FAIL 4 checks, 2 passed, 1 failed, 1 errors, 1 warnings in ")
}

func TestDotsFormatter_SummaryPass(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	f := NewDotsFormatter(&buf)

	result := NewResult()
	result.Add(Event{Action: ActionPass, Path: []string{"public", "users", "empty-table"}})
	result.Finish()

	require.NoError(t, f.Summary(result))

	got := buf.String()
	assert.NotContains(t, got, "warnings:")
	assert.Contains(t, got, "PASS 1 checks, 1 passed, 0 failed, 0 errors, 0 warnings in ")
}

func TestVerboseFormatter_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	f := NewVerboseFormatter(&buf)
	path := []string{"public", "users", "empty-table"}

	_ = f.Format(Event{Action: ActionRun, Path: path}, nil)
	assert.Equal(t, "=== RUN   public/users/empty-table\n", buf.String())

	buf.Reset()

	_ = f.Format(Event{Action: ActionPass, Path: path, Elapsed: 10 * time.Millisecond}, nil)
	assert.Equal(t, "--- PASS: public/users/empty-table (10ms)\n", buf.String())

	buf.Reset()

	_ = f.Format(Event{Action: ActionFail, Path: path}, nil)
	_ = f.Format(Event{Action: ActionOutput, Path: path, Output: emptyTable.String()}, nil)

	want := "--- FAIL: public/users/empty-table (0s)\n" +
		"    public.users: error: table declares no columns [empty-table]\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONFormatter_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	f := NewJSONFormatter(&buf)

	_ = f.Format(Event{
		Time:        time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Action:      ActionFail,
		Source:      "schema/quiz.schema.yaml",
		Path:        []string{"public", "users", "empty-table"},
		Elapsed:     50 * time.Millisecond,
		Diagnostics: []analysis.Diagnostic{emptyTable},
	}, nil)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "failed", got["action"])
	assert.Equal(t, "public/users/empty-table", got["path"])
	assert.Equal(t, "public.users", got["relation"])
	assert.Equal(t, "empty-table", got["rule"])
	assert.Equal(t, "schema/quiz.schema.yaml", got["source"])

	diags, ok := got["diagnostics"].([]any)
	require.True(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, map[string]any{
		"code":     "empty-table",
		"severity": "error",
		"message":  "table declares no columns",
	}, diags[0])
}

func TestJSONFormatter_Summary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	f := NewJSONFormatter(&buf)

	result := NewResult()
	result.Add(Event{Action: ActionPass, Path: []string{"a"}})
	result.Add(Event{Action: ActionFail, Path: []string{"b"}})
	result.Finish()

	require.NoError(t, f.Summary(result))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "summary", got["action"])
	assert.InDelta(t, 2, got["total"], 0)
	assert.InDelta(t, 0, got["warnings"], 0)
	assert.Equal(t, false, got["ok"])
}

func TestNewFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.IsType(t, &VerboseFormatter{}, NewFormatter(FormatVerbose, &buf))
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON, &buf))
	assert.IsType(t, &DotsFormatter{}, NewFormatter(FormatDots, &buf))
	assert.IsType(t, &DotsFormatter{}, NewFormatter("unknown", &buf))
}
