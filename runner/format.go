package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/nmsdosti/newquiz4-sub001/analysis"
)

// Formatter renders check events and results.
type Formatter interface {
	Format(event Event, result *Result) error
	Summary(result *Result) error
}

// FormatHandler is a Handler that delegates to a Formatter.
type FormatHandler struct {
	formatter Formatter
	stderr    io.Writer
}

// NewFormatHandler creates a handler that formats events.
func NewFormatHandler(f Formatter, stderr io.Writer) *FormatHandler {
	return &FormatHandler{formatter: f, stderr: stderr}
}

// Event formats the event.
func (h *FormatHandler) Event(_ context.Context, event Event, result *Result) error {
	return h.formatter.Format(event, result)
}

// Err writes to stderr.
func (h *FormatHandler) Err(text string) error {
	_, err := h.stderr.Write([]byte(text + "\n"))

	return err
}

// Summary renders the final summary.
func (h *FormatHandler) Summary(result *Result) error {
	return h.formatter.Summary(result)
}

// -----------------------------------------------------------------------------
// Dots Formatter
// -----------------------------------------------------------------------------

// DotsFormatter is a minimal formatter that prints dots for progress.
type DotsFormatter struct {
	w     io.Writer
	count int
}

// NewDotsFormatter creates a dots formatter.
func NewDotsFormatter(w io.Writer) *DotsFormatter {
	return &DotsFormatter{w: w}
}

const lineWidth = 80

// Format prints a single character per terminal event.
func (d *DotsFormatter) Format(event Event, _ *Result) error {
	var char string

	switch event.Action {
	case ActionPass:
		char = "."
		if len(event.Diagnostics) > 0 {
			char = "W"
		}
	case ActionFail:
		char = "F"
	case ActionSkip:
		char = "S"
	case ActionError:
		char = "E"
	case ActionRun, ActionOutput:
		return nil
	}

	_, err := fmt.Fprint(d.w, char)
	d.count++

	if d.count%lineWidth == 0 {
		_, _ = fmt.Fprintln(d.w)
	}

	return err
}

// Summary prints failures grouped by relation, then warnings, then totals.
func (d *DotsFormatter) Summary(result *Result) error {
	if d.count > 0 && d.count%lineWidth != 0 {
		_, _ = fmt.Fprintln(d.w)
	}

	_, _ = fmt.Fprintln(d.w)

	var relation string

	for _, cr := range result.FailedChecks() {
		if rel := cr.Relation(); rel != relation {
			if relation != "" {
				_, _ = fmt.Fprintln(d.w)
			}

			relation = rel
			_, _ = fmt.Fprintln(d.w, relation)
		}

		if cr.Status == ActionError {
			_, _ = fmt.Fprintf(d.w, "  ERROR %s: %v\n", cr.RuleName(), cr.Error)

			continue
		}

		_, _ = fmt.Fprintf(d.w, "  FAIL %s\n", cr.RuleName())

		for _, diag := range cr.Diagnostics {
			if diag.Severity == analysis.SeverityError {
				_, _ = fmt.Fprintf(d.w, "    %s\n", diag)
			}
		}
	}

	if relation != "" {
		_, _ = fmt.Fprintln(d.w)
	}

	warnings := result.Warnings()
	if len(warnings) > 0 {
		_, _ = fmt.Fprintln(d.w, "warnings:")

		for _, diag := range warnings {
			_, _ = fmt.Fprintf(d.w, "  %s\n", diag)
		}

		_, _ = fmt.Fprintln(d.w)
	}

	status := "PASS"
	if !result.Ok() {
		status = "FAIL"
	}

	_, _ = fmt.Fprintf(d.w, "%s %d checks, %d passed, %d failed, %d errors, %d warnings in %s\n",
		status,
		result.Total,
		result.Passed,
		result.Failed,
		result.Errors,
		len(warnings),
		result.Elapsed().Round(time.Millisecond),
	)

	return nil
}

// -----------------------------------------------------------------------------
// Verbose Formatter
// -----------------------------------------------------------------------------

// VerboseFormatter prints full check names and diagnostics.
type VerboseFormatter struct {
	w io.Writer
}

// NewVerboseFormatter creates a verbose formatter.
func NewVerboseFormatter(w io.Writer) *VerboseFormatter {
	return &VerboseFormatter{w: w}
}

// Format prints each event as it occurs.
func (v *VerboseFormatter) Format(event Event, _ *Result) error {
	switch event.Action {
	case ActionRun:
		_, _ = fmt.Fprintf(v.w, "=== RUN   %s\n", event.PathString())
	case ActionPass:
		_, _ = fmt.Fprintf(v.w, "--- PASS: %s (%s)\n", event.PathString(), event.Elapsed)
	case ActionFail:
		_, _ = fmt.Fprintf(v.w, "--- FAIL: %s (%s)\n", event.PathString(), event.Elapsed)
	case ActionSkip:
		_, _ = fmt.Fprintf(v.w, "--- SKIP: %s (%s)\n", event.PathString(), event.Elapsed)
	case ActionError:
		_, _ = fmt.Fprintf(v.w, "--- ERROR: %s (%s)\n", event.PathString(), event.Elapsed)
		_, _ = fmt.Fprintf(v.w, "    %v\n", event.Error)
	case ActionOutput:
		_, _ = fmt.Fprintf(v.w, "    %s\n", event.Output)
	}

	return nil
}

// Summary prints the final results.
func (v *VerboseFormatter) Summary(result *Result) error {
	_, _ = fmt.Fprintln(v.w)

	status := "PASS"
	if !result.Ok() {
		status = "FAIL"
	}

	_, _ = fmt.Fprintf(v.w, "%s\n", status)
	_, _ = fmt.Fprintf(v.w, "  %d total, %d passed, %d failed, %d skipped, %d errors, %d warnings\n",
		result.Total,
		result.Passed,
		result.Failed,
		result.Skipped,
		result.Errors,
		len(result.Warnings()),
	)
	_, _ = fmt.Fprintf(v.w, "  elapsed: %s\n", result.Elapsed().Round(time.Millisecond))

	return nil
}

// -----------------------------------------------------------------------------
// JSON Formatter
// -----------------------------------------------------------------------------

// JSONFormatter outputs newline-delimited JSON events.
type JSONFormatter struct {
	enc *json.Encoder
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{enc: json.NewEncoder(w)}
}

type jsonEvent struct {
	Time        string           `json:"time"`
	Action      string           `json:"action"`
	Source      string           `json:"source,omitempty"`
	Path        string           `json:"path"`
	Relation    string           `json:"relation,omitempty"`
	Rule        string           `json:"rule,omitempty"`
	Elapsed     float64          `json:"elapsed,omitempty"`
	Output      string           `json:"output,omitempty"`
	Error       string           `json:"error,omitempty"`
	Diagnostics []jsonDiagnostic `json:"diagnostics,omitempty"`
}

type jsonDiagnostic struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Format outputs a JSON event.
func (j *JSONFormatter) Format(event Event, _ *Result) error {
	je := jsonEvent{
		Time:     event.Time.Format(time.RFC3339Nano),
		Action:   string(event.Action),
		Source:   event.Source,
		Path:     event.PathString(),
		Relation: event.Relation(),
		Rule:     event.RuleName(),
		Output:   event.Output,
	}

	if event.Action.IsTerminal() {
		je.Elapsed = event.Elapsed.Seconds()
	}

	if event.Error != nil {
		je.Error = event.Error.Error()
	}

	for _, d := range event.Diagnostics {
		je.Diagnostics = append(je.Diagnostics, jsonDiagnostic{
			Code:     d.Code,
			Severity: d.Severity.String(),
			Message:  d.Message,
		})
	}

	return j.enc.Encode(je)
}

type jsonSummary struct {
	Action   string  `json:"action"`
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Skipped  int     `json:"skipped"`
	Errors   int     `json:"errors"`
	Warnings int     `json:"warnings"`
	Elapsed  float64 `json:"elapsed"`
	Ok       bool    `json:"ok"`
}

// Summary outputs the final JSON summary.
func (j *JSONFormatter) Summary(result *Result) error {
	return j.enc.Encode(jsonSummary{
		Action:   "summary",
		Total:    result.Total,
		Passed:   result.Passed,
		Failed:   result.Failed,
		Skipped:  result.Skipped,
		Errors:   result.Errors,
		Warnings: len(result.Warnings()),
		Elapsed:  result.Elapsed().Seconds(),
		Ok:       result.Ok(),
	})
}

// Formatter names accepted by NewFormatter.
const (
	FormatDots    = "dots"
	FormatVerbose = "verbose"
	FormatJSON    = "json"
	FormatTUI     = "tui"
)

// NewFormatter creates a plain formatter by name. Unknown names use dots.
func NewFormatter(name string, w io.Writer) Formatter { //nolint:ireturn
	switch name {
	case FormatVerbose:
		return NewVerboseFormatter(w)
	case FormatJSON:
		return NewJSONFormatter(w)
	default:
		return NewDotsFormatter(w)
	}
}
