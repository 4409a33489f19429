package analysis

import (
	"fmt"
	"strings"
)

// DiagnosticSeverity ranks diagnostics.
type DiagnosticSeverity int

// Severity levels, most severe first.
const (
	SeverityError DiagnosticSeverity = iota + 1
	SeverityWarning
	SeverityInfo
)

// String returns the lower-case severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity name. An empty string means error.
func ParseSeverity(s string) (DiagnosticSeverity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info", "hint":
		return SeverityInfo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
}

// Diagnostic is a single finding about a schema entry.
type Diagnostic struct {
	Code     string
	Severity DiagnosticSeverity
	Schema   string
	Table    string
	Message  string
}

// String renders "schema.table: severity: message [code]".
func (d Diagnostic) String() string {
	loc := d.Schema
	if d.Table != "" {
		loc += "." + d.Table
	}

	return fmt.Sprintf("%s: %s: %s [%s]", loc, d.Severity, d.Message, d.Code)
}

// Report collects diagnostics from an analysis run.
type Report struct {
	Diagnostics []Diagnostic
}

// HasErrors reports whether any diagnostic is an error.
func (r *Report) HasErrors() bool {
	return len(r.Errors()) > 0
}

// Errors returns error-level diagnostics.
func (r *Report) Errors() []Diagnostic {
	return r.bySeverity(SeverityError)
}

// Warnings returns warning-level diagnostics.
func (r *Report) Warnings() []Diagnostic {
	return r.bySeverity(SeverityWarning)
}

// ByCode returns diagnostics with the given code.
func (r *Report) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, d := range r.Diagnostics {
		if d.Code == code {
			out = append(out, d)
		}
	}

	return out
}

func (r *Report) bySeverity(sev DiagnosticSeverity) []Diagnostic {
	var out []Diagnostic

	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}

	return out
}
