// Package runner executes schema checks table by table and streams the
// outcome of every check as events to pluggable handlers.
package runner

import (
	"strings"
	"time"

	"github.com/nmsdosti/newquiz4-sub001/analysis"
)

// Action represents the type of check event.
type Action string

// Action constants for check events.
const (
	ActionRun    Action = "run"
	ActionPass   Action = "passed"
	ActionFail   Action = "failed"
	ActionSkip   Action = "skipped"
	ActionError  Action = "error"
	ActionOutput Action = "output"
)

// IsTerminal returns true if this action ends a check.
func (a Action) IsTerminal() bool {
	return a == ActionPass || a == ActionFail || a == ActionSkip || a == ActionError
}

// Event represents a single check event emitted during execution.
type Event struct {
	Time    time.Time     // When the event occurred
	Action  Action        // What happened
	Source  string        // Schema file the registry was loaded from
	Path    []string      // Check path: ["public", "users", "no-primary-key-column"]
	Elapsed time.Duration // Time taken (for terminal events)
	Output  string        // Diagnostic text (for ActionOutput)
	Error   error         // Error details (for ActionError)

	// Diagnostics reported by the rule (for ActionFail and ActionPass with warnings).
	Diagnostics []analysis.Diagnostic
}

// PathString returns the path as a slash-separated string.
func (e Event) PathString() string {
	return strings.Join(e.Path, "/")
}

// ID returns a unique identifier: "source::path::components".
func (e Event) ID() string {
	if e.Source == "" {
		return strings.Join(e.Path, "::")
	}

	return e.Source + "::" + strings.Join(e.Path, "::")
}

// RuleName returns the leaf rule name.
func (e Event) RuleName() string {
	if len(e.Path) == 0 {
		return ""
	}

	return e.Path[len(e.Path)-1]
}

// Relation returns "schema.table" for a check path.
func (e Event) Relation() string {
	if len(e.Path) < 2 {
		return strings.Join(e.Path, ".")
	}

	return e.Path[0] + "." + e.Path[1]
}
