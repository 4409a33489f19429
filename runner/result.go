package runner

import (
	"strings"
	"sync"
	"time"

	"github.com/nmsdosti/newquiz4-sub001/analysis"
)

// Result accumulates check results during execution.
type Result struct {
	mu sync.RWMutex

	StartTime time.Time
	EndTime   time.Time

	Total   int
	Passed  int
	Failed  int
	Skipped int
	Errors  int

	// Checks indexed by path string: "public/users/empty-table"
	Checks map[string]*CheckResult

	// Order preserves insertion order for display
	Order []string
}

// NewResult creates an initialized Result.
func NewResult() *Result {
	return &Result{
		StartTime: time.Now(),
		Checks:    make(map[string]*CheckResult),
	}
}

// Add records a terminal event in the result.
func (r *Result) Add(event Event) {
	if !event.Action.IsTerminal() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := event.PathString()

	cr := &CheckResult{
		Path:        event.Path,
		Status:      event.Action,
		Elapsed:     event.Elapsed,
		Error:       event.Error,
		Diagnostics: event.Diagnostics,
	}

	if prev, ok := r.Checks[path]; ok {
		cr.Output = prev.Output
	} else {
		r.Order = append(r.Order, path)
	}

	r.Checks[path] = cr
	r.Total++

	switch event.Action {
	case ActionPass:
		r.Passed++
	case ActionFail:
		r.Failed++
	case ActionSkip:
		r.Skipped++
	case ActionError:
		r.Errors++
	case ActionRun, ActionOutput:
		// Not terminal actions
	}
}

// AddOutput appends output to an existing check result.
func (r *Result) AddOutput(event Event) {
	if event.Action != ActionOutput {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := event.PathString()
	if cr, ok := r.Checks[path]; ok {
		cr.Output = append(cr.Output, event.Output)
	}
}

// Finish marks the result as complete.
func (r *Result) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.EndTime = time.Now()
}

// Elapsed returns the total execution time.
func (r *Result) Elapsed() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}

	return r.EndTime.Sub(r.StartTime)
}

// Ok returns true if every check passed.
func (r *Result) Ok() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.Failed == 0 && r.Errors == 0
}

// FailedChecks returns all failed check results.
func (r *Result) FailedChecks() []*CheckResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var failed []*CheckResult

	for _, path := range r.Order {
		cr := r.Checks[path]
		if cr.Status == ActionFail || cr.Status == ActionError {
			failed = append(failed, cr)
		}
	}

	return failed
}

// Diagnostics returns every diagnostic recorded, in check order.
func (r *Result) Diagnostics() []analysis.Diagnostic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []analysis.Diagnostic
	for _, path := range r.Order {
		out = append(out, r.Checks[path].Diagnostics...)
	}

	return out
}

// Warnings returns every warning-severity diagnostic, in check order.
func (r *Result) Warnings() []analysis.Diagnostic {
	var out []analysis.Diagnostic

	for _, d := range r.Diagnostics() {
		if d.Severity == analysis.SeverityWarning {
			out = append(out, d)
		}
	}

	return out
}

// CheckResult holds the outcome of a single rule on a single table.
type CheckResult struct {
	Path        []string
	Status      Action
	Elapsed     time.Duration
	Error       error
	Output      []string
	Diagnostics []analysis.Diagnostic
}

// PathString returns the path as a slash-separated string.
func (cr *CheckResult) PathString() string {
	return strings.Join(cr.Path, "/")
}

// Relation returns "schema.table" for the checked relation.
func (cr *CheckResult) Relation() string {
	if len(cr.Path) < 2 {
		return cr.PathString()
	}

	return cr.Path[0] + "." + cr.Path[1]
}

// RuleName returns the rule component of the path.
func (cr *CheckResult) RuleName() string {
	if len(cr.Path) == 0 {
		return ""
	}

	return cr.Path[len(cr.Path)-1]
}
