package runner

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/analysis"
	"go.uber.org/zap"
)

// Runner executes every rule against every table and view of a registry.
type Runner struct {
	rules     []*analysis.Rule
	handler   Handler
	failFast  bool
	filter    *regexp.Regexp
	filterErr error
	log       *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithHandler sets the event handler.
func WithHandler(h Handler) Option {
	return func(r *Runner) {
		r.handler = h
	}
}

// WithFailFast stops on first failure.
func WithFailFast(enabled bool) Option {
	return func(r *Runner) {
		r.failFast = enabled
	}
}

// WithFilter sets a regex pattern to filter which checks run.
// Checks whose path ("schema/table/rule") matches the pattern are executed.
func WithFilter(pattern string) Option {
	return func(r *Runner) {
		if pattern == "" {
			return
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			r.filterErr = fmt.Errorf("%w: %w", ErrInvalidFilter, err)
			return
		}

		r.filter = re
	}
}

// WithRules replaces the default rule set.
func WithRules(rules []*analysis.Rule) Option {
	return func(r *Runner) {
		r.rules = rules
	}
}

// WithLogger sets the logger for run progress.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	r := &Runner{
		rules: analysis.DefaultRules(),
		log:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run checks db and returns the results. source names the file the registry
// was loaded from and is carried on every event.
func (r *Runner) Run(ctx context.Context, db *dbtypes.Database, source string) (*Result, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}

	if r.filterErr != nil {
		return nil, r.filterErr
	}

	result := NewResult()

	handlers := []Handler{NewResultHandler(), NewLogHandler(r.log)}
	if r.handler != nil {
		handlers = append(handlers, r.handler)
	}

	if r.failFast {
		handlers = append(handlers, NewStopOnFailHandler(1))
	}

	handler := NewMultiHandler(handlers...)

	targets := analysis.Targets(db)
	r.log.Debug("running checks",
		zap.String("source", source), zap.Int("targets", len(targets)), zap.Int("rules", len(r.rules)))

	for _, target := range targets {
		err := r.runTarget(ctx, target, source, handler, result)
		if errors.Is(err, ErrMaxFailures) {
			break
		}

		if err != nil {
			result.Finish()

			return result, err
		}
	}

	result.Finish()

	return result, nil
}

func (r *Runner) runTarget(
	ctx context.Context,
	target *analysis.Target,
	source string,
	handler Handler,
	result *Result,
) error {
	for _, rule := range r.rules {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := []string{target.Schema.Name, target.Table.Name, rule.Name}

		if !r.matchesFilter(path) {
			continue
		}

		if err := r.runCheck(ctx, rule, target, path, source, handler, result); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) runCheck(
	ctx context.Context,
	rule *analysis.Rule,
	target *analysis.Target,
	path []string,
	source string,
	handler Handler,
	result *Result,
) error {
	start := time.Now()

	_ = handler.Event(ctx, Event{
		Time:   start,
		Action: ActionRun,
		Source: source,
		Path:   path,
	}, result)

	diags, err := runRule(rule, target)

	event := Event{
		Time:        time.Now(),
		Action:      classify(diags),
		Source:      source,
		Path:        path,
		Elapsed:     time.Since(start),
		Diagnostics: diags,
	}

	if err != nil {
		event.Action = ActionError
		event.Error = err
	}

	if err := handler.Event(ctx, event, result); err != nil {
		return err
	}

	for _, d := range diags {
		out := Event{Time: time.Now(), Action: ActionOutput, Source: source, Path: path, Output: d.String()}
		if err := handler.Event(ctx, out, result); err != nil {
			return err
		}
	}

	return nil
}

// runRule runs rule and converts a panic or an invalid-rule diagnostic into an error.
func runRule(rule *analysis.Rule, target *analysis.Target) (diags []analysis.Diagnostic, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("rule %s panicked: %v", rule.Name, p)
		}
	}()

	diags = analysis.RunRule(rule, target)

	for _, d := range diags {
		if d.Code == analysis.InvalidRuleCode {
			return diags, errors.New(d.Message)
		}
	}

	return diags, nil
}

// classify maps a rule's diagnostics to a terminal action. Only error-level
// diagnostics fail a check.
func classify(diags []analysis.Diagnostic) Action {
	for _, d := range diags {
		if d.Severity == analysis.SeverityError {
			return ActionFail
		}
	}

	return ActionPass
}

// matchesFilter returns true if the check path matches the filter pattern.
// If no filter is set, all checks match.
func (r *Runner) matchesFilter(path []string) bool {
	if r.filter == nil {
		return true
	}

	return r.filter.MatchString(strings.Join(path, "/"))
}
