package analysis

import (
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
)

// Analyzer runs structural rules over a registry.
type Analyzer struct {
	rules []*Rule
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRules replaces the rule set.
func WithRules(rules []*Rule) Option {
	return func(a *Analyzer) {
		a.rules = rules
	}
}

// WithExtraRules appends rules to the current set.
func WithExtraRules(rules ...*Rule) Option {
	return func(a *Analyzer) {
		a.rules = append(a.rules, rules...)
	}
}

// WithoutRules removes rules by name.
func WithoutRules(names ...string) Option {
	return func(a *Analyzer) {
		kept := a.rules[:0:0]

		for _, r := range a.rules {
			disabled := false

			for _, n := range names {
				if r.Name == n {
					disabled = true
					break
				}
			}

			if !disabled {
				kept = append(kept, r)
			}
		}

		a.rules = kept
	}
}

// NewAnalyzer creates an analyzer with the default rules.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{rules: DefaultRules()}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Rules returns the configured rules.
func (a *Analyzer) Rules() []*Rule {
	return a.rules
}

// Analyze runs every rule against every table and view.
// Diagnostics are ordered by schema, then tables before views by name, then rule.
func (a *Analyzer) Analyze(db *dbtypes.Database) *Report {
	report := &Report{Diagnostics: []Diagnostic{}}

	for _, target := range Targets(db) {
		for _, rule := range a.rules {
			report.Diagnostics = append(report.Diagnostics, RunRule(rule, target)...)
		}
	}

	return report
}

// Check analyzes db with the default rules adjusted by opts.
func Check(db *dbtypes.Database, opts ...Option) *Report {
	return NewAnalyzer(opts...).Analyze(db)
}

// Targets lists every table and view of db in check order.
func Targets(db *dbtypes.Database) []*Target {
	var targets []*Target

	for _, schemaName := range db.SchemaNames() {
		schema := db.Schemas[schemaName]

		for _, name := range schema.TableNames() {
			targets = append(targets, &Target{Database: db, Schema: schema, Table: schema.Tables[name]})
		}

		for _, name := range schema.ViewNames() {
			targets = append(targets, &Target{Database: db, Schema: schema, Table: schema.Views[name], IsView: true})
		}
	}

	return targets
}

// RunRule runs a single rule against a target and returns its diagnostics.
func RunRule(rule *Rule, target *Target) []Diagnostic {
	t := &Target{
		Database: target.Database,
		Schema:   target.Schema,
		Table:    target.Table,
		IsView:   target.IsView,
		rule:     rule,
	}

	rule.Run(t)

	return t.diagnostics
}
