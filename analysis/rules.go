package analysis

import (
	"fmt"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
)

// Rule represents a structural check run once per table or view.
// Inspired by go/analysis.Analyzer pattern.
type Rule struct {
	// Name is a short identifier for the rule (used in diagnostic codes).
	Name string

	// Doc is a brief description of what the rule checks.
	Doc string

	// Severity is the default severity for diagnostics from this rule.
	Severity DiagnosticSeverity

	// Run executes the rule against a single target.
	Run func(t *Target)
}

// Target is the table or view a rule is currently looking at.
type Target struct {
	Database *dbtypes.Database
	Schema   *dbtypes.Schema
	Table    *dbtypes.Table
	IsView   bool

	rule        *Rule
	diagnostics []Diagnostic
}

// Reportf records a diagnostic for the running rule.
func (t *Target) Reportf(format string, args ...any) {
	code, sev := "", SeverityError
	if t.rule != nil {
		code, sev = t.rule.Name, t.rule.Severity
	}

	t.diagnostics = append(t.diagnostics, Diagnostic{
		Code:     code,
		Severity: sev,
		Schema:   t.Schema.Name,
		Table:    t.Table.Name,
		Message:  fmt.Sprintf(format, args...),
	})
}

// DefaultRules returns all built-in structural rules.
func DefaultRules() []*Rule {
	return []*Rule{
		// Error-level checks.
		emptyTableRule,
		duplicateColumnRule,
		unknownTypeRule,
		relationshipArityRule,
		unknownRelationshipColumnRule,
		unknownRelationshipTargetRule,
		unknownReferencedColumnRule,
		duplicateForeignKeyRule,
		insertShapeDriftRule,
		updateShapeDriftRule,

		// Warning-level checks.
		noPrimaryKeyColumnRule,
		nullableForeignKeyRule,
	}
}

// ----------------------------------------------------------------------------
// Rule: empty-table
// ----------------------------------------------------------------------------

var emptyTableRule = &Rule{
	Name:     "empty-table",
	Doc:      "Reports tables and views that declare no columns.",
	Severity: SeverityError,
	Run: func(t *Target) {
		if len(t.Table.Columns) == 0 {
			t.Reportf("%s declares no columns", t.Table.Name)
		}
	},
}

// ----------------------------------------------------------------------------
// Rule: duplicate-column
// ----------------------------------------------------------------------------

var duplicateColumnRule = &Rule{
	Name:     "duplicate-column",
	Doc:      "Reports columns declared more than once on the same table.",
	Severity: SeverityError,
	Run: func(t *Target) {
		seen := make(map[string]bool, len(t.Table.Columns))

		for _, c := range t.Table.Columns {
			if seen[c.Name] {
				t.Reportf("column %s is declared more than once", c.Name)
			}

			seen[c.Name] = true
		}
	},
}

// ----------------------------------------------------------------------------
// Rule: unknown-type
// ----------------------------------------------------------------------------

var unknownTypeRule = &Rule{
	Name:     "unknown-type",
	Doc:      "Reports columns whose named type is not a declared enum or composite type.",
	Severity: SeverityError,
	Run: func(t *Target) {
		for _, c := range t.Table.Columns {
			if name, ok := undeclaredType(t.Schema, c.Type); ok {
				t.Reportf("column %s has undeclared type %s", c.Name, name)
			}
		}
	},
}

func undeclaredType(schema *dbtypes.Schema, typ *dbtypes.Type) (string, bool) {
	for typ != nil && typ.Kind == dbtypes.TypeKindArray {
		typ = typ.Elem
	}

	if typ == nil || typ.Kind != dbtypes.TypeKindNamed {
		return "", false
	}

	if _, ok := schema.Enums[typ.Name]; ok {
		return "", false
	}

	if _, ok := schema.CompositeTypes[typ.Name]; ok {
		return "", false
	}

	return typ.Name, true
}

// ----------------------------------------------------------------------------
// Rule: relationship-arity
// ----------------------------------------------------------------------------

var relationshipArityRule = &Rule{
	Name:     "relationship-arity",
	Doc:      "Reports relationships whose source and referenced column lists differ in length.",
	Severity: SeverityError,
	Run: func(t *Target) {
		for _, r := range t.Table.Relationships {
			switch {
			case len(r.Columns) == 0:
				t.Reportf("relationship %s has no columns", r.ForeignKeyName)
			case len(r.Columns) != len(r.ReferencedColumns):
				t.Reportf("relationship %s maps %d columns onto %d",
					r.ForeignKeyName, len(r.Columns), len(r.ReferencedColumns))
			}
		}
	},
}

// ----------------------------------------------------------------------------
// Rule: unknown-relationship-column
// ----------------------------------------------------------------------------

var unknownRelationshipColumnRule = &Rule{
	Name:     "unknown-relationship-column",
	Doc:      "Reports relationship columns that do not exist on the owning table.",
	Severity: SeverityError,
	Run: func(t *Target) {
		for _, r := range t.Table.Relationships {
			for _, col := range r.Columns {
				if _, ok := t.Table.Column(col); !ok {
					t.Reportf("relationship %s uses unknown column %s", r.ForeignKeyName, col)
				}
			}
		}
	},
}

// ----------------------------------------------------------------------------
// Rule: unknown-relationship-target
// ----------------------------------------------------------------------------

var unknownRelationshipTargetRule = &Rule{
	Name:     "unknown-relationship-target",
	Doc:      "Reports relationships that reference a relation not declared in the target schema.",
	Severity: SeverityError,
	Run: func(t *Target) {
		for _, r := range t.Table.Relationships {
			if _, ok := t.Database.ReferencedTable(t.Schema.Name, r); !ok {
				t.Reportf("relationship %s references unknown relation %s.%s",
					r.ForeignKeyName, r.TargetSchema(t.Schema.Name), r.ReferencedRelation)
			}
		}
	},
}

// ----------------------------------------------------------------------------
// Rule: unknown-referenced-column
// ----------------------------------------------------------------------------

var unknownReferencedColumnRule = &Rule{
	Name:     "unknown-referenced-column",
	Doc:      "Reports referenced columns missing from the referenced relation.",
	Severity: SeverityError,
	Run: func(t *Target) {
		for _, r := range t.Table.Relationships {
			target, ok := t.Database.ReferencedTable(t.Schema.Name, r)
			if !ok {
				continue // unknown-relationship-target
			}

			for _, col := range r.ReferencedColumns {
				if _, ok := target.Column(col); !ok {
					t.Reportf("relationship %s references unknown column %s.%s",
						r.ForeignKeyName, r.ReferencedRelation, col)
				}
			}
		}
	},
}

// ----------------------------------------------------------------------------
// Rule: duplicate-foreign-key
// ----------------------------------------------------------------------------

var duplicateForeignKeyRule = &Rule{
	Name:     "duplicate-foreign-key",
	Doc:      "Reports foreign key names used more than once within a schema.",
	Severity: SeverityError,
	Run: func(t *Target) {
		for i, r := range t.Table.Relationships {
			if r.ForeignKeyName == "" {
				t.Reportf("relationship to %s has no foreign key name", r.ReferencedRelation)
				continue
			}

			if owner := firstForeignKeyOwner(t.Schema, r.ForeignKeyName); owner != t.Table.Name {
				t.Reportf("foreign key %s is already declared on %s", r.ForeignKeyName, owner)
				continue
			}

			for _, prev := range t.Table.Relationships[:i] {
				if prev.ForeignKeyName == r.ForeignKeyName {
					t.Reportf("foreign key %s is declared more than once", r.ForeignKeyName)
					break
				}
			}
		}
	},
}

// firstForeignKeyOwner returns the first table, in name order, declaring fk.
func firstForeignKeyOwner(schema *dbtypes.Schema, fk string) string {
	for _, name := range schema.TableNames() {
		for _, r := range schema.Tables[name].Relationships {
			if r.ForeignKeyName == fk {
				return name
			}
		}
	}

	for _, name := range schema.ViewNames() {
		for _, r := range schema.Views[name].Relationships {
			if r.ForeignKeyName == fk {
				return name
			}
		}
	}

	return ""
}

// ----------------------------------------------------------------------------
// Rules: insert-shape-drift, update-shape-drift
// ----------------------------------------------------------------------------

var insertShapeDriftRule = &Rule{
	Name:     "insert-shape-drift",
	Doc:      "Reports insert shapes that are not a faithful derivation of the row shape.",
	Severity: SeverityError,
	Run: func(t *Target) {
		if t.IsView {
			return
		}

		for _, msg := range CheckInsertShape(t.Table, t.Table.Row(), t.Table.Insert()) {
			t.Reportf("%s", msg)
		}
	},
}

var updateShapeDriftRule = &Rule{
	Name:     "update-shape-drift",
	Doc:      "Reports update shapes that are not a faithful derivation of the row shape.",
	Severity: SeverityError,
	Run: func(t *Target) {
		if t.IsView {
			return
		}

		for _, msg := range CheckUpdateShape(t.Table.Row(), t.Table.Update()) {
			t.Reportf("%s", msg)
		}
	},
}

// CheckInsertShape compares an insert shape against its row shape.
// Every row field must appear once with the same type, no other field may
// appear, and a field is optional exactly when its column is defaultable.
func CheckInsertShape(table *dbtypes.Table, row, insert dbtypes.Shape) []string {
	problems := compareFieldSets(row, insert)

	for _, f := range insert.Fields {
		c, ok := table.Column(f.Name)
		if !ok {
			continue
		}

		switch {
		case f.Optional && !c.Defaultable():
			problems = append(problems, fmt.Sprintf("insert field %s is optional but has no default", f.Name))
		case !f.Optional && c.Defaultable():
			problems = append(problems, fmt.Sprintf("insert field %s is mandatory but has a default", f.Name))
		}
	}

	return problems
}

// CheckUpdateShape compares an update shape against its row shape.
// The field sets must match and no update field may be mandatory.
func CheckUpdateShape(row, update dbtypes.Shape) []string {
	problems := compareFieldSets(row, update)

	if req := update.Required(); len(req) > 0 {
		problems = append(problems, "update fields are mandatory: "+strings.Join(req, ", "))
	}

	return problems
}

func compareFieldSets(row, derived dbtypes.Shape) []string {
	var problems []string

	seen := make(map[string]bool, len(derived.Fields))

	for _, f := range derived.Fields {
		if seen[f.Name] {
			problems = append(problems, fmt.Sprintf("%s field %s appears more than once", derived.Kind, f.Name))
			continue
		}

		seen[f.Name] = true

		rf, ok := row.Field(f.Name)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s field %s is not a row field", derived.Kind, f.Name))
			continue
		}

		if !rf.Type.Equal(f.Type) || rf.Nullable != f.Nullable {
			problems = append(problems, fmt.Sprintf("%s field %s changes type from %s to %s",
				derived.Kind, f.Name, rf.Type, f.Type))
		}
	}

	for _, rf := range row.Fields {
		if !seen[rf.Name] {
			problems = append(problems, fmt.Sprintf("%s shape is missing row field %s", derived.Kind, rf.Name))
		}
	}

	return problems
}

// ----------------------------------------------------------------------------
// Rule: no-primary-key-column
// ----------------------------------------------------------------------------

var noPrimaryKeyColumnRule = &Rule{
	Name:     "no-primary-key-column",
	Doc:      "Warns about tables without an id column.",
	Severity: SeverityWarning,
	Run: func(t *Target) {
		if t.IsView || len(t.Table.Columns) == 0 {
			return
		}

		if _, ok := t.Table.Column("id"); !ok {
			t.Reportf("%s has no id column", t.Table.Name)
		}
	},
}

// ----------------------------------------------------------------------------
// Rule: nullable-foreign-key
// ----------------------------------------------------------------------------

var nullableForeignKeyRule = &Rule{
	Name:     "nullable-foreign-key",
	Doc:      "Warns about foreign key columns that accept NULL.",
	Severity: SeverityWarning,
	Run: func(t *Target) {
		for _, r := range t.Table.Relationships {
			for _, col := range r.Columns {
				if c, ok := t.Table.Column(col); ok && c.Nullable {
					t.Reportf("foreign key column %s (%s) is nullable", col, r.ForeignKeyName)
				}
			}
		}
	},
}

// ----------------------------------------------------------------------------
// Custom expression rules
// ----------------------------------------------------------------------------

// InvalidRuleCode is the diagnostic code for custom rules that fail to compile
// or evaluate.
const InvalidRuleCode = "invalid-rule"

// RuleEnv builds the expression environment for a target.
func RuleEnv(t *Target) map[string]any {
	refs := make([]string, 0, len(t.Table.Relationships))
	for _, r := range t.Table.Relationships {
		refs = append(refs, r.ReferencedRelation)
	}

	var nullable []string

	for _, c := range t.Table.Columns {
		if c.Nullable {
			nullable = append(nullable, c.Name)
		}
	}

	return map[string]any{
		"Schema":        t.Schema.Name,
		"Table":         t.Table.Name,
		"IsView":        t.IsView,
		"Columns":       t.Table.ColumnNames(),
		"Nullable":      nullable,
		"Relationships": refs,
		"ColumnCount":   len(t.Table.Columns),
	}
}

// sampleEnv types the environment for compilation.
func sampleEnv() map[string]any {
	return map[string]any{
		"Schema":        "",
		"Table":         "",
		"IsView":        false,
		"Columns":       []string{},
		"Nullable":      []string{},
		"Relationships": []string{},
		"ColumnCount":   0,
	}
}

// NewExprRule compiles a boolean expression into a rule. The rule reports a
// diagnostic named after the rule whenever the expression is false.
func NewExprRule(name, source, doc string, severity DiagnosticSeverity) (*Rule, error) {
	program, err := expr.Compile(source, expr.Env(sampleEnv()), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRule, name, err)
	}

	if doc == "" {
		doc = source
	}

	return &Rule{
		Name:     name,
		Doc:      doc,
		Severity: severity,
		Run:      exprRun(program, source),
	}, nil
}

func exprRun(program *vm.Program, source string) func(t *Target) {
	return func(t *Target) {
		out, err := expr.Run(program, RuleEnv(t))
		if err != nil {
			t.diagnostics = append(t.diagnostics, Diagnostic{
				Code:     InvalidRuleCode,
				Severity: SeverityError,
				Schema:   t.Schema.Name,
				Table:    t.Table.Name,
				Message:  fmt.Sprintf("rule %s: %v", t.rule.Name, err),
			})

			return
		}

		if ok, _ := out.(bool); !ok {
			t.Reportf("%s does not satisfy %s", t.Table.Name, source)
		}
	}
}

// invalidRule turns a compile failure into a rule that reports it once per target.
func invalidRule(name string, cause error) *Rule {
	return &Rule{
		Name:     InvalidRuleCode,
		Doc:      "Reports custom rules that failed to compile.",
		Severity: SeverityError,
		Run: func(t *Target) {
			t.Reportf("rule %s: %v", name, cause)
		},
	}
}

// RulesFromConfig returns the default rules minus disabled ones, followed by
// the configured expression rules. Unknown disabled names are an error.
func RulesFromConfig(cfg dbtypes.CheckConfig) ([]*Rule, error) {
	defaults := DefaultRules()

	for _, name := range cfg.Disable {
		known := slices.ContainsFunc(defaults, func(r *Rule) bool { return r.Name == name }) ||
			slices.ContainsFunc(cfg.Rules, func(r dbtypes.RuleConfig) bool { return r.Name == name })
		if !known {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
	}

	rules := make([]*Rule, 0, len(defaults)+len(cfg.Rules))

	for _, r := range defaults {
		if !slices.Contains(cfg.Disable, r.Name) {
			rules = append(rules, r)
		}
	}

	for _, rc := range cfg.Rules {
		if slices.Contains(cfg.Disable, rc.Name) {
			continue
		}

		sev, err := ParseSeverity(rc.Severity)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rc.Name, err)
		}

		rule, err := NewExprRule(rc.Name, rc.Expr, rc.Doc, sev)
		if err != nil {
			rule = invalidRule(rc.Name, err)
		}

		rules = append(rules, rule)
	}

	return rules, nil
}
