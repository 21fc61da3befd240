package datalog

import (
	"fmt"
	"strings"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

// LineError reports a rejected statement by its physical input line.
type LineError struct {
	Line    int
	Message string
}

// BulkReport is the outcome of AddBulk.
type BulkReport struct {
	Added      int
	Skipped    int
	Errors     []LineError
	RolledBack bool
}

// ValidationReport is the outcome of ValidateRule.
type ValidationReport struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// KnowledgeBase is a session-scoped Datalog program: validated statements in
// insertion order plus predicate annotations. It never holds a reasoner.
type KnowledgeBase struct {
	statements  []*Statement
	annotations map[string]string
}

// NewKnowledgeBase returns an empty knowledge base.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{annotations: map[string]string{}}
}

// AddBulk parses the input line by line, skipping blank lines and %-comments.
// With atomic=true either every statement is appended or none is; with
// atomic=false each valid statement is appended as it is seen and failures
// are only reported.
func (kb *KnowledgeBase) AddBulk(input string, atomic bool) *BulkReport {
	report := &BulkReport{}
	var pending []*Statement

	for i, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "%") {
			continue
		}
		stmts, err := parseLine(trimmed)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, LineError{Line: i + 1, Message: err.Error()})
			continue
		}
		if atomic {
			pending = append(pending, stmts...)
		} else {
			kb.statements = append(kb.statements, stmts...)
		}
		report.Added += len(stmts)
	}

	if atomic {
		if len(report.Errors) > 0 {
			report.RolledBack = true
			report.Skipped += report.Added
			report.Added = 0
			return report
		}
		kb.statements = append(kb.statements, pending...)
	}
	return report
}

// AddFact validates and appends a single fact.
func (kb *KnowledgeBase) AddFact(text string) (*Statement, error) {
	stmt, err := ParseStatement(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	if stmt.Kind != StmtFact {
		return nil, enginerr.New(enginerr.InvalidArgument, "expected a fact, got a %s", stmt.Kind)
	}
	kb.statements = append(kb.statements, stmt)
	return stmt, nil
}

// AddRule validates and appends a single rule.
func (kb *KnowledgeBase) AddRule(text string) (*Statement, error) {
	stmt, err := ParseStatement(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	if stmt.Kind != StmtRule {
		return nil, enginerr.New(enginerr.InvalidArgument, "expected a rule, got a %s", stmt.Kind)
	}
	kb.statements = append(kb.statements, stmt)
	return stmt, nil
}

// ListPremises returns the stored statements in insertion order.
func (kb *KnowledgeBase) ListPremises() []string {
	out := make([]string, len(kb.statements))
	for i, s := range kb.statements {
		out[i] = s.Text
	}
	return out
}

// Statements returns a snapshot of the program for handoff to a worker.
func (kb *KnowledgeBase) Statements() []*Statement {
	return append([]*Statement(nil), kb.statements...)
}

// Len returns the number of stored statements.
func (kb *KnowledgeBase) Len() int { return len(kb.statements) }

// Reset discards all statements and annotations.
func (kb *KnowledgeBase) Reset() {
	kb.statements = nil
	kb.annotations = map[string]string{}
}

// Annotate stores a human-readable label for a predicate name.
func (kb *KnowledgeBase) Annotate(predicate, label string) error {
	if predicate == "" {
		return enginerr.New(enginerr.InvalidArgument, "predicate name cannot be empty")
	}
	if label == "" {
		return enginerr.New(enginerr.InvalidArgument, "label cannot be empty")
	}
	kb.annotations[predicate] = label
	return nil
}

// Annotations returns a copy of the predicate label map.
func (kb *KnowledgeBase) Annotations() map[string]string {
	out := make(map[string]string, len(kb.annotations))
	for k, v := range kb.annotations {
		out[k] = v
	}
	return out
}

// ValidateRule checks a rule for syntactic and semantic defects without
// mutating anything. A syntactically valid fact is accepted with a warning,
// matching the permissive behaviour clients rely on.
func ValidateRule(text string) *ValidationReport {
	report := &ValidationReport{}
	stmt, err := ParseStatement(strings.TrimSpace(text))
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report
	}
	if stmt.Kind == StmtFact {
		report.Warnings = append(report.Warnings, "statement is a fact, not a rule")
	}
	report.Valid = true
	return report
}

// Render formats the validation report as the tool's textual response.
func (r *ValidationReport) Render(rule string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Validation result for '%s':\n", rule)
	fmt.Fprintf(&b, "- Valid: %t\n", r.Valid)
	if len(r.Errors) == 0 {
		b.WriteString("- Errors: None\n")
	} else {
		fmt.Fprintf(&b, "- Errors: %s\n", strings.Join(r.Errors, ", "))
	}
	if len(r.Warnings) == 0 {
		b.WriteString("- Warnings: None")
	} else {
		fmt.Fprintf(&b, "- Warnings: %s", strings.Join(r.Warnings, ", "))
	}
	return b.String()
}

// parseLine parses one or more '.'-terminated statements from a single line.
func parseLine(line string) ([]*Statement, error) {
	p := &parser{src: line}
	var out []*Statement
	for {
		p.skipSpace()
		if p.done() {
			break
		}
		if p.peek() == '?' {
			return nil, enginerr.New(enginerr.InvalidArgument,
				"queries are not allowed here; use the query tool")
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		if err := stmt.validate(); err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	if len(out) == 0 {
		return nil, enginerr.New(enginerr.InvalidArgument, "empty statement")
	}
	return out, nil
}
