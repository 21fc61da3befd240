package tree

import (
	"fmt"
	"strings"
)

// siblingSumTolerance is how far a parent's child probabilities may sum
// past 1.0 before the status sweep reports a violation.
const siblingSumTolerance = 0.1

// Violation is a single finding from the probability status sweep.
type Violation struct {
	NodeID   string
	Message  string
	Severity string // "error" or "warning"
}

// StatusReport is the output of probability_status.
type StatusReport struct {
	Valid       bool
	Violations  []Violation
	Suggestions []string
}

// Status sweeps every node for probability and confidence range violations
// and checks that sibling probabilities do not exceed 1.0 beyond tolerance.
// It never mutates the tree.
func (t *Tree) Status() *StatusReport {
	report := &StatusReport{}

	t.walk(func(n *Node, _ int) {
		if n.Probability < 0.0 || n.Probability > 1.0 {
			report.Violations = append(report.Violations, Violation{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("probability %g is out of range [0, 1]", n.Probability),
				Severity: "error",
			})
		}
		if n.Confidence < 1 || n.Confidence > 10 {
			report.Violations = append(report.Violations, Violation{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("confidence %d is out of range [1, 10]", n.Confidence),
				Severity: "warning",
			})
		}
		if len(n.Children) > 1 {
			sum := 0.0
			for _, id := range n.Children {
				sum += t.mustNode(id).Probability
			}
			if sum > 1.0+siblingSumTolerance {
				report.Violations = append(report.Violations, Violation{
					NodeID:   n.ID,
					Message:  fmt.Sprintf("child probabilities sum to %.4f", sum),
					Severity: "error",
				})
			}
		}
	})

	report.Valid = len(report.Violations) == 0
	if report.Valid {
		report.Suggestions = append(report.Suggestions, "probability structure is sound")
	} else {
		report.Suggestions = append(report.Suggestions,
			"normalise child probabilities with balance_leafs")
	}
	return report
}

// Render formats the report as the tool's textual response.
func (r *StatusReport) Render() string {
	verdict := "VALID"
	if !r.Valid {
		verdict = "INVALID"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Probability status: %s (%d violations, %d suggestions)",
		verdict, len(r.Violations), len(r.Suggestions))
	for _, v := range r.Violations {
		fmt.Fprintf(&b, "\n- [%s] node %s: %s", v.Severity, v.NodeID, v.Message)
	}
	for _, s := range r.Suggestions {
		fmt.Fprintf(&b, "\n* %s", s)
	}
	return b.String()
}
