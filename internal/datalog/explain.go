package datalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Explain renders an inference trace as natural language. Predicate
// annotations substitute human-readable labels where available. The trace
// format is the opaque skeleton emitted by Query; unknown payloads still
// produce a readable fallback.
func Explain(traceJSON string, short bool, annotations map[string]string) string {
	var trace struct {
		Goal    string `json:"goal"`
		Proven  bool   `json:"proven"`
		Matches int    `json:"matches"`
		Facts   struct {
			Base    int `json:"base"`
			Derived int `json:"derived"`
		} `json:"facts"`
	}
	if err := json.Unmarshal([]byte(traceJSON), &trace); err != nil || trace.Goal == "" {
		if short {
			return "No detailed trace is available for this inference."
		}
		return fmt.Sprintf("Inference explanation:\n\nTrace data: %s\n\nThe trace carries no step detail.", traceJSON)
	}

	goal := trace.Goal
	for predicate, label := range annotations {
		goal = strings.ReplaceAll(goal, predicate+"(", label+" (")
	}

	verdict := "could not be proven"
	if trace.Proven {
		verdict = "was proven"
	}

	if short {
		return fmt.Sprintf("The goal %s %s against the knowledge base.", goal, verdict)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Inference explanation for %s\n", goal)
	fmt.Fprintf(&b, "- Verdict: the goal %s\n", verdict)
	fmt.Fprintf(&b, "- Matching derivations: %d\n", trace.Matches)
	fmt.Fprintf(&b, "- Stated facts: %d\n", trace.Facts.Base)
	fmt.Fprintf(&b, "- Facts after materialisation: %d", trace.Facts.Derived)
	if len(annotations) > 0 {
		predicates := make([]string, 0, len(annotations))
		for predicate := range annotations {
			predicates = append(predicates, predicate)
		}
		sort.Strings(predicates)
		b.WriteString("\n- Predicate legend:")
		for _, predicate := range predicates {
			fmt.Fprintf(&b, "\n    %s: %s", predicate, annotations[predicate])
		}
	}
	return b.String()
}
