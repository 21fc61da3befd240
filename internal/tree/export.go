package tree

import (
	"fmt"
	"strings"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

// NarrativeStyle selects the presentation register for export_paths.
type NarrativeStyle string

const (
	Analytical NarrativeStyle = "Analytical"
	Narrative  NarrativeStyle = "Narrative"
	Technical  NarrativeStyle = "Technical"
)

// ParseNarrativeStyle maps a tool argument onto a style.
func ParseNarrativeStyle(s string) (NarrativeStyle, error) {
	switch NarrativeStyle(s) {
	case Analytical, Narrative, Technical:
		return NarrativeStyle(s), nil
	default:
		return "", enginerr.New(enginerr.InvalidArgument,
			"unknown narrative_style %q (expected Analytical, Narrative or Technical)", s)
	}
}

// Path is one root-to-leaf chain with its joint probability.
type Path struct {
	NodeIDs     []string
	Premises    []string
	Probability float64 // product of probabilities along the path
	Confidence  int     // confidence of the terminal leaf
}

// ExportPaths renders a report enumerating every root-to-leaf path,
// integrating the caller's insights and confidence assessment.
func (t *Tree) ExportPaths(style NarrativeStyle, insights []string, confidence float64) (string, error) {
	if len(insights) < 3 {
		return "", enginerr.New(enginerr.InvalidArgument,
			"at least 3 insights are required, got %d", len(insights))
	}
	for i, insight := range insights {
		if insight == "" {
			return "", enginerr.New(enginerr.InvalidArgument, "insight %d is empty", i+1)
		}
	}
	if confidence < 0.0 || confidence > 1.0 {
		return "", enginerr.New(enginerr.InvalidArgument,
			"confidence_assessment %g is out of range [0.0, 1.0]", confidence)
	}

	paths := t.paths()

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis exported: %d paths, %s style, confidence %.2f\n\n",
		len(paths), style, confidence)

	switch style {
	case Narrative:
		fmt.Fprintf(&b, "The analysis of %q unfolds along %d lines of reasoning.\n\n",
			t.mustNode(t.rootID).Premise, len(paths))
	case Technical:
		fmt.Fprintf(&b, "root=%s complexity=%d paths=%d\n\n", t.rootID, t.Complexity, len(paths))
	default:
		fmt.Fprintf(&b, "Premise under analysis: %s\n\n", t.mustNode(t.rootID).Premise)
	}

	for i, p := range paths {
		switch style {
		case Narrative:
			fmt.Fprintf(&b, "Path %d: %s — a %.1f%% likely outcome.\n",
				i+1, strings.Join(p.Premises, ", then "), p.Probability*100)
		case Technical:
			fmt.Fprintf(&b, "path[%d] p=%.6f conf=%d nodes=%s\n",
				i+1, p.Probability, p.Confidence, strings.Join(p.NodeIDs, "->"))
		default:
			fmt.Fprintf(&b, "Path %d (p=%.4f, confidence %d/10): %s\n",
				i+1, p.Probability, p.Confidence, strings.Join(p.Premises, " -> "))
		}
	}

	b.WriteString("\nInsights:\n")
	for i, insight := range insights {
		fmt.Fprintf(&b, "%d. %s\n", i+1, insight)
	}
	fmt.Fprintf(&b, "\nOverall confidence assessment: %.2f", confidence)
	return b.String(), nil
}

// paths enumerates root-to-leaf chains in insertion order. A childless
// expanded node also terminates a path so partial analyses still export.
func (t *Tree) paths() []Path {
	var out []Path
	var visit func(id string, ids []string, premises []string, prob float64)
	visit = func(id string, ids []string, premises []string, prob float64) {
		n := t.mustNode(id)
		ids = append(ids, n.ID)
		premises = append(premises, n.Premise)
		prob *= n.Probability
		if len(n.Children) == 0 {
			out = append(out, Path{
				NodeIDs:     append([]string(nil), ids...),
				Premises:    append([]string(nil), premises...),
				Probability: prob,
				Confidence:  n.Confidence,
			})
			return
		}
		for _, child := range n.Children {
			visit(child, ids, premises, prob)
		}
	}
	visit(t.rootID, nil, nil, 1.0)
	return out
}
