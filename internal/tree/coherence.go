package tree

import (
	"fmt"
	"strings"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

// NodeDeviation is how far an expanded node's children stray from
// conserving probability mass.
type NodeDeviation struct {
	NodeID    string
	Deviation float64 // |Σ child probabilities − 1.0|
}

// CoherenceReport is a purely structural health report for the tree.
type CoherenceReport struct {
	Detail         string
	TotalNodes     int
	LeafCount      int
	MaxDepth       int
	MeanBranching  float64 // mean child count of expanded nodes
	Deviations     []NodeDeviation
	MeanDeviation  float64
	CoherenceScore float64 // 1 − min(1, MeanDeviation)
}

// Coherence computes the structural coherence report. The analysis_detail
// string is echoed into the report header and must carry at least
// MinAnalysisDetailLen characters.
func (t *Tree) Coherence(detail string) (*CoherenceReport, error) {
	if len(detail) < MinAnalysisDetailLen {
		return nil, enginerr.New(enginerr.InvalidArgument,
			"analysis_detail must be at least %d characters, got %d",
			MinAnalysisDetailLen, len(detail))
	}

	report := &CoherenceReport{Detail: detail}

	expandedCount := 0
	childTotal := 0
	devSum := 0.0
	t.walk(func(n *Node, depth int) {
		report.TotalNodes++
		if depth > report.MaxDepth {
			report.MaxDepth = depth
		}
		if n.IsLeaf() {
			report.LeafCount++
			return
		}
		expandedCount++
		childTotal += len(n.Children)
		if len(n.Children) == 0 {
			return
		}
		sum := 0.0
		for _, id := range n.Children {
			sum += t.mustNode(id).Probability
		}
		dev := sum - 1.0
		if dev < 0 {
			dev = -dev
		}
		report.Deviations = append(report.Deviations, NodeDeviation{NodeID: n.ID, Deviation: dev})
		devSum += dev
	})

	if expandedCount > 0 {
		report.MeanBranching = float64(childTotal) / float64(expandedCount)
	}
	if len(report.Deviations) > 0 {
		report.MeanDeviation = devSum / float64(len(report.Deviations))
	}
	capped := report.MeanDeviation
	if capped > 1.0 {
		capped = 1.0
	}
	report.CoherenceScore = 1.0 - capped
	return report, nil
}

// Render formats the report as the tool's textual response.
func (r *CoherenceReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Coherence report — %s\n", r.Detail)
	fmt.Fprintf(&b, "Total nodes: %d\n", r.TotalNodes)
	fmt.Fprintf(&b, "Leaves: %d\n", r.LeafCount)
	fmt.Fprintf(&b, "Max depth: %d\n", r.MaxDepth)
	fmt.Fprintf(&b, "Mean branching (expanded nodes): %.2f\n", r.MeanBranching)
	for _, d := range r.Deviations {
		fmt.Fprintf(&b, "Node %s: probability deviation %.4f\n", d.NodeID, d.Deviation)
	}
	fmt.Fprintf(&b, "Mean deviation: %.4f\n", r.MeanDeviation)
	fmt.Fprintf(&b, "Coherence: %.4f", r.CoherenceScore)
	return b.String()
}
