package tree

import (
	"sort"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

// PruneReport summarises a pruning pass.
type PruneReport struct {
	Removed        []string
	Preserved      []string
	Threshold      float64
	Aggressiveness float64
}

// Prune deletes every leaf whose pruning score falls below
// aggressiveness × the highest leaf score. The decision is taken over a
// snapshot of the leaf set, so traversal order cannot affect the outcome.
// The root and expanded nodes are never deleted; if the cursor is pruned
// it falls back to the root.
func (t *Tree) Prune(aggressiveness float64) (*PruneReport, error) {
	if aggressiveness < 0.0 || aggressiveness > 1.0 {
		return nil, enginerr.New(enginerr.InvalidArgument,
			"aggressiveness %g is out of range [0.0, 1.0]", aggressiveness)
	}

	leaves := t.Leaves()
	report := &PruneReport{Aggressiveness: aggressiveness}
	if len(leaves) == 0 {
		return report, nil
	}

	maxScore := 0.0
	for _, leaf := range leaves {
		if s := leaf.Score(); s > maxScore {
			maxScore = s
		}
	}
	report.Threshold = aggressiveness * maxScore

	for _, leaf := range leaves {
		if leaf.Score() < report.Threshold {
			report.Removed = append(report.Removed, leaf.ID)
		} else {
			report.Preserved = append(report.Preserved, leaf.ID)
		}
	}
	for _, id := range report.Removed {
		t.remove(id)
	}
	return report, nil
}

// PruneLeafs keeps only the keep highest-scoring leaves under the cursor
// and deletes the rest. Leaves elsewhere in the tree are untouched.
func (t *Tree) PruneLeafs(keep int) (*PruneReport, error) {
	if keep < 1 {
		return nil, enginerr.New(enginerr.InvalidArgument,
			"keep_count must be at least 1, got %d", keep)
	}

	cursor := t.mustNode(t.cursorID)
	var leaves []*Node
	for _, id := range cursor.Children {
		if child := t.mustNode(id); child.IsLeaf() {
			leaves = append(leaves, child)
		}
	}

	report := &PruneReport{}
	if len(leaves) <= keep {
		for _, leaf := range leaves {
			report.Preserved = append(report.Preserved, leaf.ID)
		}
		return report, nil
	}

	ranked := make([]*Node, len(leaves))
	copy(ranked, leaves)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})

	for i, leaf := range ranked {
		if i < keep {
			report.Preserved = append(report.Preserved, leaf.ID)
		} else {
			report.Removed = append(report.Removed, leaf.ID)
		}
	}
	for _, id := range report.Removed {
		t.remove(id)
	}
	return report, nil
}
