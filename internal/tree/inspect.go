package tree

import (
	"fmt"
	"strings"
)

// Inspect renders the tree from the root as deterministic text. Children
// appear in insertion order; the cursor node is flagged.
func (t *Tree) Inspect() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analysis tree (complexity %d, %d nodes)\n", t.Complexity, t.Len())

	t.walk(func(n *Node, depth int) {
		indent := strings.Repeat("  ", depth)
		marker := "leaf"
		if n.Expanded {
			marker = "expanded"
		}
		cursor := ""
		if n.ID == t.cursorID {
			cursor = " <- cursor"
		}
		fmt.Fprintf(&b, "%s[%s] %s (p=%.4f, confidence=%d/10, %s, %d children)%s\n",
			indent, n.ID, n.Premise, n.Probability, n.Confidence, marker, len(n.Children), cursor)
	})

	b.WriteString(t.statsBlock())
	return b.String()
}

// statsBlock aggregates structural statistics for inspect output.
func (t *Tree) statsBlock() string {
	total := 0
	leaves := 0
	maxDepth := 0
	probSum := 0.0
	t.walk(func(n *Node, depth int) {
		total++
		probSum += n.Probability
		if depth > maxDepth {
			maxDepth = depth
		}
		if n.IsLeaf() {
			leaves++
		}
	})

	avg := 0.0
	if total > 0 {
		avg = probSum / float64(total)
	}

	var b strings.Builder
	b.WriteString("Statistics:\n")
	fmt.Fprintf(&b, "- Total nodes: %d\n", total)
	fmt.Fprintf(&b, "- Leaves: %d\n", leaves)
	fmt.Fprintf(&b, "- Max depth: %d\n", maxDepth)
	fmt.Fprintf(&b, "- Avg probability: %.4f", avg)
	return b.String()
}
