// Package tree implements the session-scoped analytical tree engine.
//
// A tree is a mutable rooted tree of premises with a single moving cursor.
// Nodes live in an arena (slice of records) with an id → slot index; pruned
// slots are tombstoned and ids are never reused, so stale references can
// never resolve to a different node.
package tree

import (
	"time"

	"github.com/google/uuid"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

const (
	// MinPremiseLen is the minimum length for a tree's root premise.
	MinPremiseLen = 2

	// MinAnalysisDetailLen is the minimum length validate_coherence
	// accepts for its analysis_detail argument.
	MinAnalysisDetailLen = 32
)

// Node is a single premise in the analysis.
type Node struct {
	ID          string
	Parent      string // empty for the root
	Children    []string
	Premise     string
	Reasoning   string
	Rationale   string // recorded by ExpandLeaf
	Probability float64
	Confidence  int
	Expanded    bool
	CreatedAt   time.Time
}

// IsLeaf reports whether the node is still unexpanded.
func (n *Node) IsLeaf() bool { return !n.Expanded }

// Score is the pruning score: probability weighted by confidence.
func (n *Node) Score() float64 {
	return n.Probability * float64(n.Confidence) / 10.0
}

// Tree is a rooted analytical tree with one active cursor.
type Tree struct {
	Complexity int
	CreatedAt  time.Time

	rootID   string
	cursorID string
	nodes    []*Node        // arena; pruned slots hold nil
	index    map[string]int // id → arena slot
}

// New creates a tree with a single root node and the cursor on it.
// The root is born expanded with probability 1.0 and confidence equal
// to the requested complexity.
func New(premise string, complexity int) (*Tree, error) {
	if len(premise) < MinPremiseLen {
		return nil, enginerr.New(enginerr.InvalidArgument,
			"premise must be at least %d characters long", MinPremiseLen)
	}
	if complexity < 1 || complexity > 10 {
		return nil, enginerr.New(enginerr.InvalidArgument,
			"complexity must be between 1 and 10, got %d", complexity)
	}

	root := &Node{
		ID:          uuid.NewString(),
		Premise:     premise,
		Reasoning:   "root premise",
		Probability: 1.0,
		Confidence:  complexity,
		Expanded:    true,
		CreatedAt:   time.Now().UTC(),
	}

	t := &Tree{
		Complexity: complexity,
		CreatedAt:  root.CreatedAt,
		rootID:     root.ID,
		cursorID:   root.ID,
		nodes:      []*Node{root},
		index:      map[string]int{root.ID: 0},
	}
	return t, nil
}

// RootID returns the root node's id.
func (t *Tree) RootID() string { return t.rootID }

// CursorID returns the id of the node the cursor currently points at.
func (t *Tree) CursorID() string { return t.cursorID }

// Node looks up a live node by id.
func (t *Tree) Node(id string) (*Node, bool) {
	slot, ok := t.index[id]
	if !ok {
		return nil, false
	}
	return t.nodes[slot], true
}

func (t *Tree) mustNode(id string) *Node {
	n, ok := t.Node(id)
	if !ok {
		// Ids held in parent/child lists always resolve; a miss here
		// means internal corruption, so fail loudly in tests.
		panic("tree: dangling node id " + id)
	}
	return n
}

// Len returns the number of live nodes.
func (t *Tree) Len() int { return len(t.index) }

// AddLeaf appends a new unexpanded child under the cursor and returns its id.
// The cursor does not move.
func (t *Tree) AddLeaf(premise, reasoning string, probability float64, confidence int) (string, error) {
	if premise == "" {
		return "", enginerr.New(enginerr.InvalidArgument, "premise cannot be empty")
	}
	if reasoning == "" {
		return "", enginerr.New(enginerr.InvalidArgument, "reasoning cannot be empty")
	}
	if probability < 0.0 || probability > 1.0 {
		return "", enginerr.New(enginerr.InvalidArgument,
			"probability %g is out of range [0.0, 1.0]", probability)
	}
	if confidence < 1 || confidence > 10 {
		return "", enginerr.New(enginerr.InvalidArgument,
			"confidence must be between 1 and 10, got %d", confidence)
	}

	cursor := t.mustNode(t.cursorID)
	if !cursor.Expanded {
		return "", enginerr.New(enginerr.StateViolation,
			"cursor node %s is not expanded and cannot receive children", cursor.ID)
	}

	leaf := &Node{
		ID:          uuid.NewString(),
		Parent:      cursor.ID,
		Premise:     premise,
		Reasoning:   reasoning,
		Probability: probability,
		Confidence:  confidence,
		CreatedAt:   time.Now().UTC(),
	}

	t.nodes = append(t.nodes, leaf)
	t.index[leaf.ID] = len(t.nodes) - 1
	cursor.Children = append(cursor.Children, leaf.ID)
	return leaf.ID, nil
}

// ExpandLeaf marks an unexpanded non-root node as expanded and moves the
// cursor onto it. Expansion is one-way.
func (t *Tree) ExpandLeaf(nodeID, rationale string) error {
	if rationale == "" {
		return enginerr.New(enginerr.InvalidArgument, "rationale cannot be empty")
	}
	node, ok := t.Node(nodeID)
	if !ok {
		return enginerr.New(enginerr.NotFound, "node %s does not exist", nodeID)
	}
	if nodeID == t.rootID {
		return enginerr.New(enginerr.StateViolation, "the root is already expanded")
	}
	if node.Expanded {
		return enginerr.New(enginerr.StateViolation, "node %s is already expanded", nodeID)
	}

	node.Expanded = true
	node.Rationale = rationale
	t.cursorID = nodeID
	return nil
}

// NavigateTo moves the cursor to the given node. Tree structure is untouched.
func (t *Tree) NavigateTo(nodeID, justification string) error {
	if justification == "" {
		return enginerr.New(enginerr.InvalidArgument, "justification cannot be empty")
	}
	if _, ok := t.Node(nodeID); !ok {
		return enginerr.New(enginerr.NotFound, "node %s does not exist", nodeID)
	}
	t.cursorID = nodeID
	return nil
}

// Leaves returns every live unexpanded node in arena order.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	for _, n := range t.nodes {
		if n != nil && n.IsLeaf() {
			leaves = append(leaves, n)
		}
	}
	return leaves
}

// Depth returns the number of edges from the root to the node.
func (t *Tree) Depth(id string) int {
	depth := 0
	for id != t.rootID {
		depth++
		id = t.mustNode(id).Parent
	}
	return depth
}

// remove unlinks a node from its parent and tombstones its arena slot.
// Callers guarantee the node has no children.
func (t *Tree) remove(id string) {
	node := t.mustNode(id)
	if node.Parent != "" {
		parent := t.mustNode(node.Parent)
		for i, child := range parent.Children {
			if child == id {
				parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
				break
			}
		}
	}
	t.nodes[t.index[id]] = nil
	delete(t.index, id)

	if t.cursorID == id {
		t.cursorID = t.rootID
	}
}

// walk visits every live node depth-first in insertion (child) order.
func (t *Tree) walk(fn func(n *Node, depth int)) {
	var visit func(id string, depth int)
	visit = func(id string, depth int) {
		n := t.mustNode(id)
		fn(n, depth)
		for _, child := range n.Children {
			visit(child, depth+1)
		}
	}
	visit(t.rootID, 0)
}
