package tree

import (
	"regexp"
	"strings"
	"testing"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

var idPattern = regexp.MustCompile(`^[a-f0-9-]+$`)

// newTestTree builds a tree with two children under the root.
func newTestTree(t *testing.T) (*Tree, string, string) {
	t.Helper()
	tr, err := New("Should we expand into the European market?", 5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a, err := tr.AddLeaf("A", "rA", 0.6, 7)
	if err != nil {
		t.Fatalf("AddLeaf A failed: %v", err)
	}
	b, err := tr.AddLeaf("B", "rB", 0.4, 7)
	if err != nil {
		t.Fatalf("AddLeaf B failed: %v", err)
	}
	return tr, a, b
}

// --- New ---

func TestNew_RootState(t *testing.T) {
	tr, err := New("¿Cuál será el impacto de la IA?", 8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	root, ok := tr.Node(tr.RootID())
	if !ok {
		t.Fatal("root not found")
	}
	if !root.Expanded {
		t.Error("root should be born expanded")
	}
	if root.Probability != 1.0 {
		t.Errorf("root probability = %g, want 1.0", root.Probability)
	}
	if root.Confidence != 8 {
		t.Errorf("root confidence = %d, want complexity 8", root.Confidence)
	}
	if tr.CursorID() != tr.RootID() {
		t.Error("cursor should start on the root")
	}
	if !idPattern.MatchString(tr.RootID()) {
		t.Errorf("root id %q does not match [a-f0-9-]+", tr.RootID())
	}
}

func TestNew_ComplexityBounds(t *testing.T) {
	for _, c := range []int{1, 10} {
		if _, err := New("valid premise", c); err != nil {
			t.Errorf("complexity %d should succeed: %v", c, err)
		}
	}
	for _, c := range []int{0, 11} {
		_, err := New("valid premise", c)
		if err == nil {
			t.Errorf("complexity %d should fail", c)
		}
		if !enginerr.IsKind(err, enginerr.InvalidArgument) {
			t.Errorf("complexity %d: kind = %v, want InvalidArgument", c, enginerr.KindOf(err))
		}
	}
}

func TestNew_ShortPremise(t *testing.T) {
	if _, err := New("x", 5); err == nil {
		t.Error("one-character premise should fail")
	}
	if _, err := New("ok", 5); err != nil {
		t.Errorf("two-character premise should succeed: %v", err)
	}
}

// --- AddLeaf ---

func TestAddLeaf_ParentIsCursor(t *testing.T) {
	tr, a, _ := newTestTree(t)

	node, ok := tr.Node(a)
	if !ok {
		t.Fatal("leaf not found")
	}
	if node.Parent != tr.RootID() {
		t.Errorf("parent = %s, want cursor (root) %s", node.Parent, tr.RootID())
	}
	if node.Expanded {
		t.Error("new leaf should be unexpanded")
	}
	if tr.CursorID() != tr.RootID() {
		t.Error("AddLeaf must not move the cursor")
	}
}

func TestAddLeaf_ChildOrderPreserved(t *testing.T) {
	tr, a, b := newTestTree(t)
	root, _ := tr.Node(tr.RootID())
	if len(root.Children) != 2 || root.Children[0] != a || root.Children[1] != b {
		t.Errorf("children = %v, want [%s %s]", root.Children, a, b)
	}
}

func TestAddLeaf_Validation(t *testing.T) {
	tr, _, _ := newTestTree(t)

	cases := []struct {
		name        string
		premise     string
		reasoning   string
		probability float64
		confidence  int
	}{
		{"empty premise", "", "r", 0.5, 5},
		{"empty reasoning", "p", "", 0.5, 5},
		{"negative probability", "p", "r", -0.1, 5},
		{"probability above one", "p", "r", 1.1, 5},
		{"confidence zero", "p", "r", 0.5, 0},
		{"confidence eleven", "p", "r", 0.5, 11},
	}
	for _, tc := range cases {
		if _, err := tr.AddLeaf(tc.premise, tc.reasoning, tc.probability, tc.confidence); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}

	// Boundary values are legal.
	if _, err := tr.AddLeaf("p", "r", 0.0, 1); err != nil {
		t.Errorf("probability 0.0 / confidence 1 should succeed: %v", err)
	}
	if _, err := tr.AddLeaf("p", "r", 1.0, 10); err != nil {
		t.Errorf("probability 1.0 / confidence 10 should succeed: %v", err)
	}
}

func TestAddLeaf_UnexpandedCursorRejected(t *testing.T) {
	tr, a, _ := newTestTree(t)
	if err := tr.NavigateTo(a, "focus on A"); err != nil {
		t.Fatalf("NavigateTo failed: %v", err)
	}
	_, err := tr.AddLeaf("child", "r", 0.5, 5)
	if !enginerr.IsKind(err, enginerr.StateViolation) {
		t.Errorf("kind = %v, want StateViolation", enginerr.KindOf(err))
	}
}

// --- ExpandLeaf ---

func TestExpandLeaf_MovesCursorAndIsOneWay(t *testing.T) {
	tr, a, _ := newTestTree(t)

	if err := tr.ExpandLeaf(a, "worth a deeper look"); err != nil {
		t.Fatalf("ExpandLeaf failed: %v", err)
	}
	node, _ := tr.Node(a)
	if !node.Expanded {
		t.Error("node should be expanded")
	}
	if node.Rationale != "worth a deeper look" {
		t.Errorf("rationale = %q", node.Rationale)
	}
	if tr.CursorID() != a {
		t.Error("cursor should move to the expanded node")
	}

	err := tr.ExpandLeaf(a, "again")
	if !enginerr.IsKind(err, enginerr.StateViolation) {
		t.Errorf("re-expansion kind = %v, want StateViolation", enginerr.KindOf(err))
	}
}

func TestExpandLeaf_RootRejected(t *testing.T) {
	tr, _, _ := newTestTree(t)
	err := tr.ExpandLeaf(tr.RootID(), "why not")
	if !enginerr.IsKind(err, enginerr.StateViolation) {
		t.Errorf("kind = %v, want StateViolation", enginerr.KindOf(err))
	}
}

func TestExpandLeaf_UnknownNode(t *testing.T) {
	tr, _, _ := newTestTree(t)
	err := tr.ExpandLeaf("deadbeef", "x")
	if !enginerr.IsKind(err, enginerr.NotFound) {
		t.Errorf("kind = %v, want NotFound", enginerr.KindOf(err))
	}
}

// --- NavigateTo ---

func TestNavigateTo(t *testing.T) {
	tr, a, _ := newTestTree(t)

	if err := tr.NavigateTo(a, "checking branch A"); err != nil {
		t.Fatalf("NavigateTo failed: %v", err)
	}
	if tr.CursorID() != a {
		t.Errorf("cursor = %s, want %s", tr.CursorID(), a)
	}

	if err := tr.NavigateTo(a, "still here"); err != nil {
		t.Errorf("navigating to the current cursor should be a no-op, got %v", err)
	}

	if err := tr.NavigateTo(a, ""); err == nil {
		t.Error("empty justification should fail")
	}
	if err := tr.NavigateTo("nope", "j"); !enginerr.IsKind(err, enginerr.NotFound) {
		t.Errorf("unknown node kind = %v, want NotFound", enginerr.KindOf(err))
	}
}

// --- Inspect ---

func TestInspect_SingleNodeTree(t *testing.T) {
	tr, err := New("¿Cuál será el impacto de la IA?", 8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	out := tr.Inspect()
	if !strings.Contains(out, "p=1.0000") {
		t.Errorf("inspect should show probability 1.0, got:\n%s", out)
	}
	if !strings.Contains(out, "Total nodes: 1") {
		t.Errorf("inspect should count one node, got:\n%s", out)
	}
	if !strings.Contains(out, "<- cursor") {
		t.Error("inspect should flag the cursor")
	}
}

func TestInspect_Deterministic(t *testing.T) {
	tr, _, _ := newTestTree(t)
	if tr.Inspect() != tr.Inspect() {
		t.Error("inspect output should be deterministic")
	}
}

// --- structural invariants ---

func TestChildListsAlwaysResolve(t *testing.T) {
	tr, a, _ := newTestTree(t)
	if err := tr.ExpandLeaf(a, "go deeper"); err != nil {
		t.Fatalf("ExpandLeaf failed: %v", err)
	}
	if _, err := tr.AddLeaf("A1", "r", 0.9, 5); err != nil {
		t.Fatalf("AddLeaf failed: %v", err)
	}
	if _, err := tr.Prune(0.95); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	tr.walk(func(n *Node, _ int) {
		for _, child := range n.Children {
			if _, ok := tr.Node(child); !ok {
				t.Errorf("child %s of %s does not resolve", child, n.ID)
			}
		}
	})
	if _, ok := tr.Node(tr.CursorID()); !ok {
		t.Error("cursor does not resolve")
	}
}
