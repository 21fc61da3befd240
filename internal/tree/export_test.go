package tree

import (
	"strings"
	"testing"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

var exportInsights = []string{
	"market conditions favour expansion",
	"regulatory risk is concentrated in one branch",
	"timeline constraints dominate the downside",
}

func TestExportPaths_ContainsContractSubstring(t *testing.T) {
	tr, _, _ := newTestTree(t)
	out, err := tr.ExportPaths(Analytical, exportInsights, 0.85)
	if err != nil {
		t.Fatalf("ExportPaths failed: %v", err)
	}
	if !strings.HasPrefix(out, "Analysis exported") {
		t.Errorf("report should start with 'Analysis exported', got %q", out[:40])
	}
	for _, insight := range exportInsights {
		if !strings.Contains(out, insight) {
			t.Errorf("report should include insight %q", insight)
		}
	}
}

func TestExportPaths_EnumeratesRootToLeafPaths(t *testing.T) {
	tr, a, _ := newTestTree(t)
	if err := tr.ExpandLeaf(a, "deepen"); err != nil {
		t.Fatalf("ExpandLeaf failed: %v", err)
	}
	if _, err := tr.AddLeaf("A1", "r", 0.5, 5); err != nil {
		t.Fatalf("AddLeaf failed: %v", err)
	}

	paths := tr.paths()
	// Two terminals: A -> A1 and B.
	if len(paths) != 2 {
		t.Fatalf("paths = %d, want 2", len(paths))
	}
	if len(paths[0].NodeIDs) != 3 {
		t.Errorf("first path length = %d, want 3 (root, A, A1)", len(paths[0].NodeIDs))
	}
	// Joint probability multiplies along the chain: 1.0 * 0.6 * 0.5.
	if diff := paths[0].Probability - 0.3; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("first path probability = %g, want 0.3", paths[0].Probability)
	}
}

func TestExportPaths_InsightCount(t *testing.T) {
	tr, _, _ := newTestTree(t)

	_, err := tr.ExportPaths(Analytical, exportInsights[:2], 0.5)
	if !enginerr.IsKind(err, enginerr.InvalidArgument) {
		t.Errorf("two insights: kind = %v, want InvalidArgument", enginerr.KindOf(err))
	}
	if _, err := tr.ExportPaths(Analytical, exportInsights[:3], 0.5); err != nil {
		t.Errorf("three insights should succeed: %v", err)
	}
}

func TestExportPaths_EmptyInsightRejected(t *testing.T) {
	tr, _, _ := newTestTree(t)
	insights := []string{"one", "", "three"}
	if _, err := tr.ExportPaths(Analytical, insights, 0.5); err == nil {
		t.Error("empty insight should fail")
	}
}

func TestExportPaths_ConfidenceBounds(t *testing.T) {
	tr, _, _ := newTestTree(t)
	for _, c := range []float64{0.0, 1.0} {
		if _, err := tr.ExportPaths(Analytical, exportInsights, c); err != nil {
			t.Errorf("confidence %g should succeed: %v", c, err)
		}
	}
	for _, c := range []float64{-0.1, 1.01} {
		if _, err := tr.ExportPaths(Analytical, exportInsights, c); err == nil {
			t.Errorf("confidence %g should fail", c)
		}
	}
}

func TestExportPaths_Styles(t *testing.T) {
	tr, _, _ := newTestTree(t)
	for _, style := range []NarrativeStyle{Analytical, Narrative, Technical} {
		out, err := tr.ExportPaths(style, exportInsights, 0.7)
		if err != nil {
			t.Fatalf("%s: ExportPaths failed: %v", style, err)
		}
		if !strings.Contains(out, "exported") {
			t.Errorf("%s: report should mention 'exported'", style)
		}
	}
}

func TestParseNarrativeStyle(t *testing.T) {
	if _, err := ParseNarrativeStyle("Technical"); err != nil {
		t.Errorf("Technical should parse: %v", err)
	}
	_, err := ParseNarrativeStyle("Strategic")
	if !enginerr.IsKind(err, enginerr.InvalidArgument) {
		t.Errorf("kind = %v, want InvalidArgument", enginerr.KindOf(err))
	}
}
