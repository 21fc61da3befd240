package treetools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reasonmcp/reasonmcp/internal/tree"
)

// BalanceTool handles the balance_leafs MCP tool. It renormalises the
// probabilities of the cursor's direct children under a named policy.
type BalanceTool struct {
	deps Deps
}

// NewBalanceTool creates a BalanceTool.
func NewBalanceTool(deps Deps) *BalanceTool {
	return &BalanceTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *BalanceTool) Definition() mcp.Tool {
	return mcp.NewTool("balance_leafs",
		mcp.WithDescription(
			"Normalise the probabilities of the cursor's direct children so "+
				"they sum to 1.0. Conservative downweights low-confidence "+
				"branches, Neutral renormalises as-is, Optimistic bumps "+
				"high-confidence branches toward certainty.",
		),
		mcp.WithString("uncertainty_type",
			mcp.Required(),
			mcp.Description("One of Conservative, Neutral or Optimistic."),
		),
	)
}

// Handle processes the balance_leafs tool call.
func (t *BalanceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawPolicy := req.GetString("uncertainty_type", "")

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		tr, err := requireTree(st)
		if err != nil {
			return nil, err
		}
		policy, err := tree.ParseUncertaintyType(rawPolicy)
		if err != nil {
			return nil, err
		}
		report, err := tr.Balance(policy)
		if err != nil {
			return nil, err
		}
		t.deps.record(sessionID, "balance_leafs", string(policy))

		var b strings.Builder
		fmt.Fprintf(&b, "Balanced %d children with the %s policy",
			len(report.Changes), report.Policy)
		for _, c := range report.Changes {
			fmt.Fprintf(&b, "\n- %s: %.4f -> %.4f", c.NodeID, c.Old, c.New)
		}
		return mcp.NewToolResultText(b.String()), nil
	})
}
