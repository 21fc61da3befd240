package treetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// PruneLeafsTool handles the prune_leafs MCP tool: count-based pruning that
// keeps only the best-scoring leaves under the cursor.
type PruneLeafsTool struct {
	deps Deps
}

// NewPruneLeafsTool creates a PruneLeafsTool.
func NewPruneLeafsTool(deps Deps) *PruneLeafsTool {
	return &PruneLeafsTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *PruneLeafsTool) Definition() mcp.Tool {
	return mcp.NewTool("prune_leafs",
		mcp.WithDescription(
			"Keep only the keep_count highest-scoring leaves under the cursor "+
				"and delete the rest. Leaves elsewhere in the tree are untouched.",
		),
		mcp.WithNumber("keep_count",
			mcp.Required(),
			mcp.Description("How many leaves to keep (at least 1)."),
		),
	)
}

// Handle processes the prune_leafs tool call.
func (t *PruneLeafsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keep := req.GetInt("keep_count", 0)

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		tr, err := requireTree(st)
		if err != nil {
			return nil, err
		}
		report, err := tr.PruneLeafs(keep)
		if err != nil {
			return nil, err
		}
		t.deps.record(sessionID, "prune_leafs", fmt.Sprintf("removed=%d", len(report.Removed)))
		return mcp.NewToolResultText(fmt.Sprintf(
			"Pruned %d leaves, preserved %d under the cursor",
			len(report.Removed), len(report.Preserved))), nil
	})
}
