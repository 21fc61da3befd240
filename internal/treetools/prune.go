package treetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// PruneTool handles the prune_tree MCP tool.
type PruneTool struct {
	deps Deps
}

// NewPruneTool creates a PruneTool.
func NewPruneTool(deps Deps) *PruneTool {
	return &PruneTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *PruneTool) Definition() mcp.Tool {
	return mcp.NewTool("prune_tree",
		mcp.WithDescription(
			"Delete leaves whose pruning score (probability x confidence/10) "+
				"falls below aggressiveness x the best leaf score. The root and "+
				"expanded nodes are never deleted; if the cursor is pruned it "+
				"falls back to the root.",
		),
		mcp.WithNumber("aggressiveness",
			mcp.Required(),
			mcp.Description("Pruning aggressiveness between 0.0 and 1.0."),
		),
	)
}

// Handle processes the prune_tree tool call.
func (t *PruneTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	aggressiveness := req.GetFloat("aggressiveness", -1)

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		tr, err := requireTree(st)
		if err != nil {
			return nil, err
		}
		report, err := tr.Prune(aggressiveness)
		if err != nil {
			return nil, err
		}
		t.deps.record(sessionID, "prune_tree", fmt.Sprintf("removed=%d", len(report.Removed)))
		return mcp.NewToolResultText(fmt.Sprintf(
			"Pruned %d nodes, preserved %d leaves at aggressiveness %.2f (threshold %.4f)",
			len(report.Removed), len(report.Preserved),
			report.Aggressiveness, report.Threshold)), nil
	})
}
