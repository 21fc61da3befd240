package treetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ExpandLeafTool handles the expand_leaf MCP tool. Expansion is one-way:
// once a node is expanded it can receive children and never reverts.
type ExpandLeafTool struct {
	deps Deps
}

// NewExpandLeafTool creates an ExpandLeafTool.
func NewExpandLeafTool(deps Deps) *ExpandLeafTool {
	return &ExpandLeafTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *ExpandLeafTool) Definition() mcp.Tool {
	return mcp.NewTool("expand_leaf",
		mcp.WithDescription(
			"Expand an unexpanded non-root node so it can receive children. "+
				"Moves the cursor to the expanded node. Re-expansion is not "+
				"allowed, and the root is born expanded.",
		),
		mcp.WithString("node_id",
			mcp.Required(),
			mcp.Description("ID of the leaf node to expand."),
		),
		mcp.WithString("rationale",
			mcp.Required(),
			mcp.Description("Why this branch deserves deeper analysis."),
		),
	)
}

// Handle processes the expand_leaf tool call.
func (t *ExpandLeafTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeID := req.GetString("node_id", "")
	rationale := req.GetString("rationale", "")

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		tr, err := requireTree(st)
		if err != nil {
			return nil, err
		}
		if err := tr.ExpandLeaf(nodeID, rationale); err != nil {
			return nil, err
		}
		t.deps.record(sessionID, "expand_leaf", nodeID)
		return mcp.NewToolResultText(fmt.Sprintf(
			"Successfully expanded node %s; the cursor now points at it", nodeID)), nil
	})
}
