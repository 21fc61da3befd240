package treetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// NavigateTool handles the navigate_to MCP tool. It moves the cursor only;
// tree structure is untouched.
type NavigateTool struct {
	deps Deps
}

// NewNavigateTool creates a NavigateTool.
func NewNavigateTool(deps Deps) *NavigateTool {
	return &NavigateTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *NavigateTool) Definition() mcp.Tool {
	return mcp.NewTool("navigate_to",
		mcp.WithDescription(
			"Move the cursor to a node. Subsequent add_leaf and balance_leafs "+
				"calls operate relative to the cursor.",
		),
		mcp.WithString("node_id",
			mcp.Required(),
			mcp.Description("ID of the node to focus."),
		),
		mcp.WithString("justification",
			mcp.Required(),
			mcp.Description("Why the analysis moves here."),
		),
	)
}

// Handle processes the navigate_to tool call.
func (t *NavigateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeID := req.GetString("node_id", "")
	justification := req.GetString("justification", "")

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		tr, err := requireTree(st)
		if err != nil {
			return nil, err
		}
		if err := tr.NavigateTo(nodeID, justification); err != nil {
			return nil, err
		}
		t.deps.record(sessionID, "navigate_to", nodeID)
		return mcp.NewToolResultText(fmt.Sprintf("Cursor moved to node %s", nodeID)), nil
	})
}
