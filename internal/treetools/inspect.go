package treetools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// InspectTool handles the inspect_tree MCP tool.
type InspectTool struct {
	deps Deps
}

// NewInspectTool creates an InspectTool.
func NewInspectTool(deps Deps) *InspectTool {
	return &InspectTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *InspectTool) Definition() mcp.Tool {
	return mcp.NewTool("inspect_tree",
		mcp.WithDescription(
			"Render the current tree from the root: per-node id, premise, "+
				"probability, confidence, expansion status and child count, "+
				"followed by structural statistics.",
		),
	)
}

// Handle processes the inspect_tree tool call.
func (t *InspectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		tr, err := requireTree(st)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(tr.Inspect()), nil
	})
}
