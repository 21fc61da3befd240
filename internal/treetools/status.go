package treetools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusTool handles the probability_status MCP tool: a read-only sweep for
// probability and confidence violations.
type StatusTool struct {
	deps Deps
}

// NewStatusTool creates a StatusTool.
func NewStatusTool(deps Deps) *StatusTool {
	return &StatusTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("probability_status",
		mcp.WithDescription(
			"Report the probability health of the tree: per-node range checks "+
				"and sibling probability-sum checks, with suggestions. Never "+
				"mutates the tree.",
		),
	)
}

// Handle processes the probability_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		tr, err := requireTree(st)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(tr.Status().Render()), nil
	})
}
