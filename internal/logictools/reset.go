package logictools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResetTool handles the reset MCP tool.
type ResetTool struct {
	deps Deps
}

// NewResetTool creates a ResetTool.
func NewResetTool(deps Deps) *ResetTool {
	return &ResetTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *ResetTool) Definition() mcp.Tool {
	return mcp.NewTool("reset",
		mcp.WithDescription(
			"Clear all facts, rules and annotations from the knowledge base. "+
				"Irreversible; always succeeds.",
		),
	)
}

// Handle processes the reset tool call.
func (t *ResetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		st.KB.Reset()
		t.deps.record(sessionID, "reset", "")
		return mcp.NewToolResultText("Knowledge base reset to empty state"), nil
	})
}
