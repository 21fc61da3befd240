package logictools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListPremisesTool handles the list_premises MCP tool.
type ListPremisesTool struct {
	deps Deps
}

// NewListPremisesTool creates a ListPremisesTool.
func NewListPremisesTool(deps Deps) *ListPremisesTool {
	return &ListPremisesTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *ListPremisesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_premises",
		mcp.WithDescription(
			"Show every fact and rule currently in the knowledge base, one per "+
				"line, in insertion order.",
		),
	)
}

// Handle processes the list_premises tool call.
func (t *ListPremisesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		premises := st.KB.ListPremises()
		if len(premises) == 0 {
			return mcp.NewToolResultText("% No premises loaded"), nil
		}
		return mcp.NewToolResultText(strings.Join(premises, "\n")), nil
	})
}
