package logictools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// AddFactTool handles the add_fact MCP tool.
type AddFactTool struct {
	deps Deps
}

// NewAddFactTool creates an AddFactTool.
func NewAddFactTool(deps Deps) *AddFactTool {
	return &AddFactTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *AddFactTool) Definition() mcp.Tool {
	return mcp.NewTool("add_fact",
		mcp.WithDescription(
			"Add a single Datalog fact such as 'perro(fido).' or "+
				"'edad(juan, 30).'. Arguments are lowercase constants, quoted "+
				"strings or integers; the statement must end with a period.",
		),
		mcp.WithString("fact",
			mcp.Required(),
			mcp.Description("The fact to add."),
		),
	)
}

// Handle processes the add_fact tool call.
func (t *AddFactTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fact := req.GetString("fact", "")

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		stmt, err := st.KB.AddFact(fact)
		if err != nil {
			return nil, err
		}
		t.deps.record(sessionID, "add_fact", stmt.Text)
		return mcp.NewToolResultText(fmt.Sprintf("Successfully loaded fact: %s", stmt.Text)), nil
	})
}
