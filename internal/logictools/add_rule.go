package logictools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// AddRuleTool handles the add_rule MCP tool.
type AddRuleTool struct {
	deps Deps
}

// NewAddRuleTool creates an AddRuleTool.
func NewAddRuleTool(deps Deps) *AddRuleTool {
	return &AddRuleTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *AddRuleTool) Definition() mcp.Tool {
	return mcp.NewTool("add_rule",
		mcp.WithDescription(
			"Add a Datalog rule such as 'come(X) :- perro(X), existe(X).'. "+
				"Variables start with an uppercase letter; every head variable "+
				"must appear in the body, and the body cannot be empty. "+
				"Negation and aggregates are not supported.",
		),
		mcp.WithString("rule",
			mcp.Required(),
			mcp.Description("The rule to add."),
		),
	)
}

// Handle processes the add_rule tool call.
func (t *AddRuleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rule := req.GetString("rule", "")

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		stmt, err := st.KB.AddRule(rule)
		if err != nil {
			return nil, err
		}
		t.deps.record(sessionID, "add_rule", stmt.Text)
		return mcp.NewToolResultText(fmt.Sprintf("Successfully loaded rule: %s", stmt.Text)), nil
	})
}
