package logictools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reasonmcp/reasonmcp/internal/datalog"
)

// ValidateRuleTool handles the validate_rule MCP tool: a pure check with no
// mutation and no session state beyond the lock.
type ValidateRuleTool struct {
	deps Deps
}

// NewValidateRuleTool creates a ValidateRuleTool.
func NewValidateRuleTool(deps Deps) *ValidateRuleTool {
	return &ValidateRuleTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *ValidateRuleTool) Definition() mcp.Tool {
	return mcp.NewTool("validate_rule",
		mcp.WithDescription(
			"Check a Datalog rule for syntactic and semantic defects without "+
				"loading it: unbound head variables, empty bodies, malformed "+
				"atoms, unsupported constructs.",
		),
		mcp.WithString("rule",
			mcp.Required(),
			mcp.Description("The rule to validate."),
		),
	)
}

// Handle processes the validate_rule tool call.
func (t *ValidateRuleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rule := req.GetString("rule", "")

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		report := datalog.ValidateRule(rule)
		return mcp.NewToolResultText(report.Render(rule)), nil
	})
}
