package logictools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reasonmcp/reasonmcp/internal/datalog"
)

// ExplainTool handles the explain_inference MCP tool.
type ExplainTool struct {
	deps Deps
}

// NewExplainTool creates an ExplainTool.
func NewExplainTool(deps Deps) *ExplainTool {
	return &ExplainTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *ExplainTool) Definition() mcp.Tool {
	return mcp.NewTool("explain_inference",
		mcp.WithDescription(
			"Render an inference trace (from a previous query) as natural "+
				"language, substituting predicate annotations where available. "+
				"Set short=true for a one-sentence summary.",
		),
		mcp.WithString("trace_json",
			mcp.Required(),
			mcp.Description("The trace returned by a query call."),
		),
		mcp.WithBoolean("short",
			mcp.Description("Brief summary instead of the full explanation."),
		),
	)
}

// Handle processes the explain_inference tool call.
func (t *ExplainTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	traceJSON := req.GetString("trace_json", "")
	short := req.GetBool("short", false)

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		explanation := datalog.Explain(traceJSON, short, st.KB.Annotations())
		return mcp.NewToolResultText(explanation), nil
	})
}
