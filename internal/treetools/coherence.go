package treetools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// CoherenceTool handles the validate_coherence MCP tool.
type CoherenceTool struct {
	deps Deps
}

// NewCoherenceTool creates a CoherenceTool.
func NewCoherenceTool(deps Deps) *CoherenceTool {
	return &CoherenceTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *CoherenceTool) Definition() mcp.Tool {
	return mcp.NewTool("validate_coherence",
		mcp.WithDescription(
			"Compute a structural coherence report: node and leaf counts, "+
				"depth, branching, and per-node probability-conservation "+
				"deviation, summarised as a coherence score in [0,1]. The "+
				"analysis_detail text is echoed into the report header and "+
				"must describe the analysis in at least 32 characters.",
		),
		mcp.WithString("analysis_detail",
			mcp.Required(),
			mcp.Description("A substantive description of what is being checked."),
		),
	)
}

// Handle processes the validate_coherence tool call.
func (t *CoherenceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	detail := req.GetString("analysis_detail", "")

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		tr, err := requireTree(st)
		if err != nil {
			return nil, err
		}
		report, err := tr.Coherence(detail)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(report.Render()), nil
	})
}
