package treetools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reasonmcp/reasonmcp/internal/tree"
)

// ExportTool handles the export_paths MCP tool.
type ExportTool struct {
	deps Deps
}

// NewExportTool creates an ExportTool.
func NewExportTool(deps Deps) *ExportTool {
	return &ExportTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *ExportTool) Definition() mcp.Tool {
	return mcp.NewTool("export_paths",
		mcp.WithDescription(
			"Export every root-to-leaf path with its joint probability, woven "+
				"together with the caller's insights and overall confidence "+
				"assessment. At least three non-empty insights are required.",
		),
		mcp.WithString("narrative_style",
			mcp.Required(),
			mcp.Description("One of Analytical, Narrative or Technical."),
		),
		mcp.WithArray("insights",
			mcp.Required(),
			mcp.Description("At least three insights to integrate into the report."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("confidence_assessment",
			mcp.Required(),
			mcp.Description("Overall confidence between 0.0 and 1.0."),
		),
	)
}

// Handle processes the export_paths tool call.
func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawStyle := req.GetString("narrative_style", "")
	insights := req.GetStringSlice("insights", nil)
	confidence := req.GetFloat("confidence_assessment", -1)

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		tr, err := requireTree(st)
		if err != nil {
			return nil, err
		}
		style, err := tree.ParseNarrativeStyle(rawStyle)
		if err != nil {
			return nil, err
		}
		report, err := tr.ExportPaths(style, insights, confidence)
		if err != nil {
			return nil, err
		}
		t.deps.record(sessionID, "export_paths", string(style))
		return mcp.NewToolResultText(report), nil
	})
}
