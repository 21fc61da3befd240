package logictools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// AnnotateTool handles the annotate_predicate MCP tool. Annotations never
// affect inference; explain_inference uses them as a legend.
type AnnotateTool struct {
	deps Deps
}

// NewAnnotateTool creates an AnnotateTool.
func NewAnnotateTool(deps Deps) *AnnotateTool {
	return &AnnotateTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *AnnotateTool) Definition() mcp.Tool {
	return mcp.NewTool("annotate_predicate",
		mcp.WithDescription(
			"Associate a human-readable label with a predicate name, e.g. "+
				"'perro' -> 'is a dog'. Used only when rendering explanations.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The predicate name."),
		),
		mcp.WithString("label",
			mcp.Required(),
			mcp.Description("The human-readable label."),
		),
	)
}

// Handle processes the annotate_predicate tool call.
func (t *AnnotateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	label := req.GetString("label", "")

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		if err := st.KB.Annotate(name, label); err != nil {
			return nil, err
		}
		t.deps.record(sessionID, "annotate_predicate", name)
		return mcp.NewToolResultText(fmt.Sprintf(
			"Successfully added annotation for predicate '%s'", name)), nil
	})
}
