package logictools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reasonmcp/reasonmcp/internal/datalog"
)

// MaterializeTool handles the materialize MCP tool: compute the closure of
// the knowledge base without answering a specific goal.
type MaterializeTool struct {
	deps Deps
}

// NewMaterializeTool creates a MaterializeTool.
func NewMaterializeTool(deps Deps) *MaterializeTool {
	return &MaterializeTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *MaterializeTool) Definition() mcp.Tool {
	return mcp.NewTool("materialize",
		mcp.WithDescription(
			"Run the inference engine to a fixpoint, deriving every fact the "+
				"current rules imply. Can be slow for large recursive rule "+
				"sets; bounded by timeout_ms (default 10000).",
		),
		mcp.WithNumber("timeout_ms",
			mcp.Description("Wall-clock limit in milliseconds. Default 10000."),
		),
	)
}

// Handle processes the materialize tool call.
func (t *MaterializeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timeoutMS := req.GetInt("timeout_ms", 0)

	timeout := datalog.DefaultMaterializeTimeout
	if timeoutMS > 0 {
		timeout = time.Duration(timeoutMS) * time.Millisecond
	}

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		result, err := t.deps.Bridge.Materialize(ctx, st.KB, timeout)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"Successfully materialized knowledge base: %d stated facts, %d facts in closure",
			result.BaseFacts, result.DerivedFacts)), nil
	})
}
