package logictools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reasonmcp/reasonmcp/internal/datalog"
)

// QueryTool handles the query MCP tool. The goal is validated before any
// worker is involved; a fresh reasoner is then built and discarded on the
// blocking pool under the timeout gate.
type QueryTool struct {
	deps Deps
}

// NewQueryTool creates a QueryTool.
func NewQueryTool(deps Deps) *QueryTool {
	return &QueryTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *QueryTool) Definition() mcp.Tool {
	return mcp.NewTool("query",
		mcp.WithDescription(
			"Execute a Datalog goal such as '?- come(fido).' against the "+
				"knowledge base. The goal must start with ?- and end with a "+
				"period; variables start with an uppercase letter. Returns a "+
				"proven/not-proven verdict plus an opaque trace that "+
				"explain_inference can render.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The goal, e.g. '?- come(fido).'."),
		),
		mcp.WithNumber("timeout_ms",
			mcp.Description("Wall-clock limit in milliseconds. Default 5000."),
		),
	)
}

// Handle processes the query tool call.
func (t *QueryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	timeoutMS := req.GetInt("timeout_ms", 0)

	timeout := datalog.DefaultQueryTimeout
	if timeoutMS > 0 {
		timeout = time.Duration(timeoutMS) * time.Millisecond
	}

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		result, err := t.deps.Bridge.Query(ctx, st.KB, query, timeout)
		if err != nil {
			return nil, err
		}

		bindings := "None"
		if len(result.Bindings) > 0 {
			bindings = strings.Join(result.Bindings, ", ")
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"Query result for '%s':\n- Proven: %t\n- Bindings: %s\n- Trace: %s",
			query, result.Proven, bindings, result.Trace)), nil
	})
}
