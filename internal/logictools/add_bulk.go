package logictools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// AddBulkTool handles the add_bulk MCP tool: multi-statement ingestion with
// optional all-or-nothing semantics.
type AddBulkTool struct {
	deps Deps
}

// NewAddBulkTool creates an AddBulkTool.
func NewAddBulkTool(deps Deps) *AddBulkTool {
	return &AddBulkTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *AddBulkTool) Definition() mcp.Tool {
	return mcp.NewTool("add_bulk",
		mcp.WithDescription(
			"Load multiple Datalog statements (facts and/or rules), one or more "+
				"per line. Lines starting with % and blank lines are skipped. "+
				"With atomic=true either every statement is added or none is; "+
				"with atomic=false valid statements are kept and failures are "+
				"reported per line.",
		),
		mcp.WithString("datalog",
			mcp.Required(),
			mcp.Description("Datalog statements separated by newlines."),
		),
		mcp.WithBoolean("atomic",
			mcp.Description("All-or-nothing ingestion. Default false."),
		),
	)
}

// Handle processes the add_bulk tool call.
func (t *AddBulkTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := req.GetString("datalog", "")
	atomic := req.GetBool("atomic", false)

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		report := st.KB.AddBulk(input, atomic)
		if report.Added > 0 {
			t.deps.record(sessionID, "add_bulk", fmt.Sprintf("added=%d", report.Added))
		}

		var b strings.Builder
		b.WriteString("Bulk load result:\n")
		fmt.Fprintf(&b, "- Added: %d statements\n", report.Added)
		fmt.Fprintf(&b, "- Skipped: %d\n", report.Skipped)
		fmt.Fprintf(&b, "- Rolled back: %t\n", report.RolledBack)
		if len(report.Errors) == 0 {
			b.WriteString("All statements loaded successfully")
		} else {
			b.WriteString("Errors:")
			for _, e := range report.Errors {
				fmt.Fprintf(&b, "\n  Line %d: %s", e.Line, e.Message)
			}
		}
		return mcp.NewToolResultText(b.String()), nil
	})
}
