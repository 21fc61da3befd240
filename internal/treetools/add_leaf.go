package treetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// AddLeafTool handles the add_leaf MCP tool. New leaves become children of
// the cursor; the cursor itself does not move.
type AddLeafTool struct {
	deps Deps
}

// NewAddLeafTool creates an AddLeafTool.
func NewAddLeafTool(deps Deps) *AddLeafTool {
	return &AddLeafTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *AddLeafTool) Definition() mcp.Tool {
	return mcp.NewTool("add_leaf",
		mcp.WithDescription(
			"Add a new leaf under the current cursor node. The leaf carries a "+
				"premise, supporting reasoning, a probability in [0,1] and a "+
				"confidence level (1-10). The cursor does not move.",
		),
		mcp.WithString("premise",
			mcp.Required(),
			mcp.Description("The premise for this branch."),
		),
		mcp.WithString("reasoning",
			mcp.Required(),
			mcp.Description("Reasoning supporting this branch."),
		),
		mcp.WithNumber("probability",
			mcp.Required(),
			mcp.Description("Probability between 0.0 and 1.0."),
		),
		mcp.WithNumber("confidence",
			mcp.Required(),
			mcp.Description("Confidence level from 1 to 10."),
		),
	)
}

// Handle processes the add_leaf tool call.
func (t *AddLeafTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	premise := req.GetString("premise", "")
	reasoning := req.GetString("reasoning", "")
	probability := req.GetFloat("probability", -1)
	confidence := req.GetInt("confidence", 0)

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		tr, err := requireTree(st)
		if err != nil {
			return nil, err
		}
		id, err := tr.AddLeaf(premise, reasoning, probability, confidence)
		if err != nil {
			return nil, err
		}
		t.deps.record(sessionID, "add_leaf", id)
		return mcp.NewToolResultText(fmt.Sprintf(
			"Successfully added leaf node with ID: %s", id)), nil
	})
}
