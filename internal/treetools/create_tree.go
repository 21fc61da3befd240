package treetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reasonmcp/reasonmcp/internal/tree"
)

// CreateTreeTool handles the create_tree MCP tool. It replaces any existing
// tree in the session and leaves the cursor on the new root.
type CreateTreeTool struct {
	deps Deps
}

// NewCreateTreeTool creates a CreateTreeTool.
func NewCreateTreeTool(deps Deps) *CreateTreeTool {
	return &CreateTreeTool{deps: deps}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateTreeTool) Definition() mcp.Tool {
	return mcp.NewTool("create_tree",
		mcp.WithDescription(
			"Create a new analytical decision tree for this session. Replaces "+
				"any existing tree. The root premise is the question under "+
				"analysis; complexity (1-10) tunes the expected depth of the "+
				"exploration. The cursor starts on the root.",
		),
		mcp.WithString("premise",
			mcp.Required(),
			mcp.Description("The main question or statement to analyze."),
		),
		mcp.WithNumber("complexity",
			mcp.Required(),
			mcp.Description("Analysis complexity level from 1 to 10."),
		),
	)
}

// Handle processes the create_tree tool call.
func (t *CreateTreeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	premise := req.GetString("premise", "")
	complexity := req.GetInt("complexity", 0)

	return t.deps.withSession(ctx, func(sessionID string, st *State) (*mcp.CallToolResult, error) {
		created, err := tree.New(premise, complexity)
		if err != nil {
			return nil, err
		}
		st.Tree = created
		t.deps.record(sessionID, "create_tree", created.RootID())
		return mcp.NewToolResultText(fmt.Sprintf(
			"Successfully created analysis tree with root ID: %s", created.RootID())), nil
	})
}
