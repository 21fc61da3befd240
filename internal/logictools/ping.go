package logictools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// PingTool handles the ping MCP tool.
type PingTool struct{}

// NewPingTool creates a PingTool.
func NewPingTool() *PingTool { return &PingTool{} }

// Definition returns the MCP tool definition for registration.
func (t *PingTool) Definition() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Health probe. Returns true when the service is up."),
	)
}

// Handle processes the ping tool call.
func (t *PingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("true"), nil
}
