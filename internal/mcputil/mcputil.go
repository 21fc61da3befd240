// Package mcputil holds the small shared pieces of the MCP boundary:
// session identity extraction and the error rendering contract.
package mcputil

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

// SessionID extracts the caller's session identifier from the request
// context. The streamable HTTP transport assigns one per MCP session.
func SessionID(ctx context.Context) (string, error) {
	cs := server.ClientSessionFromContext(ctx)
	if cs == nil || cs.SessionID() == "" {
		return "", enginerr.New(enginerr.NotFound, "no session attached to this call")
	}
	return cs.SessionID(), nil
}

// ErrorResult renders a domain error as the single-line tool response the
// clients match on: "Error: <kind>: <detail>".
func ErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err))
}
