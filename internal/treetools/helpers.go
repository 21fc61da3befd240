// Package treetools implements the MCP tools of the Deep Analytics service.
//
// Each file holds one tool. Tools receive their dependencies via a shared
// Deps struct and resolve the caller's analytical tree through the session
// registry; every handler runs under the session's exclusive lock.
package treetools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
	"github.com/reasonmcp/reasonmcp/internal/mcputil"
	"github.com/reasonmcp/reasonmcp/internal/session"
	"github.com/reasonmcp/reasonmcp/internal/store"
	"github.com/reasonmcp/reasonmcp/internal/tree"
)

// State is one session's analytical state: at most one live tree.
type State struct {
	Tree *tree.Tree
}

// NewState builds empty session state for the registry.
func NewState() *State { return &State{} }

// Deps carries the shared dependencies of every analytics tool.
type Deps struct {
	Sessions *session.Registry[*State]
	Journal  *store.Journal
	Log      *zap.Logger
}

// withSession resolves the caller's session and runs fn under its lock.
func (d Deps) withSession(ctx context.Context, fn func(sessionID string, st *State) (*mcp.CallToolResult, error)) (*mcp.CallToolResult, error) {
	sessionID, err := mcputil.SessionID(ctx)
	if err != nil {
		return mcputil.ErrorResult(err), nil
	}

	var result *mcp.CallToolResult
	d.Sessions.Get(sessionID).Do(func(st *State) {
		result, err = fn(sessionID, st)
	})
	if err != nil {
		return mcputil.ErrorResult(err), nil
	}
	return result, nil
}

// requireTree returns the session's tree or a StateViolation.
func requireTree(st *State) (*tree.Tree, error) {
	if st.Tree == nil {
		return nil, enginerr.New(enginerr.StateViolation,
			"no analysis tree exists; call create_tree first")
	}
	return st.Tree, nil
}

// record appends a journal row; journal failures are logged, never surfaced.
func (d Deps) record(sessionID, operation, detail string) {
	if err := d.Journal.Record(sessionID, operation, detail); err != nil {
		d.Log.Warn("journal write failed",
			zap.String("operation", operation), zap.Error(err))
	}
}
