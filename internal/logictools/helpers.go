// Package logictools implements the MCP tools of the Logical Inference
// service.
//
// Each file holds one tool. Session state is a Datalog knowledge base that
// owns only program text; reasoning happens through the bridge, which hosts a
// fresh throwaway reasoner on a blocking worker per call. Query and
// materialize are the only handlers that suspend while holding the session
// lock — they wait on their worker under a timeout gate.
package logictools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/reasonmcp/reasonmcp/internal/datalog"
	"github.com/reasonmcp/reasonmcp/internal/mcputil"
	"github.com/reasonmcp/reasonmcp/internal/session"
	"github.com/reasonmcp/reasonmcp/internal/store"
)

// State is one session's logical state: a single knowledge base.
type State struct {
	KB *datalog.KnowledgeBase
}

// NewState builds empty session state for the registry.
func NewState() *State {
	return &State{KB: datalog.NewKnowledgeBase()}
}

// Deps carries the shared dependencies of every logic tool.
type Deps struct {
	Sessions *session.Registry[*State]
	Bridge   *datalog.Bridge
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

// record appends a journal row; journal failures are logged, never surfaced.
func (d Deps) record(sessionID, operation, detail string) {
	if err := d.Journal.Record(sessionID, operation, detail); err != nil {
		d.Log.Warn("journal write failed",
			zap.String("operation", operation), zap.Error(err))
	}
}
