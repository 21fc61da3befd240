package server

import (
	"fmt"
	"runtime"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/reasonmcp/reasonmcp/internal/config"
	"github.com/reasonmcp/reasonmcp/internal/datalog"
	"github.com/reasonmcp/reasonmcp/internal/logictools"
	"github.com/reasonmcp/reasonmcp/internal/prompts"
	"github.com/reasonmcp/reasonmcp/internal/session"
	"github.com/reasonmcp/reasonmcp/internal/store"
)

// NewLogical creates the Logical Inference MCP server with all tools and
// prompts registered. The worker pool hosting reasoner jobs is process-wide
// and sized from the CPU count at startup.
func NewLogical(cfg config.Config, log *zap.Logger) (*server.MCPServer, func(), error) {
	journal, err := store.Open("logical-engine", cfg.DatabaseURL)
	cleanup := noop
	if err != nil {
		log.Warn("operation journal disabled", zap.Error(err))
		journal = nil
	} else {
		cleanup = func() {
			if err := journal.Close(); err != nil {
				log.Warn("journal close failed", zap.Error(err))
			}
		}
	}

	s := server.NewMCPServer(
		"logical-engine",
		Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(logicalInstructions()),
	)

	deps := logictools.Deps{
		Sessions: session.NewRegistry(logictools.NewState),
		Bridge:   datalog.NewBridge(datalog.NewPool(runtime.NumCPU())),
		Journal:  journal,
		Log:      log,
	}

	addBulkTool := logictools.NewAddBulkTool(deps)
	s.AddTool(addBulkTool.Definition(), addBulkTool.Handle)

	addFactTool := logictools.NewAddFactTool(deps)
	s.AddTool(addFactTool.Definition(), addFactTool.Handle)

	addRuleTool := logictools.NewAddRuleTool(deps)
	s.AddTool(addRuleTool.Definition(), addRuleTool.Handle)

	queryTool := logictools.NewQueryTool(deps)
	s.AddTool(queryTool.Definition(), queryTool.Handle)

	materializeTool := logictools.NewMaterializeTool(deps)
	s.AddTool(materializeTool.Definition(), materializeTool.Handle)

	validateTool := logictools.NewValidateRuleTool(deps)
	s.AddTool(validateTool.Definition(), validateTool.Handle)

	listTool := logictools.NewListPremisesTool(deps)
	s.AddTool(listTool.Definition(), listTool.Handle)

	resetTool := logictools.NewResetTool(deps)
	s.AddTool(resetTool.Definition(), resetTool.Handle)

	explainTool := logictools.NewExplainTool(deps)
	s.AddTool(explainTool.Definition(), explainTool.Handle)

	annotateTool := logictools.NewAnnotateTool(deps)
	s.AddTool(annotateTool.Definition(), annotateTool.Handle)

	pingTool := logictools.NewPingTool()
	s.AddTool(pingTool.Definition(), pingTool.Handle)

	startPrompt := prompts.NewKBStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	return s, cleanup, nil
}

func logicalInstructions() string {
	return fmt.Sprintf(`Logical Inference MCP server %s

This server maintains one Datalog knowledge base per session and proves
queries against it with a materialisation engine.

Statement dialect:
- Facts: perro(fido).  edad(juan, 30).  nombre(x, "Fido").
- Rules: come(X) :- perro(X), existe(X).  Variables start uppercase; every
  head variable must appear in the body.
- Queries: ?- come(fido).  Conjunction with commas is allowed.
- Negation and aggregates are not supported.

Workflow: load rules first, then facts (add_bulk with atomic=true is the
safest), verify with list_premises, then query. Annotate predicates so
explain_inference reads naturally. reset clears the session's program.`, Version)
}
