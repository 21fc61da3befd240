// Package server wires the MCP components of both services.
//
// This is the composition root: it creates the concrete session registries,
// journals and worker pools and injects them into the tools and prompts.
// No business logic lives here — only wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/reasonmcp/reasonmcp/internal/config"
	"github.com/reasonmcp/reasonmcp/internal/prompts"
	"github.com/reasonmcp/reasonmcp/internal/session"
	"github.com/reasonmcp/reasonmcp/internal/store"
	"github.com/reasonmcp/reasonmcp/internal/treetools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewAnalytics creates the Deep Analytics MCP server with all tools and
// prompts registered.
//
// The returned cleanup function closes the journal database and must be
// called on shutdown (typically via defer). It is always non-nil and safe
// to call even if the journal failed to open.
func NewAnalytics(cfg config.Config, log *zap.Logger) (*server.MCPServer, func(), error) {
	// The journal is a write-through side effect: if it cannot open, the
	// service still runs and we only lose the operation trail.
	journal, err := store.Open("deep-analytics", cfg.DatabaseURL)
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
		"deep-analytics",
		Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(analyticsInstructions()),
	)

	deps := treetools.Deps{
		Sessions: session.NewRegistry(treetools.NewState),
		Journal:  journal,
		Log:      log,
	}

	createTool := treetools.NewCreateTreeTool(deps)
	s.AddTool(createTool.Definition(), createTool.Handle)

	addLeafTool := treetools.NewAddLeafTool(deps)
	s.AddTool(addLeafTool.Definition(), addLeafTool.Handle)

	expandTool := treetools.NewExpandLeafTool(deps)
	s.AddTool(expandTool.Definition(), expandTool.Handle)

	navigateTool := treetools.NewNavigateTool(deps)
	s.AddTool(navigateTool.Definition(), navigateTool.Handle)

	inspectTool := treetools.NewInspectTool(deps)
	s.AddTool(inspectTool.Definition(), inspectTool.Handle)

	balanceTool := treetools.NewBalanceTool(deps)
	s.AddTool(balanceTool.Definition(), balanceTool.Handle)

	pruneTool := treetools.NewPruneTool(deps)
	s.AddTool(pruneTool.Definition(), pruneTool.Handle)

	pruneLeafsTool := treetools.NewPruneLeafsTool(deps)
	s.AddTool(pruneLeafsTool.Definition(), pruneLeafsTool.Handle)

	coherenceTool := treetools.NewCoherenceTool(deps)
	s.AddTool(coherenceTool.Definition(), coherenceTool.Handle)

	statusTool := treetools.NewStatusTool(deps)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	exportTool := treetools.NewExportTool(deps)
	s.AddTool(exportTool.Definition(), exportTool.Handle)

	pingTool := treetools.NewPingTool()
	s.AddTool(pingTool.Definition(), pingTool.Handle)

	startPrompt := prompts.NewAnalysisStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	return s, cleanup, nil
}

// noop is the default cleanup when the journal is disabled.
func noop() {}

func analyticsInstructions() string {
	return fmt.Sprintf(`Deep Analytics MCP server %s

This server maintains one analytical decision tree per session: a rooted tree
of premises annotated with probability and confidence, navigated through a
moving cursor.

Workflow:
- create_tree starts a fresh analysis (the cursor lands on the root)
- add_leaf attaches competing hypotheses under the cursor
- balance_leafs renormalises the cursor's children (Conservative, Neutral
  or Optimistic)
- expand_leaf opens a branch for deeper analysis and moves the cursor there;
  navigate_to moves the cursor anywhere
- prune_tree / prune_leafs drop weak leaves by pruning score
- inspect_tree, validate_coherence and probability_status report structure
  and health without mutating anything
- export_paths produces the final report over every root-to-leaf path

All state is per-session and in-memory; a new session starts empty.`, Version)
}
