// Package prompts implements MCP prompt handlers for both services.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which the
// AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// AnalysisStartPrompt handles the analysis-start prompt of the Deep
// Analytics service: it walks a client from tree creation to export.
type AnalysisStartPrompt struct{}

// NewAnalysisStartPrompt creates an AnalysisStartPrompt.
func NewAnalysisStartPrompt() *AnalysisStartPrompt {
	return &AnalysisStartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *AnalysisStartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("analysis-start",
		mcp.WithPromptDescription(
			"Start a probabilistic decision analysis. Guides you from creating "+
				"the tree through branching, balancing, pruning and export.",
		),
		mcp.WithArgument("question",
			mcp.ArgumentDescription("The question or decision to analyze."),
		),
		mcp.WithArgument("complexity",
			mcp.ArgumentDescription("Analysis complexity from 1 to 10. Default: 5."),
		),
	)
}

// Handle processes the analysis-start prompt request.
func (p *AnalysisStartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	question := "the decision at hand"
	if args := req.Params.Arguments; args != nil {
		if q, ok := args["question"]; ok && q != "" {
			question = q
		}
	}
	complexity := "5"
	if args := req.Params.Arguments; args != nil {
		if c, ok := args["complexity"]; ok && c != "" {
			complexity = c
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Analyze: %s", question),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to analyze %q as a probability tree.\n\n"+
						"Please:\n"+
						"1. Run `create_tree` with premise='%s' and complexity=%s\n"+
						"2. Add 2-4 competing hypotheses with `add_leaf`, each with a probability and confidence\n"+
						"3. Run `balance_leafs` with uncertainty_type='Neutral' so the probabilities sum to 1\n"+
						"4. Use `expand_leaf` and `navigate_to` to deepen the most promising branches\n"+
						"5. Prune weak branches with `prune_tree`, then check `validate_coherence`\n"+
						"6. Finish with `export_paths`, giving at least three insights and a confidence assessment",
					question, question, complexity,
				)),
			},
		},
	}, nil
}
