package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// KBStartPrompt handles the kb-start prompt of the Logical Inference
// service: rules first, then facts, then queries.
type KBStartPrompt struct{}

// NewKBStartPrompt creates a KBStartPrompt.
func NewKBStartPrompt() *KBStartPrompt {
	return &KBStartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *KBStartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("kb-start",
		mcp.WithPromptDescription(
			"Build a Datalog knowledge base for a domain and start querying it.",
		),
		mcp.WithArgument("domain",
			mcp.ArgumentDescription("The domain to model, e.g. 'family relations'."),
		),
	)
}

// Handle processes the kb-start prompt request.
func (p *KBStartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	domain := "the domain"
	if args := req.Params.Arguments; args != nil {
		if d, ok := args["domain"]; ok && d != "" {
			domain = d
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Build a knowledge base about %s", domain),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to reason about %s with Datalog.\n\n"+
						"Please:\n"+
						"1. Define the generic rules of the domain first, then its facts, and load both with `add_bulk` (atomic=true)\n"+
						"2. Verify the program with `list_premises`\n"+
						"3. Annotate the main predicates with `annotate_predicate` so explanations read naturally\n"+
						"4. Ask questions with `query` ('?- predicate(args).') and render the traces with `explain_inference`\n"+
						"5. Use `validate_rule` before adding new rules, and `reset` to start over",
					domain,
				)),
			},
		},
	}, nil
}
