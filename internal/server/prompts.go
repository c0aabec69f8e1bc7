package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// assistantPromptName identifies the prompt carrying the workflow guidance.
const assistantPromptName = "bigquery-assistant"

// registerPrompts exposes the rendered assistant instructions as an MCP
// prompt, so clients that surface prompts can inject the workflow guidance
// into a conversation on demand.
func (s *BigQueryMCPServer) registerPrompts(instructions string) {
	prompt := mcp.NewPrompt(assistantPromptName,
		mcp.WithPromptDescription("Workflow guidance for querying the configured BigQuery dataset"),
	)

	s.MCPServer.AddPrompt(prompt, func(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return mcp.NewGetPromptResult(
			"BigQuery assistant instructions",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(instructions)),
			},
		), nil
	})
}
