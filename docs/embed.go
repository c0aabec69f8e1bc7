package docs

import (
	_ "embed"
)

// AssistantInstructions embeds the BigQuery assistant workflow guidance.
// It is a text/template body rendered with the configured project and dataset
// IDs, then served both as the MCP server instructions and as the
// bigquery-assistant prompt.
//
//go:embed prompts/bigquery_assistant.md
var AssistantInstructions string
