package dataset

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func ListTablesSpec() mcp.Tool {
	return mcp.NewTool("list-tables",
		mcp.WithDescription(`
		List all tables in the configured BigQuery dataset.

		Returns a JSON array of table IDs (short names, not fully qualified).
		The project and dataset are fixed by server configuration, so no
		arguments are needed.

		Call this first to discover which tables exist before asking for a
		schema or running a query.`),
		mcp.WithTitleAnnotation("List Dataset Tables"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
