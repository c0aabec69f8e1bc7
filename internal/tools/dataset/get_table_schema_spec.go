package dataset

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// GetTableSchemaInput defines the input parameters for the get-table-schema tool
type GetTableSchemaInput struct {
	// TableID is the short table name within the configured dataset
	TableID string `json:"tableId" jsonschema:"description=BigQuery table ID (short name within the configured dataset, not fully qualified)"`
}

func GetTableSchemaSpec() mcp.Tool {
	return mcp.NewTool("get-table-schema",
		mcp.WithDescription(`
		Retrieve the schema of a table in the configured BigQuery dataset.

		Returns a JSON array with one entry per column:
		[{"name": "user_id", "type": "STRING", "mode": "REQUIRED"}, ...]

		The mode is REQUIRED, NULLABLE or REPEATED. Use this after list-tables
		to understand a table's structure before constructing a SQL query.`),
		mcp.WithInputSchema[GetTableSchemaInput](),
		mcp.WithTitleAnnotation("Get Table Schema"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
