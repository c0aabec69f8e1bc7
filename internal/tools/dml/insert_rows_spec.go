package dml

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// InsertRowsInput defines the input parameters for the insert-rows tool
type InsertRowsInput struct {
	// TableID is the short table name within the configured dataset
	TableID string `json:"tableId" jsonschema:"description=BigQuery table ID (short name within the configured dataset, not fully qualified)"`

	// Rows are the records to insert, one object per row
	Rows []map[string]any `json:"rows" jsonschema:"description=List of row objects to insert. Keys are column names. Example: [{\"name\": \"Alice\", \"age\": 30}]"`
}

func InsertRowsSpec() mcp.Tool {
	return mcp.NewTool("insert-rows",
		mcp.WithDescription(`
		Insert one or more rows into a table in the configured BigQuery dataset.

		Rows are streamed in with best-effort deduplication. Keys in each row
		object must match the table's column names; get-table-schema shows the
		expected columns. DATE, TIME, DATETIME, TIMESTAMP and NUMERIC values
		are passed as their string forms.

		On success the message reports how many rows were inserted. If some
		rows are rejected, the per-row errors are reported by row index.`),
		mcp.WithInputSchema[InsertRowsInput](),
		mcp.WithTitleAnnotation("Insert Rows"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
