package dml

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// DeleteRecordsInput defines the input parameters for the delete-records tool
type DeleteRecordsInput struct {
	// TableID is the short table name within the configured dataset
	TableID string `json:"tableId" jsonschema:"description=BigQuery table ID (short name within the configured dataset, not fully qualified)"`

	// WhereClause selects which records to delete
	WhereClause string `json:"whereClause" jsonschema:"description=SQL WHERE clause selecting the records to delete. Example: status = 'archived'. An empty clause is refused; to delete all rows explicitly pass a tautology like 1=1."`
}

func DeleteRecordsSpec() mcp.Tool {
	return mcp.NewTool("delete-records",
		mcp.WithDescription(`
		Delete records from a table in the configured BigQuery dataset.

		Runs a DELETE statement scoped by the given WHERE clause. An empty or
		whitespace-only clause is refused outright so a missing condition can
		never wipe a table; to delete every row, pass an explicit tautology
		like 1=1. The clause is concatenated verbatim and unescaped, so be
		precise and quote string literals correctly.

		On success the message reports how many rows were deleted.`),
		mcp.WithInputSchema[DeleteRecordsInput](),
		mcp.WithTitleAnnotation("Delete Records"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
