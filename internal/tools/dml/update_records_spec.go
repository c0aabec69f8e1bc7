package dml

import (
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools/dml/utils"
	"github.com/mark3labs/mcp-go/mcp"
)

// UpdateRecordsInput defines the input parameters for the update-records tool
type UpdateRecordsInput struct {
	// TableID is the short table name within the configured dataset
	TableID string `json:"tableId" jsonschema:"description=BigQuery table ID (short name within the configured dataset, not fully qualified)"`

	// SetValues maps column names to their new values
	SetValues utils.SetValues `json:"setValues" jsonschema:"description=Column-to-value map of updates. Example: {\"status\": \"completed\", \"score\": 100}"`

	// WhereClause selects which records to update
	WhereClause string `json:"whereClause" jsonschema:"description=SQL WHERE clause selecting the records to update. Example: user_id = 'user123' AND attempt_date < '2024-01-01'. Concatenated verbatim, so quote string values properly."`
}

func UpdateRecordsSpec() mcp.Tool {
	return mcp.NewTool("update-records",
		mcp.WithDescription(`
		Update records in a table in the configured BigQuery dataset.

		Builds and runs a parameterized UPDATE statement: every value in
		setValues binds as a typed query parameter, never interpolated into the
		SQL. Supported value types: string, number, boolean. The WHERE clause
		is concatenated verbatim and unescaped, so be precise and quote string
		literals correctly.

		On success the message reports how many rows were updated. Note that
		rows written by a recent streaming insert may not be updatable until
		the streaming buffer drains.`),
		mcp.WithInputSchema[UpdateRecordsInput](),
		mcp.WithTitleAnnotation("Update Records"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
