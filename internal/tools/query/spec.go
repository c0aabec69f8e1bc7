package query

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// RunSQLQueryInput defines the input parameters for the run-sql-query tool
type RunSQLQueryInput struct {
	// Query is the GoogleSQL statement to execute
	Query string `json:"query" jsonschema:"description=The SQL query to execute. Use fully qualified backtick-quoted table names in the form project.dataset.table."`
}

func RunSQLQuerySpec() mcp.Tool {
	return mcp.NewTool("run-sql-query",
		mcp.WithDescription(`
		Execute a SQL query against BigQuery and return the result rows as JSON.

		Table references MUST be fully qualified with the configured project and
		dataset, backtick-quoted: SELECT * FROM `+"`my-project.my_dataset.my_table`"+` LIMIT 10.
		Use list-tables and get-table-schema first to discover table names and
		column structure.

		Result values are JSON-safe: DATE, TIME, DATETIME and TIMESTAMP columns
		come back as ISO-8601 strings, NUMERIC and BIGNUMERIC as decimal
		strings.`),
		mcp.WithInputSchema[RunSQLQueryInput](),
		mcp.WithTitleAnnotation("Run SQL Query"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
