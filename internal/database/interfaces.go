package database

//go:generate mockgen -destination=mocks/mock_database.go -package=database_mocks -typed github.com/daniel-kwapien-dvt/bigquery-agent/internal/database Service
import (
	"context"

	"cloud.google.com/go/bigquery"
)

// SchemaField describes one column of a table schema the way the REST API
// reports it: a name, a type such as STRING or INTEGER, and a mode of
// NULLABLE, REQUIRED or REPEATED.
type SchemaField struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Mode string `json:"mode"`
}

// Service covers every BigQuery operation the tools need.
type Service interface {
	// ListTables returns the IDs of all tables in the configured dataset.
	ListTables(ctx context.Context) ([]string, error)
	// GetTableSchema returns the column definitions of one table in the
	// configured dataset.
	GetTableSchema(ctx context.Context, tableID string) ([]SchemaField, error)
	// ExecuteQuery runs a row-producing SQL statement and collects all rows.
	ExecuteQuery(ctx context.Context, sql string, params []bigquery.QueryParameter) ([]map[string]bigquery.Value, error)
	// ExecuteDML runs a mutating statement and returns the affected row count.
	ExecuteDML(ctx context.Context, sql string, params []bigquery.QueryParameter) (int64, error)
	// InsertRows streams rows into a table. A bigquery.PutMultiError is
	// returned unwrapped so callers can report per-row failures.
	InsertRows(ctx context.Context, tableID string, rows []map[string]bigquery.Value) error
	// RowsToJSON serializes query results into a JSON array string.
	RowsToJSON(rows []map[string]bigquery.Value) (string, error)
	ProjectID() string
	DatasetID() string
	Close() error
}
