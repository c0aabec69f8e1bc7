package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/config"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// bigqueryService implements Service on top of the official Go client.
type bigqueryService struct {
	client    *bigquery.Client
	projectID string
	datasetID string
}

// NewService connects to BigQuery and scopes every operation to the project
// and dataset from the configuration. Extra client options are passed through
// to the underlying client; integration tests use them to point at an
// emulator endpoint without authentication.
func NewService(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (Service, error) {
	client, err := bigquery.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}
	if cfg.Location != "" {
		client.Location = cfg.Location
	}

	slog.Info("connected to BigQuery", "project", cfg.ProjectID, "dataset", cfg.DatasetID)

	return &bigqueryService{
		client:    client,
		projectID: cfg.ProjectID,
		datasetID: cfg.DatasetID,
	}, nil
}

func (s *bigqueryService) ListTables(ctx context.Context) ([]string, error) {
	it := s.client.Dataset(s.datasetID).Tables(ctx)

	tableIDs := make([]string, 0)
	for {
		table, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list tables in dataset %s: %w", s.datasetID, err)
		}
		tableIDs = append(tableIDs, table.TableID)
	}
	return tableIDs, nil
}

func (s *bigqueryService) GetTableSchema(ctx context.Context, tableID string) ([]SchemaField, error) {
	meta, err := s.client.Dataset(s.datasetID).Table(tableID).Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata for table %s: %w", tableID, err)
	}

	fields := make([]SchemaField, 0, len(meta.Schema))
	for _, field := range meta.Schema {
		fields = append(fields, SchemaField{
			Name: field.Name,
			Type: string(field.Type),
			Mode: fieldMode(field),
		})
	}
	return fields, nil
}

// fieldMode maps the client's schema flags back onto the REST API mode names.
func fieldMode(field *bigquery.FieldSchema) string {
	switch {
	case field.Repeated:
		return "REPEATED"
	case field.Required:
		return "REQUIRED"
	default:
		return "NULLABLE"
	}
}

func (s *bigqueryService) ExecuteQuery(ctx context.Context, sql string, params []bigquery.QueryParameter) ([]map[string]bigquery.Value, error) {
	query := s.client.Query(sql)
	query.Parameters = params

	it, err := query.Read(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]bigquery.Value, 0)
	for {
		// A nil destination map makes the iterator allocate a fresh one per row.
		var row map[string]bigquery.Value
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read query results: %w", err)
		}
		rows = append(rows, row)
	}

	slog.Debug("query completed", "rows", len(rows))
	return rows, nil
}

func (s *bigqueryService) ExecuteDML(ctx context.Context, sql string, params []bigquery.QueryParameter) (int64, error) {
	query := s.client.Query(sql)
	query.Parameters = params

	job, err := query.Run(ctx)
	if err != nil {
		return 0, err
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return 0, err
	}
	if err := status.Err(); err != nil {
		return 0, err
	}

	if stats, ok := status.Statistics.Details.(*bigquery.QueryStatistics); ok {
		slog.Debug("DML statement completed", "affectedRows", stats.NumDMLAffectedRows)
		return stats.NumDMLAffectedRows, nil
	}
	return 0, nil
}

// insertRow implements bigquery.ValueSaver so each streamed row carries a
// generated insert ID for the streaming dedup window.
type insertRow struct {
	values   map[string]bigquery.Value
	insertID string
}

func (r *insertRow) Save() (map[string]bigquery.Value, string, error) {
	return r.values, r.insertID, nil
}

func (s *bigqueryService) InsertRows(ctx context.Context, tableID string, rows []map[string]bigquery.Value) error {
	inserter := s.client.Dataset(s.datasetID).Table(tableID).Inserter()

	savers := make([]*insertRow, 0, len(rows))
	for _, values := range rows {
		savers = append(savers, &insertRow{values: values, insertID: uuid.NewString()})
	}

	return inserter.Put(ctx, savers)
}

func (s *bigqueryService) ProjectID() string { return s.projectID }

func (s *bigqueryService) DatasetID() string { return s.datasetID }

func (s *bigqueryService) Close() error {
	return s.client.Close()
}
