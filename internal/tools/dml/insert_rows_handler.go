package dml

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// InsertRowsHandler returns a handler function for the insert-rows tool
func InsertRowsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleInsertRows(ctx, request, deps)
	}
}

func handleInsertRows(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.AnalyticsService == nil {
		errMessage := "analytics service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("insert-rows"))

	var args InsertRowsInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.TableID == "" {
		errMessage := "tableId parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if len(args.Rows) == 0 {
		slog.Error("insert refused, no rows provided", "table", args.TableID)
		return mcp.NewToolResultError("Error: 'rows' list cannot be empty."), nil
	}

	slog.Info("inserting rows", "table", args.TableID, "rows", len(args.Rows))

	rows := make([]map[string]bigquery.Value, len(args.Rows))
	for i, r := range args.Rows {
		row := make(map[string]bigquery.Value, len(r))
		for k, v := range r {
			row[k] = v
		}
		rows[i] = row
	}

	if err := deps.DBService.InsertRows(ctx, args.TableID, rows); err != nil {
		var putErr bigquery.PutMultiError
		if errors.As(err, &putErr) {
			details := make([]string, 0, len(putErr))
			for _, rowErr := range putErr {
				details = append(details, fmt.Sprintf("Row index %d: %v", rowErr.RowIndex, rowErr.Errors))
			}
			errMessage := fmt.Sprintf("Error inserting rows into table %s: %s", args.TableID, strings.Join(details, "; "))
			slog.Error("streaming insert rejected rows", "table", args.TableID, "failed_rows", len(putErr))
			return mcp.NewToolResultError(errMessage), nil
		}

		errMessage := fmt.Sprintf("Error inserting rows into table %s: %v", args.TableID, err)
		slog.Error("failed to insert rows", "table", args.TableID, "error", err)
		return mcp.NewToolResultError(errMessage), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Successfully inserted %d rows into table %s.", len(args.Rows), args.TableID)), nil
}
