package dml

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools/dml/statement_builder"
	"github.com/mark3labs/mcp-go/mcp"
)

// DeleteRecordsHandler returns a handler function for the delete-records tool
func DeleteRecordsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDeleteRecords(ctx, request, deps)
	}
}

func handleDeleteRecords(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("delete-records"))

	var args DeleteRecordsInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.TableID == "" {
		errMessage := "tableId parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if strings.TrimSpace(args.WhereClause) == "" {
		slog.Error("delete refused, empty where clause", "table", args.TableID)
		return mcp.NewToolResultError("Error: where_clause cannot be empty. To delete all rows, explicitly provide a condition like '1=1' (use with extreme caution)."), nil
	}

	table := statement_builder.TableReference{
		ProjectID: deps.DBService.ProjectID(),
		DatasetID: deps.DBService.DatasetID(),
		TableID:   args.TableID,
	}

	stmt, err := statement_builder.BuildDelete(table, args.WhereClause)
	if err != nil {
		errMessage := fmt.Sprintf("Error deleting from table %s: %v", args.TableID, err)
		slog.Error("failed to build delete statement", "table", args.TableID, "error", err)
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("deleting records", "table", args.TableID)
	slog.Debug("delete statement", "sql", stmt.SQL)

	affected, err := deps.DBService.ExecuteDML(ctx, stmt.SQL, stmt.Parameters)
	if err != nil {
		errMessage := fmt.Sprintf("Error deleting from table %s: %v", args.TableID, err)
		slog.Error("failed to execute delete", "table", args.TableID, "error", err)
		return mcp.NewToolResultError(errMessage), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Successfully deleted %d rows from table %s.", affected, args.TableID)), nil
}
