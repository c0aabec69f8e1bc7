package dml

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools/dml/statement_builder"
	"github.com/mark3labs/mcp-go/mcp"
)

// UpdateRecordsHandler returns a handler function for the update-records tool
func UpdateRecordsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleUpdateRecords(ctx, request, deps)
	}
}

func handleUpdateRecords(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("update-records"))

	var args UpdateRecordsInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.TableID == "" {
		errMessage := "tableId parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if len(args.SetValues) == 0 {
		slog.Error("update refused, no set values provided", "table", args.TableID)
		return mcp.NewToolResultError("Error: set_values dictionary cannot be empty."), nil
	}

	table := statement_builder.TableReference{
		ProjectID: deps.DBService.ProjectID(),
		DatasetID: deps.DBService.DatasetID(),
		TableID:   args.TableID,
	}

	stmt, err := statement_builder.BuildUpdate(table, args.SetValues, args.WhereClause)
	if err != nil {
		errMessage := fmt.Sprintf("Error updating table %s: %v", args.TableID, err)
		slog.Error("failed to build update statement", "table", args.TableID, "error", err)
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("updating records", "table", args.TableID, "columns", len(stmt.Parameters))
	slog.Debug("update statement", "sql", stmt.SQL)

	affected, err := deps.DBService.ExecuteDML(ctx, stmt.SQL, stmt.Parameters)
	if err != nil {
		errMessage := fmt.Sprintf("Error updating table %s: %v", args.TableID, err)
		slog.Error("failed to execute update", "table", args.TableID, "error", err)
		return mcp.NewToolResultError(errMessage), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Successfully updated %d rows in table %s.", affected, args.TableID)), nil
}
