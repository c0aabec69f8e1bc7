package query

import (
	"context"
	"log/slog"

	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler returns the tool handler function for run-sql-query
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRunSQLQuery(ctx, request, deps)
	}
}

func handleRunSQLQuery(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("run-sql-query"))

	var args RunSQLQueryInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Query == "" {
		errMessage := "query parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("executing SQL query", "project", deps.DBService.ProjectID())
	slog.Debug("query text", "query", args.Query)

	rows, err := deps.DBService.ExecuteQuery(ctx, args.Query, nil)
	if err != nil {
		slog.Error("failed to execute query", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(rows) == 0 {
		return mcp.NewToolResultText("Query returned no results."), nil
	}

	response, err := deps.DBService.RowsToJSON(rows)
	if err != nil {
		slog.Error("error formatting query results", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response), nil
}
