package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListTablesHandler returns a handler function for the list-tables tool
func ListTablesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListTables(ctx, deps)
	}
}

func handleListTables(ctx context.Context, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("list-tables"))
	slog.Info("listing dataset tables",
		"project", deps.DBService.ProjectID(),
		"dataset", deps.DBService.DatasetID())

	tableIDs, err := deps.DBService.ListTables(ctx)
	if err != nil {
		slog.Error("failed to list dataset tables", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(tableIDs) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No tables found in dataset %s.%s.",
			deps.DBService.ProjectID(), deps.DBService.DatasetID())), nil
	}

	payload, err := json.Marshal(tableIDs)
	if err != nil {
		slog.Error("failed to serialize table list", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}
