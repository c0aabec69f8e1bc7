package dataset

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetTableSchemaHandler returns a handler function for the get-table-schema tool
func GetTableSchemaHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetTableSchema(ctx, request, deps)
	}
}

func handleGetTableSchema(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("get-table-schema"))

	var args GetTableSchemaInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.TableID == "" {
		errMessage := "tableId parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("retrieving table schema",
		"project", deps.DBService.ProjectID(),
		"dataset", deps.DBService.DatasetID(),
		"table", args.TableID)

	fields, err := deps.DBService.GetTableSchema(ctx, args.TableID)
	if err != nil {
		slog.Error("failed to retrieve table schema", "table", args.TableID, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		slog.Error("failed to serialize table schema", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}
