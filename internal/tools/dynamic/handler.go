package dynamic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// NewDynamicHandler creates a handler function for a dynamic tool.
// The handler binds the call arguments as typed query parameters, expands the
// ${dataset} placeholder and runs the configured statement.
func NewDynamicHandler(config *ToolConfig, deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDynamicTool(ctx, request, config, deps)
	}
}

func handleDynamicTool(ctx context.Context, request mcp.CallToolRequest, config *ToolConfig, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent(config.Name))

	params, err := bindParameters(config.Parameters, request.GetArguments())
	if err != nil {
		slog.Error("invalid tool arguments", "tool", config.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	sql := expandStatement(config.Statement, deps.DBService.ProjectID(), deps.DBService.DatasetID())

	slog.Info("running config-defined query", "tool", config.Name, "category", config.Category)
	slog.Debug("statement text", "query", sql)

	rows, err := deps.DBService.ExecuteQuery(ctx, sql, params)
	if err != nil {
		slog.Error("failed to execute query", "tool", config.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(rows) == 0 {
		return mcp.NewToolResultText("Query returned no results."), nil
	}

	response, err := deps.DBService.RowsToJSON(rows)
	if err != nil {
		slog.Error("error formatting query results", "tool", config.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response), nil
}

// expandStatement substitutes the ${dataset} placeholder with the
// backtick-quoted project.dataset prefix. Only this fixed placeholder is
// replaced; call arguments never reach the SQL text.
func expandStatement(statement, projectID, datasetID string) string {
	qualified := fmt.Sprintf("`%s.%s`", projectID, datasetID)
	return strings.ReplaceAll(statement, "${dataset}", qualified)
}

// bindParameters converts call arguments into typed query parameters,
// applying defaults and rejecting missing required values.
func bindParameters(params []ParameterConfig, args map[string]any) ([]bigquery.QueryParameter, error) {
	queryParams := make([]bigquery.QueryParameter, 0, len(params))

	for _, param := range params {
		raw, provided := args[param.Name]
		if !provided || raw == nil {
			if param.Default == nil {
				if param.Required {
					return nil, fmt.Errorf("parameter '%s' is required", param.Name)
				}
				continue
			}
			raw = param.Default
		}

		value, err := parameterValue(param, raw)
		if err != nil {
			return nil, err
		}

		queryParams = append(queryParams, bigquery.QueryParameter{
			Name:  param.Name,
			Value: value,
		})
	}

	return queryParams, nil
}

// parameterValue coerces one argument to the parameter's declared type.
// JSON arguments arrive as float64 or json.Number, YAML defaults as int,
// so integers need careful narrowing to keep INT64 binding exact.
func parameterValue(param ParameterConfig, raw any) (any, error) {
	switch param.Type {
	case "integer":
		switch v := raw.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		case json.Number:
			i, err := v.Int64()
			if err != nil {
				return nil, fmt.Errorf("parameter '%s' must be an integer, got %s", param.Name, v.String())
			}
			return i, nil
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("parameter '%s' must be an integer, got %v", param.Name, v)
			}
			return int64(v), nil
		}
	case "number":
		switch v := raw.(type) {
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, fmt.Errorf("parameter '%s' must be a number, got %s", param.Name, v.String())
			}
			return f, nil
		case float64:
			return v, nil
		}
	case "boolean":
		if v, ok := raw.(bool); ok {
			return v, nil
		}
	default:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	}

	return nil, fmt.Errorf("parameter '%s' must be of type %s, got %T", param.Name, parameterTypeName(param.Type), raw)
}

func parameterTypeName(configType string) string {
	if configType == "" {
		return "string"
	}
	return configType
}
