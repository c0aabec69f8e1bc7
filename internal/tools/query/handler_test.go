package query_test

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/bigquery"
	analytics "github.com/daniel-kwapien-dvt/bigquery-agent/internal/analytics/mocks"
	db "github.com/daniel-kwapien-dvt/bigquery-agent/internal/database/mocks"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools/query"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("Expected result with content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestRunSQLQueryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("run-sql-query").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()
	defer ctrl.Finish()

	const sql = "SELECT name, age FROM `my-project.my_dataset.users` LIMIT 2"

	t.Run("returns rows as JSON", func(t *testing.T) {
		rows := []map[string]bigquery.Value{
			{"name": "Ana", "age": int64(34)},
			{"name": "Bob", "age": int64(25)},
		}

		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ProjectID().Return("my-project").AnyTimes()
		mockDB.EXPECT().ExecuteQuery(gomock.Any(), sql, nil).Return(rows, nil)
		mockDB.EXPECT().RowsToJSON(rows).
			Return(`[{"age":34,"name":"Ana"},{"age":25,"name":"Bob"}]`, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := query.Handler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{"query": sql},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if got := resultText(t, result); got != `[{"age":34,"name":"Ana"},{"age":25,"name":"Bob"}]` {
			t.Errorf("Unexpected result payload: %s", got)
		}
	})

	t.Run("query with no rows returns message", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ProjectID().Return("my-project").AnyTimes()
		mockDB.EXPECT().ExecuteQuery(gomock.Any(), sql, nil).
			Return([]map[string]bigquery.Value{}, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := query.Handler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{"query": sql},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result for empty query")
		}
		if got := resultText(t, result); got != "Query returned no results." {
			t.Errorf("Unexpected empty-result message: %s", got)
		}
	})

	t.Run("missing query parameter", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := query.Handler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for missing query")
		}
	})

	t.Run("query execution failure", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ProjectID().Return("my-project").AnyTimes()
		mockDB.EXPECT().ExecuteQuery(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("syntax error at [1:8]"))

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := query.Handler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{"query": "SELECT garbage"},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for execution failure")
		}
	})

	t.Run("serialization failure", func(t *testing.T) {
		rows := []map[string]bigquery.Value{{"x": int64(1)}}

		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ProjectID().Return("my-project").AnyTimes()
		mockDB.EXPECT().ExecuteQuery(gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil)
		mockDB.EXPECT().RowsToJSON(rows).Return("", errors.New("JSON marshaling failed"))

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := query.Handler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{"query": sql},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for serialization failure")
		}
	})

	t.Run("nil database service", func(t *testing.T) {
		deps := &tools.ToolDependencies{
			DBService:        nil,
			AnalyticsService: analyticsService,
		}

		handler := query.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for nil database service")
		}
	})

	t.Run("nil analytics service", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: nil,
		}

		handler := query.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for nil analytics service")
		}
	})
}
