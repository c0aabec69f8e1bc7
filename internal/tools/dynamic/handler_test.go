package dynamic

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/bigquery"
	analytics "github.com/daniel-kwapien-dvt/bigquery-agent/internal/analytics/mocks"
	db "github.com/daniel-kwapien-dvt/bigquery-agent/internal/database/mocks"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"
)

func dynamicResultText(t *testing.T, result *mcp.CallToolResult) string {
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

func TestExpandStatement(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		want      string
	}{
		{
			name:      "replaces dataset placeholder",
			statement: "SELECT * FROM ${dataset}.INFORMATION_SCHEMA.TABLES",
			want:      "SELECT * FROM `my-project.my_dataset`.INFORMATION_SCHEMA.TABLES",
		},
		{
			name:      "replaces every occurrence",
			statement: "SELECT * FROM ${dataset}.a JOIN ${dataset}.b USING (id)",
			want:      "SELECT * FROM `my-project.my_dataset`.a JOIN `my-project.my_dataset`.b USING (id)",
		},
		{
			name:      "statement without placeholder is untouched",
			statement: "SELECT 1",
			want:      "SELECT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandStatement(tt.statement, "my-project", "my_dataset")
			if got != tt.want {
				t.Errorf("expandStatement() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBindParameters(t *testing.T) {
	intParam := []ParameterConfig{{Name: "max_tables", Type: "integer", Default: 25}}
	requiredString := []ParameterConfig{{Name: "table_name", Type: "string", Required: true}}

	t.Run("default applies when argument is absent", func(t *testing.T) {
		params, err := bindParameters(intParam, map[string]any{})
		if err != nil {
			t.Fatalf("bindParameters() error = %v", err)
		}
		if len(params) != 1 {
			t.Fatalf("Expected 1 parameter, got %d", len(params))
		}
		if params[0].Name != "max_tables" || params[0].Value != int64(25) {
			t.Errorf("Unexpected parameter: %+v", params[0])
		}
	})

	t.Run("argument overrides default", func(t *testing.T) {
		// JSON numbers decode as float64
		params, err := bindParameters(intParam, map[string]any{"max_tables": float64(5)})
		if err != nil {
			t.Fatalf("bindParameters() error = %v", err)
		}
		if params[0].Value != int64(5) {
			t.Errorf("Expected int64(5), got %v (%T)", params[0].Value, params[0].Value)
		}
	})

	t.Run("fractional value rejected for integer", func(t *testing.T) {
		_, err := bindParameters(intParam, map[string]any{"max_tables": 2.5})
		if err == nil {
			t.Error("Expected error for fractional integer argument")
		}
	})

	t.Run("missing required parameter", func(t *testing.T) {
		_, err := bindParameters(requiredString, map[string]any{})
		if err == nil {
			t.Error("Expected error for missing required parameter")
		}
	})

	t.Run("required parameter provided", func(t *testing.T) {
		params, err := bindParameters(requiredString, map[string]any{"table_name": "users"})
		if err != nil {
			t.Fatalf("bindParameters() error = %v", err)
		}
		if params[0].Value != "users" {
			t.Errorf("Expected %q, got %v", "users", params[0].Value)
		}
	})

	t.Run("wrong argument type", func(t *testing.T) {
		_, err := bindParameters(requiredString, map[string]any{"table_name": 42})
		if err == nil {
			t.Error("Expected error for non-string argument")
		}
	})

	t.Run("optional parameter without default is skipped", func(t *testing.T) {
		params, err := bindParameters(
			[]ParameterConfig{{Name: "filter", Type: "string"}},
			map[string]any{},
		)
		if err != nil {
			t.Fatalf("bindParameters() error = %v", err)
		}
		if len(params) != 0 {
			t.Errorf("Expected no parameters, got %d", len(params))
		}
	})

	t.Run("boolean and number types", func(t *testing.T) {
		params, err := bindParameters(
			[]ParameterConfig{
				{Name: "include_views", Type: "boolean", Default: false},
				{Name: "min_ratio", Type: "number"},
			},
			map[string]any{"include_views": true, "min_ratio": float64(0.5)},
		)
		if err != nil {
			t.Fatalf("bindParameters() error = %v", err)
		}
		if params[0].Value != true {
			t.Errorf("Expected true, got %v", params[0].Value)
		}
		if params[1].Value != float64(0.5) {
			t.Errorf("Expected 0.5, got %v", params[1].Value)
		}
	})
}

func TestDynamicToolHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent(gomock.Any()).AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()
	defer ctrl.Finish()

	config := &ToolConfig{
		Name:        "table-column-profile",
		Description: "Column profile for a single table",
		Statement:   "SELECT column_name FROM ${dataset}.INFORMATION_SCHEMA.COLUMNS WHERE table_name = @table_name",
		Parameters: []ParameterConfig{
			{Name: "table_name", Type: "string", Required: true},
		},
		Category: "insights",
	}

	const expandedSQL = "SELECT column_name FROM `my-project.my_dataset`.INFORMATION_SCHEMA.COLUMNS WHERE table_name = @table_name"

	t.Run("binds arguments and returns rows as JSON", func(t *testing.T) {
		rows := []map[string]bigquery.Value{{"column_name": "id"}, {"column_name": "name"}}
		expectedParams := []bigquery.QueryParameter{{Name: "table_name", Value: "users"}}

		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ProjectID().Return("my-project").AnyTimes()
		mockDB.EXPECT().DatasetID().Return("my_dataset").AnyTimes()
		mockDB.EXPECT().ExecuteQuery(gomock.Any(), expandedSQL, expectedParams).Return(rows, nil)
		mockDB.EXPECT().RowsToJSON(rows).
			Return(`[{"column_name":"id"},{"column_name":"name"}]`, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := NewDynamicHandler(config, deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{"table_name": "users"},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if got := dynamicResultText(t, result); got != `[{"column_name":"id"},{"column_name":"name"}]` {
			t.Errorf("Unexpected result payload: %s", got)
		}
	})

	t.Run("missing required argument", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := NewDynamicHandler(config, deps)
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
			t.Error("Expected error result for missing required argument")
		}
	})

	t.Run("query with no rows returns message", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ProjectID().Return("my-project").AnyTimes()
		mockDB.EXPECT().DatasetID().Return("my_dataset").AnyTimes()
		mockDB.EXPECT().ExecuteQuery(gomock.Any(), expandedSQL, gomock.Any()).
			Return([]map[string]bigquery.Value{}, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := NewDynamicHandler(config, deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{"table_name": "empty_table"},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result for empty query")
		}
		if got := dynamicResultText(t, result); got != "Query returned no results." {
			t.Errorf("Unexpected empty-result message: %s", got)
		}
	})

	t.Run("query execution failure", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ProjectID().Return("my-project").AnyTimes()
		mockDB.EXPECT().DatasetID().Return("my_dataset").AnyTimes()
		mockDB.EXPECT().ExecuteQuery(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("table not found"))

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := NewDynamicHandler(config, deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{"table_name": "missing"},
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

	t.Run("nil database service", func(t *testing.T) {
		deps := &tools.ToolDependencies{
			DBService:        nil,
			AnalyticsService: analyticsService,
		}

		handler := NewDynamicHandler(config, deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for nil database service")
		}
	})
}
