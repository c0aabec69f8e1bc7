package dml_test

import (
	"context"
	"errors"
	"testing"

	analytics "github.com/daniel-kwapien-dvt/bigquery-agent/internal/analytics/mocks"
	db "github.com/daniel-kwapien-dvt/bigquery-agent/internal/database/mocks"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools/dml"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"
)

func TestDeleteRecordsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("delete-records").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()
	defer ctrl.Finish()

	t.Run("deletes matching rows and reports the count", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ProjectID().Return("my-project").AnyTimes()
		mockDB.EXPECT().DatasetID().Return("my_dataset").AnyTimes()
		mockDB.EXPECT().
			ExecuteDML(gomock.Any(),
				"DELETE FROM `my-project.my_dataset.users` WHERE status = 'archived'",
				nil).
			Return(int64(4), nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := dml.DeleteRecordsHandler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"tableId":     "users",
					"whereClause": "status = 'archived'",
				},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if got := resultText(t, result); got != "Successfully deleted 4 rows from table users." {
			t.Errorf("Unexpected success message: %s", got)
		}
	})

	t.Run("empty whereClause is refused without a service call", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		// No expectations: refusal must happen before any service call.

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := dml.DeleteRecordsHandler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"tableId":     "users",
					"whereClause": "",
				},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatal("Expected error result for empty whereClause")
		}
		want := "Error: where_clause cannot be empty. To delete all rows, explicitly provide a condition like '1=1' (use with extreme caution)."
		if got := resultText(t, result); got != want {
			t.Errorf("Unexpected refusal message: %s", got)
		}
	})

	t.Run("whitespace whereClause is refused", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := dml.DeleteRecordsHandler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"tableId":     "users",
					"whereClause": "  \t ",
				},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for whitespace whereClause")
		}
	})

	t.Run("explicit tautology deletes all rows", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ProjectID().Return("my-project").AnyTimes()
		mockDB.EXPECT().DatasetID().Return("my_dataset").AnyTimes()
		mockDB.EXPECT().
			ExecuteDML(gomock.Any(),
				"DELETE FROM `my-project.my_dataset.users` WHERE 1=1",
				nil).
			Return(int64(120), nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := dml.DeleteRecordsHandler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"tableId":     "users",
					"whereClause": "1=1",
				},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if got := resultText(t, result); got != "Successfully deleted 120 rows from table users." {
			t.Errorf("Unexpected success message: %s", got)
		}
	})

	t.Run("execution failure is reported", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ProjectID().Return("my-project").AnyTimes()
		mockDB.EXPECT().DatasetID().Return("my_dataset").AnyTimes()
		mockDB.EXPECT().ExecuteDML(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("streaming buffer is not empty"))

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := dml.DeleteRecordsHandler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"tableId":     "users",
					"whereClause": "id = 9",
				},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatal("Expected error result for execution failure")
		}
		if got := resultText(t, result); got != "Error deleting from table users: streaming buffer is not empty" {
			t.Errorf("Unexpected error message: %s", got)
		}
	})

	t.Run("missing tableId parameter", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := dml.DeleteRecordsHandler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"whereClause": "id = 9",
				},
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for missing tableId")
		}
	})

	t.Run("invalid arguments binding", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
		}

		handler := dml.DeleteRecordsHandler(deps)
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: "invalid string instead of map",
			},
		}

		result, err := handler(context.Background(), request)

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for invalid arguments")
		}
	})

	t.Run("nil database service", func(t *testing.T) {
		deps := &tools.ToolDependencies{
			DBService:        nil,
			AnalyticsService: analyticsService,
		}

		handler := dml.DeleteRecordsHandler(deps)
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

		handler := dml.DeleteRecordsHandler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for nil analytics service")
		}
	})
}
