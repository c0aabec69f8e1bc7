package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"google.golang.org/api/option"

	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/analytics"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/config"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/database"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
)

// ToolHandler is the function shape every tool handler factory returns.
type ToolHandler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// TestContext wires real tool dependencies against the emulator and offers
// helpers for calling tools and inspecting table state directly.
type TestContext struct {
	T      *testing.T
	Ctx    context.Context
	Deps   *tools.ToolDependencies
	client *bigquery.Client
}

// NewTestContext connects a fresh database service to the emulator.
// Telemetry is disabled so tests never attempt network delivery.
func NewTestContext(t *testing.T, emu *Emulator) *TestContext {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{ProjectID: ProjectID, DatasetID: DatasetID}
	svc, err := database.NewService(ctx, cfg,
		option.WithEndpoint(emu.Endpoint()),
		option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("failed to connect to emulator: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	// A raw client for seeding and verification, so test setup does not go
	// through the code under test.
	client, err := bigquery.NewClient(ctx, ProjectID,
		option.WithEndpoint(emu.Endpoint()),
		option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("failed to create verification client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return &TestContext{
		T:   t,
		Ctx: ctx,
		Deps: &tools.ToolDependencies{
			DBService:        svc,
			AnalyticsService: analytics.NewService("integration-test", analytics.WithDisabled(true)),
		},
		client: client,
	}
}

// UniqueTableID returns a table name that cannot collide across parallel
// tests sharing the emulator dataset.
func (tc *TestContext) UniqueTableID(base string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return base + "_" + suffix
}

// CreateTable creates a table with the given schema in the test dataset.
func (tc *TestContext) CreateTable(tableID string, schema bigquery.Schema) {
	tc.T.Helper()
	table := tc.client.Dataset(DatasetID).Table(tableID)
	if err := table.Create(tc.Ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		tc.T.Fatalf("failed to create table %s: %v", tableID, err)
	}
}

// CallTool invokes a handler and fails the test on a protocol error or an
// error result.
func (tc *TestContext) CallTool(handler ToolHandler, args map[string]any) *mcp.CallToolResult {
	tc.T.Helper()
	res, err := handler(tc.Ctx, toolRequest(args))
	if err != nil {
		tc.T.Fatalf("tool handler returned protocol error: %v", err)
	}
	if res == nil {
		tc.T.Fatal("tool handler returned nil result")
	}
	if res.IsError {
		tc.T.Fatalf("tool returned error result: %s", ResultText(tc.T, res))
	}
	return res
}

// CallToolExpectError invokes a handler and fails the test unless it returns
// an error result; the error text is returned for inspection.
func (tc *TestContext) CallToolExpectError(handler ToolHandler, args map[string]any) string {
	tc.T.Helper()
	res, err := handler(tc.Ctx, toolRequest(args))
	if err != nil {
		tc.T.Fatalf("tool handler returned protocol error: %v", err)
	}
	if res == nil || !res.IsError {
		tc.T.Fatal("expected an error result")
	}
	return ResultText(tc.T, res)
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

// ResultText extracts the first text content of a tool result.
func ResultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("expected result with content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

// ParseJSONResponse decodes the result text into out.
func (tc *TestContext) ParseJSONResponse(res *mcp.CallToolResult, out any) {
	tc.T.Helper()
	if err := json.Unmarshal([]byte(ResultText(tc.T, res)), out); err != nil {
		tc.T.Fatalf("failed to decode tool response: %v", err)
	}
}

// CountRows returns the number of rows matching the WHERE clause, read
// through the verification client rather than through any tool.
func (tc *TestContext) CountRows(tableID, whereClause string) int64 {
	tc.T.Helper()
	q := tc.client.Query(fmt.Sprintf(
		"SELECT COUNT(*) FROM `%s.%s.%s` WHERE %s",
		ProjectID, DatasetID, tableID, whereClause))

	it, err := q.Read(tc.Ctx)
	if err != nil {
		tc.T.Fatalf("failed to count rows in %s: %v", tableID, err)
	}
	var row []bigquery.Value
	if err := it.Next(&row); err != nil {
		tc.T.Fatalf("failed to read row count for %s: %v", tableID, err)
	}
	count, ok := row[0].(int64)
	if !ok {
		tc.T.Fatalf("unexpected count type %T", row[0])
	}
	return count
}
