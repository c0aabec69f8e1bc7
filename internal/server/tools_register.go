package server

import (
	"log/slog"

	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools/dataset"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools/dml"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools/dynamic"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools/query"
	toolconfigs "github.com/daniel-kwapien-dvt/bigquery-agent/tools"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools registers all enabled MCP tools and adds them to the provided MCP server.
// Tools are filtered according to the server configuration. For example, when the read-only
// mode is enabled (e.g. via the BIGQUERY_READ_ONLY environment variable or the Config.ReadOnly flag),
// any tool that performs state mutation will be excluded; only tools annotated as read-only will be registered.
// Note: this read-only filtering relies on the tool annotation "readonly" (ReadOnlyHint). If the annotation
// is not defined or is set to false, the tool will be added (i.e., only tools with readonly=true are filtered in read-only mode).
func (s *BigQueryMCPServer) registerTools() error {
	filteredTools := s.getEnabledTools()
	s.MCPServer.AddTools(filteredTools...)
	return nil
}

type toolFilter func(tools []ToolDefinition) []ToolDefinition

type toolCategory int

const (
	datasetCategory toolCategory = 0
	queryCategory   toolCategory = 1
	dmlCategory     toolCategory = 2
	dynamicCategory toolCategory = 3 // Dynamic config-based tools
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
	readonly   bool
}

func (s *BigQueryMCPServer) getEnabledTools() []server.ServerTool {
	filters := make([]toolFilter, 0)

	// If read-only mode is enabled, expose only tools annotated as read-only.
	if s.config != nil && s.config.ReadOnly {
		filters = append(filters, filterWriteTools)
	}
	deps := &tools.ToolDependencies{
		DBService:        s.dbService,
		AnalyticsService: s.anService,
	}
	toolDefs := s.getAllToolsDefs(deps)

	for _, filter := range filters {
		toolDefs = filter(toolDefs)
	}
	enabledTools := make([]server.ServerTool, 0)
	for _, toolDef := range toolDefs {
		enabledTools = append(enabledTools, toolDef.definition)
	}
	return enabledTools
}

func filterWriteTools(tools []ToolDefinition) []ToolDefinition {
	readOnlyTools := make([]ToolDefinition, 0, len(tools))
	for _, t := range tools {
		if t.readonly {
			readOnlyTools = append(readOnlyTools, t)
		}
	}
	return readOnlyTools
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *BigQueryMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	toolDefs := []ToolDefinition{
		{
			category: datasetCategory,
			definition: server.ServerTool{
				Tool:    dataset.ListTablesSpec(),
				Handler: dataset.ListTablesHandler(deps),
			},
			readonly: true,
		},
		{
			category: datasetCategory,
			definition: server.ServerTool{
				Tool:    dataset.GetTableSchemaSpec(),
				Handler: dataset.GetTableSchemaHandler(deps),
			},
			readonly: true,
		},
		{
			category: queryCategory,
			definition: server.ServerTool{
				Tool:    query.RunSQLQuerySpec(),
				Handler: query.Handler(deps),
			},
			readonly: true,
		},
		// DML Category/Section
		{
			category: dmlCategory,
			definition: server.ServerTool{
				Tool:    dml.InsertRowsSpec(),
				Handler: dml.InsertRowsHandler(deps),
			},
			readonly: false,
		},
		{
			category: dmlCategory,
			definition: server.ServerTool{
				Tool:    dml.UpdateRecordsSpec(),
				Handler: dml.UpdateRecordsHandler(deps),
			},
			readonly: false,
		},
		{
			category: dmlCategory,
			definition: server.ServerTool{
				Tool:    dml.DeleteRecordsSpec(),
				Handler: dml.DeleteRecordsHandler(deps),
			},
			readonly: false,
		},
	}

	// Load dynamic tools from config directory
	dynamicTools := s.loadDynamicTools(deps)
	toolDefs = append(toolDefs, dynamicTools...)

	return toolDefs
}

// loadDynamicTools loads tools from YAML configs in tools/config/ directory
func (s *BigQueryMCPServer) loadDynamicTools(deps *tools.ToolDependencies) []ToolDefinition {
	// Embedded configs ship with the binary; the walker falls back to the
	// OS path during development.
	dynamic.EmbeddedFS = toolconfigs.ConfigFiles

	registry := dynamic.NewToolRegistry("tools/config")

	if err := registry.LoadTools(); err != nil {
		slog.Error("failed to load dynamic tools", "error", err)
		return []ToolDefinition{}
	}

	if registry.GetToolCount() == 0 {
		slog.Info("no dynamic tools found in config directory")
		return []ToolDefinition{}
	}

	slog.Info("loaded dynamic tools", "count", registry.GetToolCount())

	// Convert dynamic tools to ToolDefinition format
	serverTools := registry.GetServerTools(deps)
	toolDefs := make([]ToolDefinition, 0, len(serverTools))

	for _, serverTool := range serverTools {
		// Dynamic tools run fixed SELECT statements, so they are always
		// read-only regardless of category.
		toolDef := ToolDefinition{
			category:   dynamicCategory,
			definition: serverTool,
			readonly:   true,
		}
		toolDefs = append(toolDefs, toolDef)
	}

	return toolDefs
}
