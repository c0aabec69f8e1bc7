package dynamic

import (
	"fmt"
	"log/slog"

	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolRegistry manages the loading and registration of dynamic tools
type ToolRegistry struct {
	configDir string
	configs   []*ToolConfig
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(configDir string) *ToolRegistry {
	return &ToolRegistry{
		configDir: configDir,
		configs:   make([]*ToolConfig, 0),
	}
}

// LoadTools loads all tool configurations from the config directory
func (r *ToolRegistry) LoadTools() error {
	configs, err := WalkConfigDirectory(r.configDir)
	if err != nil {
		return fmt.Errorf("failed to load tools from config directory: %w", err)
	}

	r.configs = configs
	slog.Info("loaded dynamic tools", "count", len(configs), "configDir", r.configDir)

	return nil
}

// GetToolCount returns the number of loaded tools
func (r *ToolRegistry) GetToolCount() int {
	return len(r.configs)
}

// GetTools returns all loaded tool configurations
func (r *ToolRegistry) GetTools() []*ToolConfig {
	return r.configs
}

// GetServerTools converts all loaded configs into MCP server tools
func (r *ToolRegistry) GetServerTools(deps *tools.ToolDependencies) []server.ServerTool {
	serverTools := make([]server.ServerTool, 0, len(r.configs))

	for _, config := range r.configs {
		tool := r.buildServerTool(config, deps)
		serverTools = append(serverTools, tool)
	}

	return serverTools
}

// buildServerTool creates an MCP server tool from a tool config.
// Config-based tools run fixed SELECT statements, so they are always
// readonly, idempotent and non-destructive.
func (r *ToolRegistry) buildServerTool(config *ToolConfig, deps *tools.ToolDependencies) server.ServerTool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(config.Description),
		mcp.WithTitleAnnotation(config.Name), // Use name as title
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}

	// Expose each statement parameter as a typed input property
	for _, param := range config.Parameters {
		opts = append(opts, parameterOption(param))
	}

	mcpTool := mcp.NewTool(config.Name, opts...)

	slog.Debug("built dynamic tool", "name", config.Name, "category", config.Category)

	// Create the handler
	handler := NewDynamicHandler(config, deps)

	return server.ServerTool{
		Tool:    mcpTool,
		Handler: handler,
	}
}

// parameterOption maps one parameter config onto the tool's input schema
func parameterOption(param ParameterConfig) mcp.ToolOption {
	propOpts := make([]mcp.PropertyOption, 0, 3)
	if param.Description != "" {
		propOpts = append(propOpts, mcp.Description(param.Description))
	}
	if param.Required {
		propOpts = append(propOpts, mcp.Required())
	}

	switch param.Type {
	case "integer", "number":
		if def, ok := defaultAsFloat(param.Default); ok {
			propOpts = append(propOpts, mcp.DefaultNumber(def))
		}
		return mcp.WithNumber(param.Name, propOpts...)
	case "boolean":
		if def, ok := param.Default.(bool); ok {
			propOpts = append(propOpts, mcp.DefaultBool(def))
		}
		return mcp.WithBoolean(param.Name, propOpts...)
	default:
		if def, ok := param.Default.(string); ok {
			propOpts = append(propOpts, mcp.DefaultString(def))
		}
		return mcp.WithString(param.Name, propOpts...)
	}
}

// defaultAsFloat converts a YAML default into the float64 the schema expects.
// yaml.v3 decodes unquoted numbers as int or float64 depending on the literal.
func defaultAsFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// GetCategory returns the category for a given tool name
func (r *ToolRegistry) GetCategory(toolName string) string {
	for _, config := range r.configs {
		if config.Name == toolName {
			return config.Category
		}
	}
	return "unknown"
}

// GetToolsByCategory returns all tools in a specific category
func (r *ToolRegistry) GetToolsByCategory(category string) []*ToolConfig {
	tools := make([]*ToolConfig, 0)
	for _, config := range r.configs {
		if config.Category == category {
			tools = append(tools, config)
		}
	}
	return tools
}

// ListCategories returns all unique categories
func (r *ToolRegistry) ListCategories() []string {
	categoryMap := make(map[string]bool)
	for _, config := range r.configs {
		categoryMap[config.Category] = true
	}

	categories := make([]string, 0, len(categoryMap))
	for category := range categoryMap {
		categories = append(categories, category)
	}

	return categories
}
