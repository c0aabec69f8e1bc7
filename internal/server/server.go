package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/analytics"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/config"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/database"
	"github.com/mark3labs/mcp-go/server"
	"google.golang.org/api/option"
)

// Version is reported to MCP clients and in telemetry events.
// Overridden at release time via -ldflags.
var Version = "0.2.0"

const serverName = "bigquery-agent"

// BigQueryMCPServer wires the BigQuery service, the analytics service and the
// MCP protocol server together.
type BigQueryMCPServer struct {
	config    *config.Config
	MCPServer *server.MCPServer
	dbService database.Service
	anService analytics.Service
}

// NewServer connects to BigQuery and assembles a ready-to-serve MCP server:
// rendered instructions, tool registration honouring read-only mode, and the
// assistant prompt. Extra client options are passed through to the BigQuery
// client so tests can point the server at an emulator.
func NewServer(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*BigQueryMCPServer, error) {
	dbService, err := database.NewService(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize BigQuery service: %w", err)
	}

	anService := analytics.NewService(Version, analytics.WithDisabled(cfg.TelemetryDisabled))

	instructions, err := renderInstructions(cfg.ProjectID, cfg.DatasetID)
	if err != nil {
		_ = dbService.Close()
		return nil, err
	}

	mcpServer := server.NewMCPServer(
		serverName,
		Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	s := &BigQueryMCPServer{
		config:    cfg,
		MCPServer: mcpServer,
		dbService: dbService,
		anService: anService,
	}

	if err := s.registerTools(); err != nil {
		_ = dbService.Close()
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	s.registerPrompts(instructions)

	anService.EmitEvent(anService.NewStartupEvent(analytics.StartupEventInfo{
		Version:  Version,
		ReadOnly: cfg.ReadOnly,
	}))

	slog.Info("MCP server ready",
		"name", serverName,
		"version", Version,
		"project", cfg.ProjectID,
		"dataset", cfg.DatasetID,
		"readOnly", cfg.ReadOnly,
	)

	return s, nil
}

// Start serves the MCP protocol on stdin/stdout and blocks until the client
// disconnects or the process receives SIGINT/SIGTERM.
func (s *BigQueryMCPServer) Start() error {
	slog.Info("serving MCP over stdio")
	return server.ServeStdio(s.MCPServer)
}

// Close releases the BigQuery client.
func (s *BigQueryMCPServer) Close() error {
	return s.dbService.Close()
}
