package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/config"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/server"
	"github.com/spf13/cobra"
)

var (
	readOnly bool
	verbose  bool
)

// rootCmd serves the MCP protocol over stdio until the client disconnects.
var rootCmd = &cobra.Command{
	Use:   "bigquery-mcp",
	Short: "MCP server exposing a pre-configured BigQuery dataset to LLM agents",
	Long: `bigquery-mcp serves Model Context Protocol tools for one BigQuery dataset
over stdio: list tables, inspect schemas, run SQL queries and insert,
update or delete rows.

The target project and dataset come from the DEFAULT_PROJECT_ID and
DEFAULT_DATASET_ID environment variables; a .env file in the working
directory is honoured. Point an MCP client at this binary and it can
answer questions about the dataset without further setup.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(*cobra.Command, []string) {
		fmt.Printf("bigquery-mcp %s\n", server.Version)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&readOnly, "read-only", false, "expose only read-only tools (overrides BIGQUERY_READ_ONLY)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	// stdout carries the MCP transport, so all logging goes to stderr.
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("read-only") {
		cfg.ReadOnly = readOnly
	}

	srv, err := server.NewServer(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			slog.Error("failed to close BigQuery client", "error", err)
		}
	}()

	return srv.Start()
}
