package tools

import (
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/analytics"
	"github.com/daniel-kwapien-dvt/bigquery-agent/internal/database"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	DBService        database.Service
	AnalyticsService analytics.Service
}
