package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the BigQuery connection settings and server behaviour flags.
// Values come from the environment; a .env file in the working directory is
// loaded first so local development does not require exporting variables.
type Config struct {
	// ProjectID is the Google Cloud project the agent operates on.
	ProjectID string `envconfig:"DEFAULT_PROJECT_ID" required:"true"`

	// DatasetID is the BigQuery dataset all tools are scoped to.
	DatasetID string `envconfig:"DEFAULT_DATASET_ID" required:"true"`

	// Location optionally pins jobs to a BigQuery location (e.g. "EU").
	Location string `envconfig:"BIGQUERY_LOCATION"`

	// ReadOnly hides every tool that mutates data.
	ReadOnly bool `envconfig:"BIGQUERY_READ_ONLY" default:"false"`

	// TelemetryDisabled turns off anonymous usage events.
	TelemetryDisabled bool `envconfig:"BIGQUERY_TELEMETRY_DISABLED" default:"false"`
}

// Load reads the configuration from the environment. Real environment
// variables take precedence over values from the .env file.
func Load() (*Config, error) {
	// A missing .env file is the normal production case.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// DatasetFQN returns the backtick-quoted `project.dataset` prefix used when
// building fully qualified table references in SQL.
func (c *Config) DatasetFQN() string {
	return fmt.Sprintf("`%s.%s`", c.ProjectID, c.DatasetID)
}
