package dynamic

// ToolConfig represents the YAML configuration for a dynamic query tool.
// Each config becomes a read-only MCP tool that runs one fixed, parameterized
// SQL statement against the configured dataset.
type ToolConfig struct {
	// Name is the unique tool identifier (e.g., "table-column-profile")
	Name string `yaml:"name"`

	// Description tells the agent what the query returns and when to call it
	Description string `yaml:"description"`

	// Statement is the SQL to execute. The ${dataset} placeholder expands to
	// the backtick-quoted project.dataset prefix; tool arguments bind as
	// typed @name query parameters and are never spliced into the text.
	Statement string `yaml:"statement"`

	// Parameters defines typed input parameters for the statement
	Parameters []ParameterConfig `yaml:"parameters,omitempty"`

	// Category is derived from the folder structure (e.g., "insights")
	// This is an internal field, not from YAML
	Category string `yaml:"-"`
}

// ParameterConfig defines a typed input parameter
type ParameterConfig struct {
	// Name is the parameter identifier and the @name placeholder it binds to
	Name string `yaml:"name"`

	// Type is the JSON Schema type (string, integer, number, boolean)
	Type string `yaml:"type"`

	// Description explains the parameter's purpose
	Description string `yaml:"description,omitempty"`

	// Default value (type depends on Type field)
	Default interface{} `yaml:"default,omitempty"`

	// Required indicates if this parameter must be provided
	Required bool `yaml:"required,omitempty"`
}
