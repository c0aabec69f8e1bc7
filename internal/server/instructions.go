package server

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/daniel-kwapien-dvt/bigquery-agent/docs"
)

// renderInstructions fills the embedded assistant guidance with the
// configured project and dataset identifiers.
func renderInstructions(projectID, datasetID string) (string, error) {
	tmpl, err := template.New("instructions").Parse(docs.AssistantInstructions)
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	data := struct {
		ProjectID string
		DatasetID string
	}{
		ProjectID: projectID,
		DatasetID: datasetID,
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render instructions: %w", err)
	}

	return sb.String(), nil
}
