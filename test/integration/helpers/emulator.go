package helpers

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	emulatorImage = "ghcr.io/goccy/bigquery-emulator:0.6.6"
	restPort      = "9050/tcp"

	// ProjectID and DatasetID are created inside the emulator at startup
	// and shared by every test in the integration package.
	ProjectID = "test-project"
	DatasetID = "test_dataset"
)

// Emulator is a BigQuery emulator running in a container. One instance is
// started per test run; tests isolate themselves through unique table names.
type Emulator struct {
	container testcontainers.Container
	endpoint  string
}

// StartEmulator launches the emulator container with the test project and
// dataset pre-created and waits until its REST port accepts connections.
func StartEmulator(ctx context.Context) (*Emulator, error) {
	req := testcontainers.ContainerRequest{
		Image:        emulatorImage,
		ExposedPorts: []string{restPort},
		Cmd: []string{
			"--project=" + ProjectID,
			"--dataset=" + DatasetID,
		},
		WaitingFor: wait.ForListeningPort(restPort).WithStartupTimeout(2 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start bigquery emulator: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to resolve emulator host: %w", err)
	}
	port, err := container.MappedPort(ctx, restPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to resolve emulator port: %w", err)
	}

	return &Emulator{
		container: container,
		endpoint:  fmt.Sprintf("http://%s:%s", host, port.Port()),
	}, nil
}

// Endpoint returns the REST endpoint BigQuery clients should connect to.
func (e *Emulator) Endpoint() string { return e.endpoint }

// Terminate stops and removes the container.
func (e *Emulator) Terminate(ctx context.Context) error {
	return e.container.Terminate(ctx)
}
