package analytics

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// defaultEndpoint receives anonymous usage events. Override with WithEndpoint.
const defaultEndpoint = "https://telemetry.dvtsoftware.com/v1/events"

// trackingService posts usage events off the request path. Delivery is
// best effort, a failed post never surfaces to the caller.
type trackingService struct {
	mu        sync.Mutex
	disabled  bool
	client    HTTPClient
	endpoint  string
	sessionID string
	version   string
}

// Option configures the tracking service.
type Option func(*trackingService)

// WithHTTPClient replaces the HTTP client used for delivery.
func WithHTTPClient(client HTTPClient) Option {
	return func(s *trackingService) {
		s.client = client
	}
}

// WithEndpoint replaces the collection endpoint.
func WithEndpoint(endpoint string) Option {
	return func(s *trackingService) {
		s.endpoint = endpoint
	}
}

// WithDisabled sets the initial opt-out state.
func WithDisabled(disabled bool) Option {
	return func(s *trackingService) {
		s.disabled = disabled
	}
}

// NewService creates a tracking service scoped to a single server session.
func NewService(version string, opts ...Option) Service {
	s := &trackingService{
		client:    &http.Client{Timeout: 5 * time.Second},
		endpoint:  defaultEndpoint,
		sessionID: uuid.NewString(),
		version:   version,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *trackingService) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disabled = false
}

func (s *trackingService) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disabled = true
}

// EmitEvent queues an event for delivery and returns immediately.
func (s *trackingService) EmitEvent(event TrackEvent) {
	s.mu.Lock()
	disabled := s.disabled
	s.mu.Unlock()
	if disabled {
		return
	}
	go s.send(event)
}

func (s *trackingService) send(event TrackEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Debug("failed to encode telemetry event", "error", err)
		return
	}
	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		slog.Debug("failed to deliver telemetry event", "error", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
}
