package analytics

import (
	"time"

	"github.com/google/uuid"
)

// TrackEvent is a single anonymous usage event. Events carry no query text,
// table names or row data, only which capability was exercised.
type TrackEvent struct {
	EventID    string         `json:"event_id"`
	SessionID  string         `json:"session_id"`
	Name       string         `json:"event"`
	Timestamp  time.Time      `json:"timestamp"`
	Properties map[string]any `json:"properties,omitempty"`
}

// StartupEventInfo captures the server configuration reported once at boot.
type StartupEventInfo struct {
	Version  string
	ReadOnly bool
}

func (s *trackingService) NewStartupEvent(startupEventInfo StartupEventInfo) TrackEvent {
	return s.newEvent("server_startup", map[string]any{
		"version":   startupEventInfo.Version,
		"read_only": startupEventInfo.ReadOnly,
	})
}

func (s *trackingService) NewToolsEvent(toolsUsed string) TrackEvent {
	return s.newEvent("tool_invoked", map[string]any{
		"tool":    toolsUsed,
		"version": s.version,
	})
}

func (s *trackingService) newEvent(name string, properties map[string]any) TrackEvent {
	return TrackEvent{
		EventID:    uuid.NewString(),
		SessionID:  s.sessionID,
		Name:       name,
		Timestamp:  time.Now().UTC(),
		Properties: properties,
	}
}
