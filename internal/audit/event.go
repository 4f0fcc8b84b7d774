package audit

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies how alarming a security event is.
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// EventType names the kind of boundary-crossing occurrence being recorded.
type EventType string

const (
	EventCapabilityCall    EventType = "capability_call"
	EventCapabilityFailure EventType = "capability_failure"
	EventRateLimitExceeded EventType = "rate_limit_exceeded"
	EventPermissionDenied  EventType = "permission_denied"
	EventCertPinFailure    EventType = "cert_pin_failure"
	EventSurfaceLifecycle  EventType = "surface_lifecycle"
	EventPluginLifecycle   EventType = "plugin_lifecycle"
	EventControlAction     EventType = "control_action"
	EventSubmission        EventType = "submission"
)

// SecurityEvent is a write-once record of a security-relevant occurrence.
// Once recorded it is never mutated; retention sweeps are the only sanctioned
// deletion path.
type SecurityEvent struct {
	ID        string
	Type      EventType
	Severity  Severity
	Source    string
	PluginID  string // empty when the event has no plugin attribution
	Message   string
	Detail    map[string]string
	Failure   string // captured error text, empty if none
	Timestamp time.Time
}

// NewEvent builds a SecurityEvent with a fresh ID and timestamp.
func NewEvent(t EventType, sev Severity, source, pluginID, message string) *SecurityEvent {
	return &SecurityEvent{
		ID:        uuid.New().String(),
		Type:      t,
		Severity:  sev,
		Source:    source,
		PluginID:  pluginID,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// WithDetail attaches a structured detail entry. Returns the event for chaining.
func (e *SecurityEvent) WithDetail(key, value string) *SecurityEvent {
	if e.Detail == nil {
		e.Detail = make(map[string]string)
	}
	e.Detail[key] = value
	return e
}

// WithFailure captures the error that triggered the event.
func (e *SecurityEvent) WithFailure(err error) *SecurityEvent {
	if err != nil {
		e.Failure = err.Error()
	}
	return e
}
