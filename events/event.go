// Package events defines the cross-service event envelope and the
// append-only audit record. Both are standalone facts: they reference other
// entities by identifier only.
package events

import (
	"regexp"

	"contracts/common"
	"contracts/enums"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
	"contracts/versioning"
)

// eventTypePattern: dotted lowercase type, e.g. "transaction.classified".
var eventTypePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)+$`)

// KnownEventTypes lists the event types platform services emit today. The
// set is open: the envelope accepts any well-formed dotted type, and
// consumers must tolerate types they do not know.
var KnownEventTypes = []string{
	"transaction.classified",
	"transaction.posted",
	"clarification.requested",
	"clarification.completed",
	"clarification.timed_out",
	"suspense.created",
	"suspense.cleared",
	"digest.generated",
	"digest.approved",
	"message.sent",
	"message.delivered",
	"message.read",
	"message.failed",
	"conversation.started",
	"conversation.completed",
	"conversation.timed_out",
}

// PlatformEvent is the standard envelope for cross-service communication: a
// type tag, an opaque payload, and provenance.
//
// Invariants:
//   - EventType matches "segment.segment" in lowercase
//   - SourceSystem is a declared variant
//   - Timestamp is always present
type PlatformEvent struct {
	EventID       common.EventID           `json:"event_id"`
	EventType     string                   `json:"event_type"`
	SourceSystem  enums.SourceSystem       `json:"source_system"`
	TenantID      common.TenantID          `json:"tenant_id,omitempty"`
	Timestamp     common.Timestamp         `json:"timestamp"`
	Payload       map[string]any           `json:"payload,omitempty"`
	CorrelationID string                   `json:"correlation_id,omitempty"`
	SchemaVersion versioning.SchemaVersion `json:"schema_version,omitempty"`
}

// NewPlatformEvent constructs a validated event envelope with a generated
// event id and the current schema version.
func NewPlatformEvent(
	eventType string,
	source enums.SourceSystem,
	timestamp common.Timestamp,
	payload map[string]any,
) (PlatformEvent, error) {
	e := PlatformEvent{
		EventID:       common.GenerateEventID(),
		EventType:     eventType,
		SourceSystem:  source,
		Timestamp:     timestamp,
		Payload:       payload,
		SchemaVersion: versioning.Default,
	}
	if err := e.Validate(); err != nil {
		return PlatformEvent{}, err
	}
	return e, nil
}

func (e PlatformEvent) Validate() error {
	if e.EventID.IsZero() {
		return sErrors.Missing("event_id")
	}
	if e.EventType == "" {
		return sErrors.Missing("event_type")
	}
	if !eventTypePattern.MatchString(e.EventType) {
		return sErrors.TypeMismatch("event_type", "event type must be dotted lowercase, e.g. 'transaction.classified'")
	}
	if e.SourceSystem == "" {
		return sErrors.Missing("source_system")
	}
	if !e.SourceSystem.IsValid() {
		return sErrors.EnumViolation("source_system", e.SourceSystem)
	}
	if e.Timestamp.IsZero() {
		return sErrors.Missing("timestamp")
	}
	if e.SchemaVersion != "" {
		if _, err := versioning.Parse(e.SchemaVersion.String()); err != nil {
			return err
		}
	}
	return nil
}

// IsKnownType reports whether the event type is in the published catalog.
func (e PlatformEvent) IsKnownType() bool {
	for _, t := range KnownEventTypes {
		if e.EventType == t {
			return true
		}
	}
	return false
}

func (e *PlatformEvent) UnmarshalJSON(data []byte) error {
	type alias PlatformEvent
	var raw alias
	if err := wire.Decode(data, &raw, "platform_event"); err != nil {
		return err
	}
	decoded := PlatformEvent(raw)
	if decoded.SchemaVersion.IsZero() {
		decoded.SchemaVersion = versioning.Default
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*e = decoded
	return nil
}
