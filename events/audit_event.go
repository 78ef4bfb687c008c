package events

import (
	"contracts/common"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
)

// AuditEvent is an append-only record of an action taken against a resource.
// Once constructed it is immutable: there are no setters, and corrections are
// new events, never edits.
type AuditEvent struct {
	AuditID      common.AuditID   `json:"audit_id"`
	ActorID      string           `json:"actor_id"`
	ActorType    string           `json:"actor_type,omitempty"`
	Action       string           `json:"action"`
	ResourceType string           `json:"resource_type"`
	ResourceID   string           `json:"resource_id"`
	TenantID     common.TenantID  `json:"tenant_id,omitempty"`
	Timestamp    common.Timestamp `json:"timestamp"`
	BeforeState  map[string]any   `json:"before_state,omitempty"`
	AfterState   map[string]any   `json:"after_state,omitempty"`
	Metadata     map[string]any   `json:"metadata,omitempty"`
	IPAddress    string           `json:"ip_address,omitempty"`
}

// NewAuditEvent constructs a validated audit record with a generated id.
func NewAuditEvent(
	actorID, action, resourceType, resourceID string,
	timestamp common.Timestamp,
) (AuditEvent, error) {
	e := AuditEvent{
		AuditID:      common.GenerateAuditID(),
		ActorID:      actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Timestamp:    timestamp,
	}
	if err := e.Validate(); err != nil {
		return AuditEvent{}, err
	}
	return e, nil
}

func (e AuditEvent) Validate() error {
	if e.AuditID.IsZero() {
		return sErrors.Missing("audit_id")
	}
	if e.ActorID == "" {
		return sErrors.Missing("actor_id")
	}
	if e.Action == "" {
		return sErrors.Missing("action")
	}
	if e.ResourceType == "" {
		return sErrors.Missing("resource_type")
	}
	if e.ResourceID == "" {
		return sErrors.Missing("resource_id")
	}
	if e.Timestamp.IsZero() {
		return sErrors.Missing("timestamp")
	}
	return nil
}

func (e *AuditEvent) UnmarshalJSON(data []byte) error {
	type alias AuditEvent
	var raw alias
	if err := wire.Decode(data, &raw, "audit_event"); err != nil {
		return err
	}
	decoded := AuditEvent(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*e = decoded
	return nil
}
