package common

import (
	sErrors "contracts/pkg/schema-errors"
)

// TenantRef points at a tenant (team) across services.
type TenantRef struct {
	TenantID     TenantID `json:"tenant_id"`
	SourceSystem string   `json:"source_system,omitempty"`
}

func NewTenantRef(tenantID TenantID, sourceSystem string) (TenantRef, error) {
	if tenantID.IsZero() {
		return TenantRef{}, sErrors.Missing("tenant_id")
	}
	return TenantRef{TenantID: tenantID, SourceSystem: sourceSystem}, nil
}

// ExternalRef points at an entity owned by an external system
// (e.g. "qbo", "plaid", "stripe").
type ExternalRef struct {
	System       string         `json:"system"`
	ExternalID   string         `json:"external_id"`
	ExternalType string         `json:"external_type,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

func NewExternalRef(system, externalID string) (ExternalRef, error) {
	if system == "" {
		return ExternalRef{}, sErrors.Missing("system")
	}
	if externalID == "" {
		return ExternalRef{}, sErrors.Missing("external_id")
	}
	return ExternalRef{System: system, ExternalID: externalID}, nil
}
