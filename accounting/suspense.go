package accounting

import (
	"contracts/common"
	"contracts/enums"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
	"contracts/versioning"
)

// SuspenseItem parks a transaction that could not be classified. Suspense is
// always transient: every item either awaits resolution or records how it was
// resolved.
//
// Invariants:
//   - Reason is a declared SuspenseReason variant
//   - resolved items carry ResolvedAt and ResolutionAccountID; unresolved
//     items carry neither
//   - ClarificationAttempts is never negative
type SuspenseItem struct {
	ID                    common.SuspenseID        `json:"suspense_id"`
	TransactionID         common.TransactionID     `json:"transaction_id"`
	Reason                enums.SuspenseReason     `json:"reason"`
	ParkedAt              common.Timestamp         `json:"parked_at"`
	Description           string                   `json:"description,omitempty"`
	SuspenseAccountID     common.AccountID         `json:"suspense_account_id,omitempty"`
	Resolved              bool                     `json:"resolved"`
	ResolvedAt            *common.Timestamp        `json:"resolved_at,omitempty"`
	ResolutionAccountID   common.AccountID         `json:"resolution_account_id,omitempty"`
	ResolvedBy            string                   `json:"resolved_by,omitempty"`
	ClarificationAttempts int                      `json:"clarification_attempts"`
	SchemaVersion         versioning.SchemaVersion `json:"schema_version,omitempty"`
}

// NewSuspenseItem parks a transaction in suspense, unresolved.
func NewSuspenseItem(
	id common.SuspenseID,
	transactionID common.TransactionID,
	reason enums.SuspenseReason,
	parkedAt common.Timestamp,
) (SuspenseItem, error) {
	s := SuspenseItem{
		ID:            id,
		TransactionID: transactionID,
		Reason:        reason,
		ParkedAt:      parkedAt,
		SchemaVersion: versioning.Default,
	}
	if err := s.Validate(); err != nil {
		return SuspenseItem{}, err
	}
	return s, nil
}

func (s SuspenseItem) Validate() error {
	if s.ID.IsZero() {
		return sErrors.Missing("suspense_id")
	}
	if s.TransactionID.IsZero() {
		return sErrors.Missing("transaction_id")
	}
	if s.Reason == "" {
		return sErrors.Missing("reason")
	}
	if !s.Reason.IsValid() {
		return sErrors.EnumViolation("reason", s.Reason)
	}
	if s.ParkedAt.IsZero() {
		return sErrors.Missing("parked_at")
	}
	if s.SchemaVersion != "" {
		if _, err := versioning.Parse(s.SchemaVersion.String()); err != nil {
			return err
		}
	}
	if s.ClarificationAttempts < 0 {
		return sErrors.Invariant("clarification_attempts", "clarification attempts cannot be negative")
	}
	if s.Resolved {
		if s.ResolvedAt == nil {
			return sErrors.Invariant("resolved_at", "resolved item must record when it was resolved")
		}
		if s.ResolutionAccountID.IsZero() {
			return sErrors.Invariant("resolution_account_id", "resolved item must record the resolution account")
		}
	} else {
		if s.ResolvedAt != nil || !s.ResolutionAccountID.IsZero() {
			return sErrors.Invariant("resolved", "unresolved item cannot carry resolution fields")
		}
	}
	return nil
}

// Resolve returns a resolved copy of the item. The receiver is unchanged.
func (s SuspenseItem) Resolve(at common.Timestamp, accountID common.AccountID, by string) (SuspenseItem, error) {
	if s.Resolved {
		return SuspenseItem{}, sErrors.Invariant("resolved", "item is already resolved")
	}
	if at.IsZero() {
		return SuspenseItem{}, sErrors.Missing("resolved_at")
	}
	if accountID.IsZero() {
		return SuspenseItem{}, sErrors.Missing("resolution_account_id")
	}
	s.Resolved = true
	s.ResolvedAt = &at
	s.ResolutionAccountID = accountID
	s.ResolvedBy = by
	return s, nil
}

// WithClarificationAttempt returns a copy with the attempt counter bumped.
func (s SuspenseItem) WithClarificationAttempt() SuspenseItem {
	s.ClarificationAttempts++
	return s
}

func (s *SuspenseItem) UnmarshalJSON(data []byte) error {
	type alias SuspenseItem
	var raw alias
	if err := wire.Decode(data, &raw, "suspense_item"); err != nil {
		return err
	}
	decoded := SuspenseItem(raw)
	if decoded.SchemaVersion.IsZero() {
		decoded.SchemaVersion = versioning.Default
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*s = decoded
	return nil
}
