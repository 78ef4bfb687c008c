// Package common holds the primitive value types every contract namespace
// builds on: typed identifiers, Money, Timestamp, and cross-system
// references. Cross-entity links are always identifiers, never pointers to
// live objects.
package common

import (
	"strings"

	"github.com/google/uuid"

	sErrors "contracts/pkg/schema-errors"
)

// Typed identifiers. Each entity kind gets its own string type so the
// compiler rejects cross-kind assignment. Values are opaque: UUIDs from
// Generate*, or whatever the source system uses ("tx_1" is fine).
type (
	TransactionID    string
	AccountID        string
	ClassificationID string
	VendorID         string
	SuspenseID       string
	JournalEntryID   string
	MessageID        string
	ConversationID   string
	EventID          string
	AuditID          string
	TenantID         string
	ClientID         string
)

func parseID(field, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", sErrors.Missing(field)
	}
	return raw, nil
}

func ParseTransactionID(raw string) (TransactionID, error) {
	s, err := parseID("transaction_id", raw)
	return TransactionID(s), err
}

func ParseAccountID(raw string) (AccountID, error) {
	s, err := parseID("account_id", raw)
	return AccountID(s), err
}

func ParseClassificationID(raw string) (ClassificationID, error) {
	s, err := parseID("classification_id", raw)
	return ClassificationID(s), err
}

func ParseVendorID(raw string) (VendorID, error) {
	s, err := parseID("vendor_id", raw)
	return VendorID(s), err
}

func ParseSuspenseID(raw string) (SuspenseID, error) {
	s, err := parseID("suspense_id", raw)
	return SuspenseID(s), err
}

func ParseJournalEntryID(raw string) (JournalEntryID, error) {
	s, err := parseID("entry_id", raw)
	return JournalEntryID(s), err
}

func ParseMessageID(raw string) (MessageID, error) {
	s, err := parseID("message_id", raw)
	return MessageID(s), err
}

func ParseConversationID(raw string) (ConversationID, error) {
	s, err := parseID("conversation_id", raw)
	return ConversationID(s), err
}

func ParseEventID(raw string) (EventID, error) {
	s, err := parseID("event_id", raw)
	return EventID(s), err
}

func ParseAuditID(raw string) (AuditID, error) {
	s, err := parseID("audit_id", raw)
	return AuditID(s), err
}

func ParseTenantID(raw string) (TenantID, error) {
	s, err := parseID("tenant_id", raw)
	return TenantID(s), err
}

func ParseClientID(raw string) (ClientID, error) {
	s, err := parseID("client_id", raw)
	return ClientID(s), err
}

// Generate* mint fresh identifiers for producers that create new records.
// Consumers reconstructing records from the wire never need these.

func GenerateTransactionID() TransactionID   { return TransactionID(uuid.NewString()) }
func GenerateAccountID() AccountID           { return AccountID(uuid.NewString()) }
func GenerateVendorID() VendorID             { return VendorID(uuid.NewString()) }
func GenerateSuspenseID() SuspenseID         { return SuspenseID(uuid.NewString()) }
func GenerateJournalEntryID() JournalEntryID { return JournalEntryID(uuid.NewString()) }
func GenerateMessageID() MessageID           { return MessageID(uuid.NewString()) }
func GenerateConversationID() ConversationID { return ConversationID(uuid.NewString()) }
func GenerateEventID() EventID               { return EventID(uuid.NewString()) }
func GenerateAuditID() AuditID               { return AuditID(uuid.NewString()) }

func (id TransactionID) String() string    { return string(id) }
func (id AccountID) String() string        { return string(id) }
func (id ClassificationID) String() string { return string(id) }
func (id VendorID) String() string         { return string(id) }
func (id SuspenseID) String() string       { return string(id) }
func (id JournalEntryID) String() string   { return string(id) }
func (id MessageID) String() string        { return string(id) }
func (id ConversationID) String() string   { return string(id) }
func (id EventID) String() string          { return string(id) }
func (id AuditID) String() string          { return string(id) }
func (id TenantID) String() string         { return string(id) }
func (id ClientID) String() string         { return string(id) }

func (id TransactionID) IsZero() bool    { return id == "" }
func (id AccountID) IsZero() bool        { return id == "" }
func (id ClassificationID) IsZero() bool { return id == "" }
func (id VendorID) IsZero() bool         { return id == "" }
func (id SuspenseID) IsZero() bool       { return id == "" }
func (id JournalEntryID) IsZero() bool   { return id == "" }
func (id MessageID) IsZero() bool        { return id == "" }
func (id ConversationID) IsZero() bool   { return id == "" }
func (id EventID) IsZero() bool          { return id == "" }
func (id AuditID) IsZero() bool          { return id == "" }
func (id TenantID) IsZero() bool         { return id == "" }
func (id ClientID) IsZero() bool         { return id == "" }
