package accounting

import (
	"fmt"

	"contracts/common"
	"contracts/enums"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
	"contracts/versioning"
)

// JournalEntryLine is one side of a double-entry posting: an account, a
// debit/credit side, and a strictly positive amount.
type JournalEntryLine struct {
	AccountID   common.AccountID      `json:"account_id"`
	Side        enums.TransactionSide `json:"side"`
	Amount      common.Money          `json:"amount"`
	Description string                `json:"description,omitempty"`
}

// JournalEntry is a balanced double-entry posting.
//
// Invariants:
//   - at least two lines
//   - every line carries the same currency
//   - the debit total equals the credit total
type JournalEntry struct {
	ID            common.JournalEntryID    `json:"entry_id"`
	Date          common.Timestamp         `json:"entry_date"`
	Memo          string                   `json:"memo,omitempty"`
	Lines         []JournalEntryLine       `json:"lines"`
	Source        enums.SourceSystem       `json:"source,omitempty"`
	ReferenceID   string                   `json:"reference_id,omitempty"`
	IsAdjusting   bool                     `json:"is_adjusting,omitempty"`
	SchemaVersion versioning.SchemaVersion `json:"schema_version,omitempty"`
}

// NewJournalEntry constructs a validated JournalEntry at the current schema
// version.
func NewJournalEntry(
	id common.JournalEntryID,
	date common.Timestamp,
	memo string,
	lines []JournalEntryLine,
) (JournalEntry, error) {
	e := JournalEntry{
		ID:            id,
		Date:          date,
		Memo:          memo,
		Lines:         lines,
		SchemaVersion: versioning.Default,
	}
	if err := e.Validate(); err != nil {
		return JournalEntry{}, err
	}
	return e, nil
}

func (e JournalEntry) Validate() error {
	if e.ID.IsZero() {
		return sErrors.Missing("entry_id")
	}
	if e.Date.IsZero() {
		return sErrors.Missing("entry_date")
	}
	if len(e.Lines) < 2 {
		return sErrors.Invariant("lines", "a journal entry needs at least a debit and a credit line")
	}
	if e.Source != "" && !e.Source.IsValid() {
		return sErrors.EnumViolation("source", e.Source)
	}
	if e.SchemaVersion != "" {
		if _, err := versioning.Parse(e.SchemaVersion.String()); err != nil {
			return err
		}
	}
	currency := e.Lines[0].Amount.Currency
	for i, line := range e.Lines {
		if line.AccountID.IsZero() {
			return sErrors.Missing(fmt.Sprintf("lines.%d.account_id", i))
		}
		if line.Side == "" {
			return sErrors.Missing(fmt.Sprintf("lines.%d.side", i))
		}
		if !line.Side.IsValid() {
			return sErrors.EnumViolation(fmt.Sprintf("lines.%d.side", i), line.Side)
		}
		if line.Amount.Currency == "" {
			return sErrors.Missing(fmt.Sprintf("lines.%d.amount", i))
		}
		if !line.Amount.IsPositive() {
			return sErrors.Invariant(fmt.Sprintf("lines.%d.amount", i), "line amounts must be positive")
		}
		if line.Amount.Currency != currency {
			return sErrors.Invariant(fmt.Sprintf("lines.%d.amount", i),
				fmt.Sprintf("currency %s does not match entry currency %s", line.Amount.Currency, currency))
		}
	}
	debits, credits := e.totals()
	if debits != credits {
		return sErrors.Invariant("lines",
			fmt.Sprintf("debits (%d) do not equal credits (%d)", debits, credits))
	}
	return nil
}

func (e JournalEntry) totals() (debits, credits int64) {
	for _, line := range e.Lines {
		switch line.Side {
		case enums.SideDebit:
			debits += line.Amount.Amount
		case enums.SideCredit:
			credits += line.Amount.Amount
		}
	}
	return debits, credits
}

// IsBalanced reports whether the debit total equals the credit total.
// Always true for a constructed entry; exposed for callers assembling lines.
func (e JournalEntry) IsBalanced() bool {
	debits, credits := e.totals()
	return debits == credits
}

// Currency returns the single currency shared by every line.
func (e JournalEntry) Currency() string {
	if len(e.Lines) == 0 {
		return ""
	}
	return e.Lines[0].Amount.Currency
}

func (e *JournalEntry) UnmarshalJSON(data []byte) error {
	type alias JournalEntry
	var raw alias
	if err := wire.Decode(data, &raw, "journal_entry"); err != nil {
		return err
	}
	decoded := JournalEntry(raw)
	if decoded.SchemaVersion.IsZero() {
		decoded.SchemaVersion = versioning.Default
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*e = decoded
	return nil
}
