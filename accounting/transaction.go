// Package accounting defines the bookkeeping contracts: transactions,
// the chart of accounts, balanced journal entries, vendors, suspense items,
// and risk annotations.
//
// Every record is an immutable value: construct once from validated input,
// never mutate. Updates produce new instances.
package accounting

import (
	"fmt"

	"contracts/common"
	"contracts/enums"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
)

// Transaction is a classified bank transaction.
//
// Invariants:
//   - ID, Amount, Timestamp, Classification, and Status are required
//   - Status is a declared TransactionStatus variant
//   - BankAccountType, when present, is a declared variant
type Transaction struct {
	ID              common.TransactionID    `json:"id"`
	Amount          common.Money            `json:"amount"`
	Timestamp       common.Timestamp        `json:"timestamp"`
	Classification  common.ClassificationID `json:"classification"`
	Status          enums.TransactionStatus `json:"status"`
	Description     string                  `json:"description,omitempty"`
	Memo            string                  `json:"memo,omitempty"`
	VendorName      string                  `json:"vendor_name,omitempty"`
	BankAccountType enums.BankAccountType   `json:"bank_account_type,omitempty"`
	CheckNumber     string                  `json:"check_number,omitempty"`
	Metadata        map[string]any          `json:"metadata,omitempty"`
}

// NewTransaction constructs a validated Transaction.
func NewTransaction(
	id common.TransactionID,
	amount common.Money,
	timestamp common.Timestamp,
	classification common.ClassificationID,
	status enums.TransactionStatus,
) (Transaction, error) {
	t := Transaction{
		ID:             id,
		Amount:         amount,
		Timestamp:      timestamp,
		Classification: classification,
		Status:         status,
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// Validate checks required fields and enum domains.
func (t Transaction) Validate() error {
	if t.ID.IsZero() {
		return sErrors.Missing("id")
	}
	if t.Amount.Currency == "" {
		return sErrors.Missing("amount")
	}
	if t.Timestamp.IsZero() {
		return sErrors.Missing("timestamp")
	}
	if t.Classification.IsZero() {
		return sErrors.Missing("classification")
	}
	if t.Status == "" {
		return sErrors.Missing("status")
	}
	if !t.Status.IsValid() {
		return sErrors.EnumViolation("status", t.Status)
	}
	if t.BankAccountType != "" && !t.BankAccountType.IsValid() {
		return sErrors.EnumViolation("bank_account_type", t.BankAccountType)
	}
	return nil
}

// WithStatus returns a copy of the transaction in the given status. The
// receiver is unchanged.
func (t Transaction) WithStatus(status enums.TransactionStatus) (Transaction, error) {
	if !status.IsValid() {
		return Transaction{}, sErrors.EnumViolation("status", status)
	}
	t.Status = status
	return t, nil
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	var raw alias
	if err := wire.Decode(data, &raw, "transaction"); err != nil {
		return err
	}
	decoded := Transaction(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*t = decoded
	return nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("transaction %s (%s, %s)", t.ID, t.Amount, t.Status)
}
