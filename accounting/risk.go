package accounting

import (
	"fmt"

	"contracts/common"
	"contracts/enums"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
)

// RiskFlag is a coded risk indicator on a transaction or classification.
type RiskFlag struct {
	Code     string             `json:"code"`
	Severity enums.RiskSeverity `json:"severity"`
	Message  string             `json:"message,omitempty"`
	Category string             `json:"category,omitempty"`
}

// KnownRiskCodes catalogs the flag codes producers emit today. The set is
// open: consumers must tolerate codes they do not know.
var KnownRiskCodes = map[string]string{
	"OWNER_TXN_POSSIBLE": "Transfer may be owner-related (draw, loan, contribution)",
	"LARGE_AMOUNT":       "Transaction exceeds normal range for this category",
	"DUPLICATE_POSSIBLE": "Possible duplicate transaction detected",
	"TAX_SENSITIVE":      "Classification affects tax-sensitive category",
	"PERSONAL_EXPENSE":   "Possible personal expense in business account",
	"ROUND_AMOUNT":       "Round dollar amount may indicate estimate or transfer",
	"NEW_VENDOR":         "First transaction with this vendor/payee",
	"PATTERN_BREAK":      "Transaction does not match historical patterns for this vendor",
}

func NewRiskFlag(code string, severity enums.RiskSeverity, message string) (RiskFlag, error) {
	f := RiskFlag{Code: code, Severity: severity, Message: message}
	if err := f.Validate(); err != nil {
		return RiskFlag{}, err
	}
	return f, nil
}

func (f RiskFlag) Validate() error {
	if f.Code == "" {
		return sErrors.Missing("code")
	}
	if f.Severity == "" {
		return sErrors.Missing("severity")
	}
	if !f.Severity.IsValid() {
		return sErrors.EnumViolation("severity", f.Severity)
	}
	return nil
}

func (f RiskFlag) validateAt(path string, i int) error {
	if err := f.Validate(); err != nil {
		return sErrors.Prefix(err, fmt.Sprintf("%s.%d", path, i))
	}
	return nil
}

// IsKnown reports whether the flag code is in the published catalog.
func (f RiskFlag) IsKnown() bool {
	_, ok := KnownRiskCodes[f.Code]
	return ok
}

func (f *RiskFlag) UnmarshalJSON(data []byte) error {
	type alias RiskFlag
	var raw alias
	if err := wire.Decode(data, &raw, "risk_flag"); err != nil {
		return err
	}
	decoded := RiskFlag(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*f = decoded
	return nil
}

// Risk is the risk assessment attached to a transaction: an overall score
// plus the flags that contributed to it.
//
// Invariants:
//   - Score lies in [0.0, 1.0]
//   - every flag is itself valid
type Risk struct {
	TransactionID common.TransactionID `json:"transaction_id"`
	Score         float64              `json:"score"`
	Flags         []RiskFlag           `json:"flags,omitempty"`
}

func NewRisk(transactionID common.TransactionID, score float64, flags []RiskFlag) (Risk, error) {
	r := Risk{TransactionID: transactionID, Score: score, Flags: flags}
	if err := r.Validate(); err != nil {
		return Risk{}, err
	}
	return r, nil
}

func (r Risk) Validate() error {
	if r.TransactionID.IsZero() {
		return sErrors.Missing("transaction_id")
	}
	if r.Score < 0.0 || r.Score > 1.0 {
		return sErrors.Invariant("score", "score must be between 0.0 and 1.0")
	}
	for i, flag := range r.Flags {
		if err := flag.validateAt("flags", i); err != nil {
			return err
		}
	}
	return nil
}

func (r *Risk) UnmarshalJSON(data []byte) error {
	type alias Risk
	var raw alias
	if err := wire.Decode(data, &raw, "risk"); err != nil {
		return err
	}
	decoded := Risk(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*r = decoded
	return nil
}
