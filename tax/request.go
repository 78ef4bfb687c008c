// Package tax defines the request/response contracts for the tax engine.
// Monetary amounts stay integer minor units; rates and year-to-date
// projections are arbitrary-precision decimals.
package tax

import (
	"regexp"

	"github.com/shopspring/decimal"

	"contracts/common"
	"contracts/enums"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
	"contracts/versioning"
)

// jurisdictionPattern: two-letter uppercase state/territory code.
var jurisdictionPattern = regexp.MustCompile(`^[A-Z]{2}$`)

// TaxComputeRequest asks the tax engine for an estimate.
//
// Invariants:
//   - Jurisdiction is a two-letter uppercase code
//   - TaxYear is a plausible four-digit year
//   - AsOfMonth, when present, lies in [1, 12]
//   - EntityType and FilingType are declared variants when present
type TaxComputeRequest struct {
	Jurisdiction     string                   `json:"jurisdiction"`
	Amount           common.Money             `json:"amount"`
	Classification   common.ClassificationID  `json:"classification"`
	TaxYear          int                      `json:"tax_year"`
	AsOfMonth        int                      `json:"as_of_month,omitempty"`
	EntityType       enums.EntityType         `json:"entity_type,omitempty"`
	FilingType       enums.TaxFilingType      `json:"filing_type,omitempty"`
	TenantID         common.TenantID          `json:"tenant_id,omitempty"`
	ClientID         common.ClientID          `json:"client_id,omitempty"`
	GrossReceiptsYTD decimal.Decimal          `json:"gross_receipts_ytd"`
	TotalExpensesYTD decimal.Decimal          `json:"total_expenses_ytd"`
	PaymentsYTD      decimal.Decimal          `json:"estimated_payments_ytd"`
	SchemaVersion    versioning.SchemaVersion `json:"schema_version,omitempty"`
}

// NewTaxComputeRequest constructs a validated request at the current schema
// version.
func NewTaxComputeRequest(
	jurisdiction string,
	amount common.Money,
	classification common.ClassificationID,
	taxYear int,
) (TaxComputeRequest, error) {
	r := TaxComputeRequest{
		Jurisdiction:   jurisdiction,
		Amount:         amount,
		Classification: classification,
		TaxYear:        taxYear,
		SchemaVersion:  versioning.Default,
	}
	if err := r.Validate(); err != nil {
		return TaxComputeRequest{}, err
	}
	return r, nil
}

func (r TaxComputeRequest) Validate() error {
	if r.Jurisdiction == "" {
		return sErrors.Missing("jurisdiction")
	}
	if !jurisdictionPattern.MatchString(r.Jurisdiction) {
		return sErrors.TypeMismatch("jurisdiction", "jurisdiction must be a two-letter uppercase code")
	}
	if r.Amount.Currency == "" {
		return sErrors.Missing("amount")
	}
	if r.Classification.IsZero() {
		return sErrors.Missing("classification")
	}
	if r.TaxYear < 1900 || r.TaxYear > 9999 {
		return sErrors.Invariant("tax_year", "tax year must be a four-digit year")
	}
	if r.AsOfMonth != 0 && (r.AsOfMonth < 1 || r.AsOfMonth > 12) {
		return sErrors.Invariant("as_of_month", "as-of month must be between 1 and 12")
	}
	if r.EntityType != "" && !r.EntityType.IsValid() {
		return sErrors.EnumViolation("entity_type", r.EntityType)
	}
	if r.FilingType != "" && !r.FilingType.IsValid() {
		return sErrors.EnumViolation("filing_type", r.FilingType)
	}
	if r.GrossReceiptsYTD.IsNegative() {
		return sErrors.Invariant("gross_receipts_ytd", "year-to-date receipts cannot be negative")
	}
	if r.TotalExpensesYTD.IsNegative() {
		return sErrors.Invariant("total_expenses_ytd", "year-to-date expenses cannot be negative")
	}
	if r.PaymentsYTD.IsNegative() {
		return sErrors.Invariant("estimated_payments_ytd", "year-to-date payments cannot be negative")
	}
	if r.SchemaVersion != "" {
		if _, err := versioning.Parse(r.SchemaVersion.String()); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaxComputeRequest) UnmarshalJSON(data []byte) error {
	type alias TaxComputeRequest
	var raw alias
	if err := wire.Decode(data, &raw, "tax_compute_request"); err != nil {
		return err
	}
	decoded := TaxComputeRequest(raw)
	if decoded.SchemaVersion.IsZero() {
		decoded.SchemaVersion = versioning.Default
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*r = decoded
	return nil
}
