package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"contracts/common"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
	"contracts/versioning"
)

var decimalOne = decimal.NewFromInt(1)

// TaxLine is one component of a tax breakdown.
type TaxLine struct {
	Label  string          `json:"label"`
	Amount common.Money    `json:"amount"`
	Rate   decimal.Decimal `json:"rate"`
}

func (l TaxLine) Validate() error {
	if l.Label == "" {
		return sErrors.Missing("label")
	}
	if l.Amount.Currency == "" {
		return sErrors.Missing("amount")
	}
	if l.Rate.IsNegative() || l.Rate.GreaterThanOrEqual(decimalOne) {
		return sErrors.Invariant("rate", "rate must lie in [0, 1)")
	}
	return nil
}

// QuarterlyPayment is a single estimated quarterly payment.
//
// Invariants:
//   - Quarter lies in [1, 4]
//   - federal, state, and total share a currency; total = federal + state
type QuarterlyPayment struct {
	Quarter int          `json:"quarter"`
	DueDate string       `json:"due_date,omitempty"`
	Federal common.Money `json:"federal_amount"`
	State   common.Money `json:"state_amount"`
	Total   common.Money `json:"total_amount"`
	Status  string       `json:"status,omitempty"`
}

func (q QuarterlyPayment) Validate() error {
	if q.Quarter < 1 || q.Quarter > 4 {
		return sErrors.Invariant("quarter", "quarter must be between 1 and 4")
	}
	if q.Federal.Currency == "" {
		return sErrors.Missing("federal_amount")
	}
	sum, err := q.Federal.Add(q.State)
	if err != nil {
		return sErrors.Prefix(err, "state_amount")
	}
	if !sum.Equal(q.Total) {
		return sErrors.Invariant("total_amount", "total must equal federal plus state")
	}
	return nil
}

// TaxComputeResponse is the tax engine's estimate.
//
// Invariants:
//   - Rate and EffectiveRate lie in [0, 1)
//   - breakdown lines are valid, share the tax currency, and sum to Tax
type TaxComputeResponse struct {
	Tax               common.Money             `json:"tax"`
	Rate              decimal.Decimal          `json:"rate"`
	EffectiveRate     decimal.Decimal          `json:"effective_rate"`
	Breakdown         []TaxLine                `json:"breakdown,omitempty"`
	QuarterlyPayments []QuarterlyPayment       `json:"quarterly_payments,omitempty"`
	EngineVersion     string                   `json:"engine_version,omitempty"`
	SchemaVersion     versioning.SchemaVersion `json:"schema_version,omitempty"`
}

// NewTaxComputeResponse constructs a validated response at the current
// schema version.
func NewTaxComputeResponse(taxAmount common.Money, rate decimal.Decimal, breakdown []TaxLine) (TaxComputeResponse, error) {
	r := TaxComputeResponse{
		Tax:           taxAmount,
		Rate:          rate,
		Breakdown:     breakdown,
		SchemaVersion: versioning.Default,
	}
	if err := r.Validate(); err != nil {
		return TaxComputeResponse{}, err
	}
	return r, nil
}

func (r TaxComputeResponse) Validate() error {
	if r.Tax.Currency == "" {
		return sErrors.Missing("tax")
	}
	if r.Rate.IsNegative() || r.Rate.GreaterThanOrEqual(decimalOne) {
		return sErrors.Invariant("rate", "rate must lie in [0, 1)")
	}
	if r.EffectiveRate.IsNegative() || r.EffectiveRate.GreaterThanOrEqual(decimalOne) {
		return sErrors.Invariant("effective_rate", "effective rate must lie in [0, 1)")
	}
	if len(r.Breakdown) > 0 {
		total := common.Money{Amount: 0, Currency: r.Tax.Currency}
		for i, line := range r.Breakdown {
			if err := line.Validate(); err != nil {
				return sErrors.Prefix(err, fmt.Sprintf("breakdown.%d", i))
			}
			sum, err := total.Add(line.Amount)
			if err != nil {
				return sErrors.Prefix(err, fmt.Sprintf("breakdown.%d.amount", i))
			}
			total = sum
		}
		if !total.Equal(r.Tax) {
			return sErrors.Invariant("breakdown", "breakdown lines must sum to the tax amount")
		}
	}
	for i, q := range r.QuarterlyPayments {
		if err := q.Validate(); err != nil {
			return sErrors.Prefix(err, fmt.Sprintf("quarterly_payments.%d", i))
		}
	}
	if r.SchemaVersion != "" {
		if _, err := versioning.Parse(r.SchemaVersion.String()); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaxComputeResponse) UnmarshalJSON(data []byte) error {
	type alias TaxComputeResponse
	var raw alias
	if err := wire.Decode(data, &raw, "tax_compute_response"); err != nil {
		return err
	}
	decoded := TaxComputeResponse(raw)
	if decoded.SchemaVersion.IsZero() {
		decoded.SchemaVersion = versioning.Default
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*r = decoded
	return nil
}
