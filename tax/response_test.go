package tax_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"contracts/common"
	sErrors "contracts/pkg/schema-errors"
	"contracts/tax"
	"contracts/versioning"
)

type TaxResponseSuite struct {
	suite.Suite
}

func TestTaxResponseSuite(t *testing.T) {
	suite.Run(t, new(TaxResponseSuite))
}

func (s *TaxResponseSuite) breakdown() []tax.TaxLine {
	return []tax.TaxLine{
		{Label: "federal", Amount: common.MustMoney(90000, "USD"), Rate: decimal.RequireFromString("0.22")},
		{Label: "state", Amount: common.MustMoney(27000, "USD"), Rate: decimal.RequireFromString("0.066")},
		{Label: "self_employment", Amount: common.MustMoney(36000, "USD"), Rate: decimal.RequireFromString("0.088")},
	}
}

func (s *TaxResponseSuite) TestNewTaxComputeResponse() {
	s.Run("accepts a breakdown that sums to the tax amount", func() {
		r, err := tax.NewTaxComputeResponse(
			common.MustMoney(153000, "USD"),
			decimal.RequireFromString("0.374"),
			s.breakdown(),
		)
		s.Require().NoError(err)
		s.Equal(versioning.Default, r.SchemaVersion)
	})

	s.Run("rejects a breakdown that does not sum to the tax amount", func() {
		_, err := tax.NewTaxComputeResponse(
			common.MustMoney(153001, "USD"),
			decimal.RequireFromString("0.374"),
			s.breakdown(),
		)
		s.Require().Error(err)
		s.True(sErrors.HasCode(err, sErrors.CodeInvariantViolation))
		s.Equal("breakdown", sErrors.FieldOf(err))
	})

	s.Run("rejects a breakdown line in a different currency", func() {
		lines := s.breakdown()
		lines[1].Amount = common.MustMoney(27000, "EUR")

		_, err := tax.NewTaxComputeResponse(
			common.MustMoney(153000, "USD"),
			decimal.RequireFromString("0.374"),
			lines,
		)
		s.Require().Error(err)
		s.Equal("breakdown.1.amount.currency", sErrors.FieldOf(err))
	})

	s.Run("rejects a rate outside [0, 1)", func() {
		for _, rate := range []string{"-0.01", "1", "1.5"} {
			_, err := tax.NewTaxComputeResponse(
				common.MustMoney(153000, "USD"),
				decimal.RequireFromString(rate),
				nil,
			)
			s.Require().Error(err, rate)
			s.Equal("rate", sErrors.FieldOf(err), rate)
		}
	})

	s.Run("rejects a line rate outside [0, 1)", func() {
		lines := s.breakdown()
		lines[2].Rate = decimal.RequireFromString("1.2")

		_, err := tax.NewTaxComputeResponse(
			common.MustMoney(153000, "USD"),
			decimal.RequireFromString("0.374"),
			lines,
		)
		s.Require().Error(err)
		s.Equal("breakdown.2.rate", sErrors.FieldOf(err))
	})
}

func (s *TaxResponseSuite) TestQuarterlyPayments() {
	s.Run("accepts totals that equal federal plus state", func() {
		q := tax.QuarterlyPayment{
			Quarter: 2,
			DueDate: "2024-06-15",
			Federal: common.MustMoney(22500, "USD"),
			State:   common.MustMoney(6750, "USD"),
			Total:   common.MustMoney(29250, "USD"),
		}
		s.NoError(q.Validate())
	})

	s.Run("rejects a total that does not add up", func() {
		q := tax.QuarterlyPayment{
			Quarter: 2,
			Federal: common.MustMoney(22500, "USD"),
			State:   common.MustMoney(6750, "USD"),
			Total:   common.MustMoney(29000, "USD"),
		}
		err := q.Validate()
		s.Require().Error(err)
		s.Equal("total_amount", sErrors.FieldOf(err))
	})

	s.Run("rejects an out-of-range quarter", func() {
		q := tax.QuarterlyPayment{
			Quarter: 5,
			Federal: common.MustMoney(22500, "USD"),
			State:   common.MustMoney(6750, "USD"),
			Total:   common.MustMoney(29250, "USD"),
		}
		err := q.Validate()
		s.Require().Error(err)
		s.Equal("quarter", sErrors.FieldOf(err))
	})

	s.Run("names the offending payment in a response", func() {
		r, err := tax.NewTaxComputeResponse(
			common.MustMoney(153000, "USD"),
			decimal.RequireFromString("0.374"),
			nil,
		)
		s.Require().NoError(err)
		r.QuarterlyPayments = []tax.QuarterlyPayment{
			{
				Quarter: 1,
				Federal: common.MustMoney(22500, "USD"),
				State:   common.MustMoney(6750, "USD"),
				Total:   common.MustMoney(29250, "USD"),
			},
			{
				Quarter: 0,
				Federal: common.MustMoney(22500, "USD"),
				State:   common.MustMoney(6750, "USD"),
				Total:   common.MustMoney(29250, "USD"),
			},
		}

		err = r.Validate()
		s.Require().Error(err)
		s.Equal("quarterly_payments.1.quarter", sErrors.FieldOf(err))
	})
}

func (s *TaxResponseSuite) TestWireRoundTrip() {
	r, err := tax.NewTaxComputeResponse(
		common.MustMoney(153000, "USD"),
		decimal.RequireFromString("0.374"),
		s.breakdown(),
	)
	s.Require().NoError(err)
	r.EffectiveRate = decimal.RequireFromString("0.298")
	r.EngineVersion = "2024.1"
	r.QuarterlyPayments = []tax.QuarterlyPayment{
		{
			Quarter: 1,
			DueDate: "2024-04-15",
			Federal: common.MustMoney(22500, "USD"),
			State:   common.MustMoney(6750, "USD"),
			Total:   common.MustMoney(29250, "USD"),
		},
	}
	s.Require().NoError(r.Validate())

	data, err := json.Marshal(r)
	s.Require().NoError(err)

	var decoded tax.TaxComputeResponse
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(r, decoded)
}

func (s *TaxResponseSuite) TestDecodeRejectsMismatchedBreakdown() {
	payload := `{
		"tax": {"amount": 100, "currency": "USD"},
		"rate": "0.1",
		"effective_rate": "0.1",
		"breakdown": [
			{"label": "federal", "amount": {"amount": 99, "currency": "USD"}, "rate": "0.1"}
		]
	}`

	var decoded tax.TaxComputeResponse
	err := json.Unmarshal([]byte(payload), &decoded)
	s.Require().Error(err)
	s.Equal("breakdown", sErrors.FieldOf(err))
}
