package accounting_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contracts/accounting"
	"contracts/enums"
	sErrors "contracts/pkg/schema-errors"
)

func TestNewRiskFlag(t *testing.T) {
	t.Run("constructs with a known code", func(t *testing.T) {
		f, err := accounting.NewRiskFlag("DUPLICATE_POSSIBLE", enums.RiskMedium, "same amount on consecutive days")
		require.NoError(t, err)
		assert.True(t, f.IsKnown())
	})

	t.Run("accepts codes outside the catalog", func(t *testing.T) {
		f, err := accounting.NewRiskFlag("CUSTOM_HEURISTIC", enums.RiskLow, "")
		require.NoError(t, err)
		assert.False(t, f.IsKnown())
	})

	t.Run("requires code and severity", func(t *testing.T) {
		_, err := accounting.NewRiskFlag("", enums.RiskLow, "")
		assert.Equal(t, "code", sErrors.FieldOf(err))
		_, err = accounting.NewRiskFlag("LARGE_AMOUNT", "", "")
		assert.Equal(t, "severity", sErrors.FieldOf(err))
	})

	t.Run("rejects an undeclared severity", func(t *testing.T) {
		_, err := accounting.NewRiskFlag("LARGE_AMOUNT", "catastrophic", "")
		require.Error(t, err)
		assert.True(t, sErrors.HasCode(err, sErrors.CodeEnumViolation))
	})
}

func TestKnownRiskCodesHaveDescriptions(t *testing.T) {
	require.NotEmpty(t, accounting.KnownRiskCodes)
	for code, description := range accounting.KnownRiskCodes {
		assert.NotEmpty(t, description, "code %s needs a description", code)
	}
}

func TestNewRisk(t *testing.T) {
	flags := []accounting.RiskFlag{
		{Code: "LARGE_AMOUNT", Severity: enums.RiskHigh, Message: "10x category median"},
	}

	t.Run("constructs with score and flags", func(t *testing.T) {
		r, err := accounting.NewRisk("tx_1", 0.8, flags)
		require.NoError(t, err)
		assert.Len(t, r.Flags, 1)
	})

	t.Run("rejects out-of-range scores", func(t *testing.T) {
		for _, score := range []float64{-0.1, 1.5} {
			_, err := accounting.NewRisk("tx_1", score, nil)
			require.Error(t, err)
			assert.Equal(t, "score", sErrors.FieldOf(err))
		}
	})

	t.Run("rejects an invalid nested flag by path", func(t *testing.T) {
		_, err := accounting.NewRisk("tx_1", 0.5, []accounting.RiskFlag{
			{Code: "", Severity: enums.RiskLow},
		})
		require.Error(t, err)
		assert.Equal(t, "flags.0.code", sErrors.FieldOf(err))
	})
}

func TestRiskWireRoundTrip(t *testing.T) {
	r, err := accounting.NewRisk("tx_9", 0.35, []accounting.RiskFlag{
		{Code: "ROUND_AMOUNT", Severity: enums.RiskLow},
		{Code: "NEW_VENDOR", Severity: enums.RiskMedium, Message: "first transaction with ACME LLC"},
	})
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded accounting.Risk
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r, decoded)
}
