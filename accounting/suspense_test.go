package accounting_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contracts/accounting"
	"contracts/common"
	"contracts/enums"
	sErrors "contracts/pkg/schema-errors"
)

func parkedItem(t *testing.T) accounting.SuspenseItem {
	t.Helper()
	item, err := accounting.NewSuspenseItem(
		"susp_1",
		"tx_1",
		enums.SuspenseLowConfidence,
		common.MustTimestamp(time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)),
	)
	require.NoError(t, err)
	return item
}

func TestNewSuspenseItem(t *testing.T) {
	t.Run("parks unresolved", func(t *testing.T) {
		item := parkedItem(t)
		assert.False(t, item.Resolved)
		assert.Nil(t, item.ResolvedAt)
		assert.Zero(t, item.ClarificationAttempts)
	})

	t.Run("rejects an undeclared reason", func(t *testing.T) {
		_, err := accounting.NewSuspenseItem("susp_1", "tx_1", "because",
			common.MustTimestamp(time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)))
		require.Error(t, err)
		assert.True(t, sErrors.HasCode(err, sErrors.CodeEnumViolation))
		assert.Equal(t, "reason", sErrors.FieldOf(err))
	})

	t.Run("accepts every declared reason", func(t *testing.T) {
		for _, reason := range enums.SuspenseReasonValues() {
			_, err := accounting.NewSuspenseItem("susp_1", "tx_1", reason,
				common.MustTimestamp(time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)))
			assert.NoError(t, err, "reason %q must be accepted", reason)
		}
	})
}

func TestSuspenseResolution(t *testing.T) {
	item := parkedItem(t)
	resolvedAt := common.MustTimestamp(time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC))

	t.Run("resolve produces a new resolved value", func(t *testing.T) {
		resolved, err := item.Resolve(resolvedAt, "acct_office_supplies", "accountant_7")
		require.NoError(t, err)
		assert.True(t, resolved.Resolved)
		require.NotNil(t, resolved.ResolvedAt)
		assert.True(t, resolved.ResolvedAt.Equal(resolvedAt))
		assert.NoError(t, resolved.Validate())

		assert.False(t, item.Resolved, "the original value must be unchanged")
	})

	t.Run("cannot resolve twice", func(t *testing.T) {
		resolved, err := item.Resolve(resolvedAt, "acct_office_supplies", "accountant_7")
		require.NoError(t, err)
		_, err = resolved.Resolve(resolvedAt, "acct_other", "accountant_7")
		require.Error(t, err)
		assert.True(t, sErrors.HasCode(err, sErrors.CodeInvariantViolation))
	})

	t.Run("resolution requires an account", func(t *testing.T) {
		_, err := item.Resolve(resolvedAt, "", "accountant_7")
		require.Error(t, err)
		assert.Equal(t, "resolution_account_id", sErrors.FieldOf(err))
	})

	t.Run("resolution fields on an unresolved item are invalid", func(t *testing.T) {
		broken := item
		broken.ResolutionAccountID = "acct_office_supplies"
		err := broken.Validate()
		require.Error(t, err)
		assert.True(t, sErrors.HasCode(err, sErrors.CodeInvariantViolation))
	})

	t.Run("resolved without resolution fields is invalid", func(t *testing.T) {
		broken := item
		broken.Resolved = true
		err := broken.Validate()
		require.Error(t, err)
		assert.Equal(t, "resolved_at", sErrors.FieldOf(err))
	})
}

func TestSuspenseClarificationAttempts(t *testing.T) {
	item := parkedItem(t)
	bumped := item.WithClarificationAttempt().WithClarificationAttempt()
	assert.Equal(t, 2, bumped.ClarificationAttempts)
	assert.Equal(t, 0, item.ClarificationAttempts)

	broken := item
	broken.ClarificationAttempts = -1
	require.Error(t, broken.Validate())
}

func TestSuspenseWireRoundTrip(t *testing.T) {
	item := parkedItem(t)
	resolved, err := item.Resolve(
		common.MustTimestamp(time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC)),
		"acct_office_supplies",
		"accountant_7",
	)
	require.NoError(t, err)

	for _, v := range []accounting.SuspenseItem{item, resolved} {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		var decoded accounting.SuspenseItem
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, v, decoded)
	}
}
