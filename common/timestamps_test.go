package common_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contracts/common"
	sErrors "contracts/pkg/schema-errors"
)

func TestNewTimestamp(t *testing.T) {
	t.Run("rejects the zero time", func(t *testing.T) {
		_, err := common.NewTimestamp(time.Time{})
		require.Error(t, err)
		assert.True(t, sErrors.HasCode(err, sErrors.CodeMissingField))
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		est := time.FixedZone("EST", -5*60*60)
		ts, err := common.NewTimestamp(time.Date(2024, 1, 1, 19, 0, 0, 0, est))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, ts.Time().Location())
		assert.Equal(t, "2024-01-02T00:00:00Z", ts.String())
	})

	t.Run("equal instants in different zones compare equal", func(t *testing.T) {
		est := time.FixedZone("EST", -5*60*60)
		a := common.MustTimestamp(time.Date(2024, 1, 1, 19, 0, 0, 0, est))
		b := common.MustTimestamp(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
		assert.True(t, a.Equal(b))
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Run("accepts RFC 3339 with offset", func(t *testing.T) {
		ts, err := common.ParseTimestamp("2024-01-01T00:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ts.Time())

		ts, err = common.ParseTimestamp("2024-01-01T05:30:00+05:30")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01T00:00:00Z", ts.String())
	})

	t.Run("rejects naive timestamps", func(t *testing.T) {
		for _, raw := range []string{"2024-01-01T00:00:00", "2024-01-01", "not a time", ""} {
			_, err := common.ParseTimestamp(raw)
			require.Error(t, err, "input %q must be rejected", raw)
			assert.True(t, sErrors.HasCode(err, sErrors.CodeTypeMismatch))
			assert.Equal(t, "timestamp", sErrors.FieldOf(err))
		}
	})
}

func TestTimestampOrdering(t *testing.T) {
	earlier := common.MustTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	later := common.MustTimestamp(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Equal(later))
}

func TestTimestampWireFormat(t *testing.T) {
	t.Run("round-trips including sub-second precision", func(t *testing.T) {
		original := common.MustTimestamp(time.Date(2024, 3, 15, 9, 30, 0, 123456789, time.UTC))
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded common.Timestamp
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, original.Equal(decoded))
		assert.Equal(t, original, decoded)
	})

	t.Run("serializes whole seconds without trailing zeros", func(t *testing.T) {
		data, err := json.Marshal(common.MustTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, err)
		assert.Equal(t, `"2024-01-01T00:00:00Z"`, string(data))
	})

	t.Run("refuses to serialize the zero value", func(t *testing.T) {
		_, err := json.Marshal(common.Timestamp{})
		require.Error(t, err)
	})

	t.Run("rejects a numeric wire value", func(t *testing.T) {
		var ts common.Timestamp
		err := json.Unmarshal([]byte(`1704067200`), &ts)
		require.Error(t, err)
		assert.True(t, sErrors.HasCode(err, sErrors.CodeTypeMismatch))
	})
}
