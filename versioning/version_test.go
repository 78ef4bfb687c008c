package versioning_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sErrors "contracts/pkg/schema-errors"
	"contracts/versioning"
)

func TestParse(t *testing.T) {
	t.Run("accepts major.minor", func(t *testing.T) {
		for _, raw := range []string{"1.0", "1.12", "0.1", "12.0"} {
			v, err := versioning.Parse(raw)
			require.NoError(t, err, "version %q must parse", raw)
			assert.Equal(t, raw, v.String())
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, raw := range []string{"", "1", "1.0.0", "v1.0", "1.a", ".5", "1.", "one.two"} {
			_, err := versioning.Parse(raw)
			require.Error(t, err, "version %q must be rejected", raw)
			assert.True(t, sErrors.HasCode(err, sErrors.CodeTypeMismatch))
			assert.Equal(t, "schema_version", sErrors.FieldOf(err))
		}
	})
}

func TestComponents(t *testing.T) {
	v := versioning.MustParse("2.7")
	assert.Equal(t, 2, v.Major())
	assert.Equal(t, 7, v.Minor())
	assert.False(t, v.IsZero())
	assert.True(t, versioning.SchemaVersion("").IsZero())
}

func TestCompatibility(t *testing.T) {
	t.Run("same major is compatible", func(t *testing.T) {
		assert.True(t, versioning.MustParse("1.0").IsCompatibleWith(versioning.MustParse("1.9")))
		assert.True(t, versioning.MustParse("1.9").IsCompatibleWith(versioning.MustParse("1.0")))
	})

	t.Run("different major is not", func(t *testing.T) {
		assert.False(t, versioning.MustParse("1.9").IsCompatibleWith(versioning.MustParse("2.0")))
	})
}

func TestAtLeast(t *testing.T) {
	assert.True(t, versioning.MustParse("1.1").AtLeast(versioning.MustParse("1.0")))
	assert.True(t, versioning.MustParse("1.1").AtLeast(versioning.MustParse("1.1")))
	assert.True(t, versioning.MustParse("2.0").AtLeast(versioning.MustParse("1.9")))
	assert.False(t, versioning.MustParse("1.9").AtLeast(versioning.MustParse("2.0")))
	assert.False(t, versioning.MustParse("1.0").AtLeast(versioning.MustParse("1.1")))
}

func TestJSONDecodeValidates(t *testing.T) {
	var v versioning.SchemaVersion
	require.NoError(t, json.Unmarshal([]byte(`"1.3"`), &v))
	assert.Equal(t, versioning.MustParse("1.3"), v)

	err := json.Unmarshal([]byte(`"1.0.0"`), &v)
	require.Error(t, err)
	assert.True(t, sErrors.HasCode(err, sErrors.CodeTypeMismatch))

	err = json.Unmarshal([]byte(`1.0`), &v)
	require.Error(t, err)
}
