package messaging_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contracts/messaging"
	sErrors "contracts/pkg/schema-errors"
)

func TestNewTemplate(t *testing.T) {
	t.Run("accepts a body whose placeholders are all declared", func(t *testing.T) {
		tpl, err := messaging.NewTemplate(
			"transaction_clarification",
			"en_US",
			"Hi {{first_name}}, was the {{amount}} charge at {{merchant}} for business?",
			[]string{"first_name", "amount", "merchant"},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"first_name", "amount", "merchant"}, tpl.Placeholders())
	})

	t.Run("defaults language to en_US", func(t *testing.T) {
		tpl, err := messaging.NewTemplate("greeting", "", "Hello there.", nil)
		require.NoError(t, err)
		assert.Equal(t, "en_US", tpl.Language)
	})

	t.Run("rejects an undeclared placeholder", func(t *testing.T) {
		_, err := messaging.NewTemplate(
			"transaction_clarification",
			"en_US",
			"Hi {{first_name}}, was the {{amount}} charge ok?",
			[]string{"first_name"},
		)
		require.Error(t, err)
		assert.True(t, sErrors.HasCode(err, sErrors.CodeInvariantViolation))
		assert.Equal(t, "body", sErrors.FieldOf(err))
		assert.Contains(t, err.Error(), `"amount"`)
	})

	t.Run("rejects duplicate parameter declarations", func(t *testing.T) {
		_, err := messaging.NewTemplate("greeting", "en_US",
			"Hello {{name}}.", []string{"name", "name"})
		require.Error(t, err)
		assert.Equal(t, "params.1", sErrors.FieldOf(err))
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		_, err := messaging.NewTemplate("greeting", "en_US", "", nil)
		require.Error(t, err)
		assert.True(t, sErrors.HasCode(err, sErrors.CodeMissingField))
	})
}

func TestTemplatePlaceholders(t *testing.T) {
	tpl := messaging.Template{Body: "{{a}} then {{b}} then {{a}} again"}
	assert.Equal(t, []string{"a", "b"}, tpl.Placeholders(),
		"placeholders are reported once, in order of first appearance")

	assert.Empty(t, messaging.Template{Body: "no placeholders here"}.Placeholders())
}

func TestTemplateButtons(t *testing.T) {
	tpl := messaging.Template{
		Name:     "transaction_clarification",
		Language: "en_US",
		Body:     "Was this business or personal?",
		Buttons: []messaging.TemplateButton{
			{ID: "business", Title: "Business"},
			{ID: "personal", Title: "this title is far longer than twenty characters"},
		},
	}

	err := tpl.Validate()
	require.Error(t, err)
	assert.True(t, sErrors.HasCode(err, sErrors.CodeInvariantViolation))
	assert.Equal(t, "buttons.1.title", sErrors.FieldOf(err))
}

func TestTemplateWireRoundTrip(t *testing.T) {
	tpl, err := messaging.NewTemplate(
		"transaction_clarification",
		"en_US",
		"Was the {{amount}} charge at {{merchant}} for business?",
		[]string{"amount", "merchant"},
	)
	require.NoError(t, err)
	tpl.Buttons = []messaging.TemplateButton{
		{ID: "yes", Title: "Yes"},
		{ID: "no", Title: "No"},
	}

	data, err := json.Marshal(tpl)
	require.NoError(t, err)

	var decoded messaging.Template
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tpl, decoded)

	var invalid messaging.Template
	err = json.Unmarshal([]byte(`{"name":"x","language":"en_US","body":"hi {{who}}"}`), &invalid)
	require.Error(t, err)
	assert.Equal(t, "body", sErrors.FieldOf(err))
}
