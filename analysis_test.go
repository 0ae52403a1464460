package webmark_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/webmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysis_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid analysis", func(t *testing.T) {
		t.Parallel()

		a := &webmark.Analysis{URL: "https://example.com", Mode: webmark.ModeDigest}

		assert.NoError(t, a.Validate())
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()

		a := &webmark.Analysis{Mode: webmark.ModeDigest}

		err := a.Validate()
		assert.Equal(t, webmark.EINVALID, webmark.ErrorCode(err))
	})

	t.Run("unknown mode", func(t *testing.T) {
		t.Parallel()

		a := &webmark.Analysis{URL: "https://example.com", Mode: "turbo"}

		err := a.Validate()
		assert.Equal(t, webmark.EINVALID, webmark.ErrorCode(err))
	})
}

func TestReport_JSONShape(t *testing.T) {
	t.Parallel()

	t.Run("failure has null result", func(t *testing.T) {
		t.Parallel()

		report := &webmark.Report{Success: false, Error: "Invalid URL format"}

		data, err := json.Marshal(report)
		require.NoError(t, err)

		assert.JSONEq(t, `{"success":false,"error":"Invalid URL format","result":null}`, string(data))
	})

	t.Run("success omits error", func(t *testing.T) {
		t.Parallel()

		report := &webmark.Report{
			Success: true,
			Result:  &webmark.Analysis{URL: "https://example.com", Mode: webmark.ModeDigest, Markdown: "# Hi"},
		}

		data, err := json.Marshal(report)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, true, decoded["success"])
		assert.NotContains(t, decoded, "error")

		result, ok := decoded["result"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "https://example.com", result["url"])
		assert.Equal(t, "# Hi", result["markdown"])
	})
}
