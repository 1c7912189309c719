package locales_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiboux/totp-online/app/locales"
	"github.com/matiboux/totp-online/core/i18n"
)

func TestStatus(t *testing.T) {
	rep := locales.Status()
	assert.True(t, rep.Complete())
	assert.Equal(t, "en", rep.BaseLocale)
	assert.Equal(t, 29, rep.Keys)
	require.Len(t, rep.Locales, 1)
	assert.Equal(t, "fr", rep.Locales[0].Locale)
	assert.Equal(t, 100.0, rep.Locales[0].Completion)
}

func TestBuildReport(t *testing.T) {
	keys := i18n.MustKeySet("a", "b", "c")
	rep := locales.BuildReport("en", keys, map[string]i18n.Dictionary{
		"fr": {"a": "A", "b": "B", "c": "C"},
		"de": {"a": "A", "z": "Z"},
	})

	require.Len(t, rep.Locales, 2)
	assert.False(t, rep.Complete())

	de := rep.Locales[0]
	assert.Equal(t, "de", de.Locale)
	assert.Equal(t, 1, de.Translated)
	assert.Equal(t, []string{"b", "c"}, de.MissingKeys)
	assert.Equal(t, []string{"z"}, de.ExtraKeys)
	assert.Equal(t, 33.3, de.Completion)
	assert.False(t, de.Complete())

	fr := rep.Locales[1]
	assert.True(t, fr.Complete())
	assert.Equal(t, []string{}, fr.MissingKeys)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, rep.WriteJSON(&buf))

		var decoded locales.Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, rep, decoded)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, rep.WriteText(&buf))
		out := buf.String()
		assert.Contains(t, out, "base locale: en (3 keys)")
		assert.Contains(t, out, "de missing keys:")
		assert.Contains(t, out, `  - "z"`)
		assert.NotContains(t, out, "fr missing keys:")
	})
}
