package i18n_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiboux/totp-online/core/i18n"
)

var testKeys = i18n.MustKeySet("Reset", "TOTP Secret", "TOTP URI")

func frenchDictionary() i18n.Dictionary {
	return i18n.Dictionary{
		"Reset":       "Réinitialiser",
		"TOTP Secret": "Secret TOTP",
		"TOTP URI":    "URI TOTP",
	}
}

func TestNew(t *testing.T) {
	t.Run("creates instance with defaults", func(t *testing.T) {
		i18nInstance, err := i18n.New()
		require.NoError(t, err)
		assert.Equal(t, i18n.DefaultLang, i18nInstance.DefaultLanguage())
		assert.Equal(t, []string{"en"}, i18nInstance.Languages())
	})

	t.Run("returns error for empty default language", func(t *testing.T) {
		_, err := i18n.New(i18n.WithDefaultLanguage(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "language cannot be empty")
	})

	t.Run("returns error for empty namespace in dictionary", func(t *testing.T) {
		_, err := i18n.New(i18n.WithDictionary("fr", "", frenchDictionary()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "namespace cannot be empty")
	})

	t.Run("accepts complete dictionaries", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("fr", "app", frenchDictionary()),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "fr"}, i18nInstance.Languages())
	})

	t.Run("validates dictionaries registered before the key set", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithDictionary("fr", "app", i18n.Dictionary{"Reset": "Réinitialiser"}),
			i18n.WithKeySet("app", testKeys),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, i18n.ErrKeyMismatch)
	})

	t.Run("rejects dictionary with missing keys", func(t *testing.T) {
		dict := frenchDictionary()
		delete(dict, "TOTP URI")

		_, err := i18n.New(
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("fr", "app", dict),
		)
		require.Error(t, err)

		var mismatch *i18n.KeyMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "fr", mismatch.Language)
		assert.Equal(t, "app", mismatch.Namespace)
		assert.Equal(t, []string{"TOTP URI"}, mismatch.Missing)
		assert.Empty(t, mismatch.Extra)
	})

	t.Run("rejects dictionary with extra keys", func(t *testing.T) {
		dict := frenchDictionary()
		dict["Convert"] = "Convertir"

		_, err := i18n.New(
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("fr", "app", dict),
		)
		var mismatch *i18n.KeyMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Empty(t, mismatch.Missing)
		assert.Equal(t, []string{"Convert"}, mismatch.Extra)
	})

	t.Run("reports every mismatching locale", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("fr", "app", i18n.Dictionary{}),
			i18n.WithDictionary("de", "app", i18n.Dictionary{"Reset": "Zurücksetzen"}),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `locale "de"`)
		assert.Contains(t, err.Error(), `locale "fr"`)
	})

	t.Run("rejects duplicate locale", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("fr", "app", frenchDictionary()),
			i18n.WithDictionary("fr", "app", i18n.Dictionary{"Reset": "Réinitialiser"}),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, i18n.ErrDuplicateLocale)
	})

	t.Run("allows same language in another namespace", func(t *testing.T) {
		other := i18n.MustKeySet("Data privacy")
		_, err := i18n.New(
			i18n.WithKeySet("app", testKeys),
			i18n.WithKeySet("footer", other),
			i18n.WithDictionary("fr", "app", frenchDictionary()),
			i18n.WithDictionary("fr", "footer", i18n.Dictionary{"Data privacy": "Confidentialité des données"}),
		)
		require.NoError(t, err)
	})

	t.Run("rejects dictionary without key set", func(t *testing.T) {
		_, err := i18n.New(i18n.WithDictionary("fr", "app", frenchDictionary()))
		assert.ErrorIs(t, err, i18n.ErrUnknownKeySet)
	})

	t.Run("rejects invalid language tag", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("not a tag!", "app", frenchDictionary()),
		)
		assert.ErrorIs(t, err, i18n.ErrInvalidLanguage)
	})

	t.Run("rejects duplicate key set", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithKeySet("app", testKeys),
			i18n.WithKeySet("app", testKeys),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already declared")
	})

	t.Run("rejects empty key set", func(t *testing.T) {
		_, err := i18n.New(i18n.WithKeySet("app", i18n.KeySet{}))
		require.Error(t, err)
	})
}

func TestT(t *testing.T) {
	setup := func(t *testing.T) *i18n.I18n {
		t.Helper()
		i18nInstance, err := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("fr", "app", frenchDictionary()),
		)
		require.NoError(t, err)
		return i18nInstance
	}

	t.Run("returns dictionary translation", func(t *testing.T) {
		assert.Equal(t, "Secret TOTP", setup(t).T("fr", "app", "TOTP Secret"))
	})

	t.Run("default language translates keys to themselves", func(t *testing.T) {
		i18nInstance := setup(t)
		assert.Equal(t, "TOTP Secret", i18nInstance.T("en", "app", "TOTP Secret"))
		assert.True(t, i18nInstance.Has("en", "app", "TOTP Secret"))
	})

	t.Run("falls back to default language", func(t *testing.T) {
		assert.Equal(t, "TOTP URI", setup(t).T("de", "app", "TOTP URI"))
	})

	t.Run("returns key when translation not found", func(t *testing.T) {
		assert.Equal(t, "Convert", setup(t).T("fr", "app", "Convert"))
		assert.Equal(t, "Convert", setup(t).T("en", "other", "Convert"))
	})

	t.Run("calls missing key handler", func(t *testing.T) {
		var got []string
		i18nInstance, err := i18n.New(
			i18n.WithMissingKeyHandler(func(lang, namespace, key string) {
				got = append(got, lang+"/"+namespace+"/"+key)
			}),
		)
		require.NoError(t, err)

		assert.Equal(t, "Convert", i18nInstance.T("fr", "app", "Convert"))
		assert.Equal(t, []string{"fr/app/Convert"}, got)
	})
}

func TestLanguages(t *testing.T) {
	t.Run("explicit languages keep default first", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithLanguages("fr", "de", "en", ""),
			i18n.WithDefaultLanguage("en"),
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("fr", "app", frenchDictionary()),
			i18n.WithDictionary("de", "app", i18n.Dictionary{
				"Reset":       "Zurücksetzen",
				"TOTP Secret": "TOTP-Geheimnis",
				"TOTP URI":    "TOTP-URI",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "de", "fr"}, i18nInstance.Languages())
	})

	t.Run("explicit languages narrow the list", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithLanguages("en"),
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("fr", "app", frenchDictionary()),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"en"}, i18nInstance.Languages())
	})

	t.Run("rejects languages without dictionary", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithLanguages("fr", "de"),
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("fr", "app", frenchDictionary()),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, i18n.ErrNoDictionary)
		assert.Contains(t, err.Error(), `"de"`)
	})

	t.Run("default language needs no dictionary", func(t *testing.T) {
		i18nInstance, err := i18n.New(i18n.WithLanguages("en"))
		require.NoError(t, err)
		assert.Equal(t, []string{"en"}, i18nInstance.Languages())
	})

	t.Run("dictionary languages are listed", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithKeySet("app", testKeys),
			i18n.WithDictionary("fr", "app", frenchDictionary()),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "fr"}, i18nInstance.Languages())

		ks, ok := i18nInstance.KeySet("app")
		require.True(t, ok)
		assert.Equal(t, testKeys.Keys(), ks.Keys())
	})
}

func TestTranslator(t *testing.T) {
	i18nInstance, err := i18n.New(
		i18n.WithKeySet("app", testKeys),
		i18n.WithDictionary("fr", "app", frenchDictionary()),
	)
	require.NoError(t, err)

	t.Run("fixes language and namespace", func(t *testing.T) {
		tr := i18n.NewTranslator(i18nInstance, "fr", "app")
		assert.Equal(t, "Réinitialiser", tr.T("Reset"))
		assert.Equal(t, "fr", tr.Language())
		assert.Equal(t, "app", tr.Namespace())
		assert.Equal(t, "français", tr.LanguageName())
		assert.True(t, tr.Has("Reset"))
	})

	t.Run("empty language uses default", func(t *testing.T) {
		tr := i18n.NewTranslator(i18nInstance, "", "app")
		assert.Equal(t, "en", tr.Language())
		assert.Equal(t, "Reset", tr.T("Reset"))
	})

	t.Run("panics without instance", func(t *testing.T) {
		assert.Panics(t, func() { i18n.NewTranslator(nil, "fr", "app") })
	})
}

func TestConcurrency(t *testing.T) {
	i18nInstance, err := i18n.New(
		i18n.WithKeySet("app", testKeys),
		i18n.WithDictionary("fr", "app", frenchDictionary()),
	)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for n := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if n%2 == 0 {
				assert.Equal(t, "URI TOTP", i18nInstance.T("fr", "app", "TOTP URI"))
				return
			}
			assert.Equal(t, "TOTP URI", i18nInstance.T("en", "app", "TOTP URI"))
		}()
	}
	wg.Wait()
}

func TestKeyMismatchErrorIs(t *testing.T) {
	err := error(&i18n.KeyMismatchError{Language: "fr"})
	assert.True(t, errors.Is(err, i18n.ErrKeyMismatch))
	assert.False(t, errors.Is(err, i18n.ErrDuplicateLocale))
}
