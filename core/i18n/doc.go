// Package i18n provides internationalization support with immutable, thread-safe design
// and validated translation dictionaries.
//
// Translations are organized by namespace. A namespace may declare a canonical KeySet:
// the ordered list of source strings its UI uses. Every Dictionary registered for that
// namespace must then define exactly those keys, no more and no less. The check runs
// once, in New, so a process with an incomplete locale fails at startup instead of
// rendering untranslated text.
//
// # Basic Usage
//
//	import "github.com/matiboux/totp-online/core/i18n"
//
//	var keys = i18n.MustKeySet(
//		"TOTP Secret",
//		"TOTP URI",
//		"Reset",
//	)
//
//	i18nInstance, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithKeySet("app", keys),
//		i18n.WithDictionary("fr", "app", i18n.Dictionary{
//			"TOTP Secret": "Secret TOTP",
//			"TOTP URI":    "URI TOTP",
//			"Reset":       "Réinitialiser",
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	i18nInstance.T("fr", "app", "Reset") // "Réinitialiser"
//	i18nInstance.T("en", "app", "Reset") // "Reset"
//
// The default language needs no dictionary for a namespace with a key set: keys are
// written in it and translate to themselves.
//
// # Key Completeness
//
// CheckDictionary compares a dictionary with a key set in both directions:
//
//	err := i18n.CheckDictionary("fr", keys, dict)
//	var mismatch *i18n.KeyMismatchError
//	if errors.As(err, &mismatch) {
//		fmt.Println(mismatch.Missing) // keys of the set the dictionary lacks
//		fmt.Println(mismatch.Extra)   // keys the set does not declare
//	}
//
// New reports all mismatching dictionaries at once (errors.Join), each matching
// ErrKeyMismatch. Registering a language twice in the same namespace fails with
// ErrDuplicateLocale; dictionaries are never merged. Language codes must parse as
// BCP 47 tags (ErrInvalidLanguage).
//
// # Language Fallback
//
// A key missing in the requested language falls back to the default language, then to
// the key itself. WithMissingKeyHandler observes keys missing everywhere.
//
// WithLanguages narrows the advertised languages; naming one without a dictionary
// fails with ErrNoDictionary.
//
// # Language Matching
//
// MatchLanguage picks a supported language from explicit choices or an
// Accept-Language header, using the golang.org/x/text/language matcher:
//
//	lang, ok := i18n.MatchLanguage(i18nInstance.Languages(), r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
//	// "fr", true for "fr-CA,fr;q=0.9,en;q=0.8"
//
// # Translator
//
// A Translator fixes language and namespace for one request:
//
//	tr := i18n.NewTranslator(i18nInstance, "fr", "app")
//	tr.T("TOTP URI")     // "URI TOTP"
//	tr.LanguageName()    // "français"
//
// # Thread Safety
//
// The I18n struct is immutable after creation and safe for concurrent use.
package i18n
