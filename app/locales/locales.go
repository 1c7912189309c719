// Package locales declares the translation keys of the TOTP Online page and
// its dictionaries.
package locales

import (
	"maps"
	"slices"

	"github.com/matiboux/totp-online/core/i18n"
)

const (
	// Namespace holds every page string.
	Namespace = "app"
	// DefaultLanguage is the language keys are written in.
	DefaultLanguage = "en"
)

// Dictionaries returns every non-default locale by language code.
func Dictionaries() map[string]i18n.Dictionary {
	return map[string]i18n.Dictionary{
		"fr": French(),
	}
}

// Languages returns the default language followed by the other locales, sorted.
func Languages() []string {
	return append([]string{DefaultLanguage}, slices.Sorted(maps.Keys(Dictionaries()))...)
}

// New builds the validated I18n instance for the page. It fails when a
// dictionary does not match Keys.
func New(opts ...i18n.Option) (*i18n.I18n, error) {
	base := []i18n.Option{
		i18n.WithDefaultLanguage(DefaultLanguage),
		i18n.WithKeySet(Namespace, Keys),
	}
	dicts := Dictionaries()
	for _, lang := range slices.Sorted(maps.Keys(dicts)) {
		base = append(base, i18n.WithDictionary(lang, Namespace, dicts[lang]))
	}
	return i18n.New(append(base, opts...)...)
}
