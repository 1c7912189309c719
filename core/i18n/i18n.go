package i18n

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"

	"golang.org/x/text/language"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// I18n provides internationalization support with flat, validated dictionaries.
// It is immutable after creation, making it safe for concurrent use.
type I18n struct {
	// Flattened translations map for O(1) lookups
	// Key format: "lang:namespace:key.path"
	translations map[string]string

	// Canonical key sets per namespace
	keySets map[string]KeySet

	// Dictionaries registered per namespace and language, validated in New
	dictionaries map[string]map[string]Dictionary

	// Default/fallback language
	defaultLang string

	// Languages requested through WithLanguages
	requestedLangs []string

	// Pre-computed list of available languages (for O(1) access)
	languages []string

	// Optional handler called when a translation key is not found
	missingKeyHandler func(lang, namespace, key string)
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// All configuration happens during construction, making the instance
// immutable and thread-safe from creation.
//
// Every dictionary registered with WithDictionary is checked against the key
// set of its namespace. Any mismatch fails construction: an incomplete locale
// never reaches request handling.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		keySets:      make(map[string]KeySet),
		dictionaries: make(map[string]map[string]Dictionary),
		defaultLang:  DefaultLang,
	}

	// Apply all options
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	// Validate configuration
	if i.defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	if err := i.validateDictionaries(); err != nil {
		return nil, err
	}

	// Build pre-computed language list for O(1) access during requests
	languages, err := i.buildLanguagesList()
	if err != nil {
		return nil, err
	}
	i.languages = languages

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages restricts the supported languages of the I18n instance.
// The default language will always be included and placed first in the list.
// Other languages will be sorted alphabetically. Each must have a dictionary
// in at least one namespace, or New fails with ErrNoDictionary.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		for _, lang := range langs {
			if lang != "" {
				i.requestedLangs = append(i.requestedLangs, lang)
			}
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a translation
// key is not found in any language (including the default fallback).
// This is useful for logging missing translations during development.
// The handler receives the requested language, namespace, and key.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithKeySet declares the canonical keys of a namespace.
// Dictionaries of that namespace must define exactly these keys. When the
// default language has no dictionary for the namespace, the keys translate
// to themselves in it.
func WithKeySet(namespace string, keys KeySet) Option {
	return func(i *I18n) error {
		if namespace == "" {
			return fmt.Errorf("namespace cannot be empty")
		}
		if keys.Len() == 0 {
			return fmt.Errorf("key set for namespace %q is empty", namespace)
		}
		if _, exists := i.keySets[namespace]; exists {
			return fmt.Errorf("key set for namespace %q already declared", namespace)
		}
		i.keySets[namespace] = keys
		return nil
	}
}

// WithDictionary registers a flat dictionary for a language and namespace.
// The language must be a well-formed BCP 47 tag. Registering the same
// language twice in a namespace is an error: there is no merge.
func WithDictionary(lang, namespace string, dict Dictionary) Option {
	return func(i *I18n) error {
		if namespace == "" {
			return fmt.Errorf("namespace cannot be empty")
		}
		if _, err := ParseLanguage(lang); err != nil {
			return err
		}

		byLang, ok := i.dictionaries[namespace]
		if !ok {
			byLang = make(map[string]Dictionary)
			i.dictionaries[namespace] = byLang
		}
		if _, exists := byLang[lang]; exists {
			return fmt.Errorf("%w: %q in namespace %q", ErrDuplicateLocale, lang, namespace)
		}
		byLang[lang] = maps.Clone(dict)

		for key, value := range dict {
			i.translations[buildKey(lang, namespace, key)] = value
		}
		return nil
	}
}

// T retrieves a translation for the given language, namespace, and key.
// Falls back to the default language if translation is not found.
// Returns the key itself if no translation exists.
func (i *I18n) T(lang, namespace, key string) string {
	// Try to get translation for requested language
	compositeKey := buildKey(lang, namespace, key)
	if translation, exists := i.translations[compositeKey]; exists {
		return translation
	}

	// Fall back to default language if different
	if lang != i.defaultLang {
		defaultKey := buildKey(i.defaultLang, namespace, key)
		if translation, exists := i.translations[defaultKey]; exists {
			return translation
		}
	}

	// Call missing key handler if set
	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}

	// Return the key as last resort
	return key
}

// Has reports whether a translation exists for the exact language, without fallback.
func (i *I18n) Has(lang, namespace, key string) bool {
	_, ok := i.translations[buildKey(lang, namespace, key)]
	return ok
}

// Languages returns all configured languages in the I18n instance.
// The default language is always returned first, followed by other languages sorted alphabetically.
// This is an O(1) operation as the list is pre-computed during construction.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the default language code configured for the I18n instance.
// If no default language was explicitly set, returns DefaultLang ("en").
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// KeySet returns the key set declared for namespace.
func (i *I18n) KeySet(namespace string) (KeySet, bool) {
	ks, ok := i.keySets[namespace]
	return ks, ok
}

// validateDictionaries checks every registered dictionary against its
// namespace key set and fills the default language with the identity
// dictionary where it has none. All mismatches are reported together.
func (i *I18n) validateDictionaries() error {
	var errs []error

	for namespace, byLang := range i.dictionaries {
		keys, ok := i.keySets[namespace]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownKeySet, namespace))
			continue
		}
		for _, lang := range slices.Sorted(maps.Keys(byLang)) {
			if err := CheckDictionary(lang, keys, byLang[lang]); err != nil {
				var mismatch *KeyMismatchError
				if errors.As(err, &mismatch) {
					mismatch.Namespace = namespace
				}
				errs = append(errs, err)
			}
		}
	}

	for namespace, keys := range i.keySets {
		if _, ok := i.dictionaries[namespace][i.defaultLang]; ok {
			continue
		}
		for key, value := range keys.Identity() {
			i.translations[buildKey(i.defaultLang, namespace, key)] = value
		}
	}

	return errors.Join(errs...)
}

// buildLanguagesList builds the pre-computed list of languages.
// Called once during construction after all options are applied.
// Without WithLanguages, every language holding a dictionary is listed.
func (i *I18n) buildLanguagesList() ([]string, error) {
	langSet := make(map[string]bool)
	for _, byLang := range i.dictionaries {
		for lang := range byLang {
			langSet[lang] = true
		}
	}

	if len(i.requestedLangs) > 0 {
		requested := make(map[string]bool, len(i.requestedLangs))
		var errs []error
		for _, lang := range i.requestedLangs {
			if lang != i.defaultLang && !langSet[lang] {
				errs = append(errs, fmt.Errorf("%w: %q", ErrNoDictionary, lang))
				continue
			}
			requested[lang] = true
		}
		if err := errors.Join(errs...); err != nil {
			return nil, err
		}
		langSet = requested
	}

	// Remove default from set if present
	delete(langSet, i.defaultLang)

	languages := make([]string, 0, len(langSet)+1)
	languages = append(languages, i.defaultLang)

	otherLangs := make([]string, 0, len(langSet))
	for lang := range langSet {
		otherLangs = append(otherLangs, lang)
	}
	sort.Strings(otherLangs)

	return append(languages, otherLangs...), nil
}

// ParseLanguage validates lang as a BCP 47 language tag.
func ParseLanguage(lang string) (language.Tag, error) {
	if lang == "" {
		return language.Und, fmt.Errorf("%w: empty", ErrInvalidLanguage)
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, lang, err)
	}
	return tag, nil
}

// buildKey creates a composite key for the translations map.
func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}
