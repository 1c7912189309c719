package locales

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/matiboux/totp-online/core/i18n"
)

// Report summarizes every locale against the key set.
type Report struct {
	BaseLocale string         `json:"base_locale"`
	Keys       int            `json:"keys"`
	Locales    []LocaleStatus `json:"locales"`
}

// LocaleStatus is the completeness of one dictionary.
type LocaleStatus struct {
	Locale      string   `json:"locale"`
	Translated  int      `json:"translated"`
	Missing     int      `json:"missing"`
	Extra       int      `json:"extra"`
	Completion  float64  `json:"completion"`
	MissingKeys []string `json:"missing_keys"`
	ExtraKeys   []string `json:"extra_keys"`
}

// Complete reports whether the dictionary matches the key set exactly.
func (s LocaleStatus) Complete() bool {
	return s.Missing == 0 && s.Extra == 0
}

// Complete reports whether every locale matches the key set.
func (r Report) Complete() bool {
	for _, l := range r.Locales {
		if !l.Complete() {
			return false
		}
	}
	return true
}

// Status builds the report of the bundled dictionaries.
func Status() Report {
	return BuildReport(DefaultLanguage, Keys, Dictionaries())
}

// BuildReport compares dicts with keys. Locales are sorted by code.
func BuildReport(base string, keys i18n.KeySet, dicts map[string]i18n.Dictionary) Report {
	rep := Report{BaseLocale: base, Keys: keys.Len()}
	for _, lang := range slices.Sorted(maps.Keys(dicts)) {
		missing, extra := keys.Diff(dicts[lang])
		translated := keys.Len() - len(missing)
		rep.Locales = append(rep.Locales, LocaleStatus{
			Locale:      lang,
			Translated:  translated,
			Missing:     len(missing),
			Extra:       len(extra),
			Completion:  percent(translated, keys.Len()),
			MissingKeys: nonNil(missing),
			ExtraKeys:   nonNil(extra),
		})
	}
	return rep
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes a human readable table followed by the key lists.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "base locale: %s (%d keys)\n\n", r.BaseLocale, r.Keys)
	fmt.Fprintf(&b, "%-8s %10s %8s %6s %11s\n", "LOCALE", "TRANSLATED", "MISSING", "EXTRA", "COMPLETION")
	for _, l := range r.Locales {
		fmt.Fprintf(&b, "%-8s %10d %8d %6d %10.1f%%\n", l.Locale, l.Translated, l.Missing, l.Extra, l.Completion)
	}
	for _, l := range r.Locales {
		writeKeys(&b, l.Locale, "missing", l.MissingKeys)
		writeKeys(&b, l.Locale, "extra", l.ExtraKeys)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeKeys(b *strings.Builder, locale, kind string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s %s keys:\n", locale, kind)
	for _, key := range keys {
		fmt.Fprintf(b, "  - %q\n", key)
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 100
	}
	return math.Round(float64(n)/float64(total)*1000) / 10
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
