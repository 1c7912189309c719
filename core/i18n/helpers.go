package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// maxAcceptLanguageLength bounds the preference strings handed to the parser.
const maxAcceptLanguageLength = 4096

// MatchLanguage returns the available language best matching prefs.
// Each preference is an Accept-Language value or a single tag ("fr-CA");
// they are tried in order and the first one with a match wins. Regional
// tags match their base language. The bool is false when nothing matches.
func MatchLanguage(available []string, prefs ...string) (string, bool) {
	supported := make([]language.Tag, 0, len(available))
	index := make([]int, 0, len(available))
	for i, lang := range available {
		tag, err := ParseLanguage(lang)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		index = append(index, i)
	}
	if len(supported) == 0 {
		return "", false
	}
	matcher := language.NewMatcher(supported)

	for _, pref := range prefs {
		tags := parsePreference(pref)
		if len(tags) == 0 {
			continue
		}
		_, i, conf := matcher.Match(tags...)
		if conf != language.No {
			return available[index[i]], true
		}
	}
	return "", false
}

// parsePreference parses an Accept-Language value, ignoring wildcards.
// Oversized values are cut at the last complete entry.
func parsePreference(pref string) []language.Tag {
	pref = strings.TrimSpace(pref)
	if len(pref) > maxAcceptLanguageLength {
		pref = pref[:maxAcceptLanguageLength]
		if i := strings.LastIndexByte(pref, ','); i > 0 {
			pref = pref[:i]
		}
	}
	if pref == "" {
		return nil
	}
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil {
		return nil
	}
	out := tags[:0]
	for _, tag := range tags {
		if tag != language.Und {
			out = append(out, tag)
		}
	}
	return out
}

// LanguageName returns the self-name of a language ("English", "français").
// Unparseable codes are returned unchanged.
func LanguageName(lang string) string {
	tag, err := ParseLanguage(lang)
	if err != nil {
		return lang
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return lang
}
