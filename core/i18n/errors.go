package i18n

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyKey        = errors.New("translation key cannot be blank")
	ErrDuplicateKey    = errors.New("duplicate translation key")
	ErrDuplicateLocale = errors.New("locale already registered")
	ErrInvalidLanguage = errors.New("invalid language tag")
	ErrKeyMismatch     = errors.New("dictionary does not match key set")
	ErrUnknownKeySet   = errors.New("key set not declared for namespace")
	ErrNoDictionary    = errors.New("language has no dictionary")
)

// KeyMismatchError reports the two-way difference between a dictionary and the
// key set it is checked against. Missing keys follow key set order, extra keys
// are sorted.
type KeyMismatchError struct {
	Language  string
	Namespace string
	Missing   []string
	Extra     []string
}

func (e *KeyMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "locale %q", e.Language)
	if e.Namespace != "" {
		fmt.Fprintf(&b, " namespace %q", e.Namespace)
	}
	b.WriteString(": dictionary does not match key set")
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing %d: %s", len(e.Missing), quoteJoin(e.Missing))
	}
	if len(e.Extra) > 0 {
		fmt.Fprintf(&b, "; extra %d: %s", len(e.Extra), quoteJoin(e.Extra))
	}
	return b.String()
}

// Is makes errors.Is(err, ErrKeyMismatch) match any KeyMismatchError.
func (e *KeyMismatchError) Is(target error) bool {
	return target == ErrKeyMismatch
}

func quoteJoin(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return strings.Join(quoted, ", ")
}
