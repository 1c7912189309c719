package i18n

import (
	"fmt"
	"slices"
	"strings"
)

// KeySet is the canonical, ordered list of translation keys for a namespace.
// Every dictionary registered for that namespace must define exactly these keys.
// A KeySet is immutable once built.
type KeySet struct {
	keys  []string
	index map[string]struct{}
}

// NewKeySet builds a KeySet preserving declaration order.
// It rejects blank and duplicate keys.
func NewKeySet(keys ...string) (KeySet, error) {
	ks := KeySet{
		keys:  make([]string, 0, len(keys)),
		index: make(map[string]struct{}, len(keys)),
	}
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			return KeySet{}, ErrEmptyKey
		}
		if _, exists := ks.index[key]; exists {
			return KeySet{}, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		ks.index[key] = struct{}{}
		ks.keys = append(ks.keys, key)
	}
	return ks, nil
}

// MustKeySet is like NewKeySet but panics on error.
// Intended for package-level key declarations.
func MustKeySet(keys ...string) KeySet {
	ks, err := NewKeySet(keys...)
	if err != nil {
		panic(fmt.Sprintf("i18n: %v", err))
	}
	return ks
}

// Keys returns a copy of the keys in declaration order.
func (ks KeySet) Keys() []string {
	return slices.Clone(ks.keys)
}

// Len returns the number of keys.
func (ks KeySet) Len() int {
	return len(ks.keys)
}

// Contains reports whether key belongs to the set.
func (ks KeySet) Contains(key string) bool {
	_, ok := ks.index[key]
	return ok
}

// Identity returns a dictionary translating every key to itself.
// This is the dictionary of the language the keys are written in.
func (ks KeySet) Identity() Dictionary {
	dict := make(Dictionary, len(ks.keys))
	for _, key := range ks.keys {
		dict[key] = key
	}
	return dict
}

// Diff returns the keys of the set absent from dict and the keys of dict
// absent from the set.
func (ks KeySet) Diff(dict Dictionary) (missing, extra []string) {
	for _, key := range ks.keys {
		if _, ok := dict[key]; !ok {
			missing = append(missing, key)
		}
	}
	for key := range dict {
		if !ks.Contains(key) {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	return missing, extra
}

// CheckDictionary verifies that dict defines exactly the keys of ks.
// It returns a *KeyMismatchError listing missing and extra keys on mismatch.
func CheckDictionary(lang string, ks KeySet, dict Dictionary) error {
	missing, extra := ks.Diff(dict)
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	return &KeyMismatchError{
		Language: lang,
		Missing:  missing,
		Extra:    extra,
	}
}
