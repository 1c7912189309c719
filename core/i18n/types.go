package i18n

// Dictionary is a flat translation table for one language: canonical key to
// localized text. Keys are not split on dots.
type Dictionary map[string]string
