// Package views renders the TOTP Online page as templ components.
package views

import (
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/matiboux/totp-online/app/site"
	"github.com/matiboux/totp-online/core/i18n"
)

// Form source values.
const (
	SourceSecret = "secret"
	SourceURI    = "uri"
)

// Language is one entry of the language switcher.
type Language struct {
	Code    string
	Name    string
	Current bool
}

// Form holds the submitted values, echoed back into the inputs.
type Form struct {
	Source     string
	Secret     string
	URI        string
	Algorithm  string
	Digits     int
	Period     int
	Algorithms []string
}

// Result is a generated code with the parameters it was derived from.
type Result struct {
	Code      string
	Counter   uint64
	Remaining int
	Period    int
	Digits    int
	Algorithm string
	Secret    string
	URI       string
	QRCode    string
}

// Page is everything the index page renders.
type Page struct {
	Site      site.Site
	Tr        *i18n.Translator
	Languages []Language
	Form      Form
	Result    *Result
	// Error is an already translated message.
	Error string
}

// htmlWriter accumulates the first write error so rendering code stays linear.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

func (h *htmlWriter) meta(key, name, content string) {
	if content == "" {
		return
	}
	h.raw("<meta")
	h.attr(key, name)
	h.attr("content", content)
	h.raw(">")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func formatUint(n uint64) string {
	return strconv.FormatUint(n, 10)
}
