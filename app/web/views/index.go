package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/matiboux/totp-online/app/locales"
)

// Index renders the generator page: the form, then the result or the error.
func Index(p Page) templ.Component {
	return Layout(p, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<h1>")
		h.text(p.Site.Title)
		h.raw("</h1>")
		form(h, p)
		switch {
		case p.Error != "":
			h.raw(`<p class="error" role="alert">`)
			h.text(p.Error)
			h.raw("</p>")
		case p.Result != nil:
			result(h, p)
		default:
			h.raw(`<p class="hint">`)
			h.text(p.Tr.T(locales.KeyFillForm))
			h.raw("</p>")
		}
		return h.err
	}))
}

func form(h *htmlWriter, p Page) {
	tr := p.Tr
	f := p.Form
	h.raw(`<form method="post" action="/">`)
	h.raw(`<input type="hidden" name="lang"`)
	h.attr("value", tr.Language())
	h.raw(">")

	radio := func(value, label string) {
		h.raw(`<label><input type="radio" name="source"`)
		h.attr("value", value)
		if f.Source == value {
			h.raw(" checked")
		}
		h.raw("> ")
		h.text(label)
		h.raw("</label>")
	}
	h.raw("<fieldset>")
	radio(SourceSecret, tr.T(locales.KeySecret))
	radio(SourceURI, tr.T(locales.KeyURI))
	h.raw("</fieldset>")

	input := func(name, label, value, placeholder string) {
		h.raw("<label>")
		h.text(label)
		h.raw(`<input type="text" autocomplete="off" spellcheck="false"`)
		h.attr("name", name)
		h.attr("value", value)
		h.attr("placeholder", placeholder)
		h.raw("></label>")
	}
	input("secret", tr.T(locales.KeySecret), f.Secret, tr.T(locales.KeyPasteSecret))
	input("uri", tr.T(locales.KeyURI), f.URI, tr.T(locales.KeyPasteURI))

	h.raw("<label>")
	h.text(tr.T(locales.KeyAlgorithm))
	h.raw(`<select name="algorithm">`)
	for _, alg := range f.Algorithms {
		h.raw("<option")
		h.attr("value", alg)
		if alg == f.Algorithm {
			h.raw(" selected")
		}
		h.raw(">")
		h.text(alg)
		h.raw("</option>")
	}
	h.raw("</select></label>")

	number := func(name, label string, value, lo, hi int) {
		h.raw("<label>")
		h.text(label)
		h.raw(`<input type="number"`)
		h.attr("name", name)
		h.attr("value", itoa(value))
		h.attr("min", itoa(lo))
		if hi > 0 {
			h.attr("max", itoa(hi))
		}
		h.raw("></label>")
	}
	number("digits", tr.T(locales.KeyDigits), f.Digits, 1, 10)
	number("period", tr.T(locales.KeyPeriod), f.Period, 1, 0)

	h.raw(`<button type="submit">`)
	h.text(tr.T(locales.KeyConvert))
	h.raw(`</button> <a class="button"`)
	h.attr("href", "/?lang="+tr.Language())
	h.raw(">")
	h.text(tr.T(locales.KeyReset))
	h.raw("</a></form>")
}

func result(h *htmlWriter, p Page) {
	tr := p.Tr
	r := p.Result
	h.raw(`<section class="result"><p class="code"><output>`)
	h.text(r.Code)
	h.raw("</output> ")
	copyButton(h, tr.T(locales.KeyCopyCode), r.Code)
	h.raw("</p><dl>")

	row := func(label, value string) {
		h.raw("<dt>")
		h.text(label)
		h.raw("</dt><dd>")
		h.text(value)
		h.raw("</dd>")
	}
	row(tr.T(locales.KeyAlgorithm), r.Algorithm)
	row(tr.T(locales.KeyDigits), itoa(r.Digits))
	row(tr.T(locales.KeyPeriod), itoa(r.Period))
	row(tr.T(locales.KeyCounter), formatUint(r.Counter))
	row(tr.T(locales.KeyRemainingTime), itoa(r.Remaining)+" s")
	h.raw("</dl><p>")
	copyButton(h, tr.T(locales.KeyCopySecret), r.Secret)
	h.raw(" ")
	copyButton(h, tr.T(locales.KeyCopyURI), r.URI)
	h.raw("</p>")
	if r.QRCode != "" {
		h.raw(`<img width="256" height="256"`)
		h.attr("src", r.QRCode)
		h.attr("alt", tr.T(locales.KeyURI))
		h.raw(">")
	}
	h.raw("</section>")
}

func copyButton(h *htmlWriter, label, value string) {
	h.raw(`<button type="button"`)
	h.attr("data-copy", value)
	h.raw(">")
	h.text(label)
	h.raw("</button>")
}
