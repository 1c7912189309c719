package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/matiboux/totp-online/app/locales"
)

// Layout wraps body with the document head and the footer.
func Layout(p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", p.Tr.Language())
		h.raw(">")
		head(h, p)
		h.raw("<body><main>")
		languageSwitcher(h, p.Languages)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw("</main>")
		footer(h, p)
		h.raw(copyScript)
		h.raw("</body></html>")
		return h.err
	})
}

func head(h *htmlWriter, p Page) {
	s := p.Site
	h.raw(`<head><meta charset="utf-8">`)
	h.meta("name", "viewport", s.Viewport())
	h.raw("<title>")
	h.text(s.Title)
	h.raw("</title>")
	h.meta("name", "description", s.Description)
	h.meta("name", "author", s.Author)
	h.meta("name", "keywords", strings.Join(s.Keywords, ", "))
	h.meta("name", "generator", s.Generator)
	h.meta("name", "theme-color", s.ThemeColor)
	h.meta("name", "version", s.Version)
	if s.Favicon != "" {
		h.raw(`<link rel="icon"`)
		h.attr("href", s.Favicon)
		h.raw(">")
	}
	h.meta("property", "og:title", s.SocialTitle)
	h.meta("property", "og:description", s.SocialDescription)
	h.meta("property", "og:image", s.SocialImage)
	h.meta("property", "og:url", s.SocialURL)
	h.meta("property", "og:type", s.SocialType)
	h.meta("name", "twitter:card", s.SocialTwitterCard)
	h.meta("name", "twitter:title", s.SocialTitle)
	h.meta("name", "twitter:description", s.SocialDescription)
	h.raw("</head>")
}

func languageSwitcher(h *htmlWriter, langs []Language) {
	if len(langs) < 2 {
		return
	}
	h.raw(`<nav class="languages"><ul>`)
	for _, l := range langs {
		h.raw("<li>")
		if l.Current {
			h.raw(`<strong`)
			h.attr("lang", l.Code)
			h.raw(">")
			h.text(l.Name)
			h.raw("</strong>")
		} else {
			h.raw("<a")
			h.attr("href", "/?lang="+l.Code)
			h.attr("hreflang", l.Code)
			h.attr("lang", l.Code)
			h.raw(">")
			h.text(l.Name)
			h.raw("</a>")
		}
		h.raw("</li>")
	}
	h.raw("</ul></nav>")
}

func footer(h *htmlWriter, p Page) {
	tr := p.Tr
	h.raw("<footer><section><h2>")
	h.text(tr.T(locales.KeyOpenSource))
	h.raw("</h2><p>")
	h.text(tr.T(locales.KeySeeSourceOn))
	h.raw(" <a")
	h.attr("href", p.Site.RepositoryURL)
	h.raw(` rel="noopener">GitHub</a>. `)
	h.text(tr.T(locales.KeyBuiltWith))
	h.raw(` <a href="https://go.dev" rel="noopener">Go</a>, `)
	h.text(tr.T(locales.KeyServedBy))
	h.raw(` <a href="https://echo.labstack.com" rel="noopener">Echo</a>.</p><p>`)
	h.text(tr.T(locales.KeyMadeWithLoveBy))
	h.raw(" ")
	h.text(p.Site.Author)
	h.raw(` &middot; <span class="version">`)
	h.text(p.Site.Version)
	h.raw("</span></p></section><section><h2>")
	h.text(tr.T(locales.KeyDataPrivacy))
	// Codes are generated by a POST to this server, so the local-only
	// processing statements are not rendered.
	h.raw("</h2><p>")
	h.text(tr.T(locales.KeyNoCookies))
	h.raw("</p></section></footer>")
}

const copyScript = `<script>document.addEventListener("click",function(e){var b=e.target.closest("[data-copy]");if(b&&navigator.clipboard){navigator.clipboard.writeText(b.getAttribute("data-copy"))}});</script>`
