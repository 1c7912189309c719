package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/matiboux/totp-online/app/locales"
	"github.com/matiboux/totp-online/app/web/views"
	"github.com/matiboux/totp-online/core/i18n"
	"github.com/matiboux/totp-online/core/logger"
	"github.com/matiboux/totp-online/pkg/qrcode"
	"github.com/matiboux/totp-online/pkg/totp"
)

const qrCodeSize = 256

func (s *Server) handleIndex(c echo.Context) error {
	return Render(c, views.Index(s.page(c, defaultForm())))
}

func (s *Server) handleGenerate(c echo.Context) error {
	form, err := parseForm(c)
	if err == nil {
		var result *views.Result
		if result, err = s.generate(&form); err == nil {
			page := s.page(c, form)
			page.Result = result
			return Render(c, views.Index(page))
		}
	}

	tr := s.translator(c)
	s.logger.DebugContext(c.Request().Context(), "generation rejected",
		logger.Language(tr.Language()),
		logger.Error(err),
	)
	page := s.page(c, form)
	page.Error = tr.T(errorKey(err))
	return RenderStatus(c, http.StatusUnprocessableEntity, views.Index(page))
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.site.Version,
	})
}

func (s *Server) handleSite(c echo.Context) error {
	return c.JSON(http.StatusOK, s.site)
}

func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "server error", logger.Error(err))
	}
	s.echo.DefaultHTTPErrorHandler(err, c)
}

// page builds the view model shared by every render of the index.
func (s *Server) page(c echo.Context, form views.Form) views.Page {
	tr := s.translator(c)
	langs := s.i18n.Languages()
	options := make([]views.Language, 0, len(langs))
	for _, lang := range langs {
		options = append(options, views.Language{
			Code:    lang,
			Name:    i18n.LanguageName(lang),
			Current: lang == tr.Language(),
		})
	}
	return views.Page{
		Site:      s.site,
		Tr:        tr,
		Languages: options,
		Form:      form,
	}
}

func defaultForm() views.Form {
	return views.Form{
		Source:     views.SourceSecret,
		Algorithm:  string(totp.DefaultAlgorithm),
		Digits:     totp.DefaultDigits,
		Period:     totp.DefaultPeriod,
		Algorithms: algorithmNames(),
	}
}

func algorithmNames() []string {
	names := make([]string, len(totp.Algorithms))
	for i, alg := range totp.Algorithms {
		names[i] = string(alg)
	}
	return names
}

// parseForm reads the submitted form. The returned form is usable for
// re-rendering even when err is not nil.
func parseForm(c echo.Context) (views.Form, error) {
	form := defaultForm()
	form.Secret = strings.TrimSpace(c.FormValue("secret"))
	form.URI = strings.TrimSpace(c.FormValue("uri"))
	if alg := c.FormValue("algorithm"); alg != "" {
		form.Algorithm = alg
	}
	if src := c.FormValue("source"); src == views.SourceURI {
		form.Source = views.SourceURI
	}

	var errs []error
	if v := c.FormValue("digits"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, totp.ErrInvalidDigits)
		}
		form.Digits = n
	}
	if v := c.FormValue("period"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, totp.ErrInvalidPeriod)
		}
		form.Period = n
	}
	return form, errors.Join(errs...)
}

// generate derives the code for form. On success form is updated with the
// normalized parameters.
func (s *Server) generate(form *views.Form) (*views.Result, error) {
	var (
		params totp.Params
		err    error
	)
	switch form.Source {
	case views.SourceURI:
		params, err = totp.ParseURI(form.URI)
	default:
		params.Secret = form.Secret
		params.Digits = form.Digits
		params.Period = form.Period
		if params.Algorithm, err = totp.ParseAlgorithm(form.Algorithm); err == nil {
			params, err = params.Normalize()
		}
	}
	if err != nil {
		return nil, err
	}

	code, err := totp.Generate(params, s.now())
	if err != nil {
		return nil, err
	}
	uri, err := totp.GetTOTPURI(params)
	if err != nil {
		return nil, err
	}
	qr, err := qrcode.GenerateBase64Image(uri, qrCodeSize)
	if err != nil {
		return nil, err
	}

	form.Algorithm = string(params.Algorithm)
	form.Digits = params.Digits
	form.Period = params.Period
	if form.Source == views.SourceURI {
		form.Secret = params.Secret
	} else {
		form.URI = uri
	}

	return &views.Result{
		Code:      code.Value,
		Counter:   code.Counter,
		Remaining: int(code.Remaining.Seconds()),
		Period:    params.Period,
		Digits:    params.Digits,
		Algorithm: string(params.Algorithm),
		Secret:    params.Secret,
		URI:       uri,
		QRCode:    qr,
	}, nil
}

// errorKey maps a generation error to the message shown to the user.
func errorKey(err error) string {
	switch {
	case errors.Is(err, totp.ErrSecretRequired):
		return locales.KeySecretRequired
	case errors.Is(err, totp.ErrURIRequired):
		return locales.KeyURIRequired
	case errors.Is(err, totp.ErrInvalidType):
		return locales.KeyInvalidType
	default:
		return locales.KeyCreateFailed
	}
}
