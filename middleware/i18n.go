package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/matiboux/totp-online/core/i18n"
)

// i18nTranslatorContextKey is used as a key for storing i18n translator in request context.
type i18nTranslatorContextKey struct{}

// I18nConfig configures the i18n middleware.
type I18nConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(c echo.Context) bool
	// I18n is the i18n instance to use for translations (required)
	I18n *i18n.I18n
	// LanguageExtractor defines how to extract the language from the request.
	// Default: the Param query or form value, then the Accept-Language header.
	LanguageExtractor func(c echo.Context) string
	// Namespace is the translation namespace to use (required)
	Namespace string
	// FallbackLanguage is the language to use if extraction fails
	// Default: uses I18n's default language
	FallbackLanguage string
	// Param names the query or form parameter carrying an explicit choice.
	// Default: "lang"
	Param string
}

// I18n creates an i18n middleware with default configuration.
func I18n(i18nInstance *i18n.I18n, namespace string) echo.MiddlewareFunc {
	return I18nWithConfig(I18nConfig{
		I18n:      i18nInstance,
		Namespace: namespace,
	})
}

// I18nWithConfig resolves the request language and stores a translator for it
// in the request context. The choice is never persisted: every request
// carries it again or falls back.
func I18nWithConfig(cfg I18nConfig) echo.MiddlewareFunc {
	if cfg.I18n == nil {
		panic("i18n middleware: i18n instance is required")
	}
	if cfg.Namespace == "" {
		panic("i18n middleware: namespace is required")
	}
	if cfg.FallbackLanguage == "" {
		cfg.FallbackLanguage = cfg.I18n.DefaultLanguage()
	}
	if cfg.Param == "" {
		cfg.Param = "lang"
	}

	if cfg.LanguageExtractor == nil {
		cfg.LanguageExtractor = func(c echo.Context) string {
			lang, ok := i18n.MatchLanguage(
				cfg.I18n.Languages(),
				c.FormValue(cfg.Param),
				c.Request().Header.Get("Accept-Language"),
			)
			if !ok {
				return cfg.FallbackLanguage
			}
			return lang
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skip != nil && cfg.Skip(c) {
				return next(c)
			}

			language := cfg.LanguageExtractor(c)
			if language == "" {
				language = cfg.FallbackLanguage
			}

			translator := i18n.NewTranslator(cfg.I18n, language, cfg.Namespace)

			ctx := context.WithValue(c.Request().Context(), i18nTranslatorContextKey{}, translator)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("Content-Language", language)
			c.Response().Header().Add(echo.HeaderVary, "Accept-Language")

			return next(c)
		}
	}
}

// GetTranslator retrieves the i18n translator from the context.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	translator, ok := ctx.Value(i18nTranslatorContextKey{}).(*i18n.Translator)
	return translator, ok
}
