package web

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/matiboux/totp-online/core/i18n"
	"github.com/matiboux/totp-online/core/logger"
	"github.com/matiboux/totp-online/middleware"
)

const maxBodySize = "16K"

func (s *Server) setupMiddleware() {
	e := s.echo

	e.HTTPErrorHandler = s.httpErrorHandler

	e.Use(middleware.RequestID())

	// Only the path is logged: query strings and bodies may hold secrets.
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURIPath:   true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			attrs := []slog.Attr{
				logger.Method(v.Method),
				logger.Path(v.URIPath),
				logger.StatusCode(v.Status),
				logger.Latency(v.Latency),
				logger.ClientIP(v.RemoteIP),
				logger.UserAgent(v.UserAgent),
			}
			if v.Error != nil {
				attrs = append(attrs, logger.Error(v.Error))
			}
			s.logger.LogAttrs(c.Request().Context(), level, "http request", attrs...)
			return nil
		},
	}))

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			s.logger.ErrorContext(c.Request().Context(), "panic recovered",
				logger.Error(err),
				logger.Key("stack", string(stack)),
			)
			return err
		},
	}))

	e.Use(echomw.BodyLimit(maxBodySize))

	e.Use(middleware.SecurityHeadersWithConfig(s.security))

	e.Use(cacheControlMiddleware)

	e.Use(middleware.I18nWithConfig(middleware.I18nConfig{
		I18n:      s.i18n,
		Namespace: s.namespace,
		Skip: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
	}))
}

func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch c.Request().URL.Path {
		case "/healthz":
			c.Response().Header().Set("Cache-Control", "no-cache")
		case "/site.json":
			c.Response().Header().Set("Cache-Control", "public, max-age=3600")
		default:
			c.Response().Header().Set("Cache-Control", "no-store")
		}
		return next(c)
	}
}

// translator returns the request translator, or one for the default language.
func (s *Server) translator(c echo.Context) *i18n.Translator {
	if tr, ok := middleware.GetTranslator(c.Request().Context()); ok {
		return tr
	}
	return i18n.NewTranslator(s.i18n, s.i18n.DefaultLanguage(), s.namespace)
}
