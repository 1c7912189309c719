// Package web serves the TOTP Online page over HTTP.
package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/matiboux/totp-online/app/locales"
	"github.com/matiboux/totp-online/app/site"
	"github.com/matiboux/totp-online/core/i18n"
	"github.com/matiboux/totp-online/middleware"
)

// ErrMissingI18n is returned by New without an i18n instance.
var ErrMissingI18n = errors.New("web: i18n instance is required")

// Server holds the echo instance and the page dependencies.
type Server struct {
	echo      *echo.Echo
	i18n      *i18n.I18n
	site      site.Site
	logger    *slog.Logger
	namespace string
	security  middleware.SecurityHeadersConfig
	now       func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for requests and errors.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSecurityHeaders replaces the response security headers.
func WithSecurityHeaders(cfg middleware.SecurityHeadersConfig) Option {
	return func(s *Server) {
		s.security = cfg
	}
}

// WithClock replaces time.Now for code generation.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// New wires middleware and routes for the page described by meta.
func New(meta site.Site, tr *i18n.I18n, opts ...Option) (*Server, error) {
	if tr == nil {
		return nil, ErrMissingI18n
	}

	s := &Server{
		echo:      echo.New(),
		i18n:      tr,
		site:      meta,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		namespace: locales.Namespace,
		security:  middleware.PageSecurity,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) setupRoutes() {
	e := s.echo
	e.GET("/", s.handleIndex)
	e.POST("/", s.handleGenerate)
	e.GET("/healthz", s.handleHealth)
	e.GET("/site.json", s.handleSite)
}
