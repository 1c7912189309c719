// Package app assembles the TOTP Online process: configuration, logger,
// locales, site metadata and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/matiboux/totp-online/app/locales"
	"github.com/matiboux/totp-online/app/site"
	"github.com/matiboux/totp-online/app/web"
	"github.com/matiboux/totp-online/core/config"
	"github.com/matiboux/totp-online/core/i18n"
	"github.com/matiboux/totp-online/core/logger"
	"github.com/matiboux/totp-online/core/server"
	"github.com/matiboux/totp-online/middleware"
)

type App struct {
	config Config
	build  site.Config
	site   site.Site
	i18n   *i18n.I18n
	web    *web.Server
	server *server.Server
	logger *slog.Logger
}

type AppOption func(*App) error

// NewApp loads the configuration and builds every component. A locale that
// does not match the key set fails here, before anything listens.
func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	app := &App{config: cfg}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = NewLogger(app.config)
	}

	app.site = site.New(app.config.Site.Or(app.build))

	if app.i18n == nil {
		tr, err := locales.New(i18n.WithMissingKeyHandler(func(lang, namespace, key string) {
			app.logger.Warn("missing translation",
				logger.Language(lang),
				logger.Namespace(namespace),
				logger.Key("key", key),
			)
		}))
		if err != nil {
			return nil, fmt.Errorf("load locales: %w", err)
		}
		app.i18n = tr
	}

	security := middleware.PageSecurity
	security.IsDevelopment = !app.config.IsProduction()

	w, err := web.New(app.site, app.i18n,
		web.WithLogger(app.logger),
		web.WithSecurityHeaders(security),
	)
	if err != nil {
		return nil, err
	}
	app.web = w

	if app.server == nil {
		s, err := server.New(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

// NewLogger builds the process logger for cfg.
func NewLogger(cfg Config) *slog.Logger {
	env := logger.WithDevelopment(cfg.AppName)
	if cfg.IsProduction() {
		env = logger.WithProduction(cfg.AppName)
	}
	return logger.New(
		env,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithContextExtractors(middleware.LogRequestID),
	)
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l *slog.Logger) AppOption {
	return func(app *App) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = l
		return nil
	}
}

// WithBuildInfo supplies metadata baked in at link time. Environment values
// take precedence over it.
func WithBuildInfo(build site.Config) AppOption {
	return func(app *App) error {
		app.build = build
		return nil
	}
}

// WithI18n replaces the locale registry.
func WithI18n(tr *i18n.I18n) AppOption {
	return func(app *App) error {
		if tr == nil {
			return errors.New("i18n cannot be nil")
		}
		app.i18n = tr
		return nil
	}
}

// WithServer replaces the HTTP server built from the configuration.
func WithServer(s *server.Server) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("server cannot be nil")
		}
		app.server = s
		return nil
	}
}

// Site returns the resolved metadata.
func (a *App) Site() site.Site {
	return a.site
}

// Logger returns the process logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "starting",
		logger.Version(a.site.Version),
		logger.Count("languages", len(a.i18n.Languages())),
	)
	return a.server.Run(ctx, a.web.Handler())
}
