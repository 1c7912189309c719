// Package middleware provides echo middleware for the cross-cutting concerns of
// the web front end: request IDs, request language, and security headers.
//
// Every middleware follows the same shape: a Config struct with a Skip
// function, a default constructor, a WithConfig constructor, and a context
// helper for the value it stores.
//
//	e.Use(middleware.RequestID())
//	e.Use(middleware.SecurityHeaders())
//	e.Use(middleware.I18n(i18nInstance, "app"))
//
//	tr, ok := middleware.GetTranslator(c.Request().Context())
//
// Values live in the request context, so they are reachable from any
// context.Context derived from it, including slog records through LogRequestID.
package middleware
