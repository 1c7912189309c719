// Package logger provides structured logging utilities built on Go's standard slog package.
//
// New builds a *slog.Logger from options; the attribute helpers give common fields
// stable keys and return an empty attribute for nil or empty input, which slog drops.
//
// # Basic Usage
//
//	import "github.com/matiboux/totp-online/core/logger"
//
//	log := logger.New(
//		logger.WithProduction("totp-online"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//
//	log.Info("server starting",
//		logger.Component("http"),
//		logger.Addr(":8080"),
//		logger.Version(meta.Version),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level, stdout
//	logger.New(logger.WithDevelopment("totp-online"))
//
//	// Production: JSON format, info level, stdout
//	logger.New(logger.WithProduction("totp-online"))
//
// # Context-Aware Logging
//
// Extractors add request-scoped attributes to records logged with a context:
//
//	log := logger.New(
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			id, ok := ctx.Value(requestIDKey{}).(string)
//			return logger.RequestID(id), ok
//		}),
//	)
//
//	log.InfoContext(ctx, "code generated")
//
// # Testing
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
package logger
