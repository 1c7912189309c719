// Package server runs an http.Handler on a configured address with production
// timeouts and graceful shutdown.
//
// # Basic Usage
//
//	cfg := server.DefaultConfig()
//	srv, err := server.New(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	// Blocks until ctx is canceled, then drains in-flight requests
//	// for at most cfg.ShutdownTimeout.
//	if err := srv.Run(ctx, handler); err != nil {
//		return err
//	}
//
// # Configuration
//
// Config is loaded from the environment with core/config:
//
//	HTTP_ADDR              listen address (default ":8080")
//	HTTP_READ_TIMEOUT      default 15s
//	HTTP_WRITE_TIMEOUT     default 15s
//	HTTP_IDLE_TIMEOUT      default 60s
//	HTTP_SHUTDOWN_TIMEOUT  default 30s
//	HTTP_MAX_HEADER_BYTES  default 1 MiB
//
// Start binds the listener before returning control to the serve loop, so
// Addr reports the actual port when the address uses port 0.
package server
