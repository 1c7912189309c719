package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiboux/totp-online/core/server"
)

func TestNew(t *testing.T) {
	t.Run("creates server from default config", func(t *testing.T) {
		srv, err := server.New(server.DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, srv)
		assert.Nil(t, srv.Addr())
	})

	t.Run("fails without address", func(t *testing.T) {
		_, err := server.New(server.Config{ReadTimeout: time.Second})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})
}

func waitForAddr(t *testing.T, srv *server.Server) string {
	t.Helper()
	require.Eventually(t, func() bool { return srv.Addr() != nil }, 2*time.Second, 10*time.Millisecond)
	return srv.Addr().String()
}

func TestRun(t *testing.T) {
	t.Run("serves until context is canceled", func(t *testing.T) {
		srv, err := server.New(server.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second})
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx, handler) }()

		addr := waitForAddr(t, srv)
		resp, err := http.Get("http://" + addr + "/")
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, "ok", string(body))

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("rejects second start", func(t *testing.T) {
		srv, err := server.New(server.Config{Addr: "127.0.0.1:0"})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = srv.Start(ctx, http.NotFoundHandler()) }()
		waitForAddr(t, srv)

		err = srv.Start(ctx, http.NotFoundHandler())
		assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)
		assert.NoError(t, srv.Stop())
	})

	t.Run("reports listen errors", func(t *testing.T) {
		srv, err := server.New(server.Config{Addr: "256.0.0.1:bad"})
		require.NoError(t, err)
		err = srv.Run(context.Background(), http.NotFoundHandler())
		assert.ErrorIs(t, err, server.ErrHTTPServer)
	})

	t.Run("canceled context never leaves a listener", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := ln.Addr().String()
		require.NoError(t, ln.Close())

		srv, err := server.New(server.Config{Addr: addr, ShutdownTimeout: time.Second})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx, http.NotFoundHandler()) }()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("run did not return")
		}

		assert.Nil(t, srv.Addr())
		for range 5 {
			conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
			if conn != nil {
				conn.Close()
			}
			require.Error(t, err, "address still accepts connections")
			time.Sleep(20 * time.Millisecond)
		}
	})

	t.Run("start with canceled context", func(t *testing.T) {
		srv, err := server.New(server.Config{Addr: "127.0.0.1:0"})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err = srv.Start(ctx, http.NotFoundHandler())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, srv.Addr())
		assert.NoError(t, srv.Stop())
	})

	t.Run("stop without start is a no-op", func(t *testing.T) {
		srv, err := server.New(server.DefaultConfig())
		require.NoError(t, err)
		assert.NoError(t, srv.Stop())
	})
}
