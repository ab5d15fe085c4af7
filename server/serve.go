package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServeStdio runs the server over stdio.
// Blocks until stdin is closed or the context is cancelled.
func ServeStdio(ctx context.Context, srv *mcp.Server) error {
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns the streamable HTTP handler for the server.
func HTTPHandler(srv *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return srv
	}, nil)
}

// newHTTPServer builds the http.Server for the streamable transport.
// No WriteTimeout: the transport holds SSE response streams open
// indefinitely for server-to-client messages, and a write deadline would
// sever them.
func newHTTPServer(srv *mcp.Server, addr string) *http.Server {
	return &http.Server{
		Addr:        addr,
		Handler:     HTTPHandler(srv),
		ReadTimeout: 30 * time.Second,
	}
}

// ServeHTTP listens on addr and serves the streamable HTTP transport.
// Blocks until the context is cancelled, then shuts down gracefully.
func ServeHTTP(ctx context.Context, srv *mcp.Server, addr string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	httpSrv := newHTTPServer(srv, addr)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
