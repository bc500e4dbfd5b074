package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Run serves until the context is cancelled, then shuts down gracefully so
// in-flight requests finish.
func Run(ctx context.Context, host string, port int, handler http.Handler) error {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	srv := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
