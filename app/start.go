package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Start serves the API, and metrics when an address is configured, until
// ctx is cancelled or a listener fails.
func (app *App) Start(ctx context.Context) error {
	logger := app.Observability.Logger
	errCh := make(chan error, 2)

	srv := &http.Server{
		Addr:              app.Config.HTTP.Addr,
		Handler:           app.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go serve(srv, "api", errCh)
	logger.InfoContext(ctx, "API server started", slog.String("addr", srv.Addr))

	var metricsSrv *http.Server
	if addr := app.Config.Observability.MetricsAddress; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", app.Observability.Metrics.Handler())
		metricsSrv = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: readHeaderTimeout}
		go serve(metricsSrv, "metrics", errCh)
		logger.InfoContext(ctx, "Metrics server started", slog.String("addr", addr))
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "Shutting down servers")
	case runErr = <-errCh:
		logger.ErrorContext(ctx, "Server failed", slog.String("error", runErr.Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	for _, s := range []*http.Server{srv, metricsSrv} {
		if s == nil {
			continue
		}
		if err := s.Shutdown(shutdownCtx); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("shutdown %s: %w", s.Addr, err))
		}
	}
	return runErr
}

func serve(srv *http.Server, name string, errCh chan<- error) {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errCh <- fmt.Errorf("%s server: %w", name, err)
	}
}
