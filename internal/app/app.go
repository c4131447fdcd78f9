package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/a-h/templ"

	"github.com/felixbrock/handymatch/internal/components"
	"github.com/felixbrock/handymatch/internal/domain"
	"github.com/felixbrock/handymatch/internal/static"
)

type Catalog interface {
	Categories() []domain.CategoryInfo
	Featured() []domain.Pro
	Steps() []domain.Step
	FindPro(name string) (*domain.Pro, bool)
}

type ComponentBuilder struct {
	Home       func(components.HomeProps) templ.Component
	ComingSoon func(title string, path string) templ.Component
	Error      func(code int, title string, msg string) templ.Component
}

type App struct {
	Catalog          Catalog
	ComponentBuilder ComponentBuilder
	Config           Config
	Clock            func() time.Time

	limiter *RateLimiter
	metrics *Metrics
}

// Handler wires routes and middleware. It is safe to call once per App.
func (a *App) Handler() (http.Handler, error) {
	a.limiter = NewRateLimiter(a.Config.RateLimitRPS, a.Config.RateLimitBurst)
	a.metrics = NewMetrics()

	assets, err := static.FS()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	mux.Handle("GET /{$}", etag(ComponentHandler(a.index)))
	for path, title := range placeholderPages {
		mux.Handle("GET "+path, etag(a.placeholder(title)))
	}
	mux.Handle("GET /pros/{name}", etag(ComponentHandler(a.pro)))
	mux.Handle("GET "+staticPath, http.StripPrefix(staticPath, http.FileServerFS(assets)))
	mux.HandleFunc("GET "+healthPath, health)
	if a.Config.MetricsEnabled {
		mux.Handle("GET "+metricsPath, a.metrics.Handler())
	}
	mux.Handle("/", ComponentHandler(a.fallback))

	return chain(mux,
		requestID,
		accessLog,
		a.metrics.middleware,
		a.recoverer,
		a.rateLimit,
	), nil
}

// Start serves until SIGINT or SIGTERM, then drains in-flight requests.
func (a *App) Start() error {
	handler, err := a.Handler()
	if err != nil {
		return fmt.Errorf("build handler: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("app running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", a.Config.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("app exited")
	return nil
}
