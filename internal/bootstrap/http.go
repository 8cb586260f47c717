package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	inkwell "github.com/inkwell-dev/inkwell"
	"github.com/inkwell-dev/inkwell/config"
	httpx "github.com/inkwell-dev/inkwell/internal/http"
	"github.com/inkwell-dev/inkwell/internal/observability/statsd"
)

const (
	httpReadTimeout     = 30 * time.Second
	httpWriteTimeout    = 30 * time.Second
	httpIdleTimeout     = 120 * time.Second
	httpShutdownTimeout = 10 * time.Second
)

// StartHTTPServer builds the full handler chain and starts the HTTP server.
// The returned server is already listening; errors from the listener are
// reported on errCh.
func StartHTTPServer(
	cfg *config.AppConfig,
	services *ServiceContainer,
	metrics statsd.Sink,
	logger *slog.Logger,
	errCh chan<- error,
) (*http.Server, error) {
	handler, err := buildHTTPHandler(cfg, services, metrics, logger)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}

	go startServer(server, logger, errCh)
	return server, nil
}

// buildHTTPHandler assembles the middleware chain around the router.
// Order: Recover -> Logging -> Metrics -> Router.
func buildHTTPHandler(
	cfg *config.AppConfig,
	services *ServiceContainer,
	metrics statsd.Sink,
	logger *slog.Logger,
) (http.Handler, error) {
	templateFS, staticFS, err := assetFilesystems(cfg.IsDev)
	if err != nil {
		return nil, err
	}

	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Auth:         services.Auth,
		Posts:        services.Posts,
		Comments:     services.Comments,
		Owner:        services.Owner,
		Contact:      services.Contact,
		Renderer:     renderer,
		StaticFS:     staticFS,
		CookieDomain: cfg.HTTP.CookieDomain,
		Logger:       logger,
	})

	handler := http.Handler(router)
	if metrics != nil {
		handler = httpx.Metrics(metrics)(handler)
	}
	handler = httpx.Logging(logger)(handler)
	handler = httpx.Recover(logger)(handler)
	return handler, nil
}

// assetFilesystems returns the template and static filesystems. Development
// mode reads from disk so template edits only need a restart, not a rebuild.
func assetFilesystems(isDev bool) (templates fs.FS, static fs.FS, err error) {
	if isDev {
		return os.DirFS(httpx.TemplatePathFromRoot), os.DirFS("web/static"), nil
	}
	templates, err = fs.Sub(inkwell.TemplateFS, "web/templates")
	if err != nil {
		return nil, nil, fmt.Errorf("template filesystem: %w", err)
	}
	static, err = fs.Sub(inkwell.StaticFS, "web/static")
	if err != nil {
		return nil, nil, fmt.Errorf("static filesystem: %w", err)
	}
	return templates, static, nil
}

func startServer(server *http.Server, logger *slog.Logger, errCh chan<- error) {
	logger.Info("http server listening", slog.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errCh <- err
	}
}

// ShutdownHTTPServer drains in-flight requests before returning.
func ShutdownHTTPServer(server *http.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
		return
	}
	logger.Info("http server stopped")
}
