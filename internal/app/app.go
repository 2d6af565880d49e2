package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"manganovelsfeed/internal/config"
	"manganovelsfeed/internal/fetch"
	"manganovelsfeed/internal/logging"
	"manganovelsfeed/internal/provider"
	"manganovelsfeed/internal/server"
)

// Application wires config to the provider registry and the HTTP boundary.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	server *server.Server
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	client := fetch.NewClient(&http.Client{Timeout: cfg.Upstream.Timeout()}, cfg.Upstream.UserAgent)
	registry := NewRegistry(client, baseLogger)
	srv := server.New(registry, baseLogger.With("component", "server"), cfg.Cache.SMaxAgeSeconds)

	return &Application{cfg: cfg, logger: baseLogger, server: srv}
}

// NewRegistry declares the compiled-in provider table. Keys are the upstream
// domains; strategies are built lazily on first request.
func NewRegistry(client *fetch.Client, logger *slog.Logger) *provider.Registry {
	registry := provider.NewRegistry()
	registry.Register("comic-walker.com", func() provider.Strategy {
		return provider.NewComicWalker(client, logger.With("component", "provider.comic-walker"))
	})
	registry.Register("firecross.jp", func() provider.Strategy {
		return provider.NewFireCross(client, logger.With("component", "provider.firecross"))
	})
	registry.Register("ganganonline.com", func() provider.Strategy {
		return provider.NewGanganOnline(client, logger.With("component", "provider.ganganonline"))
	})
	registry.Register("storia.takeshobo.co.jp", func() provider.Strategy {
		return provider.NewStoria(client, logger.With("component", "provider.storia"))
	})
	registry.Register("web-ace.jp", func() provider.Strategy {
		return provider.NewWebAce()
	})
	registry.Register("urasunday.com", func() provider.Strategy {
		return provider.NewUraSunday()
	})
	return registry
}

// Run serves HTTP until the context is canceled.
func (a *Application) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           a.server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", a.cfg.Server.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
