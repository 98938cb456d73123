// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/go-todo-lists/internal/adapters/http"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/views"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/seedfile"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/sessions"
	"github.com/jsamuelsen11/go-todo-lists/internal/app"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/health"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry, os.Stdout)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[sessions.Store](injector)
	registry.Register(store)
	if cfg.Seed.Source == config.SeedHTTP {
		registry.Register(do.MustInvoke[*acl.SeedClient](injector))
	}

	// SIGINT/SIGTERM cancel runCtx, which stops the server and the janitor.
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		do.MustInvoke[*app.Janitor](injector).Run(runCtx)
	}()

	serveErr := server.Run(runCtx)
	if serveErr != nil {
		logger.Error("http server stopped with error", slog.Any("error", serveErr))
	} else {
		logger.Info("shutdown signal received")
	}

	stop()
	<-janitorDone

	if err := store.Close(); err != nil {
		logger.Error("session store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	if serveErr != nil {
		return fmt.Errorf("server failed: %w", serveErr)
	}
	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (sessions.Store, error) {
		return sessions.Open(ctx, cfg.Session)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "seed-catalogue", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.SeedClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewSeedClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SeedSource, error) {
		switch cfg.Seed.Source {
		case config.SeedFile:
			return seedfile.New(cfg.Seed.Path), nil
		case config.SeedHTTP:
			return do.MustInvoke[*acl.SeedClient](i), nil
		default:
			return nil, nil
		}
	})

	do.Provide(injector, func(i do.Injector) (ports.ListService, error) {
		store := do.MustInvoke[sessions.Store](i)
		seeds := do.MustInvoke[ports.SeedSource](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewListService(store, seeds, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Janitor, error) {
		store := do.MustInvoke[sessions.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewJanitor(store, cfg.Session.SweepInterval, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*views.Renderer, error) {
		return views.New()
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PageHandler, error) {
		svc := do.MustInvoke[ports.ListService](i)
		renderer := do.MustInvoke[*views.Renderer](i)
		return handlers.NewPageHandler(svc, renderer), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ListHandler, error) {
		svc := do.MustInvoke[ports.ListService](i)
		return handlers.NewListHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		pages := do.MustInvoke[*handlers.PageHandler](i)
		routes := adapthttp.Handlers{
			Pages:  pages,
			Lists:  do.MustInvoke[*handlers.ListHandler](i),
			Health: do.MustInvoke[*handlers.HealthHandler](i),
			Static: do.MustInvoke[*views.Renderer](i).Static(),
			Session: middleware.Session(middleware.SessionOptions{
				CookieName: cfg.Session.CookieName,
				Secret:     []byte(cfg.Session.Secret),
				TTL:        cfg.Session.TTL,
				Secure:     cfg.Session.Secure,
			}),
		}

		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger, pages.Failure),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout, pages.Failure),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
