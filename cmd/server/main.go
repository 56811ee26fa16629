package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rezkam/hostitask/internal/application/tasks"
	"github.com/rezkam/hostitask/internal/chat"
	"github.com/rezkam/hostitask/internal/config"
	httpServer "github.com/rezkam/hostitask/internal/infrastructure/http"
	"github.com/rezkam/hostitask/internal/infrastructure/http/handler"
	"github.com/rezkam/hostitask/internal/infrastructure/observability"
	"github.com/rezkam/hostitask/internal/infrastructure/persistence/memory"
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		// slog may not be configured yet if config failed.
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	otelCfg := observability.Config{
		Enabled:     cfg.Observability.OTelEnabled,
		ServiceName: cfg.Observability.ServiceName,
	}

	lp, logger, err := observability.InitLogger(ctx, otelCfg)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	slog.SetDefault(logger)

	tp, err := observability.InitTracerProvider(ctx, otelCfg)
	if err != nil {
		return fmt.Errorf("failed to init tracer provider: %w", err)
	}

	mp, err := observability.InitMeterProvider(ctx, otelCfg)
	if err != nil {
		return fmt.Errorf("failed to init meter provider: %w", err)
	}

	// Registered in start order; newCleanup runs them in reverse so the
	// logger outlives the providers that may log while flushing.
	cleanup := newCleanup(telemetryShutdownTimeout, lp, tp, mp)
	defer cleanup()

	var storeOpts []memory.Option
	if cfg.Task.SeedSampleTasks {
		storeOpts = append(storeOpts, memory.WithSeed(memory.SampleTasks()))
	}
	store := memory.NewStore(storeOpts...)

	taskService, err := tasks.NewService(store,
		tasks.WithTracerProvider(tp),
		tasks.WithMeterProvider(mp),
	)
	if err != nil {
		return fmt.Errorf("failed to create task service: %w", err)
	}

	hub := chat.NewHub(
		chat.WithReplyDelay(cfg.Chat.ReplyDelay),
		chat.WithCloseDelay(cfg.Chat.CloseDelay),
		chat.WithMaxSessions(cfg.Chat.MaxSessions),
	)

	server := httpServer.NewAPIServer(handler.NewRouter(taskService, hub), httpServer.ServerConfig{
		Host:              cfg.HTTP.Host,
		Port:              cfg.HTTP.Port,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
	})

	slog.InfoContext(ctx, "starting hostitask service",
		"addr", server.Addr(),
		"seeded", cfg.Task.SeedSampleTasks,
		"otel_enabled", cfg.Observability.OTelEnabled,
	)

	errResult := make(chan error, 1)
	go func() {
		errResult <- server.Start()
	}()

	select {
	case <-ctx.Done():
		slog.InfoContext(ctx, "shutting down")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				slog.WarnContext(shutdownCtx, "http server shutdown timed out", "error", err)
				return nil
			}
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
		slog.InfoContext(shutdownCtx, "http server shutdown complete")
		return nil
	case err := <-errResult:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	}
}
