package http

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	mw "github.com/rezkam/hostitask/internal/infrastructure/http/middleware"
	"github.com/rezkam/hostitask/internal/infrastructure/http/response"
)

// Fallbacks for ServerConfig fields left at zero. Host has none: empty
// listens on every interface.
const (
	DefaultPort              = "8081"
	DefaultReadTimeout       = 15 * time.Second
	DefaultWriteTimeout      = 15 * time.Second
	DefaultIdleTimeout       = 60 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultMaxHeaderBytes    = 1 << 20
	DefaultMaxBodyBytes      = 1 << 20
)

// ServerConfig tunes the listener and its limits.
// Non-positive timeouts and sizes fall back to the Default* values.
type ServerConfig struct {
	Host              string
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	MaxHeaderBytes    int
	MaxBodyBytes      int64 // request bodies above this get 413
}

func (cfg ServerConfig) withDefaults() ServerConfig {
	cfg.Port = cmp.Or(cfg.Port, DefaultPort)
	cfg.ReadTimeout = positiveOr(cfg.ReadTimeout, DefaultReadTimeout)
	cfg.WriteTimeout = positiveOr(cfg.WriteTimeout, DefaultWriteTimeout)
	cfg.IdleTimeout = positiveOr(cfg.IdleTimeout, DefaultIdleTimeout)
	cfg.ReadHeaderTimeout = positiveOr(cfg.ReadHeaderTimeout, DefaultReadHeaderTimeout)
	cfg.MaxHeaderBytes = positiveOr(cfg.MaxHeaderBytes, DefaultMaxHeaderBytes)
	cfg.MaxBodyBytes = positiveOr(cfg.MaxBodyBytes, DefaultMaxBodyBytes)
	return cfg
}

func positiveOr[T ~int | ~int64](v, fallback T) T {
	if v > 0 {
		return v
	}
	return fallback
}

// APIServer serves the task API under /api and a health check at /health.
type APIServer struct {
	srv *http.Server
}

// NewAPIServer builds the server around api. Every request passes through
// otelhttp, then chi's request id, real IP, access log and panic recovery,
// then the body size limit.
func NewAPIServer(api http.Handler, cfg ServerConfig) *APIServer {
	cfg = cfg.withDefaults()

	return &APIServer{srv: &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           otelhttp.NewHandler(newRootRouter(api, cfg.MaxBodyBytes), "hostitask.http"),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}}
}

func newRootRouter(api http.Handler, maxBodyBytes int64) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		mw.MaxBodyBytes(maxBodyBytes),
	)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.OK(w, map[string]string{"status": "ok"})
	})
	r.Mount("/api", api)

	return r
}

// Start listens until the server fails or is shut down.
// A graceful Shutdown makes it return nil.
func (s *APIServer) Start() error {
	slog.Info("http server listening", "addr", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Addr is the host:port the server listens on.
func (s *APIServer) Addr() string {
	return s.srv.Addr
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *APIServer) Shutdown(ctx context.Context) error {
	slog.InfoContext(ctx, "http server shutting down", "addr", s.srv.Addr)
	return s.srv.Shutdown(ctx)
}

// Handler exposes the full middleware chain for in-process tests.
func (s *APIServer) Handler() http.Handler {
	return s.srv.Handler
}
