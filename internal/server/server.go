package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/omnicalc/internal/calc"
	"github.com/agbru/omnicalc/internal/config"
	apperrors "github.com/agbru/omnicalc/internal/errors"
	"github.com/agbru/omnicalc/internal/logging"
)

// Server represents the HTTP server for the calculator API.
// It wraps the standard http.Server and adds application-specific
// configuration and graceful shutdown capabilities.
type Server struct {
	registry       *calc.Registry
	evaluator      *calc.Evaluator
	cfg            config.AppConfig
	httpServer     *http.Server
	logger         logging.Logger
	rateLimiter    *RateLimiter
	securityConfig SecurityConfig
	metrics        *Metrics
	timeouts       Timeouts
}

// NewServer creates a new Server instance with the given operation registry,
// evaluator, and configuration. It initializes the HTTP server with timeouts
// and a request multiplexer.
//
// Parameters:
//   - registry: The operation registry, used for listing and lookups.
//   - evaluator: The evaluator that executes operations.
//   - cfg: The application configuration (port, timeout).
//   - opts: Optional functional options for customizing the server (e.g., WithLogger).
//
// Returns:
//   - *Server: A pointer to the initialized Server.
func NewServer(registry *calc.Registry, evaluator *calc.Evaluator, cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		registry:       registry,
		evaluator:      evaluator,
		cfg:            cfg,
		logger:         logging.NewLogger(os.Stdout, "server"),
		securityConfig: DefaultSecurityConfig(),
		metrics:        NewMetrics(),
		timeouts:       DefaultServerTimeouts(),
	}

	// Apply any provided options
	for _, opt := range opts {
		opt(s)
	}

	// Create default rate limiter if not provided
	if s.rateLimiter == nil {
		s.rateLimiter = NewRateLimiter(DefaultRateLimiterConfig())
	}

	mux := http.NewServeMux()

	// Middleware chain: Security -> RateLimit -> Logging -> Metrics -> Handler
	mux.HandleFunc("/eval", s.wrapWithMiddleware(s.handleEval))
	mux.HandleFunc("/operations", s.wrapWithMiddleware(s.handleOperations))
	mux.HandleFunc("/health", s.wrapWithMiddleware(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrapWithMiddleware(s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}

	return s
}

// Handler returns the server's root handler, with the full middleware chain
// applied. Exposed for tests that drive the server through httptest.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// wrapWithMiddleware applies the full middleware chain to a handler.
func (s *Server) wrapWithMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	// Applied in reverse order so Security runs first
	wrapped := s.metricsMiddleware(handler)
	wrapped = s.loggingMiddleware(wrapped)
	wrapped = RateLimitMiddleware(s.rateLimiter, wrapped)
	wrapped = SecurityMiddleware(s.securityConfig, wrapped)
	return wrapped
}

// Start runs the HTTP server until the context is cancelled or the server
// fails. On cancellation the server is shut down gracefully within the
// configured shutdown timeout.
//
// Parameters:
//   - ctx: The context controlling the server lifetime (typically bound to
//     SIGINT/SIGTERM by the caller).
//
// Returns:
//   - error: An error if the server fails to start or shut down cleanly.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Printf("Starting server on %s\n", s.httpServer.Addr)
	s.logger.Printf("Operations: %v\n", s.registry.List())
	s.logger.Println("Available endpoints:")
	s.logger.Println("  GET /eval?op=<name>&a=<int>[&b=<int>]")
	s.logger.Println("  GET /operations")
	s.logger.Println("  GET /health")
	s.logger.Println("  GET /metrics")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.NewServerError("server failed to start", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Println("Shutdown signal received, initiating graceful shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return apperrors.NewServerError("failed to gracefully shutdown server", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.rateLimiter.Stop()
	s.logger.Println("Server stopped gracefully")
	return nil
}
