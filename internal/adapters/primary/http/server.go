package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

// Server exposes slide extraction over HTTP
type Server struct {
	server    *http.Server
	presenter ports.PresentationService
	config    entities.ServerConfig
	limiter   *rateLimiter
	metrics   *Metrics // nil when metrics are disabled
	logger    *slog.Logger
	mu        sync.RWMutex
	running   bool
}

// NewServer creates a new HTTP server. A nil logger uses slog.Default().
func NewServer(presenter ports.PresentationService, config entities.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		presenter: presenter,
		config:    config,
		limiter:   newRateLimiter(config.GetRateLimit(), time.Minute),
		logger:    logger.With(slog.String("component", "http")),
	}
	if config.Metrics {
		s.metrics = NewMetrics()
	}
	return s
}

// Metrics returns the server's collectors, or nil when metrics are disabled
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// ObserveCache exports the extraction cache's statistics when metrics are enabled.
// Call it at most once, before Start.
func (s *Server) ObserveCache(cache ports.ExtractionCache) {
	if s.metrics != nil {
		s.metrics.RegisterCache(cache)
	}
}

// Handler returns the fully wrapped router
func (s *Server) Handler() http.Handler {
	router := s.setupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   s.config.GetCORSOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Accept", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	})

	// Outermost first: request id -> recovery -> logging -> cors -> security -> rate limit -> router
	var handler http.Handler = router
	handler = rateLimitMiddleware(handler, s.limiter, s.writeError)
	handler = securityHeadersMiddleware(handler)
	handler = c.Handler(handler)
	handler = loggingMiddleware(handler, s.logger)
	handler = recoveryMiddleware(handler, s.logger, s.writeError)
	handler = requestIDMiddleware(handler)

	return handler
}

// Start binds the listener and serves in the background
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("server already running")
	}

	listener, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.config.Address(), err)
	}

	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.config.GetReadTimeout(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.config.GetWriteTimeout(),
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	s.running = true

	s.logger.Info("HTTP server starting", slog.String("address", listener.Addr().String()))

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", slog.String("error", err.Error()))
		}
	}()

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return errors.New("server not running")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.GetShutdownTimeout())
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.running = false
	s.logger.Info("HTTP server stopped")
	return nil
}

// IsRunning returns whether the server is currently running
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet, http.MethodHead)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
		r.Use(func(next http.Handler) http.Handler { return metricsMiddleware(next, s.metrics) })
	}

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/slides", s.handleSlides).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
