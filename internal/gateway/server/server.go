package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
	"github.com/BrunoMiglioretto/Parser-Latex/internal/gateway/handler"
	"github.com/BrunoMiglioretto/Parser-Latex/internal/history"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/cache"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/health"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/logging"
)

// Server is the latexp HTTP gateway
type Server struct {
	httpServer *http.Server
	handler    *handler.Handler
	recorder   *history.Writer
	store      history.Store
	results    *cache.ResultCache
	health     *health.Registry
	logger     *logging.Logger
	config     Config
}

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Version      string

	// Engine options for parse requests
	Engine logic.Options

	// History store; nil disables parse history
	Store history.Store

	// Batching for async history writes
	HistoryBatchSize   int
	HistoryFlushPeriod time.Duration

	// Verdict cache for repeated formulas; zero TTL disables caching
	CacheTTL  time.Duration
	CacheSize int
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		Version:      "1.0.0",
		Engine:       logic.DefaultOptions(),
		CacheTTL:     5 * time.Minute,
		CacheSize:    10000,
	}
}

// New creates a new gateway server
func New(cfg Config) (*Server, error) {
	logger := logging.New("gateway-server")

	engine, err := logic.New(cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("failed to create formula engine: %w", err)
	}

	var recorder *history.Writer
	if cfg.Store != nil {
		writerCfg := history.DefaultWriterConfig()
		if cfg.HistoryBatchSize > 0 {
			writerCfg.BatchSize = cfg.HistoryBatchSize
		}
		if cfg.HistoryFlushPeriod > 0 {
			writerCfg.FlushPeriod = cfg.HistoryFlushPeriod
		}
		recorder = history.NewWriter(cfg.Store, writerCfg)
	}

	healthRegistry := health.NewRegistry("latexp", cfg.Version)
	healthRegistry.RegisterFunc("engine", func(ctx context.Context) health.CheckResult {
		if _, err := engine.Parse(`(\wedge (true) (false))`); err != nil {
			return health.CheckResult{
				Name:    "engine",
				Status:  health.StatusUnhealthy,
				Message: "Probe formula failed: " + err.Error(),
			}
		}
		return health.CheckResult{
			Name:    "engine",
			Status:  health.StatusHealthy,
			Message: "Formula engine is operational",
		}
	})
	if cfg.Store != nil {
		store := cfg.Store
		healthRegistry.RegisterFunc("history", func(ctx context.Context) health.CheckResult {
			if _, err := store.Stats(ctx); err != nil {
				return health.CheckResult{
					Name:    "history",
					Status:  health.StatusDegraded,
					Message: "History store unavailable: " + err.Error(),
				}
			}
			return health.CheckResult{
				Name:    "history",
				Status:  health.StatusHealthy,
				Message: "History store is reachable",
			}
		})
	}

	var results *cache.ResultCache
	if cfg.CacheTTL > 0 {
		results = cache.NewResultCache(cache.Config{
			MaxItems: cfg.CacheSize,
			TTL:      cfg.CacheTTL,
		})
	}

	h := handler.NewHandler(engine, cfg.Store, recorder, results, healthRegistry)
	wsHandler := handler.NewWebSocketHandler(engine, recorder)

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	mux.Handle("/", h)
	mux.Handle("/api/", h)
	mux.Handle("/api/v1/", h)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    h,
		recorder:   recorder,
		store:      cfg.Store,
		results:    results,
		health:     healthRegistry,
		logger:     logger,
		config:     cfg,
	}, nil
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting latexp gateway",
		"host", s.config.Host,
		"port", s.config.Port,
	)
	return s.httpServer.ListenAndServe()
}

// StartAsync starts the server in the background
func (s *Server) StartAsync() {
	s.logger.Info("Starting latexp gateway (async)",
		"host", s.config.Host,
		"port", s.config.Port,
	)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", "error", err)
		}
	}()
}

// Stop gracefully stops the server and flushes pending history writes
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping latexp gateway")

	if s.recorder != nil {
		if err := s.recorder.Close(); err != nil {
			s.logger.Warn("Error closing history recorder", "error", err)
		}
	}
	if s.results != nil {
		s.results.Close()
	}

	return s.httpServer.Shutdown(ctx)
}

// Address returns the server address
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Handler returns the root HTTP handler, wrapped with request logging
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
