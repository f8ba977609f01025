// Package server wires configuration, middleware, providers, and routes
// into a runnable HTTP server.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/TomasMT1104/Lab-Final-IA/internal/api/http"
	"github.com/TomasMT1104/Lab-Final-IA/internal/api/middleware"
	"github.com/TomasMT1104/Lab-Final-IA/internal/infrastructure/config"
	"github.com/TomasMT1104/Lab-Final-IA/internal/infrastructure/logging"
	"github.com/TomasMT1104/Lab-Final-IA/internal/infrastructure/monitoring"
	"github.com/TomasMT1104/Lab-Final-IA/internal/providers/calc"
	"github.com/TomasMT1104/Lab-Final-IA/internal/service"
)

// Server wraps the HTTP server and its dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	httpSrv  *http.Server
}

// New creates a server instance from configuration
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	registry := service.NewRegistry()
	if err := registry.Register(calc.NewProvider()); err != nil {
		return nil, err
	}
	logger.Info("service providers registered",
		zap.Any("stats", registry.Stats()))

	metrics := monitoring.NewMetrics()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/stats", handlers.Stats)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return &Server{
		router:   router,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
		httpSrv: &http.Server{
			Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
			Handler: router,
		},
	}, nil
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpSrv.Shutdown(ctx)
}
