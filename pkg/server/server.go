package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/candigraph/candigraph/pkg/config"
	"github.com/candigraph/candigraph/pkg/driver"
	"github.com/candigraph/candigraph/pkg/search"
	"github.com/candigraph/candigraph/pkg/server/handlers"
)

// Server represents the HTTP server
type Server struct {
	config  *config.Config
	router  *gin.Engine
	service *search.Service
	pinger  driver.Pinger
	logger  *slog.Logger
	server  *http.Server
}

// New creates a new server instance. The pinger feeds the readiness probe
// and may be nil.
func New(cfg *config.Config, service *search.Service, pinger driver.Pinger, logger *slog.Logger) *Server {
	return &Server{
		config:  cfg,
		service: service,
		pinger:  pinger,
		logger:  logger,
	}
}

// Setup sets up the server routes and middleware
func (s *Server) Setup() {
	// Set gin mode
	gin.SetMode(s.config.Server.Mode)

	// Create router
	s.router = gin.New()

	// Add middleware
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())
	s.router.Use(requestIDMiddleware())

	// Setup routes
	s.setupRoutes()

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
}

// Router exposes the configured gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes sets up all the routes
func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.pinger)
	searchHandler := handlers.NewSearchHandler(s.service)

	// Health endpoints
	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/ready", healthHandler.ReadinessCheck)
	s.router.GET("/live", healthHandler.LivenessCheck)
	s.router.GET("/health/detailed", healthHandler.DetailedHealthCheck)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		candidates := v1.Group("/search/candidates")
		{
			candidates.GET("", searchHandler.SearchCandidates)
			candidates.POST("", searchHandler.SearchCandidates)
			candidates.GET("/:candidate_id", searchHandler.GetCandidateInfo)
			candidates.GET("/:candidate_id/education", searchHandler.GetEducationInfo)
			candidates.GET("/:candidate_id/exams", searchHandler.GetExamsInfo)
			candidates.GET("/:candidate_id/achievements", searchHandler.GetAchievementsInfo)
		}
	}
}

// Start starts the server
func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping server")
	return s.server.Shutdown(ctx)
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware tags every request with an ID, honoring one supplied
// by an upstream proxy.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
