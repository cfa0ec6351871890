// Package api exposes the engine's probe and operational endpoints over HTTP.
package api

import (
	"net/http"
	"time"

	"aiengine.app/config"
	"aiengine.app/errors"
	"aiengine.app/health"
	"aiengine.app/logging"
	"aiengine.app/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HealthService is the probe aggregation contract the server exposes.
type HealthService interface {
	Status() health.HealthResponse
	Liveness() health.LivenessResponse
	Readiness() health.ReadinessResponse
}

// Server represents the HTTP server and API handler
type Server struct {
	router        *gin.Engine
	config        *config.Config
	logger        *logging.Logger
	healthService HealthService
	probeMetrics  *metrics.ProbeMetrics
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        *config.Config
	Logger        *logging.Logger
	HealthService HealthService
	ProbeMetrics  *metrics.ProbeMetrics
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Config == nil {
		return errors.NewValidationError("config is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	if opts.HealthService == nil {
		return errors.NewValidationError("health service is required")
	}
	if opts.ProbeMetrics == nil {
		return errors.NewValidationError("probe metrics is required")
	}
	return nil
}

// NewServer creates and configures a new HTTP server
func NewServer(opts ServerOptions) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if !opts.Config.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	server := &Server{
		router:        router,
		config:        opts.Config,
		logger:        opts.Logger,
		healthService: opts.HealthService,
		probeMetrics:  opts.ProbeMetrics,
	}

	router.Use(server.requestIDMiddleware())
	router.Use(server.requestLogMiddleware())
	router.Use(server.recoveryMiddleware())

	server.setupRoutes()
	return server, nil
}

func (s *Server) setupRoutes() {
	healthGroup := s.router.Group("/health")
	{
		healthGroup.GET("", s.healthCheck)
		healthGroup.GET("/live", s.livenessProbe)
		healthGroup.GET("/ready", s.readinessProbe)
	}

	s.router.GET("/", s.root)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(s.config.Server.Address())
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// healthCheck handles GET /health requests. Always 200 in this version.
func (s *Server) healthCheck(c *gin.Context) {
	start := time.Now()
	resp := s.healthService.Status()

	s.probeMetrics.RecordLatency("health", time.Since(start).Seconds())
	s.probeMetrics.RecordProbe("health", resp.Status)

	c.JSON(http.StatusOK, resp)
}

// livenessProbe handles GET /health/live requests. Always 200: the ability
// to execute this handler is itself the signal.
func (s *Server) livenessProbe(c *gin.Context) {
	resp := s.healthService.Liveness()

	s.probeMetrics.RecordProbe("liveness", resp.Status)

	c.JSON(http.StatusOK, resp)
}

// readinessProbe handles GET /health/ready requests. Responds 503 when any
// check fails so orchestrators stop routing traffic without killing the
// process.
func (s *Server) readinessProbe(c *gin.Context) {
	start := time.Now()
	resp := s.healthService.Readiness()

	s.probeMetrics.RecordLatency("readiness", time.Since(start).Seconds())
	s.probeMetrics.RecordProbe("readiness", resp.Status)
	s.probeMetrics.RecordReadyState(resp.Ready())

	statusCode := http.StatusOK
	if !resp.Ready() {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, resp)
}

// root handles GET / requests with basic service info
func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": s.config.App.Name,
		"version": s.config.App.Version,
		"status":  "running",
	})
}

// requestLogMiddleware logs each completed request at debug level.
func (s *Server) requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Debug("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
	}
}
