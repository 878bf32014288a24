// Package api exposes the scale computation pipeline over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/clinical-scales-server/internal/domain"
	"github.com/clinical-scales-server/internal/service"
)

// BreakerMonitor reports the language-model circuit breaker states for the
// health endpoint. The resilient LLM client implements it.
type BreakerMonitor interface {
	BreakerStates() map[string]gobreaker.State
}

// Server represents the HTTP server
type Server struct {
	configManager domain.ConfigManager
	pipeline      *service.Pipeline
	catalog       domain.CatalogStore
	sessions      domain.SessionStore
	breakers      BreakerMonitor
	logger        *logrus.Logger
	router        *gin.Engine
	server        *http.Server
}

// NewServer creates a new HTTP server instance. breakers may be nil when no
// circuit breaker wraps the language model.
func NewServer(
	configManager domain.ConfigManager,
	pipeline *service.Pipeline,
	catalog domain.CatalogStore,
	sessions domain.SessionStore,
	breakers BreakerMonitor,
	logger *logrus.Logger,
) *Server {
	cfg := configManager.GetConfig()

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(requestLogMiddleware(logger))

	server := &Server{
		configManager: configManager,
		pipeline:      pipeline,
		catalog:       catalog,
		sessions:      sessions,
		breakers:      breakers,
		logger:        logger,
		router:        router,
	}

	server.setupRoutes()

	return server
}

// Start starts the HTTP server and blocks until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.WithField("addr", addr).Info("HTTP server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// Handler exposes the router, used by the tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/scales", s.handleListScales)
		v1.POST("/scales/compute", s.handleComputeScales)
		v1.POST("/scales/session", s.handleComputeScaleSession)
		v1.GET("/sessions/:session_id", s.handleGetSession)
	}
}

// computeRequest is the request body of POST /api/v1/scales/compute
type computeRequest struct {
	Scales       []string `json:"scales" binding:"required"`
	Conversation string   `json:"conversation" binding:"required"`
	Language     string   `json:"language"`
}

// sessionRequest is the request body of POST /api/v1/scales/session
type sessionRequest struct {
	Scales       []string              `json:"scales" binding:"required"`
	Conversation string                `json:"conversation" binding:"required"`
	Patient      domain.PatientContext `json:"patient_context"`
	SessionID    string                `json:"session_id" binding:"required"`
	Language     string                `json:"language"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	payload := gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"version":   "1.0.0",
	}
	if s.breakers != nil {
		states := make(map[string]string)
		for name, state := range s.breakers.BreakerStates() {
			states[name] = state.String()
		}
		payload["llm_breakers"] = states
	}
	c.JSON(http.StatusOK, payload)
}

// handleListScales returns the scale catalog
func (s *Server) handleListScales(c *gin.Context) {
	scales, err := s.catalog.ListScales(c.Request.Context())
	if err != nil {
		s.renderError(c, domain.NewPipelineError(domain.ErrCatalogError,
			"failed to list scales", err.Error(), requestID(c)))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scales": scales,
		"count":  len(scales),
	})
}

// handleComputeScales runs the stateless computation pipeline
func (s *Server) handleComputeScales(c *gin.Context) {
	var request computeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "request_id": requestID(c)})
		return
	}

	result, err := s.pipeline.ComputeScales(c.Request.Context(),
		request.Scales, request.Conversation, request.Language)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleComputeScaleSession runs the pipeline in session mode
func (s *Server) handleComputeScaleSession(c *gin.Context) {
	var request sessionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "request_id": requestID(c)})
		return
	}

	result, err := s.pipeline.ComputeScaleSession(c.Request.Context(),
		request.Scales, request.Conversation, request.Patient,
		request.SessionID, request.Language)
	if err != nil {
		// A synthesis failure still carries the computed scales; surface
		// them in the error body so the caller does not lose them.
		var pipelineErr *domain.PipelineError
		if result != nil && errors.As(err, &pipelineErr) {
			s.logger.WithFields(logrus.Fields{
				"code":       pipelineErr.Code,
				"request_id": requestID(c),
			}).WithError(err).Error("Session request failed after computation")
			c.JSON(http.StatusBadGateway, gin.H{
				"error":      pipelineErr.Message,
				"code":       pipelineErr.Code,
				"request_id": requestID(c),
				"result":     result,
			})
			return
		}
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleGetSession retrieves a persisted session bundle
func (s *Server) handleGetSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	record, err := s.sessions.GetScaleSession(c.Request.Context(), sessionID)
	if err != nil {
		s.renderError(c, domain.NewPipelineError(domain.ErrPersistence,
			"failed to load session", err.Error(), requestID(c)))
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      fmt.Sprintf("session %q not found", sessionID),
			"request_id": requestID(c),
		})
		return
	}
	c.JSON(http.StatusOK, record)
}

// renderError maps domain errors to HTTP status codes
func (s *Server) renderError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      validationErr.Message,
			"field":      validationErr.Field,
			"request_id": requestID(c),
		})
		return
	}

	var pipelineErr *domain.PipelineError
	if errors.As(err, &pipelineErr) {
		status := http.StatusInternalServerError
		switch pipelineErr.Code {
		case domain.ErrExtraction, domain.ErrSynthesis:
			status = http.StatusBadGateway
		case domain.ErrInvalidInput:
			status = http.StatusBadRequest
		}
		s.logger.WithFields(logrus.Fields{
			"code":       pipelineErr.Code,
			"request_id": requestID(c),
		}).WithError(err).Error("Request failed")
		c.JSON(status, gin.H{
			"error":      pipelineErr.Message,
			"code":       pipelineErr.Code,
			"request_id": requestID(c),
		})
		return
	}

	s.logger.WithError(err).Error("Unhandled request error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      "internal server error",
		"request_id": requestID(c),
	})
}

// requestID returns the request id set by the middleware
func requestID(c *gin.Context) string {
	return c.GetString("request_id")
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware adds a unique request ID to each request
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

// requestLogMiddleware logs one structured line per request
func requestLogMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
			"request_id": requestID(c),
		}).Info("Request handled")
	}
}
