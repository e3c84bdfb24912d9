// Package api implements the HTTP API for running and retrieving
// company profiles.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/goprofile/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Config holds the HTTP server settings.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	RunTimeout   time.Duration
	Debug        bool
}

// WithDefaults fills in zero-value settings.
func (c Config) WithDefaults() Config {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 3 * time.Minute
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = time.Minute
	}
	if c.RunTimeout == 0 {
		c.RunTimeout = 2 * time.Minute
	}
	return c
}

// Server serves the profile API.
type Server struct {
	server *http.Server
	log    logger.Interface
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(cfg Config, handler *ProfileHandler, log logger.Interface) *Server {
	cfg = cfg.WithDefaults()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(log))

	registerRoutes(router, handler)

	return &Server{
		server: &http.Server{
			Addr:         cfg.Address,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		log: log,
	}
}

func registerRoutes(router *gin.Engine, handler *ProfileHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.POST("/profiles", handler.CreateProfile)
	v1.GET("/profiles", handler.ListProfiles)
	v1.GET("/profiles/:id", handler.GetProfile)
}

// Start runs the server until the context is cancelled, then shuts it
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("Starting API server", "address", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// loggingMiddleware logs each request with method, path, status and
// duration.
func loggingMiddleware(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
