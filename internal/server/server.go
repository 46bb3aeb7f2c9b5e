// Package server exposes the conversion service over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chemkit/inchi-go/internal/service"
	"github.com/chemkit/inchi-go/pkg/inchi/logging"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// Server routes HTTP requests to a service.Service.
type Server struct {
	Service *service.Service
	Engine  *gin.Engine

	log logging.Logger
}

// New builds the gin engine and registers all routes.
func New(svc *service.Service, log logging.Logger) *Server {
	if log == nil {
		log = logging.New(nil)
	}
	e := gin.New()
	s := &Server{Service: svc, Engine: e, log: log}
	e.Use(gin.Recovery())
	e.Use(s.requestIDMiddleware())
	e.Use(s.accessLogMiddleware())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.Engine.GET("/healthz", s.handleHealth)
	v1 := s.Engine.Group("/v1")
	{
		v1.GET("/version", s.handleVersion)
		v1.POST("/inchi", s.handleInChI)
		v1.POST("/key", s.handleKey)
		v1.POST("/structure", s.handleStructure)
	}
}

func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		args := []any{
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			s.log.Error(c.Request.Context(), "request", args...)
			return
		}
		s.log.Info(c.Request.Context(), "request", args...)
	}
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info(context.Background(), "shutting down server")
	ctxShut, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShut); err != nil {
		return err
	}
	s.log.Info(context.Background(), "server stopped")
	return nil
}
