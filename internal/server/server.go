// Package server exposes the plot engine over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/chertila/chertila-go/internal/engine"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// XLSXContentType is the MIME type of exported workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxCommandBytes caps the request body.
const maxCommandBytes = 64 << 10

// Server serves plot requests.
type Server struct {
	engine  *engine.Engine
	log     *zap.Logger
	timeout time.Duration
	router  *gin.Engine
}

// New builds the router. timeout bounds each request; zero disables it.
func New(e *engine.Engine, log *zap.Logger, timeout time.Duration) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{engine: e, log: log, timeout: timeout}

	router := gin.New()
	router.Use(gin.Recovery(), CorrelationIDMiddleware(), LoggingMiddleware(log))

	router.GET("/healthz", s.health)
	api := router.Group("/api/v1")
	{
		api.POST("/plot", s.plot)
		api.POST("/export", s.export)
	}

	s.router = router
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server starting", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
