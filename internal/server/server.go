// Package server exposes the tax engine over HTTP with gin.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/rpgo/incometax/internal/calculation"
	"github.com/rpgo/incometax/internal/config"
	_ "github.com/rpgo/incometax/internal/server/docs"
)

// Server wires the engine to HTTP routes. Handlers only validate, call the
// engine and format its output.
type Server struct {
	engine calculation.TaxCalculator
	logger *zap.Logger
	cfg    config.ServerConfig
}

// New creates a server. A nil logger is replaced with a no-op logger.
func New(engine calculation.TaxCalculator, logger *zap.Logger, cfg config.ServerConfig) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: engine, logger: logger, cfg: cfg}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	if s.cfg.Mode != "" {
		gin.SetMode(s.cfg.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CorrelationIDMiddleware())
	router.Use(LogRequest(s.logger))
	router.Use(configureCORS(s.cfg.CORSOrigins))

	s.InitializeRoutes(router)
	return router
}

// InitializeRoutes registers every endpoint on router
func (s *Server) InitializeRoutes(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", s.Health)

	v1 := router.Group("/api/v1")
	{
		tax := v1.Group("/tax")
		tax.POST("/calculate", s.Calculate)
		tax.POST("/compare", s.Compare)
		tax.GET("/slabs/:regime", s.Slabs)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("op", "serve"), zap.String("address", s.cfg.Address))
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

	s.logger.Info("shutting down server", zap.String("op", "serve"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
