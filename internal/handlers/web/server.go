package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dicestats/internal/services/messaging"
	"github.com/KirkDiggler/dicestats/internal/services/simulation"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 10 * time.Second

// Config holds the configuration for the dashboard server
type Config struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// DefaultLanguage is used when neither ?lang= nor Accept-Language match
	DefaultLanguage language.Tag

	SimulationService simulation.Service
	MessagingService  messaging.Service
	Logger            *slog.Logger
}

// Server serves the dice statistics dashboard
type Server struct {
	config     *Config
	router     *gin.Engine
	simulation simulation.Service
	messaging  messaging.Service
	logger     *slog.Logger
}

// New creates the dashboard server and registers its routes
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SimulationService == nil {
		return nil, errors.New("simulation service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		config:     cfg,
		router:     router,
		simulation: cfg.SimulationService,
		messaging:  cfg.MessagingService,
		logger:     logger.With("component", "web"),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/simulate", s.handleSimulate)
	s.router.GET("/api/simulate", s.handleAPISimulate)
	s.router.GET("/api/theory", s.handleAPITheory)
	s.router.GET("/healthz", s.handleHealth)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", "addr", s.config.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down dashboard: %w", err)
	}
	return nil
}

// requestLogger logs one line per request through slog
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
