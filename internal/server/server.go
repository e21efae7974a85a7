package server

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/alkime/postgen/internal/config"
	"github.com/alkime/postgen/internal/content"
	"github.com/alkime/postgen/internal/metrics"
	"github.com/alkime/postgen/internal/session"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Generator produces a batch of scheduled posts.
type Generator interface {
	GenerateBatch(ctx context.Context, batch content.Batch) []content.Post
}

// Server represents the HTTP server
type Server struct {
	config    *config.Config
	logger    *slog.Logger
	router    *gin.Engine
	generator Generator
	store     session.Store
	metrics   *metrics.Metrics
	now       func() time.Time
}

// New creates a new Server instance
func New(
	cfg *config.Config,
	logger *slog.Logger,
	gen Generator,
	store session.Store,
	m *metrics.Metrics,
) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Configure proxy trust for production (Fly.io)
	if cfg.Env == config.EnvProduction {
		router.TrustedPlatform = gin.PlatformFlyIO
		logger.Debug("Configured trusted platform", "platform", "fly.io")
	}

	router.SetHTMLTemplate(template.Must(template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")))

	server := &Server{
		config:    cfg,
		logger:    logger,
		router:    router,
		generator: gen,
		store:     store,
		metrics:   m,
		now:       time.Now,
	}

	// Setup middleware and routes
	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.Use(static.Serve("/static", static.LocalFile(s.config.StaticDir, false)))

	s.router.GET("/", s.handleIndex)
	s.router.POST("/", s.handleSubmit)
	s.router.GET("/download-csv", s.handleDownloadCSV)
	s.router.GET("/health", s.handleHealth)

	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "postgen",
	})
}
