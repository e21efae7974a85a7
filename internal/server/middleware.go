package server

import (
	"log/slog"
	"strings"

	"github.com/alkime/postgen/internal/config"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// setupSecurityMiddleware configures and applies security middleware to the router
func setupSecurityMiddleware(router *gin.Engine, cfg *config.Config, logger *slog.Logger) {
	production := cfg.Env == config.EnvProduction

	// HSTS for production only
	stsSeconds := int64(0)
	if production {
		stsSeconds = int64(cfg.HSTSMaxAge)
	}

	secureMiddleware := secure.New(secure.Config{
		STSSeconds:            stsSeconds,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: config.BuildCSP(cfg.CSPMode),
	})
	router.Use(secureMiddleware, noStore())

	logger.Debug("Configured security middleware",
		"hsts_enabled", production,
		"csp_mode", cfg.CSPMode,
	)
}

// noStore keeps session pages and exports out of shared caches. Static
// assets stay cacheable.
func noStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/static/") {
			c.Header("Cache-Control", "no-store")
		}
		c.Next()
	}
}
