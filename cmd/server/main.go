package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/alkime/postgen/internal/config"
	"github.com/alkime/postgen/internal/content"
	"github.com/alkime/postgen/internal/keyring"
	"github.com/alkime/postgen/internal/llm"
	applog "github.com/alkime/postgen/internal/logger"
	"github.com/alkime/postgen/internal/metrics"
	"github.com/alkime/postgen/internal/server"
	"github.com/alkime/postgen/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logger := applog.SetupLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	// Secrets missing from the environment fall back to the keychain
	keyring.FillSecrets(cfg, logger)

	logger.Info("Starting postgen server",
		"env", cfg.Env,
		"port", cfg.Port,
		"provider", cfg.Provider,
		"session_store", cfg.Session.Store,
	)

	if cfg.Provider == config.ProviderAzure && !cfg.Azure.Complete() {
		logger.Warn("Azure OpenAI credentials incomplete, posts will be empty",
			"missing", cfg.Azure.Missing(),
		)
	}

	m := metrics.New()

	completer, err := llm.New(cfg, m)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}

	store, err := session.Open(context.Background(), cfg.Session, logger)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close session store", "error", err)
		}
	}()

	gen := content.NewGenerator(completer, m, logger)

	return server.Run(server.New(cfg, logger, gen, store, m))
}
