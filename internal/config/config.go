package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"

	// ProviderAzure selects the Azure OpenAI chat completions deployment.
	ProviderAzure = "azure"
	// ProviderAnthropic selects the Anthropic Messages API.
	ProviderAnthropic = "anthropic"

	// StoreMemory keeps session batches in process memory.
	StoreMemory = "memory"
	// StoreRedis keeps session batches in Redis.
	StoreRedis = "redis"
	// StoreSQLite keeps session batches in a SQLite file.
	StoreSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Env       string `envconfig:"ENV" default:"development"`
	Port      string `envconfig:"PORT" default:"8080"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./web/static"`

	// Security settings
	HSTSMaxAge int    `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode    string `envconfig:"CSP_MODE" default:"relaxed"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Completion settings
	Provider   string        `envconfig:"LLM_PROVIDER" default:"azure"`
	LLMTimeout time.Duration `envconfig:"LLM_TIMEOUT" default:"30s"`
	Azure      Azure
	Anthropic  Anthropic

	// Session settings
	Session Session
}

// Azure holds the four Azure OpenAI credentials. All of them are required
// for a completion to be attempted.
type Azure struct {
	Endpoint   string `envconfig:"AZURE_OPENAI_ENDPOINT"`
	Deployment string `envconfig:"AZURE_OPENAI_DEPLOYMENT"`
	APIVersion string `envconfig:"AZURE_OPENAI_API_VERSION"`
	Key        string `envconfig:"AZURE_OPENAI_KEY"`
}

// Missing names the credential fields that are empty.
func (a Azure) Missing() []string {
	var missing []string
	if a.Endpoint == "" {
		missing = append(missing, "AZURE_OPENAI_ENDPOINT")
	}
	if a.Deployment == "" {
		missing = append(missing, "AZURE_OPENAI_DEPLOYMENT")
	}
	if a.APIVersion == "" {
		missing = append(missing, "AZURE_OPENAI_API_VERSION")
	}
	if a.Key == "" {
		missing = append(missing, "AZURE_OPENAI_KEY")
	}

	return missing
}

// Complete reports whether every Azure credential is present.
func (a Azure) Complete() bool {
	return len(a.Missing()) == 0
}

// Anthropic holds the alternative provider settings.
type Anthropic struct {
	APIKey string `envconfig:"ANTHROPIC_API_KEY"`
	Model  string `envconfig:"ANTHROPIC_MODEL" default:"claude-sonnet-4-5-20250929"`
}

// Session selects and configures the session batch store.
type Session struct {
	Store      string        `envconfig:"SESSION_STORE" default:"memory"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	CookieName string        `envconfig:"SESSION_COOKIE" default:"postgen_session"`
	RedisURL   string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	SQLitePath string        `envconfig:"SQLITE_PATH"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// Parse environment variables into config struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderAzure, ProviderAnthropic:
	default:
		return fmt.Errorf("invalid LLM_PROVIDER %q: must be %q or %q", c.Provider, ProviderAzure, ProviderAnthropic)
	}

	switch c.Session.Store {
	case StoreMemory, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("invalid SESSION_STORE %q: must be memory, redis or sqlite", c.Session.Store)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("invalid SESSION_TTL %s: must be positive", c.Session.TTL)
	}

	return nil
}

// BuildCSP constructs Content Security Policy based on mode.
func BuildCSP(mode string) string {
	if mode == "strict" {
		// Production CSP
		return "default-src 'self'; " +
			"style-src 'self'; " +
			"script-src 'self'; " +
			"img-src 'self' data:; " +
			"object-src 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
	}

	// Development/relaxed CSP
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:"
}
