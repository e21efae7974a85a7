// Package llm performs single completion requests against an LLM provider.
//
// A Completer sends one request per call and never retries; callers decide
// what a failed completion means. Every failure is reported as an error
// wrapping one of the package sentinels or the transport error.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alkime/postgen/internal/config"
	"github.com/alkime/postgen/internal/metrics"
)

// Fixed request shape shared by every provider.
const (
	MaxTokens      = 400
	Temperature    = 0.9
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrNoCredentials is returned without any network call when the provider is not configured.
	ErrNoCredentials = errors.New("completion credentials missing")
	// ErrUnexpectedStatus is returned for a non-success HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected completion status")
	// ErrNoChoices is returned when the response carries no choices.
	ErrNoChoices = errors.New("completion returned no choices")
	// ErrEmptyContent is returned when the first choice is blank.
	ErrEmptyContent = errors.New("completion returned empty content")
)

// Completer turns a prompt into raw model text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// New builds the configured provider, instrumented with m.
func New(cfg *config.Config, m *metrics.Metrics) (Completer, error) {
	timeout := cfg.LLMTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	switch cfg.Provider {
	case config.ProviderAzure:
		return Instrument(NewAzure(cfg.Azure, timeout), config.ProviderAzure, m), nil
	case config.ProviderAnthropic:
		return Instrument(NewAnthropic(cfg.Anthropic, timeout), config.ProviderAnthropic, m), nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
}
