package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alkime/postgen/internal/config"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic completes prompts with the Anthropic Messages API.
type Anthropic struct {
	apiKey string
	model  anthropic.Model
	client anthropic.Client
}

// NewAnthropic creates an Anthropic client. Extra options are applied after
// the defaults (tests point the base URL at a local server).
func NewAnthropic(cfg config.Anthropic, timeout time.Duration, opts ...option.RequestOption) *Anthropic {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(timeout),
		option.WithMaxRetries(0),
	}

	return &Anthropic{
		apiKey: cfg.APIKey,
		model:  anthropic.Model(cfg.Model),
		client: anthropic.NewClient(append(base, opts...)...),
	}
}

// Complete sends prompt as a single user message.
func (a *Anthropic) Complete(ctx context.Context, prompt string) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("%w: ANTHROPIC_API_KEY", ErrNoCredentials)
	}

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       a.model,
		MaxTokens:   MaxTokens,
		Temperature: anthropic.Float(Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: anthropic status %d", ErrUnexpectedStatus, apiErr.StatusCode)
		}

		return "", fmt.Errorf("failed to complete via Anthropic API: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", ErrNoChoices
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyContent
	}

	return text, nil
}
