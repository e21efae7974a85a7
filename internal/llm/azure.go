package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alkime/postgen/internal/config"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
)

// Azure completes prompts against an Azure OpenAI chat deployment.
type Azure struct {
	creds  config.Azure
	client *openai.Client
}

// NewAzure creates an Azure client. When any of the four credentials is
// missing the client is still returned, but every Complete call fails with
// ErrNoCredentials before touching the network.
func NewAzure(creds config.Azure, timeout time.Duration) *Azure {
	a := &Azure{creds: creds}
	if !creds.Complete() {
		return a
	}

	client := openai.NewClient(
		azure.WithEndpoint(creds.Endpoint, creds.APIVersion),
		azure.WithAPIKey(creds.Key),
		option.WithRequestTimeout(timeout),
		option.WithMaxRetries(0),
	)
	a.client = &client

	return a
}

// Complete sends prompt as a single user message.
func (a *Azure) Complete(ctx context.Context, prompt string) (string, error) {
	if a.client == nil {
		return "", fmt.Errorf("%w: %s", ErrNoCredentials, strings.Join(a.creds.Missing(), ", "))
	}

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.creds.Deployment),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(MaxTokens),
		Temperature: openai.Float(Temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: azure status %d", ErrUnexpectedStatus, apiErr.StatusCode)
		}

		return "", fmt.Errorf("failed to complete via Azure OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyContent
	}

	return text, nil
}
