package llm

import (
	"context"
	"errors"

	"github.com/alkime/postgen/internal/metrics"
)

// outcomeSkipped labels calls short-circuited by missing credentials.
const outcomeSkipped = "skipped"

type instrumented struct {
	next     Completer
	provider string
	metrics  *metrics.Metrics
}

// Instrument counts every completion attempt of next by outcome.
func Instrument(next Completer, provider string, m *metrics.Metrics) Completer {
	return &instrumented{next: next, provider: provider, metrics: m}
}

func (i *instrumented) Complete(ctx context.Context, prompt string) (string, error) {
	text, err := i.next.Complete(ctx, prompt)

	switch {
	case err == nil:
		i.metrics.ObserveCompletion(i.provider, metrics.OutcomeSucceeded)
	case errors.Is(err, ErrNoCredentials):
		i.metrics.ObserveCompletion(i.provider, outcomeSkipped)
	default:
		i.metrics.ObserveCompletion(i.provider, metrics.OutcomeFailed)
	}

	return text, err
}
