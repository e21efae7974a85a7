package content

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/alkime/postgen/internal/llm"
	"github.com/alkime/postgen/internal/metrics"
)

const ellipsis = "..."

// Enforcer keeps a post near its platform budget: it truncates over-long
// tweets and issues a single stricter retry. The budget is best effort and the
// returned pair may still exceed it.
type Enforcer struct {
	completer llm.Completer
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewEnforcer creates an Enforcer that retries through completer.
func NewEnforcer(completer llm.Completer, m *metrics.Metrics, logger *slog.Logger) *Enforcer {
	return &Enforcer{
		completer: completer,
		metrics:   m,
		logger:    logger,
	}
}

// Combined is the text the budget is measured against.
func Combined(content, hashtags string) string {
	return strings.TrimSpace(content + " " + hashtags)
}

// Length counts characters the way the budget does, in code points.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Enforce returns content and hashtags unchanged when they fit the budget.
// Otherwise tweets over the hard limit are truncated first, then exactly one
// retry with the stricter prompt is made. A failed retry keeps the pre-retry pair.
func (e *Enforcer) Enforce(
	ctx context.Context,
	content, hashtags string,
	platform Platform,
	topic string,
	tone Tone,
	budget int,
) (string, string) {
	if Length(Combined(content, hashtags)) <= budget {
		return content, hashtags
	}

	if platform == Twitter && Length(Combined(content, hashtags)) > TwitterHardLimit {
		content = TruncateTweet(content, hashtags)
	}

	raw, err := e.completer.Complete(ctx, BuildRetryPrompt(topic, platform, tone, budget))
	if err != nil {
		e.logger.Warn("budget retry failed, keeping first answer",
			"platform", platform,
			"budget", budget,
			"length", Length(Combined(content, hashtags)),
			"error", err,
		)
		e.metrics.ObserveRetry(string(platform), metrics.OutcomeFailed)

		return content, hashtags
	}

	retried := Normalize(raw, platform)
	e.metrics.ObserveRetry(string(platform), metrics.OutcomeSucceeded)
	e.logger.Debug("budget retry replaced answer",
		"platform", platform,
		"budget", budget,
		"length", Length(Combined(retried.Content, retried.Hashtags)),
		"tier", retried.Tier.String(),
	)

	return retried.Content, retried.Hashtags
}

// TruncateTweet cuts content so that content, a space and hashtags fit the
// tweet limit. The cut lands on the last space before the limit and an
// ellipsis is appended. When hashtags alone fill the tweet, content is kept.
func TruncateTweet(content, hashtags string) string {
	available := TwitterHardLimit - Length(hashtags) - 1
	if available <= 0 {
		return content
	}

	runes := []rune(content)
	if len(runes) > available {
		runes = runes[:available]
	}

	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i >= 0 {
		cut = cut[:i]
	}

	return cut + ellipsis
}
