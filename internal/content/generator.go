package content

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alkime/postgen/internal/llm"
	"github.com/alkime/postgen/internal/metrics"
	"github.com/alkime/postgen/internal/schedule"
)

// Request describes one post slot.
type Request struct {
	Topic    string
	Platform Platform
	Tone     Tone
	// Index is the 1-based position of the slot in its batch.
	Index int
}

// Result is what the pipeline produced for one slot. Succeeded is false when
// the completion failed; Content and Hashtags are then empty.
type Result struct {
	Content   string
	Hashtags  string
	Succeeded bool
}

// Post is one scheduled, editable post in a session batch.
type Post struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Content  string `json:"content"`
	Hashtags string `json:"hashtags"`
}

// Batch describes a whole generation request.
type Batch struct {
	Topic    string
	Platform Platform
	Tone     Tone
	Slots    []schedule.Slot
}

// Generator runs the prompt, completion, normalization and budget pipeline.
type Generator struct {
	completer llm.Completer
	enforcer  *Enforcer
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewGenerator creates a Generator that completes through completer.
func NewGenerator(completer llm.Completer, m *metrics.Metrics, logger *slog.Logger) *Generator {
	return &Generator{
		completer: completer,
		enforcer:  NewEnforcer(completer, m, logger),
		metrics:   m,
		logger:    logger,
	}
}

// Generate produces the post text for one slot. It never fails; a failed
// completion yields a Result with Succeeded false.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	result, err := g.generate(ctx, req)
	if err != nil {
		g.logger.Warn("post generation failed",
			"platform", req.Platform,
			"slot", req.Index,
			"error", err,
		)
	}

	return result
}

// GenerateBatch produces one Post per slot, in slot order. Failed slots keep
// their date and time with empty content and hashtags.
func (g *Generator) GenerateBatch(ctx context.Context, batch Batch) []Post {
	posts := make([]Post, 0, len(batch.Slots))
	credentialsLogged := false

	for i, slot := range batch.Slots {
		req := Request{
			Topic:    batch.Topic,
			Platform: batch.Platform,
			Tone:     batch.Tone,
			Index:    i + 1,
		}

		result, err := g.generate(ctx, req)
		switch {
		case err == nil:
		case errors.Is(err, llm.ErrNoCredentials):
			if !credentialsLogged {
				g.logger.Warn("completion credentials missing, posts left empty",
					"platform", batch.Platform,
					"slots", len(batch.Slots),
					"error", err,
				)
				credentialsLogged = true
			}
		default:
			g.logger.Warn("post generation failed",
				"platform", batch.Platform,
				"slot", req.Index,
				"error", err,
			)
		}

		posts = append(posts, Post{
			Date:     slot.Date,
			Time:     slot.Time,
			Content:  result.Content,
			Hashtags: result.Hashtags,
		})
	}

	return posts
}

func (g *Generator) generate(ctx context.Context, req Request) (Result, error) {
	budget := PolicyFor(req.Platform).Budget

	raw, err := g.completer.Complete(ctx, BuildPrompt(req.Topic, req.Platform, req.Tone, budget))
	if err != nil {
		g.metrics.ObservePost(string(req.Platform), metrics.OutcomeFailed)

		return Result{}, err
	}

	normalized := Normalize(raw, req.Platform)
	g.logger.Debug("normalized completion",
		"platform", req.Platform,
		"slot", req.Index,
		"tier", normalized.Tier.String(),
	)

	body, hashtags := g.enforcer.Enforce(ctx, normalized.Content, normalized.Hashtags,
		req.Platform, req.Topic, req.Tone, budget)

	g.metrics.ObservePost(string(req.Platform), metrics.OutcomeSucceeded)

	return Result{Content: body, Hashtags: hashtags, Succeeded: true}, nil
}
