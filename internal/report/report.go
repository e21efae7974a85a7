// Package report renders one generated sample per platform for terminal review.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alkime/postgen/internal/content"
	"github.com/alkime/postgen/pkg/collections"
)

const ruleWidth = 80

// Sample is one platform's generated post with its measurements.
type Sample struct {
	Platform content.Platform
	Budget   int
	Result   content.Result
}

// Combined is the measured text of the sample.
func (s Sample) Combined() string {
	return content.Combined(s.Result.Content, s.Result.Hashtags)
}

// Total is the combined character count.
func (s Sample) Total() int {
	return content.Length(s.Combined())
}

// WithinLimit reports whether the combined text fits the budget.
func (s Sample) WithinLimit() bool {
	return s.Total() <= s.Budget
}

// Generator produces a single post.
type Generator interface {
	Generate(ctx context.Context, req content.Request) content.Result
}

// Collect generates one post for every platform, in display order.
func Collect(ctx context.Context, gen Generator, topic string, tone content.Tone) []Sample {
	return collections.Apply(content.Platforms(), func(p content.Platform) Sample {
		return Sample{
			Platform: p,
			Budget:   content.PolicyFor(p).Budget,
			Result: gen.Generate(ctx, content.Request{
				Topic:    topic,
				Platform: p,
				Tone:     tone,
				Index:    1,
			}),
		}
	})
}

// Render writes the report for samples.
func Render(w io.Writer, topic string, tone content.Tone, samples []Sample) error {
	var b strings.Builder

	rule := Muted.Render(strings.Repeat("=", ruleWidth))

	b.WriteString(Title.Render("Sample content for all platforms") + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%s %s\n", Label.Render("Topic:"), topic)
	fmt.Fprintf(&b, "%s %s\n", Label.Render("Tone:"), tone)
	b.WriteString(rule + "\n")

	for _, s := range samples {
		b.WriteString("\n" + Heading.Render(strings.ToUpper(s.Platform.Label())) + "\n")
		b.WriteString(Muted.Render(strings.Repeat("-", ruleWidth/2)) + "\n")

		if !s.Result.Succeeded {
			b.WriteString(Error.Render("❌ Failed to generate content") + "\n")
			b.WriteString("\n" + rule + "\n")

			continue
		}

		fmt.Fprintf(&b, "%s %d\n", Label.Render("Budget:"), s.Budget)
		fmt.Fprintf(&b, "%s %d\n", Label.Render("Total characters:"), s.Total())
		fmt.Fprintf(&b, "%s %s\n", Label.Render("Within limit:"), verdict(s.WithinLimit()))

		b.WriteString("\n" + Label.Render("Content:") + "\n")
		b.WriteString(Body.Render(s.Result.Content) + "\n")
		b.WriteString("\n" + Label.Render("Hashtags:") + "\n")
		b.WriteString(s.Result.Hashtags + "\n")

		b.WriteString("\n" + Label.Render("Stats:") + "\n")
		fmt.Fprintf(&b, "Content chars: %d\n", content.Length(s.Result.Content))
		fmt.Fprintf(&b, "Hashtags chars: %d\n", content.Length(s.Result.Hashtags))
		fmt.Fprintf(&b, "Combined chars: %d\n", s.Total())
		fmt.Fprintf(&b, "Remaining: %d\n", s.Budget-s.Total())

		b.WriteString("\n" + rule + "\n")
	}

	succeeded := collections.Count(samples, func(s Sample) bool { return s.Result.Succeeded })
	within := collections.Count(samples, func(s Sample) bool { return s.Result.Succeeded && s.WithinLimit() })
	fmt.Fprintf(&b, "\n%s %d/%d generated, %d within limit\n",
		Label.Render("Summary:"), succeeded, len(samples), within)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func verdict(ok bool) string {
	if ok {
		return Success.Render("✅")
	}

	return Error.Render("❌")
}
