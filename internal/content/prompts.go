package content

import (
	"fmt"
	"strings"
)

// HashtagsLabel is the marker the long-form prompt asks the model to put in
// front of the trailing hashtag line.
const HashtagsLabel = "Hashtags:"

// toneProfile is the stylistic guidance for one tone.
type toneProfile struct {
	voice      string
	formatting string
	examples   string
	engagement string
	short      string
}

var toneProfiles = map[Tone]toneProfile{
	Professional: {
		voice:      "formal language, industry insight and an authoritative voice backed by data, statistics and expert opinion",
		formatting: "clean and structured",
		examples:   "detailed industry cases",
		engagement: "industry statistics, expert quotes, data-driven insight and concrete case studies",
		short:      "authoritative",
	},
	Casual: {
		voice:      "conversational language, personal anecdotes and relatable examples; warm and approachable",
		formatting: "friendly, emojis are welcome",
		examples:   "relatable personal stories",
		engagement: "emojis, personal stories and warm, chatty phrasing that helps readers connect",
		short:      "friendly",
	},
	Educational: {
		voice:      "clear explanations, step-by-step breakdowns and teaching moments with \"did you know\" facts",
		formatting: "bullet points and worked examples",
		examples:   "step-by-step learning moments",
		engagement: "\"did you know\" facts, step-by-step explanations and thorough breakdowns of hard ideas",
		short:      "instructive",
	},
	Inspirational: {
		voice:      "motivational language, success stories and uplifting messages with quotes and achievements",
		formatting: "bold statements and quotes",
		examples:   "detailed success stories",
		engagement: "motivational quotes, achievement stories and positive energy",
		short:      "uplifting",
	},
	Humorous: {
		voice:      "wit, clever analogies and a light-hearted angle with puns and funny observations",
		formatting: "playful formatting and puns",
		examples:   "entertaining analogies that still explain the idea",
		engagement: "clever puns, witty observations and analogies that make learning fun",
		short:      "entertaining",
	},
}

// sectionGuidance returns how many body sections the long-form prompt asks for.
func sectionGuidance(p Platform) string {
	if p == LinkedIn {
		return "3-4"
	}

	return "2-3"
}

// BuildPrompt constructs the instruction sent for one post. Twitter gets a
// short strict template; every other platform gets the long-form template.
func BuildPrompt(topic string, platform Platform, tone Tone, budget int) string {
	if platform == Twitter {
		return buildTweetPrompt(topic)
	}

	return buildLongFormPrompt(topic, platform, tone, budget)
}

// BuildRetryPrompt is the stricter, shorter variant used when the first answer
// went over budget.
func BuildRetryPrompt(topic string, platform Platform, tone Tone, budget int) string {
	if platform == Twitter {
		return buildTweetRetryPrompt(topic)
	}

	return buildLongFormRetryPrompt(topic, platform, tone, budget)
}

func buildTweetPrompt(topic string) string {
	return fmt.Sprintf(`You are an expert Twitter content creator. Write one concise, engaging tweet about %q.

Requirements:
- At most 240 characters of tweet text, leaving room for hashtags and the mention
- Include exactly 1 mention starting with '@' (for example @sundarpichai, @tim_cook, @satyanadella)
- End with 2-3 relevant hashtags on the same line
- Make it shareable: trending language, emojis where they fit, a surprising fact or statistic
- Spark curiosity with power words and emotional triggers
- Give the tweet a natural, complete ending; never stop mid-sentence

Format: tweet text with the mention, followed by the hashtags.
Example: "AI is changing healthcare for good! @sundarpichai says models now flag diseases 10x faster than before. The future is here. #AI #Healthcare #Tech"

Stay within the 280 character limit.`, topic)
}

func buildTweetRetryPrompt(topic string) string {
	return fmt.Sprintf(`You are an expert Twitter content creator. Write one concise tweet about %q.

Requirements:
- At most 240 characters of tweet text
- Include exactly 1 mention starting with '@'
- Use only 2-3 relevant hashtags
- Make it shareable: trending language, emojis where they fit, a surprising fact or statistic
- Spark curiosity with power words and emotional triggers
- Do not exceed 280 characters in total
- Give the tweet a natural, complete ending; never stop mid-sentence

Write the tweet within this strict limit.`, topic)
}

func buildLongFormPrompt(topic string, platform Platform, tone Tone, budget int) string {
	policy := PolicyFor(platform)

	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert content creator and copywriter. Write an engaging post about %q.\n\n", topic)

	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- Target platform: %s\n", platform)
	fmt.Fprintf(&b, "- What the platform rewards: %s\n", policy.Algorithm)
	b.WriteString("- Purpose: educate, inform and engage\n")
	fmt.Fprintf(&b, "- Style: %s\n\n", tone)

	b.WriteString("Tone guidelines:\n")
	for _, t := range Tones() {
		fmt.Fprintf(&b, "- %s: %s.\n", t.Label(), toneProfiles[t].voice)
	}
	b.WriteString("\n")

	profile := profileFor(tone)
	b.WriteString("Structure:\n")
	b.WriteString("- Open with a hook that says right away what the topic is and why it matters to the reader.\n")
	b.WriteString("- Tell it as a story: explain the topic with real-world examples and practical applications.\n")
	fmt.Fprintf(&b, "- Organize the body into %s descriptive sections or paragraphs, each exploring a different angle.\n",
		sectionGuidance(platform))
	fmt.Fprintf(&b, "- Formatting for this tone: %s.\n", profile.formatting)
	fmt.Fprintf(&b, "- Examples for this tone: %s.\n", profile.examples)
	b.WriteString("- Close with a short summary that reinforces the main idea and leaves an actionable takeaway.\n\n")

	b.WriteString("Style:\n")
	b.WriteString("- Use simple, clear language and vivid, relatable examples. Avoid phrases that sound machine-written.\n")
	b.WriteString("- Keep a conversational flow, vary sentence length, add the odd rhetorical question or surprise.\n")
	fmt.Fprintf(&b, "- Engagement for this tone: %s.\n\n", profile.engagement)

	b.WriteString("Mentions:\n")
	b.WriteString("- Mention at least 2 influential people or organizations relevant to the topic, each starting with '@' " +
		"(for example @sundarpichai, @tim_cook, @satyanadella). More mentions are fine when relevant.\n\n")

	b.WriteString("Hashtags:\n")
	b.WriteString("- Put all hashtags together at the end of the post, never inside the body.\n")
	b.WriteString("- Hashtags must be relevant to the topic, not to the platform, and must not be skipped.\n\n")

	b.WriteString("Constraints:\n")
	b.WriteString("- Do not use jargon without defining it, and avoid vague statements.\n")
	fmt.Fprintf(&b, "- IMPORTANT: the entire post, including headings, body and hashtags, must not exceed %d characters. "+
		"Finish the post naturally within this space; never cut off mid-sentence or mid-thought.\n\n", budget)

	fmt.Fprintf(&b, "After the content, add a line starting with '%s' followed by up to 10 space-separated hashtags, "+
		"each starting with #. Do not repeat hashtags from previous posts in the series.\n", HashtagsLabel)

	return b.String()
}

func buildLongFormRetryPrompt(topic string, platform Platform, tone Tone, budget int) string {
	profile := profileFor(tone)

	return fmt.Sprintf(`You are an expert content creator. Write a concise, engaging post about %q for %s in a %s tone.

Requirements:
- At most %d characters in total, hashtags included
- Include at least 2 mentions starting with '@'
- Put up to 10 relevant hashtags on a final line starting with '%s'
- Keep the %s tone (%s) with tone-appropriate language and examples
- Explain the topic simply, with one concrete example or practical application
- Do not exceed %d characters under any circumstances
- Give the post a natural, complete ending; never stop mid-sentence or mid-thought

Write the content and hashtags within this strict limit.`,
		topic, platform, tone, budget, HashtagsLabel, tone, profile.short, budget)
}

func profileFor(t Tone) toneProfile {
	if p, ok := toneProfiles[t]; ok {
		return p
	}

	return toneProfiles[Professional]
}
