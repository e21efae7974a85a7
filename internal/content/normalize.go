package content

import (
	"regexp"
	"strings"
)

// Tier records which extraction strategy separated the hashtags.
type Tier int

const (
	// TierNone means no hashtags were found; the whole text is content.
	TierNone Tier = iota
	// TierTrailingRun is a run of #tags anchored at the end of the text (Twitter).
	TierTrailingRun
	// TierLabelledLine is a "Hashtags:" labelled line.
	TierLabelledLine
	// TierLineHeuristic is a line made up mostly of #tags.
	TierLineHeuristic
)

func (t Tier) String() string {
	switch t {
	case TierTrailingRun:
		return "trailing-run"
	case TierLabelledLine:
		return "labelled-line"
	case TierLineHeuristic:
		return "line-heuristic"
	default:
		return "none"
	}
}

// Normalized is the body/hashtag split of one model answer.
type Normalized struct {
	Content  string
	Hashtags string
	Tier     Tier
}

// wordClass matches the characters of a hashtag word, letters in any script included.
const wordClass = `\p{L}\p{M}\p{N}_`

var (
	trailingRunRe  = regexp.MustCompile(`(\s+#[` + wordClass + `]+(?:\s+#[` + wordClass + `]+)*)$`)
	labelledLineRe = regexp.MustCompile(`(?i)(?:^|\n)hashtags:\s*([#` + wordClass + `\s-]+)`)
)

// strategy tries to split text; ok is false when it found nothing.
type strategy func(text string) (body, hashtags string, ok bool)

type tieredStrategy struct {
	tier Tier
	run  strategy
}

// chainFor returns the ordered strategies for a platform. Twitter answers are
// never scanned for a "Hashtags:" label.
func chainFor(p Platform) []tieredStrategy {
	if p == Twitter {
		return []tieredStrategy{
			{tier: TierTrailingRun, run: trailingRun},
		}
	}

	return []tieredStrategy{
		{tier: TierLabelledLine, run: labelledLine},
		{tier: TierLineHeuristic, run: lineHeuristic},
	}
}

// Normalize separates the body from the hashtag block and strips markdown
// emphasis from the body. The first strategy that succeeds wins.
func Normalize(raw string, platform Platform) Normalized {
	text := strings.TrimSpace(raw)

	result := Normalized{Content: text, Tier: TierNone}
	for _, s := range chainFor(platform) {
		if body, tags, ok := s.run(text); ok {
			result = Normalized{Content: body, Hashtags: tags, Tier: s.tier}
			break
		}
	}

	result.Content = StripEmphasis(result.Content)

	return result
}

// StripEmphasis removes "**" and then every remaining "*".
func StripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")

	return strings.ReplaceAll(s, "*", "")
}

func trailingRun(text string) (string, string, bool) {
	m := trailingRunRe.FindStringSubmatchIndex(text)
	if m == nil {
		return "", "", false
	}

	hashtags := strings.TrimSpace(text[m[2]:m[3]])
	body := strings.TrimSpace(text[:m[0]])

	return body, hashtags, true
}

func labelledLine(text string) (string, string, bool) {
	m := labelledLineRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}

	hashtags := strings.TrimSpace(m[1])
	body := strings.TrimSpace(labelledLineRe.ReplaceAllString(text, ""))

	return body, hashtags, true
}

// lineHeuristic drops every line that is mostly hashtags (at least 2 '#' and
// at least one '#' per two words). The last such line becomes the hashtags.
func lineHeuristic(text string) (string, string, bool) {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	var hashtags string
	found := false
	for _, line := range lines {
		if isHashtagLine(line) {
			hashtags = strings.TrimSpace(line)
			found = true

			continue
		}
		kept = append(kept, line)
	}

	if !found {
		return "", "", false
	}

	return strings.TrimSpace(strings.Join(kept, "\n")), hashtags, true
}

func isHashtagLine(line string) bool {
	hashes := strings.Count(line, "#")
	words := len(strings.Fields(line))

	return hashes >= 2 && 2*hashes >= words
}
