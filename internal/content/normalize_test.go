package content_test

import (
	"testing"

	"github.com/alkime/postgen/internal/content"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_Twitter(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		content  string
		hashtags string
		tier     content.Tier
	}{
		{
			name:     "trailing run",
			raw:      "Big day for @openai ... great news #AI #Tech",
			content:  "Big day for @openai ... great news",
			hashtags: "#AI #Tech",
			tier:     content.TierTrailingRun,
		},
		{
			name:     "trailing whitespace around the run",
			raw:      "  Launch time @nasa   #Space\t#Mars  ",
			content:  "Launch time @nasa",
			hashtags: "#Space\t#Mars",
			tier:     content.TierTrailingRun,
		},
		{
			name:     "inline hashtags are not a trailing run",
			raw:      "#AI is eating the world, says @satyanadella.",
			content:  "#AI is eating the world, says @satyanadella.",
			hashtags: "",
			tier:     content.TierNone,
		},
		{
			name:     "labelled line is never used for twitter",
			raw:      "Short and sweet @tim_cook\nHashtags: #Apple #iOS.",
			content:  "Short and sweet @tim_cook\nHashtags: #Apple #iOS.",
			hashtags: "",
			tier:     content.TierNone,
		},
		{
			name:     "unicode hashtags",
			raw:      "Café culture @barista #Café #Über",
			content:  "Café culture @barista",
			hashtags: "#Café #Über",
			tier:     content.TierTrailingRun,
		},
		{
			name:     "markdown stripped",
			raw:      "**Huge** news from *@google* #AI #Search",
			content:  "Huge news from @google",
			hashtags: "#AI #Search",
			tier:     content.TierTrailingRun,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := content.Normalize(tt.raw, content.Twitter)

			assert.Equal(t, tt.content, got.Content)
			assert.Equal(t, tt.hashtags, got.Hashtags)
			assert.Equal(t, tt.tier, got.Tier)
		})
	}
}

func TestNormalize_LabelledLine(t *testing.T) {
	raw := "Why remote work sticks\n\nTeams at @gitlab and @automattic proved it.\nHashtags: #a #b"

	got := content.Normalize(raw, content.LinkedIn)

	assert.Equal(t, "#a #b", got.Hashtags)
	assert.Equal(t, "Why remote work sticks\n\nTeams at @gitlab and @automattic proved it.", got.Content)
	assert.NotContains(t, got.Content, "Hashtags:")
	assert.Equal(t, content.TierLabelledLine, got.Tier)
}

func TestNormalize_LabelledLineCaseInsensitiveAndAtStart(t *testing.T) {
	got := content.Normalize("HASHTAGS: #first #second-tag\nbody text.", content.Instagram)

	// The label run keeps consuming word characters across the newline.
	assert.Equal(t, "#first #second-tag\nbody text", got.Hashtags)
	assert.Equal(t, ".", got.Content)
	assert.Equal(t, content.TierLabelledLine, got.Tier)
}

func TestNormalize_LabelledLineStopsAtPunctuation(t *testing.T) {
	raw := "Body line one.\nhashtags: #Go #Cloud\n(Generated with care.)"

	got := content.Normalize(raw, content.Facebook)

	assert.Equal(t, "#Go #Cloud", got.Hashtags)
	assert.Equal(t, "Body line one.(Generated with care.)", got.Content)
}

func TestNormalize_LineHeuristic(t *testing.T) {
	raw := "**Hashtags:** are below\nGreat insights from @sherylsandberg.\n#Leadership #Growth #Teams\nThanks for reading!"

	got := content.Normalize(raw, content.General)

	assert.Equal(t, "#Leadership #Growth #Teams", got.Hashtags)
	assert.Equal(t, "Hashtags: are below\nGreat insights from @sherylsandberg.\nThanks for reading!", got.Content)
	assert.Equal(t, content.TierLineHeuristic, got.Tier)
}

func TestNormalize_LineHeuristicLastMatchWins(t *testing.T) {
	raw := "#one #two\nMiddle paragraph about @nasa.\n#three #four #five"

	got := content.Normalize(raw, content.Instagram)

	assert.Equal(t, "#three #four #five", got.Hashtags)
	assert.Equal(t, "Middle paragraph about @nasa.", got.Content)
}

func TestNormalize_LineHeuristicThreshold(t *testing.T) {
	// 2 hashes over 6 words is below one hash per two words.
	raw := "We love #Go and #Rust equally\nNothing else here."

	got := content.Normalize(raw, content.LinkedIn)

	assert.Empty(t, got.Hashtags)
	assert.Equal(t, raw, got.Content)
	assert.Equal(t, content.TierNone, got.Tier)

	// 2 hashes over 4 words meets it.
	got = content.Normalize("Body.\nTry #Go and #Rust", content.LinkedIn)
	assert.Equal(t, "Try #Go and #Rust", got.Hashtags)
	assert.Equal(t, "Body.", got.Content)
}

func TestNormalize_NoHashtags(t *testing.T) {
	raw := "  A plain post about *gardening* with @montydon.  "

	got := content.Normalize(raw, content.Facebook)

	assert.Empty(t, got.Hashtags)
	assert.Equal(t, "A plain post about gardening with @montydon.", got.Content)
	assert.Equal(t, content.TierNone, got.Tier)
}

func TestNormalize_StripIsIdempotent(t *testing.T) {
	raw := "Clean text without emphasis.\nSecond line @someone."

	first := content.Normalize(raw, content.General)
	second := content.Normalize(first.Content, content.General)

	assert.Equal(t, raw, first.Content)
	assert.Equal(t, first.Content, second.Content)
}

func TestStripEmphasis(t *testing.T) {
	assert.Equal(t, "bold and italic", content.StripEmphasis("**bold** and *italic*"))
	assert.Equal(t, "ab", content.StripEmphasis("a***b"))
	assert.Equal(t, "none", content.StripEmphasis("none"))
}
