package content

// Platform identifies the social network a post is written for.
type Platform string

const (
	Instagram Platform = "instagram"
	Twitter   Platform = "twitter"
	LinkedIn  Platform = "linkedin"
	Facebook  Platform = "facebook"
	TikTok    Platform = "tiktok"
	General   Platform = "general"
)

// TwitterHardLimit is the absolute tweet length, independent of the policy table.
const TwitterHardLimit = 280

// Policy is the static per-platform character budget and the description of
// what the platform's feed rewards.
type Policy struct {
	Platform  Platform
	Budget    int
	Algorithm string
}

var policies = map[Platform]Policy{
	Instagram: {
		Platform: Instagram,
		Budget:   800,
		Algorithm: "Instagram rewards visually engaging posts, relevant hashtags, saves and shares, " +
			"consistent posting and replies to followers. Stories, Reels and carousels reach further. " +
			"Content length: up to 800 characters.",
	},
	Twitter: {
		Platform: Twitter,
		Budget:   TwitterHardLimit,
		Algorithm: "Twitter/X rewards short, timely tweets, trending hashtags, retweets and replies, " +
			"and threads for deeper topics. Joining trending conversations helps. " +
			"Content length: up to 280 characters.",
	},
	LinkedIn: {
		Platform: LinkedIn,
		Budget:   1200,
		Algorithm: "LinkedIn rewards professional, value-driven posts, industry hashtags, comments and shares, " +
			"and tagging relevant people or companies. Consistency and early engagement boost reach. " +
			"Content length: up to 1,200 characters.",
	},
	Facebook: {
		Platform: Facebook,
		Budget:   1000,
		Algorithm: "Facebook rewards meaningful interactions, groups and events, comments and shares, " +
			"and a mix of media. Stories and live video get more visibility. " +
			"Content length: up to 1,000 characters.",
	},
	TikTok: {
		Platform: TikTok,
		Budget:   150,
		Algorithm: "TikTok rewards short, entertaining, trend-driven clips, trending sounds and hashtags, " +
			"likes and shares, and consistent posting. Early engagement boosts reach. " +
			"Content length: up to 150 characters.",
	},
	General: {
		Platform: General,
		Budget:   800,
		Algorithm: "Social feeds in general reward engaging, relevant posts with fitting hashtags, " +
			"interaction, consistent posting and a mix of content types. " +
			"Content length: up to 800 characters.",
	},
}

// Platforms returns every known platform in display order.
func Platforms() []Platform {
	return []Platform{Instagram, Twitter, LinkedIn, Facebook, TikTok, General}
}

// ParsePlatform maps a form value to a Platform.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(s)
	_, ok := policies[p]

	return p, ok
}

// PolicyFor returns the policy for p, falling back to General for unknown platforms.
func PolicyFor(p Platform) Policy {
	if policy, ok := policies[p]; ok {
		return policy
	}

	return policies[General]
}

// Tone is one of the fixed stylistic profiles applied to prompts.
type Tone string

const (
	Professional  Tone = "professional"
	Casual        Tone = "casual"
	Educational   Tone = "educational"
	Inspirational Tone = "inspirational"
	Humorous      Tone = "humorous"
)

// Tones returns every tone in display order.
func Tones() []Tone {
	return []Tone{Professional, Casual, Educational, Inspirational, Humorous}
}

// ParseTone maps a form value to a Tone.
func ParseTone(s string) (Tone, bool) {
	for _, t := range Tones() {
		if string(t) == s {
			return t, true
		}
	}

	return "", false
}

// Label is the human-readable tone name used in forms and prompts.
func (t Tone) Label() string {
	switch t {
	case Professional:
		return "Professional"
	case Casual:
		return "Casual & Friendly"
	case Educational:
		return "Educational"
	case Inspirational:
		return "Inspirational"
	case Humorous:
		return "Humorous"
	default:
		return string(t)
	}
}

// Label is the human-readable platform name used in forms.
func (p Platform) Label() string {
	switch p {
	case Instagram:
		return "Instagram"
	case Twitter:
		return "Twitter/X"
	case LinkedIn:
		return "LinkedIn"
	case Facebook:
		return "Facebook"
	case TikTok:
		return "TikTok"
	case General:
		return "General"
	default:
		return string(p)
	}
}
