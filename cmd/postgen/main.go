package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alkime/postgen/internal/config"
	"github.com/alkime/postgen/internal/content"
	"github.com/alkime/postgen/internal/export"
	"github.com/alkime/postgen/internal/keyring"
	"github.com/alkime/postgen/internal/llm"
	"github.com/alkime/postgen/internal/report"
	"github.com/alkime/postgen/internal/schedule"
)

// CLI defines the postgen command structure.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Samples  SamplesCmd  `cmd:"" help:"Generate one sample post per platform and print a report"`
	Generate GenerateCmd `cmd:"" help:"Generate a scheduled batch and write it as CSV"`
	Config   ConfigCmd   `cmd:"" help:"Manage configuration"`
}

const (
	platformEnum = "instagram,twitter,linkedin,facebook,tiktok,general"
	toneEnum     = "professional,casual,educational,inspirational,humorous"
)

// SamplesCmd prints a per-platform sample report.
type SamplesCmd struct {
	Topic string `flag:"" default:"Artificial Intelligence" help:"Topic of the sample posts"`
	Tone  string `flag:"" default:"professional" enum:"${tones}" help:"Tone of the sample posts"`
}

// Run executes the samples command.
func (c *SamplesCmd) Run(logger *slog.Logger) error {
	gen, err := newGenerator(logger)
	if err != nil {
		return err
	}

	tone, _ := content.ParseTone(c.Tone)
	samples := report.Collect(context.Background(), gen, c.Topic, tone)

	return report.Render(os.Stdout, c.Topic, tone, samples)
}

// GenerateCmd writes a CSV batch, the CLI counterpart of the web form.
type GenerateCmd struct {
	Topic        string `arg:"" help:"Topic of the posts"`
	Platform     string `flag:"" default:"general" enum:"${platforms}" help:"Target platform"`
	Tone         string `flag:"" default:"professional" enum:"${tones}" help:"Tone of the posts"`
	Count        int    `flag:"" short:"n" default:"1" help:"Number of posts (1-50)"`
	BaseDate     string `flag:"" help:"First publication date (YYYY-MM-DD, default today)"`
	BaseTime     string `flag:"" help:"Publication time (HH:MM, default now rounded to 5 minutes)"`
	Distribution string `flag:"" default:"same" enum:"same,different" help:"Same date for all posts or spaced by interval"`
	Interval     int    `flag:"" default:"1" help:"Days between posts when distribution is different"`
	Output       string `flag:"" short:"o" default:"-" help:"Output CSV path, - for stdout"`
}

// Run executes the generate command.
func (c *GenerateCmd) Run(logger *slog.Logger) error {
	if strings.TrimSpace(c.Topic) == "" {
		return errors.New("topic cannot be empty")
	}

	if c.Count < 1 || c.Count > 50 {
		return fmt.Errorf("invalid count %d: must be between 1 and 50", c.Count)
	}

	if c.Interval < schedule.MinIntervalDays {
		return fmt.Errorf("invalid interval %d: must be at least %d day", c.Interval, schedule.MinIntervalDays)
	}

	gen, err := newGenerator(logger)
	if err != nil {
		return err
	}

	platform, _ := content.ParsePlatform(c.Platform)
	tone, _ := content.ParseTone(c.Tone)

	slots := schedule.Slots(schedule.Options{
		BaseDate:     c.BaseDate,
		BaseTime:     c.BaseTime,
		Count:        c.Count,
		Distribution: schedule.ParseDistribution(c.Distribution),
		IntervalDays: c.Interval,
	}, time.Now().UTC())

	posts := gen.GenerateBatch(context.Background(), content.Batch{
		Topic:    c.Topic,
		Platform: platform,
		Tone:     tone,
		Slots:    slots,
	})

	var out io.Writer = os.Stdout
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteCSV(out, posts); err != nil {
		return err
	}

	if c.Output != "-" {
		logger.Info("Wrote batch", "path", c.Output, "posts", len(posts))
	}

	return nil
}

// ConfigCmd groups configuration-related subcommands.
type ConfigCmd struct {
	SetKey   SetKeyCmd   `cmd:"" help:"Store an API key in system keychain"`
	ListKeys ListKeysCmd `cmd:"" name:"list-keys" help:"Show which API keys are configured"`
}

// SetKeyCmd stores an API key in the system keychain.
type SetKeyCmd struct {
	Service string `arg:"" enum:"azure,anthropic" help:"Service name (azure or anthropic)"`
	Secret  string `arg:"" help:"API key value"`
}

// Run executes the set-key command.
func (c *SetKeyCmd) Run() error {
	if strings.TrimSpace(c.Secret) == "" {
		return errors.New("API key cannot be empty")
	}

	apiKey, err := keyring.APIKeyFromServiceName(c.Service)
	if err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}

	if err := keyring.Set(apiKey, c.Secret); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	fmt.Printf("%s API key stored in keychain\n", c.Service)

	return nil
}

// ListKeysCmd shows which API keys are configured.
type ListKeysCmd struct{}

// Run executes the list-keys command.
//
//nolint:unparam // error return required by Kong interface
func (c *ListKeysCmd) Run() error {
	allSet := true

	for _, apiKey := range keyring.AllAPIKeys() {
		if keyring.IsSet(apiKey) {
			fmt.Printf("%s: configured\n", apiKey.DisplayName())
		} else {
			fmt.Printf("%s: not set\n", apiKey.DisplayName())
			allSet = false
		}
	}

	if !allSet {
		fmt.Println("\nRun 'postgen config set-key <service> <key>' to configure.")
	}

	return nil
}

// newGenerator loads configuration, fills secrets from the keychain and
// builds the post pipeline.
func newGenerator(logger *slog.Logger) (*content.Generator, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	keyring.FillSecrets(cfg, logger)

	if cfg.Provider == config.ProviderAzure && !cfg.Azure.Complete() {
		return nil, fmt.Errorf("missing Azure OpenAI settings: %s. Set them in the environment or .env "+
			"(the key can also be stored with 'postgen config set-key azure <key>')",
			strings.Join(cfg.Azure.Missing(), ", "))
	}

	if cfg.Provider == config.ProviderAnthropic && cfg.Anthropic.APIKey == "" {
		return nil, errors.New(
			"missing Anthropic API key: set ANTHROPIC_API_KEY or run 'postgen config set-key anthropic <key>'",
		)
	}

	completer, err := llm.New(cfg, nil)
	if err != nil {
		return nil, err
	}

	return content.NewGenerator(completer, nil, logger), nil
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("postgen"),
		kong.Description("Generate scheduled social media posts with an LLM."),
		kong.Vars{
			"platforms": platformEnum,
			"tones":     toneEnum,
		},
	)

	// Set up text-based logger for CLI output; stdout carries reports and CSV
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
