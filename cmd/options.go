package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/topsongs/internal/bio"
	"github.com/jfmyers9/topsongs/internal/config"
	"github.com/jfmyers9/topsongs/internal/render"
	"github.com/jfmyers9/topsongs/pkg/lastfm"
)

// Dedicated environment variables, checked before the config file.
const (
	envAPIKey       = "LASTFM_API_KEY"
	envDiscordToken = "DISCORD_TOKEN"
)

var (
	errMissingAPIKey   = errors.New("missing Last.fm API key: pass --api-key, set LASTFM_API_KEY, or set api_key in topsongs.config.yaml")
	errMissingUsername = errors.New("missing Last.fm username: pass --username or set username in topsongs.config.yaml")
)

// options is the fully resolved run configuration.
type options struct {
	username string
	apiKey   string
	period   lastfm.Period
	limit    int
	query    bool

	// selectN auto-picks the top N tracks; nil means interactive selection
	selectN *int
	render  render.Options
	copy    bool

	discordToken  string
	bioRegex      string
	updateDiscord bool
	dryRun        bool

	debug    bool
	logLevel string
}

func (o options) discordRequested() bool {
	return o.updateDiscord || o.dryRun
}

// resolveOptions merges flags, dedicated environment variables and the
// loaded config. A flag wins only when it was set on the command line.
func resolveOptions(cmd *cobra.Command, cfg *config.Config, getenv func(string) string) (options, error) {
	f := cmd.Flags()

	opts := options{
		username:      stringFlag(cmd, "username", cfg.Username),
		apiKey:        stringFlag(cmd, "api-key", firstNonEmpty(getenv(envAPIKey), cfg.APIKey)),
		limit:         intFlag(cmd, "limit", cfg.Limit),
		discordToken:  stringFlag(cmd, "discord-token", firstNonEmpty(getenv(envDiscordToken), cfg.DiscordToken)),
		bioRegex:      stringFlag(cmd, "discord-bio-regex", firstNonEmpty(cfg.DiscordBioRegex, bio.DefaultPattern)),
		updateDiscord: boolFlag(cmd, "update-discord", cfg.UpdateDiscord),
		dryRun:        boolFlag(cmd, "discord-dry-run", cfg.DiscordDryRun),
		copy:          boolFlag(cmd, "copy", cfg.Copy),
		debug:         boolFlag(cmd, "debug", cfg.Debug),
		render: render.Options{
			Format:         stringFlag(cmd, "format", cfg.Format),
			Join:           stringFlag(cmd, "join", cfg.Join),
			Prefix:         stringFlag(cmd, "prefix", cfg.Prefix),
			Suffix:         stringFlag(cmd, "suffix", cfg.Suffix),
			StripFeat:      boolFlag(cmd, "strip-feat", cfg.StripFeat),
			StripFeatRegex: stringFlag(cmd, "strip-feat-regex", cfg.StripFeatRegex),
		},
	}
	opts.query, _ = f.GetBool("query")
	opts.logLevel, _ = f.GetString("log-level")
	if opts.debug {
		opts.logLevel = "debug"
	}

	if f.Changed("select") {
		n, _ := f.GetInt("select")
		opts.selectN = &n
	} else if cfg.Select != nil {
		n := *cfg.Select
		opts.selectN = &n
	}

	if strings.TrimSpace(opts.apiKey) == "" {
		return opts, errMissingAPIKey
	}
	if strings.TrimSpace(opts.username) == "" {
		return opts, errMissingUsername
	}

	period, err := lastfm.ParsePeriod(firstNonEmpty(stringFlag(cmd, "period", cfg.Period), string(lastfm.PeriodOverall)))
	if err != nil {
		return opts, err
	}
	opts.period = period

	if opts.limit <= 0 {
		return opts, fmt.Errorf("invalid limit %d: must be at least 1", opts.limit)
	}
	if opts.render.Format == "" {
		opts.render.Format = config.DefaultFormat
	}

	return opts, nil
}

func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

func intFlag(cmd *cobra.Command, name string, fallback int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	return fallback
}

func boolFlag(cmd *cobra.Command, name string, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// clampSelect bounds an auto-select count to [1, total].
func clampSelect(n, total int) int {
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	return n
}
