package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jfmyers9/topsongs/internal/bio"
	"github.com/jfmyers9/topsongs/pkg/lastfm"
)

// Defaults for settings that are neither flagged nor configured.
const (
	DefaultLimit  = 10
	DefaultFormat = "  - {artist} - {track}"
	DefaultJoin   = `\n`
)

const (
	appName    = "topsongs"
	configName = "topsongs.config"
	envPrefix  = "TOPSONGS"
)

// Config holds application configuration
type Config struct {
	// Last.fm account and chart
	Username string
	APIKey   string
	Period   string
	Limit    int

	// Select auto-picks the top N tracks; nil means choose interactively
	Select *int

	// Rendering
	Format         string
	Join           string
	Prefix         string
	Suffix         string
	StripFeat      bool
	StripFeatRegex string

	Copy  bool
	Debug bool

	// Discord bio updates
	DiscordToken    string
	DiscordBioRegex string
	UpdateDiscord   bool
	DiscordDryRun   bool

	// File is the config file that was read, empty when none was found
	File string
	// Searched lists the directories searched for a config file
	Searched []string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	return load(SearchLocations())
}

// SearchLocations returns the directories searched for topsongs.config,
// in order.
func SearchLocations() []string {
	return []string{".", getConfigDir()}
}

func load(paths []string) (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Set defaults
	v.SetDefault("period", string(lastfm.PeriodOverall))
	v.SetDefault("limit", DefaultLimit)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("join", DefaultJoin)
	v.SetDefault("discord_bio_regex", bio.DefaultPattern)

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// Settings may be nested under a top-level "topsongs" block
	if sub := v.Sub(appName); sub != nil {
		if err := v.MergeConfigMap(sub.AllSettings()); err != nil {
			return nil, fmt.Errorf("failed to merge %s block: %w", appName, err)
		}
	}

	// Read from environment variables
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfg := &Config{
		Username:        v.GetString("username"),
		APIKey:          v.GetString("api_key"),
		Period:          v.GetString("period"),
		Limit:           v.GetInt("limit"),
		Format:          v.GetString("format"),
		Join:            v.GetString("join"),
		Prefix:          v.GetString("prefix"),
		Suffix:          v.GetString("suffix"),
		StripFeat:       v.GetBool("strip_feat"),
		StripFeatRegex:  v.GetString("strip_feat_regex"),
		Copy:            v.GetBool("copy"),
		Debug:           v.GetBool("debug"),
		DiscordToken:    v.GetString("discord_token"),
		DiscordBioRegex: v.GetString("discord_bio_regex"),
		UpdateDiscord:   v.GetBool("update_discord"),
		DiscordDryRun:   v.GetBool("discord_dry_run"),
		File:            v.ConfigFileUsed(),
		Searched:        paths,
	}
	if v.IsSet("select") {
		n := v.GetInt("select")
		cfg.Select = &n
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".config", appName)
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}
