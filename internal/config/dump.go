package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Mask hides all but the first two characters of a secret.
func Mask(secret string) string {
	switch {
	case secret == "":
		return ""
	case len(secret) <= 4:
		return "****"
	default:
		return secret[:2] + "***"
	}
}

type dump struct {
	Username        string `yaml:"username"`
	APIKey          string `yaml:"api_key"`
	Period          string `yaml:"period"`
	Limit           int    `yaml:"limit"`
	Select          *int   `yaml:"select"`
	Format          string `yaml:"format"`
	Join            string `yaml:"join"`
	Prefix          string `yaml:"prefix"`
	Suffix          string `yaml:"suffix"`
	StripFeat       bool   `yaml:"strip_feat"`
	StripFeatRegex  string `yaml:"strip_feat_regex"`
	Copy            bool   `yaml:"copy"`
	Debug           bool   `yaml:"debug"`
	DiscordToken    string `yaml:"discord_token"`
	DiscordBioRegex string `yaml:"discord_bio_regex"`
	UpdateDiscord   bool   `yaml:"update_discord"`
	DiscordDryRun   bool   `yaml:"discord_dry_run"`
}

// Dump writes the configuration as YAML with secrets masked. When no file
// was found it lists the searched locations instead.
func (c *Config) Dump(w io.Writer) error {
	if c.File == "" {
		if _, err := fmt.Fprintln(w, "# no config file found; searched:"); err != nil {
			return err
		}
		for _, dir := range c.Searched {
			if _, err := fmt.Fprintf(w, "#   %s\n", dir); err != nil {
				return err
			}
		}
	} else if _, err := fmt.Fprintf(w, "# loaded from %s\n", c.File); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dump{
		Username:        c.Username,
		APIKey:          Mask(c.APIKey),
		Period:          c.Period,
		Limit:           c.Limit,
		Select:          c.Select,
		Format:          c.Format,
		Join:            c.Join,
		Prefix:          c.Prefix,
		Suffix:          c.Suffix,
		StripFeat:       c.StripFeat,
		StripFeatRegex:  c.StripFeatRegex,
		Copy:            c.Copy,
		Debug:           c.Debug,
		DiscordToken:    Mask(c.DiscordToken),
		DiscordBioRegex: c.DiscordBioRegex,
		UpdateDiscord:   c.UpdateDiscord,
		DiscordDryRun:   c.DiscordDryRun,
	}); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
