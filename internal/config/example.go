package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExampleConfig is written by --generate-config.
const ExampleConfig = `# topsongs.config.yaml
# Settings can stay flat or be nested under a "topsongs:" block.
# Every key can also be set as an environment variable, e.g. TOPSONGS_USERNAME.
# Run "topsongs --generate-http" to create editable request templates.

# Required for Last.fm
username: "your_lastfm_username"
api_key: "your_lastfm_api_key"   # or set LASTFM_API_KEY

# Chart
period: "overall"   # overall | 7day | 1month | 3month | 6month | 12month
limit: 10           # how many top tracks to fetch
# select: 3         # auto-pick the top N; omit to choose interactively

# Rendering. Escapes like \n are interpreted in format, join, prefix and suffix.
format: '  - {artist} - {track}'   # tokens: {artist}, {track}, {playcount}
join: '\n'
# prefix: '**On Loop**:\n'
# suffix: ''

# Title cleanup
strip_feat: true
# strip_feat_regex: '(?i)\s*(?:[\(\[]\s*(?:feat\.?|ft\.?|with)\b.*?[\)\]]|-\s*(?:feat\.?|ft\.?|with)\b.*)$'

copy: false    # copy the result to the clipboard
debug: false   # trace HTTP requests with secrets redacted

# Discord
discord_token: ""   # or set DISCORD_TOKEN
discord_bio_regex: '/\*\*[\p{L}\p{M}\p{N}_ ]+\*\*:?\r?(\n[ \p{L}\p{M}\p{N}_-]+)+\n/'
# update_discord: true    # PATCH the bio
# discord_dry_run: true   # preview the new bio without sending it
`

// WriteExampleConfig writes ExampleConfig to dir unless a config file is
// already there.
func WriteExampleConfig(dir string) (Scaffolded, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Scaffolded{}, fmt.Errorf("failed to create config directory: %w", err)
	}
	return writeIfMissing(filepath.Join(dir, configName+".yaml"), ExampleConfig)
}
