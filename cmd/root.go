/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/jfmyers9/topsongs/internal/config"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "topsongs",
	Short: "Fetch Last.fm top tracks and format them for your Discord bio",
	Long: heredoc.Doc(`
		topsongs fetches your most played tracks from Last.fm, lets you pick
		the ones to show, and renders them as a block of text for a profile bio.

		With --update-discord the block replaces the section of your Discord
		bio matched by --discord-bio-regex. Use --discord-dry-run to preview the
		change without sending it.

		Requests are described by editable .http templates. Run
		"topsongs --generate-http" to write the defaults to
		~/.config/topsongs/http.

		Settings are read from topsongs.config.yaml in the current directory
		or ~/.config/topsongs, from TOPSONGS_* environment variables and from
		.env files. Flags override all of them.
	`),
	Example: heredoc.Doc(`
		# Pick tracks interactively from the last week
		topsongs -u rj -p 7day

		# Top 5 of the month with a heading, copied to the clipboard
		topsongs -u rj -p 1month -s 5 --prefix '**On Loop**:\n' -c

		# Preview the new Discord bio
		topsongs -s 3 --discord-dry-run
	`),
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	addRootFlags(rootCmd)
}

func addRootFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	// Last.fm
	f.StringP("username", "u", "", "Last.fm username")
	f.StringP("api-key", "k", "", "Last.fm API key (or set LASTFM_API_KEY)")
	f.StringP("period", "p", "", "Chart period: overall, 7day, 1month, 3month, 6month or 12month")
	f.IntP("limit", "n", config.DefaultLimit, "Number of top tracks to fetch")
	f.BoolP("query", "Q", false, "Only list the top tracks, skip selection and rendering")

	// Selection and rendering
	f.IntP("select", "s", 0, "Auto-select the top N tracks instead of choosing interactively")
	f.StringP("format", "f", config.DefaultFormat, "Line format. Tokens: {artist}, {track}, {playcount}")
	f.StringP("join", "j", config.DefaultJoin, "Separator between lines")
	f.String("prefix", "", `Text before the list (e.g. "**Song Recs**:\n")`)
	f.String("suffix", "", "Text after the list")
	f.BoolP("strip-feat", "t", false, `Remove "(feat. ...)" style annotations from titles`)
	f.String("strip-feat-regex", "", "Custom regex for --strip-feat; surrounding slashes are removed")
	f.BoolP("copy", "c", false, "Copy the result to the clipboard")

	// Discord
	f.String("discord-token", "", "Discord user token (or set DISCORD_TOKEN)")
	f.String("discord-bio-regex", "", "Regex for the bio section to replace; surrounding slashes are removed")
	f.BoolP("update-discord", "U", false, "Replace the matched section of your Discord bio")
	f.BoolP("discord-dry-run", "r", false, "Show the new Discord bio without sending it")

	// Diagnostics
	f.BoolP("debug", "d", false, "Trace HTTP requests with secrets redacted and dump the config")
	f.String("log-level", "warn", "Log level (debug, info, warn, error)")

	// Scaffolding
	f.BoolP("generate-config", "G", false, "Write an example config to ~/.config/topsongs and exit")
	f.String("generate-http", "", "Write missing .http templates (all, or one of lastfm_top_tracks, discord_get_me, discord_patch_bio) and exit")
	f.Lookup("generate-http").NoOptDefVal = "all"
}
