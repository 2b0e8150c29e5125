package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jfmyers9/topsongs/internal/bio"
	"github.com/jfmyers9/topsongs/internal/config"
	"github.com/jfmyers9/topsongs/internal/discord"
	"github.com/jfmyers9/topsongs/internal/render"
	"github.com/jfmyers9/topsongs/internal/tui"
	"github.com/jfmyers9/topsongs/pkg/httptemplate"
	"github.com/jfmyers9/topsongs/pkg/lastfm"
)

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if generate, _ := cmd.Flags().GetBool("generate-config"); generate {
		return generateConfig(out, config.GetConfigDir())
	}
	if cmd.Flags().Changed("generate-http") {
		which, _ := cmd.Flags().GetString("generate-http")
		return generateHTTP(out, config.TemplateDir(), which)
	}

	dotenvFiles, err := config.LoadDotEnv(config.DotEnvFiles()...)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := resolveOptions(cmd, cfg, os.Getenv)
	if err != nil {
		return err
	}

	logger := setupLogger(opts.logLevel)
	for _, f := range dotenvFiles {
		logger.Debug().Str("file", f).Msg("loaded .env file")
	}
	if opts.debug {
		if err := cfg.Dump(cmd.ErrOrStderr()); err != nil {
			logger.Warn().Err(err).Msg("failed to dump config")
		}
	}

	r := &runner{
		out:          out,
		errOut:       cmd.ErrOrStderr(),
		logger:       logger,
		opts:         opts,
		templateDirs: config.TemplateDirs(),
		interactive:  isTerminal(os.Stdin) && isTerminal(os.Stdout),
		pick:         tui.Pick,
		copy:         clipboard.WriteAll,
		env:          httptemplate.OSEnv,
	}
	return r.run(cmd.Context())
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runner executes one fetch, select, render and update pass.
type runner struct {
	out    io.Writer
	errOut io.Writer
	logger zerolog.Logger
	opts   options

	templateDirs []string
	httpClient   *http.Client
	env          httptemplate.Env

	// interactive is false when stdin or stdout is not a terminal
	interactive bool
	pick        func(items []string) ([]int, error)
	copy        func(text string) error
}

func (r *runner) run(ctx context.Context) error {
	p := newPrinter(r.out)

	tracks, err := r.fetchTracks(ctx)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		p.Println("No tracks found. Check username or try a different period.")
		return nil
	}

	p.Heading("Top %d tracks for '%s' (period: %s):", len(tracks), r.opts.username, r.opts.period)
	p.TrackTable(tracks)
	if r.opts.query {
		return nil
	}

	chosen, err := r.selectTracks(p, tracks)
	if err != nil {
		return err
	}
	if len(chosen) == 0 {
		fmt.Fprintln(r.errOut, "No tracks selected. Exiting without output.")
		return nil
	}

	if r.opts.render.StripFeat {
		if fallback := render.NewStripper(r.opts.render.StripFeatRegex).Fallback; fallback != nil {
			r.logger.Warn().Err(fallback).Msg("invalid --strip-feat-regex, using the default pattern")
		}
	}
	output := render.Block(chosen, r.opts.render)

	p.Println()
	p.Heading("Your Discord bio line:")
	p.Block(output)

	if r.opts.copy {
		if err := r.copy(output); err != nil {
			fmt.Fprintf(r.errOut, "Failed to copy to clipboard: %v\n", err)
		} else {
			p.Println("Copied to clipboard.")
		}
	}

	if r.opts.discordRequested() {
		r.updateDiscord(ctx, p, output)
	}
	return nil
}

func (r *runner) fetchTracks(ctx context.Context) ([]lastfm.Track, error) {
	template, path, err := config.LoadTemplate(config.TemplateTopTracks, r.templateDirs)
	switch {
	case errors.Is(err, config.ErrTemplateNotFound):
		r.logger.Debug().Msg("no top tracks template found, using the built-in default")
	case err != nil:
		return nil, err
	default:
		r.logger.Debug().Str("path", path).Msg("using top tracks template")
	}

	client, err := lastfm.NewClient(lastfm.Config{
		APIKey:     r.opts.apiKey,
		Template:   template,
		HTTPClient: r.httpClient,
		Logger:     &r.logger,
		Debug:      r.opts.debug,
		Env:        r.env,
	})
	if err != nil {
		return nil, err
	}

	tracks, err := client.TopTracks(ctx, lastfm.TopTracksRequest{
		User:   r.opts.username,
		Period: r.opts.period,
		Limit:  r.opts.limit,
	})
	if err != nil {
		var apiErr *lastfm.Error
		if errors.As(err, &apiErr) && apiErr.Temporary() {
			return nil, fmt.Errorf("failed to fetch top tracks from Last.fm (temporarily unavailable, try again later): %w", err)
		}
		return nil, fmt.Errorf("failed to fetch top tracks from Last.fm: %w", err)
	}
	return tracks, nil
}

func (r *runner) selectTracks(p *printer, tracks []lastfm.Track) ([]lastfm.Track, error) {
	if r.opts.selectN != nil {
		n := clampSelect(*r.opts.selectN, len(tracks))
		p.Println()
		p.Printf("Auto-selecting top %d track(s).\n", n)
		return tracks[:n], nil
	}

	if !r.interactive {
		return nil, errors.New("interactive selection needs a terminal: pass --select N to pick the top N tracks")
	}

	indices, err := r.pick(pickerItems(tracks))
	if err != nil {
		return nil, fmt.Errorf("track selection failed: %w", err)
	}
	chosen := make([]lastfm.Track, 0, len(indices))
	for _, i := range indices {
		chosen = append(chosen, tracks[i])
	}
	return chosen, nil
}

// updateDiscord previews or applies the new bio. Failures are reported but
// do not fail the run; the rendered block is already printed.
func (r *runner) updateDiscord(ctx context.Context, p *printer, block string) {
	if r.opts.discordToken == "" {
		fmt.Fprintln(r.errOut, "Discord operations requested but no token provided. Use --discord-token, set DISCORD_TOKEN, or set discord_token in the config.")
		return
	}

	getTemplate, _, err := config.LoadTemplate(config.TemplateGetMe, r.templateDirs)
	if err != nil {
		fmt.Fprintf(r.errOut, "Failed to fetch current Discord bio: %v\n", err)
		return
	}
	var patchTemplate string
	if !r.opts.dryRun {
		patchTemplate, _, err = config.LoadTemplate(config.TemplatePatchBio, r.templateDirs)
		if err != nil {
			fmt.Fprintf(r.errOut, "Failed to update Discord bio: %v\n", err)
			return
		}
	}

	client, err := discord.New(discord.Config{
		Token:         r.opts.discordToken,
		GetTemplate:   getTemplate,
		PatchTemplate: patchTemplate,
		HTTPClient:    r.httpClient,
		Logger:        r.logger,
		Debug:         r.opts.debug,
		Env:           r.env,
	})
	if err != nil {
		fmt.Fprintf(r.errOut, "Failed to set up Discord client: %v\n", err)
		return
	}

	current, err := client.CurrentBio(ctx)
	if err != nil {
		fmt.Fprintf(r.errOut, "Failed to fetch current Discord bio: %v\n", err)
		return
	}

	result, err := bio.Patch(current, r.opts.bioRegex, block)
	if err != nil {
		fmt.Fprintf(r.errOut, "Invalid regex for --discord-bio-regex: %v\n", err)
		return
	}
	if !result.Replaced {
		fmt.Fprintln(r.errOut, "The provided regex did not match your current Discord bio. No update performed.")
		return
	}

	if r.opts.dryRun {
		p.Println()
		p.Heading("[Discord dry-run] Would update bio to:")
		p.Block(result.Text)
		diff, err := bio.Diff(current, result.Text)
		if err != nil {
			r.logger.Warn().Err(err).Msg("failed to render bio diff")
		} else if diff != "" {
			p.Println()
			p.Diff(diff)
		}
		p.Println("[Discord dry-run] No changes were sent to Discord.")
		return
	}

	if result.Text == current {
		p.Println("Discord bio is already up to date. No update sent.")
		return
	}
	if err := client.UpdateBio(ctx, result.Text); err != nil {
		fmt.Fprintf(r.errOut, "Failed to update Discord bio: %v\n", err)
		return
	}
	p.Println("Discord bio updated successfully.")
}
