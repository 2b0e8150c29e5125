// Package discord reads and updates the bio of a Discord user profile.
package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jfmyers9/topsongs/pkg/httptemplate"
)

// Default request templates, written by --generate-http.
const (
	DefaultGetMeTemplate = "GET https://discord.com/api/v10/users/@me\nAuthorization: {{DISCORD_TOKEN}}\n"

	DefaultPatchBioTemplate = "PATCH https://discord.com/api/v9/users/@me/profile\n" +
		"Content-Type: application/json\n" +
		"Authorization: {{DISCORD_TOKEN}}\n" +
		"\n" +
		"{\n" +
		"  \"bio\": \"{{NEW_BIO}}\"\n" +
		"}\n"
)

var (
	// ErrNoToken is returned by New when no user token is configured.
	ErrNoToken = errors.New("discord: token required")

	// ErrNoTemplate is returned when the call's request template was not
	// supplied.
	ErrNoTemplate = errors.New("discord: request template not configured")
)

// Config holds client configuration. Templates are the contents of the
// .http files; an empty template disables the corresponding call.
type Config struct {
	Token         string
	GetTemplate   string
	PatchTemplate string
	HTTPClient    *http.Client
	Logger        zerolog.Logger
	Debug         bool
	Env           httptemplate.Env
}

// Client talks to the Discord user API.
type Client struct {
	token  string
	get    *httptemplate.Spec
	patch  *httptemplate.Spec
	exec   *httptemplate.Executor
	env    httptemplate.Env
	logger zerolog.Logger
}

// New parses the configured templates and returns a client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrNoToken
	}

	get, err := parseTemplate("get profile", cfg.GetTemplate)
	if err != nil {
		return nil, err
	}
	patch, err := parseTemplate("patch bio", cfg.PatchTemplate)
	if err != nil {
		return nil, err
	}

	return &Client{
		token: cfg.Token,
		get:   get,
		patch: patch,
		exec: httptemplate.NewExecutor(httptemplate.ExecutorConfig{
			HTTPClient: cfg.HTTPClient,
			Logger:     &cfg.Logger,
			Debug:      cfg.Debug,
		}),
		env:    cfg.Env,
		logger: cfg.Logger.With().Str("component", "discord").Logger(),
	}, nil
}

func parseTemplate(name, content string) (*httptemplate.Spec, error) {
	if content == "" {
		return nil, nil
	}
	spec, err := httptemplate.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("discord: failed to parse %s template: %w", name, err)
	}
	return &spec, nil
}

// CurrentBio fetches the bio of the token's user. A missing or null bio is
// returned as "".
func (c *Client) CurrentBio(ctx context.Context) (string, error) {
	if c.get == nil {
		return "", fmt.Errorf("%w: get profile", ErrNoTemplate)
	}

	vars := httptemplate.BuildVars(c.env,
		httptemplate.Pair{Name: "DISCORD_TOKEN", Value: c.token},
	)
	body, err := c.exec.Execute(ctx, c.get.Resolve(vars))
	if err != nil {
		return "", fmt.Errorf("discord: failed to fetch profile: %w", err)
	}

	var user struct {
		Bio *string `json:"bio"`
	}
	if err := json.Unmarshal([]byte(body), &user); err != nil {
		return "", fmt.Errorf("discord: failed to parse profile: %w", err)
	}
	if user.Bio == nil {
		c.logger.Debug().Msg("profile has no bio")
		return "", nil
	}
	return *user.Bio, nil
}

// UpdateBio replaces the bio of the token's user with bio.
func (c *Client) UpdateBio(ctx context.Context, bio string) error {
	if c.patch == nil {
		return fmt.Errorf("%w: patch bio", ErrNoTemplate)
	}

	escaped, err := EscapeJSONString(bio)
	if err != nil {
		return fmt.Errorf("discord: failed to encode bio: %w", err)
	}
	vars := httptemplate.BuildVars(c.env,
		httptemplate.Pair{Name: "DISCORD_TOKEN", Value: c.token},
		httptemplate.Pair{Name: "NEW_BIO", Value: escaped},
	)
	if _, err := c.exec.Execute(ctx, c.patch.Resolve(vars)); err != nil {
		return fmt.Errorf("discord: failed to update bio: %w", err)
	}

	c.logger.Debug().Int("length", len(bio)).Msg("bio updated")
	return nil
}

// EscapeJSONString returns s encoded as the contents of a JSON string,
// without the surrounding quotes. HTML characters are left as-is.
func EscapeJSONString(s string) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	out := strings.TrimSuffix(b.String(), "\n")
	return out[1 : len(out)-1], nil
}
