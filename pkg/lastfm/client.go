package lastfm

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jfmyers9/topsongs/pkg/httptemplate"
)

// Config holds client configuration.
type Config struct {
	APIKey     string           // Required: Last.fm API key
	Template   string           // Optional: request template (defaults to DefaultTopTracksTemplate)
	HTTPClient *http.Client     // Optional: HTTP client (defaults to http.DefaultClient)
	Logger     *zerolog.Logger  // Optional: destination for debug tracing
	Debug      bool             // Optional: trace requests and responses
	Env        httptemplate.Env // Optional: ambient template variables
}

// Client is the main entry point for Last.fm API operations.
type Client struct {
	apiKey string
	spec   httptemplate.Spec
	exec   *httptemplate.Executor
	env    httptemplate.Env
	logger zerolog.Logger
}

// DefaultTopTracksTemplate is used when no template file is configured.
const DefaultTopTracksTemplate = "GET https://ws.audioscrobbler.com/2.0/?method=user.gettoptracks&user={{USERNAME}}&period={{PERIOD}}&api_key={{API_KEY}}&format=json&limit={{LIMIT}}\n"

// NewClient creates a new Last.fm API client.
//
// Returns an error if the API key is missing or the template does not parse.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", ErrInvalidConfig)
	}

	template := cfg.Template
	if template == "" {
		template = DefaultTopTracksTemplate
	}
	spec, err := httptemplate.Parse(template)
	if err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top tracks template: %w", err)
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "lastfm").Logger()
	}

	return &Client{
		apiKey: cfg.APIKey,
		spec:   spec,
		exec: httptemplate.NewExecutor(httptemplate.ExecutorConfig{
			HTTPClient: cfg.HTTPClient,
			Logger:     cfg.Logger,
			Debug:      cfg.Debug,
		}),
		env:    cfg.Env,
		logger: logger,
	}, nil
}
