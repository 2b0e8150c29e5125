package httptemplate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"
)

// ExecutorConfig holds executor configuration.
type ExecutorConfig struct {
	HTTPClient *http.Client    // Optional: defaults to http.DefaultClient
	Logger     *zerolog.Logger // Optional: debug trace destination, discarded when nil
	Debug      bool            // Trace requests and responses at debug level
}

// Executor sends resolved specs. It never retries; a failed call is
// reported to the caller as-is.
type Executor struct {
	client *http.Client
	logger zerolog.Logger
	debug  bool
}

// NewExecutor creates an Executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "httptemplate").Logger()
	}
	return &Executor{
		client: client,
		logger: logger,
		debug:  cfg.Debug,
	}
}

// Execute sends spec and returns the response body of a 2xx response.
//
// Failures are typed: *UnsupportedMethodError for a method net/http refuses,
// *TransportError for anything that stops the exchange, *StatusError for a
// non-2xx response.
//
// Repeated headers with the same name are sent in template order. net/http
// writes distinct header names in sorted order, so the relative order of
// different names is not preserved on the wire.
func (e *Executor) Execute(ctx context.Context, spec Spec) (string, error) {
	req, err := e.newRequest(ctx, spec)
	if err != nil {
		return "", err
	}
	redactedURL := RedactURL(spec.URL)

	if e.debug {
		e.traceRequest(spec, redactedURL)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		if e.debug {
			e.logger.Debug().Err(err).Msg("HTTP request send error")
		}
		return "", &TransportError{Op: "send", Method: spec.Method, URL: redactedURL, Err: err}
	}
	defer resp.Body.Close()

	if e.debug {
		e.logger.Debug().
			Int("status", resp.StatusCode).
			Str("status_text", resp.Status).
			Msg("← response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readErrorBody(resp.Body)
		if e.debug {
			e.logger.Debug().
				Int("status", resp.StatusCode).
				Str("body", body).
				Msg("HTTP error status")
		}
		return "", &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: body}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Op: "read", Method: spec.Method, URL: redactedURL, Err: err}
	}
	return string(data), nil
}

func (e *Executor) newRequest(ctx context.Context, spec Spec) (*http.Request, error) {
	// net/http applies the same token rule when it validates a method.
	if !httpguts.ValidHeaderFieldName(spec.Method) {
		return nil, &UnsupportedMethodError{Method: spec.Method}
	}

	var body io.Reader
	if spec.Body != nil {
		body = strings.NewReader(*spec.Body)
	}
	req, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, body)
	if err != nil {
		return nil, &TransportError{Op: "build", Method: spec.Method, URL: RedactURL(spec.URL), Err: err}
	}

	for _, h := range spec.Headers {
		if !httpguts.ValidHeaderFieldName(h.Name) {
			return nil, &TransportError{
				Op:     "build",
				Method: spec.Method,
				URL:    RedactURL(spec.URL),
				Err:    fmt.Errorf("invalid header name %q", h.Name),
			}
		}
		if !httpguts.ValidHeaderFieldValue(h.Value) {
			return nil, &TransportError{
				Op:     "build",
				Method: spec.Method,
				URL:    RedactURL(spec.URL),
				Err:    fmt.Errorf("invalid value for header %q", h.Name),
			}
		}
		// net/http ignores Header["Host"]; the request field is what gets sent.
		if strings.EqualFold(h.Name, "Host") {
			req.Host = h.Value
			continue
		}
		req.Header.Add(h.Name, h.Value)
	}
	return req, nil
}

func (e *Executor) traceRequest(spec Spec, redactedURL string) {
	e.logger.Debug().
		Str("method", spec.Method).
		Str("url", redactedURL).
		Msg("→ request")
	for _, h := range spec.Headers {
		e.logger.Debug().
			Str("name", h.Name).
			Str("value", RedactHeader(h.Name, h.Value)).
			Msg("request header")
	}
	if spec.Body != nil && strings.TrimSpace(*spec.Body) != "" {
		for _, line := range strings.Split(*spec.Body, "\n") {
			e.logger.Debug().Str("line", line).Msg("request body")
		}
	}
}

func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Sprintf("<failed to read error body: %v>", err)
	}
	return string(data)
}
