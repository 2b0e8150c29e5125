package lastfm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jfmyers9/topsongs/pkg/httptemplate"
)

const defaultLimit = 10

// TopTracks fetches a user's most played tracks for a period.
//
// API errors come back as *Error, whether Last.fm signals them with an HTTP
// error status or inside a 200 response.
func (c *Client) TopTracks(ctx context.Context, req TopTracksRequest) ([]Track, error) {
	if strings.TrimSpace(req.User) == "" {
		return nil, ErrNoUser
	}
	period := req.Period
	if period == "" {
		period = PeriodOverall
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	vars := httptemplate.BuildVars(c.env,
		httptemplate.Pair{Name: "USERNAME", Value: req.User},
		httptemplate.Pair{Name: "API_KEY", Value: c.apiKey},
		httptemplate.Pair{Name: "PERIOD", Value: string(period)},
		httptemplate.Pair{Name: "LIMIT", Value: strconv.Itoa(limit)},
	)

	c.logger.Debug().
		Str("user", req.User).
		Str("period", string(period)).
		Int("limit", limit).
		Msg("fetching top tracks")

	body, err := c.exec.Execute(ctx, c.spec.Resolve(vars))
	if err != nil {
		var statusErr *httptemplate.StatusError
		if errors.As(err, &statusErr) {
			if apiErr := parseError(statusErr.Body, statusErr.Code); apiErr != nil {
				return nil, apiErr
			}
		}
		return nil, fmt.Errorf("lastfm: top tracks request failed: %w", err)
	}

	if apiErr := parseError(body, http.StatusOK); apiErr != nil {
		c.logger.Debug().Str("body", body).Msg("error response")
		return nil, apiErr
	}

	var resp topTracksResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top tracks response: %w", err)
	}

	c.logger.Debug().Int("count", len(resp.TopTracks.Track)).Msg("fetched top tracks")
	return resp.TopTracks.Track, nil
}

// parseError returns the API error carried by body, if any.
func parseError(body string, status int) *Error {
	if !strings.Contains(body, `"error"`) {
		return nil
	}
	var e errorResponse
	if err := json.Unmarshal([]byte(body), &e); err != nil || e.Error == 0 {
		return nil
	}
	return &Error{Code: e.Error, Message: e.Message, StatusCode: status}
}
