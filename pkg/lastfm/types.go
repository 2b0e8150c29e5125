package lastfm

import (
	"fmt"
	"strconv"
	"strings"
)

// Period is the time range of a top tracks chart.
type Period string

// Periods accepted by user.getTopTracks.
const (
	PeriodOverall Period = "overall"
	Period7Day    Period = "7day"
	Period1Month  Period = "1month"
	Period3Month  Period = "3month"
	Period6Month  Period = "6month"
	Period12Month Period = "12month"
)

// Periods lists every valid period in display order.
var Periods = []Period{
	PeriodOverall,
	Period7Day,
	Period1Month,
	Period3Month,
	Period6Month,
	Period12Month,
}

// ParsePeriod validates s. Matching is case-insensitive and ignores
// surrounding whitespace.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Periods {
		if p == valid {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of overall, 7day, 1month, 3month, 6month, 12month)", ErrInvalidPeriod, s)
}

// Track is one entry of a user's top tracks chart.
type Track struct {
	Name      string `json:"name"`
	Playcount string `json:"playcount"`
	URL       string `json:"url"`
	Artist    Artist `json:"artist"`
	Attr      struct {
		Rank string `json:"rank"`
	} `json:"@attr"`
}

// Artist identifies a track's artist.
type Artist struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Plays returns the play count as a number, or 0 if Last.fm sent something
// unparseable.
func (t Track) Plays() int {
	n, err := strconv.Atoi(strings.TrimSpace(t.Playcount))
	if err != nil {
		return 0
	}
	return n
}

// TopTracksRequest holds the parameters of a user.getTopTracks call.
type TopTracksRequest struct {
	User   string // Required: Last.fm username
	Period Period // Optional: defaults to PeriodOverall
	Limit  int    // Optional: defaults to 10
}

// topTracksResponse is the JSON envelope of user.getTopTracks.
type topTracksResponse struct {
	TopTracks struct {
		Track []Track `json:"track"`
	} `json:"toptracks"`
}

// errorResponse is the JSON body Last.fm sends on failure.
type errorResponse struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}
