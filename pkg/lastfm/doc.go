// Package lastfm provides a client for the Last.fm API 2.0.
//
// # Overview
//
// The client reads a user's top tracks chart. Requests are described by an
// HTTP request template (see package httptemplate), so the endpoint, query
// parameters and headers can be changed without rebuilding. When no template
// is supplied, DefaultTopTracksTemplate is used.
//
// # Quick Start
//
//	import "github.com/jfmyers9/topsongs/pkg/lastfm"
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey: "your-api-key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tracks, err := client.TopTracks(ctx, lastfm.TopTracksRequest{
//	    User:   "rj",
//	    Period: lastfm.Period7Day,
//	    Limit:  10,
//	})
//
// # Templates
//
// A template receives these variables:
//
//	USERNAME  the Last.fm user
//	API_KEY   the API key from Config
//	PERIOD    one of overall, 7day, 1month, 3month, 6month, 12month
//	LIMIT     the number of tracks to request
//
// Any other {{NAME}} placeholder is filled from Config.Env when set.
//
// # Error Handling
//
// Last.fm error payloads are returned as *Error:
//
//	tracks, err := client.TopTracks(ctx, req)
//	if err != nil {
//	    var lastfmErr *lastfm.Error
//	    if errors.As(err, &lastfmErr) && lastfmErr.Code == lastfm.ErrCodeInvalidAPIKey {
//	        // Ask for a new key
//	    }
//	}
//
// Transport failures and other HTTP errors are wrapped httptemplate errors.
// Nothing is retried.
//
// # Last.fm API Documentation
//
// https://www.last.fm/api/show/user.getTopTracks
package lastfm
