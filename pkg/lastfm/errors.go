package lastfm

import (
	"errors"
	"fmt"
)

// Error represents a Last.fm API error.
//
// The Error type provides structured error information including
// the Last.fm error code and message. StatusCode is the HTTP status the
// error arrived with; Last.fm sometimes reports errors with a 200.
type Error struct {
	Code       int    // Last.fm error code
	Message    string // Error message from Last.fm
	StatusCode int    // HTTP status of the response
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("lastfm: error %d: %s", e.Code, e.Message)
}

// Is checks if the target error is a Last.fm error.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Temporary returns true if Last.fm reported the service as unavailable.
// The client never retries; callers use it to suggest trying again later.
//
// The following Last.fm error codes are considered temporary:
//   - 11: Service Offline - temporarily unavailable
//   - 16: Service Temporarily Unavailable
func (e *Error) Temporary() bool {
	switch e.Code {
	case ErrCodeServiceOffline, ErrCodeTempUnavailable:
		return true
	default:
		return false
	}
}

// Common Last.fm error codes.
const (
	ErrCodeInvalidService      = 2
	ErrCodeInvalidMethod       = 3
	ErrCodeInvalidFormat       = 5
	ErrCodeInvalidParameters   = 6
	ErrCodeInvalidResourceSpec = 7
	ErrCodeOperationFailed     = 8
	ErrCodeInvalidAPIKey       = 10
	ErrCodeServiceOffline      = 11
	ErrCodeSubscribersOnly     = 12
	ErrCodeTempUnavailable     = 16
	ErrCodeRateLimitExceeded   = 29
)

// Predefined errors for common cases.
var (
	// ErrInvalidConfig is returned when client configuration is invalid.
	ErrInvalidConfig = errors.New("lastfm: invalid configuration")

	// ErrInvalidPeriod is returned by ParsePeriod for unknown periods.
	ErrInvalidPeriod = errors.New("lastfm: invalid period")

	// ErrNoUser is returned when a request names no user.
	ErrNoUser = errors.New("lastfm: username required")
)
