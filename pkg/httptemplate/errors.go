package httptemplate

import (
	"errors"
	"fmt"
)

// Parse failures. A *ParseError wraps exactly one of these.
var (
	ErrNoRequestLine = errors.New("missing request line")
	ErrMissingMethod = errors.New("missing HTTP method")
	ErrMissingURL    = errors.New("missing URL")
	ErrInvalidHeader = errors.New("invalid header line")
)

// ParseError describes a malformed template. Line is 1-based and zero when
// the failure is not tied to a line.
type ParseError struct {
	Line int
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("httptemplate: %v", e.Err)
	}
	return fmt.Sprintf("httptemplate: line %d: %v: %s", e.Line, e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnsupportedMethodError is returned by Execute when the method token is not
// something net/http will send.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("httptemplate: unsupported HTTP method: %q", e.Method)
}

// TransportError covers everything between building the request and reading
// the response: bad URLs, dial failures, timeouts, truncated bodies. URL is
// already redacted.
type TransportError struct {
	Op     string // "build", "send" or "read"
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("httptemplate: %s %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is returned for any non-2xx response. Body holds the response
// body, or a placeholder when it could not be read.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("httptemplate: HTTP request failed with status %s", e.Status)
}
