package lastfm

import (
	"errors"
	"fmt"
)

// ErrInvalidPeriod is returned when a top-tracks period is outside the
// closed enumeration. Detected before any network call.
var ErrInvalidPeriod = errors.New("invalid top-tracks period")

// APIError is a well-formed error payload returned by Last.fm: a numeric
// error code plus a message. It is never retried by the client.
type APIError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("lastfm error %d: %s", e.Code, e.Message)
}

// Is matches APIErrors by code, so errors.Is works against the
// predefined code constants.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Last.fm API error codes.
const (
	ErrCodeInvalidService      = 2
	ErrCodeInvalidMethod       = 3
	ErrCodeAuthFailed          = 4
	ErrCodeInvalidFormat       = 5
	ErrCodeInvalidParameters   = 6
	ErrCodeInvalidResourceSpec = 7
	ErrCodeOperationFailed     = 8
	ErrCodeInvalidSessionKey   = 9
	ErrCodeInvalidAPIKey       = 10
	ErrCodeServiceOffline      = 11
	ErrCodeTempUnavailable     = 16
	ErrCodeRateLimitExceeded   = 29
)

// NetworkError is a transport-level failure: connection refused, timeout,
// or a non-2xx status without a parseable Last.fm error payload. It carries
// the method and caller parameters for diagnostics.
type NetworkError struct {
	Method Method
	Params map[string]string
	Status int // 0 when no response was received
	Err    error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("lastfm %s: status %d: %v", e.Method, e.Status, e.Err)
	}
	return fmt.Sprintf("lastfm %s: %v", e.Method, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
