package client

import "errors"

// Sentinel errors mapped from API error codes.
// Use errors.Is() to check.
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionTerminated = errors.New("session already terminated")
	ErrSessionBusy       = errors.New("session is not awaiting input")
	ErrEmptyReply        = errors.New("empty reply")
	ErrReplyTooLong      = errors.New("reply too long")
	ErrProviderError     = errors.New("provider error")
	ErrUnauthorized      = errors.New("unauthorized")
)

// APIError carries the raw error body when no sentinel matches.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return "api error " + e.Code + ": " + e.Message
}
