package domain

import "errors"

var (
	// ErrSessionNotFound signals an unknown session id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionTerminated signals a reply sent to an already finished session.
	ErrSessionTerminated = errors.New("session already terminated")
	// ErrSessionBusy signals a reply delivered while the session is not awaiting input.
	ErrSessionBusy = errors.New("session is not awaiting input")
	// ErrEmptyReply signals an empty or whitespace-only human reply.
	ErrEmptyReply = errors.New("empty reply")
	// ErrReplyTooLong signals a reply exceeding the configured limit.
	ErrReplyTooLong = errors.New("reply too long")
	// ErrProviderError signals an embedding or generation provider failure.
	ErrProviderError = errors.New("provider error")
	// ErrNotImplemented signals an unimplemented feature.
	ErrNotImplemented = errors.New("not implemented")
)
