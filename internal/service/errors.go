package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// The API layer maps them to HTTP status codes; none of them is produced by a
// provider failure, which is always absorbed into a fallback meaning.
var (
	// ErrShareUnsupported is returned when no share capability is available.
	ErrShareUnsupported = errors.New("sharing is not supported on this device")

	// ErrShareFailed wraps an error returned by a Sharer.
	ErrShareFailed = errors.New("sharing failed")

	// ErrNilSession is returned when an operation is given no session.
	ErrNilSession = errors.New("session cannot be nil")
)
