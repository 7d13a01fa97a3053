package services

import "errors"

// Common service errors
var (
	// ErrNotFoundOrUnauthorized covers both a missing restaurant and one the
	// requester does not operate; callers cannot tell the two apart.
	ErrNotFoundOrUnauthorized = errors.New("restaurant not found or unauthorized")
	ErrMalformedInput         = errors.New("malformed input")
	ErrStoreUnavailable       = errors.New("order store unavailable")
)
