package store

import "errors"

// Error values for consistent error handling by callers.
var (
	// ErrMalformedDocument means the stored content does not decode to a
	// valid nutrition log document.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrRemoteUnavailable is a transport-level failure talking to the
	// store. The wrapped message carries the store's raw status and body.
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrRemoteConflict means the store rejected a write because the
	// presented version tag is stale.
	ErrRemoteConflict = errors.New("write rejected: stale version tag")
)
