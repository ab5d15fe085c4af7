package macro

import "errors"

// Error values for consistent error handling by callers.
var (
	ErrEntryNotFound   = errors.New("no entries for date")
	ErrIndexOutOfRange = errors.New("entry index out of range")
	ErrInvalidInput    = errors.New("invalid input")
)
