package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Follow errors
	ErrMsgSelfFollow = "cannot follow yourself"
	ErrMsgConflict   = "concurrent modification detected"

	// Feed errors
	ErrMsgFeedUnavailable = "feed unavailable"
	ErrMsgIncompleteData  = "incomplete data"

	// Validation errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidUsername = "invalid username"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Follow errors
	ErrSelfFollow = errors.New(ErrMsgSelfFollow)
	ErrConflict   = errors.New(ErrMsgConflict)

	// Feed errors - transient upstream failure, malformed payload, or timeout.
	// Contained to the feed's profile section; retryable on the next view.
	ErrFeedUnavailable = errors.New(ErrMsgFeedUnavailable)

	// ErrIncompleteData marks a feed payload whose shape was wrong or whose
	// required fields were missing. Treated like an unavailable feed by the
	// aggregator but kept distinct for logging.
	ErrIncompleteData = errors.New(ErrMsgIncompleteData)

	// Validation errors
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidUsername = errors.New(ErrMsgInvalidUsername)
)
