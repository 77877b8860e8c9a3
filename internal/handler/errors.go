package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgInvalidPage     = "Invalid page parameter"
	ErrMsgInvalidPageSize = "Invalid page_size parameter"

	ErrMsgFollowerRequired = "follower is required"
)

// Success messages for API responses
const (
	MsgFollowSuccess          = "Followed successfully"
	MsgUnfollowSuccess        = "Unfollowed successfully"
	MsgAccountsUpdatedSuccess = "External accounts updated successfully"
	MsgUserDeletedSuccess     = "User deleted successfully"
)
