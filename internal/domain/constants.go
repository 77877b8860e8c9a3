package domain

// Pagination constants for follower/following listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Username constraints
const (
	MinUsernameLength = 3
	MaxUsernameLength = 39
)

// ReservedUsernames can never be registered or resolved as profiles
var ReservedUsernames = map[string]bool{
	"me": true,
}
