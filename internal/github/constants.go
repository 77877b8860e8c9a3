package github

// DefaultEndpoint is the GraphQL API endpoint
const DefaultEndpoint = "https://api.github.com/graphql"

// MaxResponseBytes caps how much of a feed response is read
const MaxResponseBytes = 1 << 20
