package config

import "time"

// Default configuration values
const (
	DefaultServiceName = "devboard"
	DefaultPort        = 8080

	DefaultLeetCodeAPIURL = "https://leetcode-stats-api.herokuapp.com"

	// Per-call bound on external feed fetches; a feed that exceeds it
	// is reported unavailable for that request
	DefaultFeedTimeout = 5 * time.Second

	DefaultProfileCacheLen = 1024
	DefaultProfileCacheTTL = 60 * time.Second
)

// Database connection pool defaults
const (
	DefaultDBMaxConns    = 10
	DefaultDBMaxIdleTime = 5 * time.Minute
	DefaultDBMaxLifetime = 30 * time.Minute
)
