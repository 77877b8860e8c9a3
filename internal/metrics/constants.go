package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Feed metric names
const (
	MetricNameFeedFetchesTotal  = "feed_fetches_total"
	MetricNameFeedFetchDuration = "feed_fetch_duration_seconds"
)

// Social graph metric names
const (
	MetricNameFollowOperationsTotal = "follow_operations_total"
)

// Profile cache metric names
const (
	MetricNameProfileCacheHits   = "profile_cache_hits_total"
	MetricNameProfileCacheMisses = "profile_cache_misses_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Feed metric help text
const (
	HelpTextFeedFetchesTotal  = "Total number of external feed fetches"
	HelpTextFeedFetchDuration = "External feed fetch latency in seconds"
)

// Social graph metric help text
const (
	HelpTextFollowOperationsTotal = "Total number of follow graph operations"
)

// Profile cache metric help text
const (
	HelpTextProfileCacheHits   = "Total number of profile cache hits"
	HelpTextProfileCacheMisses = "Total number of profile cache misses"
)

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelFeed      = "feed"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
)

// Feed label values
const (
	FeedGitHub   = "github"
	FeedLeetCode = "leetcode"
)

// Outcome label values
const (
	OutcomeOK            = "ok"
	OutcomeUnavailable   = "unavailable"
	OutcomeNotConfigured = "not_configured"
	OutcomeCreated       = "created"
	OutcomeRemoved       = "removed"
	OutcomeNoop          = "noop"
	OutcomeError         = "error"
)

// Operation label values
const (
	OperationFollow   = "follow"
	OperationUnfollow = "unfollow"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// FeedLatencyBuckets skews larger since every fetch crosses the network
var FeedLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2, 5, 10}
