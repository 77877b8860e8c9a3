package domain

// FeedStatus describes the state of one external feed section in an
// aggregated profile
type FeedStatus string

const (
	FeedStatusLoaded        FeedStatus = "loaded"
	FeedStatusUnavailable   FeedStatus = "unavailable"
	FeedStatusNotConfigured FeedStatus = "not_configured"
)

// CalendarSection is the contribution-calendar portion of a profile
type CalendarSection struct {
	Status   FeedStatus            `json:"status"`
	Reason   string                `json:"reason,omitempty"`
	Calendar *ContributionCalendar `json:"calendar,omitempty"`
}

// StatsSection is the coding-stats portion of a profile
type StatsSection struct {
	Status FeedStatus   `json:"status"`
	Reason string       `json:"reason,omitempty"`
	Stats  *CodingStats `json:"stats,omitempty"`
}

// AggregatedProfile composes the base user record, both normalized
// external feeds, and the social counters. Each feed section degrades
// independently - an unavailable feed never fails the whole profile.
type AggregatedProfile struct {
	User           User            `json:"user"`
	Calendar       CalendarSection `json:"calendar"`
	Stats          StatsSection    `json:"stats"`
	FollowerCount  int             `json:"follower_count"`
	FollowingCount int             `json:"following_count"`
}
