package domain

import "time"

// Contribution intensity levels for heatmap rendering.
// The bucketing is a fixed step function of the daily count:
// 0, 1-2, 3-4, 5-6, >=7.
const (
	IntensityNone     = 0
	IntensityLow      = 1
	IntensityModerate = 2
	IntensityHigh     = 3
	IntensityMax      = 4
)

// ContributionDay is a single day of code-hosting activity
type ContributionDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
	Level int       `json:"level"`
}

// ContributionCalendar is the normalized contribution feed: one entry
// per calendar day in the window, oldest first, with no gaps.
type ContributionCalendar struct {
	Days  []ContributionDay `json:"days"`
	Total int               `json:"total"`
}
