package contributions

import (
	"fmt"
	"time"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/github"
)

// Normalize converts the raw nested week payload into a gap-free daily
// sequence ordered oldest to newest, plus the provider-reported total.
// A structurally broken payload yields ErrIncompleteData; callers never
// see a partial calendar.
func Normalize(payload *github.CalendarPayload) (*domain.ContributionCalendar, error) {
	if payload == nil || len(payload.Weeks) == 0 {
		return nil, fmt.Errorf("%w: empty calendar payload", domain.ErrIncompleteData)
	}
	if payload.TotalContributions < 0 {
		return nil, fmt.Errorf("%w: negative total", domain.ErrIncompleteData)
	}

	// Flatten weeks. Edge weeks may be partial, so the week structure
	// itself carries no meaning past this point.
	days := make([]domain.ContributionDay, 0, len(payload.Weeks)*7)
	sum := 0
	for _, week := range payload.Weeks {
		for _, raw := range week.ContributionDays {
			date, err := time.Parse(DateLayout, raw.Date)
			if err != nil {
				return nil, fmt.Errorf("%w: bad date %q", domain.ErrIncompleteData, raw.Date)
			}
			if raw.ContributionCount < 0 {
				return nil, fmt.Errorf("%w: negative count on %s", domain.ErrIncompleteData, raw.Date)
			}
			sum += raw.ContributionCount
			days = append(days, domain.ContributionDay{
				Date:  date,
				Count: raw.ContributionCount,
				Level: IntensityLevel(raw.ContributionCount),
			})
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no days in calendar", domain.ErrIncompleteData)
	}

	// A total that disagrees with the day counts means the provider
	// truncated or dropped part of the window
	if sum != payload.TotalContributions {
		return nil, fmt.Errorf("%w: day counts sum to %d, total reports %d", domain.ErrIncompleteData, sum, payload.TotalContributions)
	}

	for i := 1; i < len(days); i++ {
		if !days[i].Date.After(days[i-1].Date) {
			return nil, fmt.Errorf("%w: days out of order at %s", domain.ErrIncompleteData, days[i].Date.Format(DateLayout))
		}
	}

	return &domain.ContributionCalendar{
		Days:  fillGaps(days),
		Total: payload.TotalContributions,
	}, nil
}

// fillGaps inserts zero-count days for any date the feed omitted between
// the first and last reported days. Input must be strictly ascending.
func fillGaps(days []domain.ContributionDay) []domain.ContributionDay {
	filled := make([]domain.ContributionDay, 0, len(days))
	filled = append(filled, days[0])
	for i := 1; i < len(days); i++ {
		next := filled[len(filled)-1].Date.AddDate(0, 0, 1)
		for next.Before(days[i].Date) {
			filled = append(filled, domain.ContributionDay{
				Date:  next,
				Count: 0,
				Level: domain.IntensityNone,
			})
			next = next.AddDate(0, 0, 1)
		}
		filled = append(filled, days[i])
	}
	return filled
}

// IntensityLevel buckets a daily count for display. The step function is
// fixed: 0, 1-2, 3-4, 5-6, 7 and up.
func IntensityLevel(count int) int {
	switch {
	case count <= 0:
		return domain.IntensityNone
	case count <= 2:
		return domain.IntensityLow
	case count <= 4:
		return domain.IntensityModerate
	case count <= 6:
		return domain.IntensityHigh
	default:
		return domain.IntensityMax
	}
}
