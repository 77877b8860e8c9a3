package codingstats

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/leetcode"
)

// Normalize converts the raw stats payload into the canonical per-difficulty
// shape. now anchors the trailing-12-month activity window, which always ends
// at now's calendar month.
func Normalize(payload *leetcode.StatsPayload, now time.Time) (*domain.CodingStats, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: empty stats payload", domain.ErrIncompleteData)
	}
	if payload.TotalSolved < 0 || payload.EasySolved < 0 || payload.MediumSolved < 0 || payload.HardSolved < 0 {
		return nil, fmt.Errorf("%w: negative solved count", domain.ErrIncompleteData)
	}
	if payload.EasySolved > payload.TotalEasy && payload.TotalEasy > 0 {
		return nil, fmt.Errorf("%w: easy solved exceeds available", domain.ErrIncompleteData)
	}
	if payload.MediumSolved > payload.TotalMedium && payload.TotalMedium > 0 {
		return nil, fmt.Errorf("%w: medium solved exceeds available", domain.ErrIncompleteData)
	}
	if payload.HardSolved > payload.TotalHard && payload.TotalHard > 0 {
		return nil, fmt.Errorf("%w: hard solved exceeds available", domain.ErrIncompleteData)
	}
	// Per-difficulty counts must account for the reported total, or the
	// bucket shares would not be shares at all
	if payload.EasySolved+payload.MediumSolved+payload.HardSolved != payload.TotalSolved {
		return nil, fmt.Errorf("%w: difficulty counts do not sum to total solved", domain.ErrIncompleteData)
	}

	monthly, err := bucketByMonth(payload.SubmissionCalendar, now)
	if err != nil {
		return nil, err
	}

	return &domain.CodingStats{
		TotalSolved:    payload.TotalSolved,
		TotalAvailable: payload.TotalQuestions,
		Ranking:        payload.Ranking,
		AcceptanceRate: payload.AcceptanceRate,
		Buckets: []domain.DifficultyBucket{
			bucket(domain.DifficultyEasy, payload.EasySolved, payload.TotalEasy, payload.TotalSolved),
			bucket(domain.DifficultyMedium, payload.MediumSolved, payload.TotalMedium, payload.TotalSolved),
			bucket(domain.DifficultyHard, payload.HardSolved, payload.TotalHard, payload.TotalSolved),
		},
		MonthlyActivity: monthly,
	}, nil
}

// bucket derives one difficulty bucket. Percent is the bucket's share of
// everything solved, and stays 0 when nothing is solved.
func bucket(diff domain.Difficulty, solved, available, totalSolved int) domain.DifficultyBucket {
	b := domain.DifficultyBucket{
		Difficulty:     diff,
		Solved:         solved,
		TotalAvailable: available,
	}
	if totalSolved > 0 {
		b.Percent = float64(solved) / float64(totalSolved)
	}
	return b
}

// bucketByMonth totals submissions per calendar month for the trailing 12
// months ending at now's month, oldest first. Months with no submissions
// are reported as 0. Calendar keys are unix seconds as decimal strings.
// A submission belongs to the UTC calendar month of its timestamp.
func bucketByMonth(calendar map[string]int, now time.Time) ([]domain.MonthActivity, error) {
	now = now.UTC()

	type yearMonth struct {
		year  int
		month time.Month
	}
	counts := make(map[yearMonth]int, MonthsInWindow)

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(MonthsInWindow - 1), 0)

	for key, count := range calendar {
		secs, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad calendar key %q", domain.ErrIncompleteData, key)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: negative submission count", domain.ErrIncompleteData)
		}
		ts := time.Unix(secs, 0).UTC()
		if ts.Before(start) || ts.After(now) {
			continue
		}
		counts[yearMonth{ts.Year(), ts.Month()}] += count
	}

	months := make([]domain.MonthActivity, 0, MonthsInWindow)
	cursor := start
	for i := 0; i < MonthsInWindow; i++ {
		months = append(months, domain.MonthActivity{
			Month: cursor.Month().String(),
			Year:  cursor.Year(),
			Count: counts[yearMonth{cursor.Year(), cursor.Month()}],
		})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return months, nil
}
