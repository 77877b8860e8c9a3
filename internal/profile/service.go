package profile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ryanmello/devboard/internal/codingstats"
	"github.com/ryanmello/devboard/internal/contributions"
	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/github"
	"github.com/ryanmello/devboard/internal/leetcode"
	"github.com/ryanmello/devboard/internal/logger"
	"github.com/ryanmello/devboard/internal/metrics"
	"github.com/ryanmello/devboard/internal/repository"
)

// ContributionFeed fetches raw contribution calendars
type ContributionFeed interface {
	FetchContributions(ctx context.Context, username string) (*github.CalendarPayload, error)
}

// StatsFeed fetches raw coding statistics
type StatsFeed interface {
	FetchStats(ctx context.Context, username string) (*leetcode.StatsPayload, error)
}

// Service defines the interface for profile aggregation
type Service interface {
	// GetProfile composes the base record, both feeds and the social
	// counters. An unknown username is terminal; a failed feed is not.
	GetProfile(ctx context.Context, username string) (*domain.AggregatedProfile, error)

	// GetContributionCalendar fetches and normalizes just the calendar section
	GetContributionCalendar(ctx context.Context, username string) (*domain.CalendarSection, error)

	// GetCodingStats fetches and normalizes just the stats section
	GetCodingStats(ctx context.Context, username string) (*domain.StatsSection, error)

	// CreateUser registers a new base record. The generated id and
	// timestamps are filled in on the passed user.
	CreateUser(ctx context.Context, user *domain.User) error

	// UpdateProfile changes the mutable display fields of the base
	// record. Nil fields are left unchanged. The username itself is
	// immutable.
	UpdateProfile(ctx context.Context, username string, update ProfileUpdate) (*domain.User, error)

	// DeleteUser removes the base record and its follow edges
	DeleteUser(ctx context.Context, username string) error

	// UpdateExternalAccounts links or unlinks the external handles.
	// Nil leaves a handle unchanged, empty string unlinks it.
	UpdateExternalAccounts(ctx context.Context, username string, github, leetcode *string) error

	// InvalidateUser drops the cached base record after a social mutation
	InvalidateUser(username string)
}

// ProfileUpdate carries the display fields a profile update may change.
// Nil means leave unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Headline  *string
	Image     *string
}

// service implements the Service interface
type service struct {
	users       repository.User
	contribFeed ContributionFeed
	statsFeed   StatsFeed
	cache       *userCache
	feedTimeout time.Duration
	now         func() time.Time
}

// NewService creates a new profile aggregation service
func NewService(users repository.User, contribFeed ContributionFeed, statsFeed StatsFeed, cacheSize int, cacheTTL, feedTimeout time.Duration) Service {
	return &service{
		users:       users,
		contribFeed: contribFeed,
		statsFeed:   statsFeed,
		cache:       newUserCache(cacheSize, cacheTTL),
		feedTimeout: feedTimeout,
		now:         time.Now,
	}
}

// getUser resolves the base record through the cache
func (s *service) getUser(ctx context.Context, username string) (*domain.User, error) {
	if user, ok := s.cache.Get(username); ok {
		return user, nil
	}
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	s.cache.Set(username, user)
	return user, nil
}

func (s *service) GetProfile(ctx context.Context, username string) (*domain.AggregatedProfile, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", username, err)
	}

	// Both feeds run concurrently, so total latency is bounded by the
	// slowest feed rather than their sum. Each goroutine writes only its
	// own section.
	var (
		wg       sync.WaitGroup
		calendar *domain.CalendarSection
		stats    *domain.StatsSection
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		calendar = s.fetchCalendarSection(ctx, user)
	}()
	go func() {
		defer wg.Done()
		stats = s.fetchStatsSection(ctx, user)
	}()
	wg.Wait()

	return &domain.AggregatedProfile{
		User:           *user,
		Calendar:       *calendar,
		Stats:          *stats,
		FollowerCount:  user.FollowerCount,
		FollowingCount: user.FollowingCount,
	}, nil
}

func (s *service) GetContributionCalendar(ctx context.Context, username string) (*domain.CalendarSection, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", username, err)
	}
	return s.fetchCalendarSection(ctx, user), nil
}

func (s *service) GetCodingStats(ctx context.Context, username string) (*domain.StatsSection, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", username, err)
	}
	return s.fetchStatsSection(ctx, user), nil
}

// fetchCalendarSection fetches and normalizes the contribution calendar,
// degrading to unavailable on any failure. No network call happens when
// the account is not linked.
func (s *service) fetchCalendarSection(ctx context.Context, user *domain.User) *domain.CalendarSection {
	if !user.HasGitHub() {
		metrics.FeedFetchesTotal.WithLabelValues(metrics.FeedGitHub, metrics.OutcomeNotConfigured).Inc()
		return &domain.CalendarSection{Status: domain.FeedStatusNotConfigured}
	}

	log := logger.FromContext(ctx)
	fetchCtx, cancel := context.WithTimeout(ctx, s.feedTimeout)
	defer cancel()

	start := time.Now()
	payload, err := s.contribFeed.FetchContributions(fetchCtx, user.GitHubUsername)
	metrics.FeedFetchDuration.WithLabelValues(metrics.FeedGitHub).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FeedFetchesTotal.WithLabelValues(metrics.FeedGitHub, metrics.OutcomeUnavailable).Inc()
		log.Warn("Contribution feed unavailable", "username", user.Username, "error", err)
		return &domain.CalendarSection{
			Status: domain.FeedStatusUnavailable,
			Reason: domain.ErrMsgFeedUnavailable,
		}
	}

	calendar, err := contributions.Normalize(payload)
	if err != nil {
		metrics.FeedFetchesTotal.WithLabelValues(metrics.FeedGitHub, metrics.OutcomeUnavailable).Inc()
		log.Warn("Contribution feed returned bad data", "username", user.Username, "error", err)
		return &domain.CalendarSection{
			Status: domain.FeedStatusUnavailable,
			Reason: domain.ErrMsgIncompleteData,
		}
	}

	metrics.FeedFetchesTotal.WithLabelValues(metrics.FeedGitHub, metrics.OutcomeOK).Inc()
	return &domain.CalendarSection{Status: domain.FeedStatusLoaded, Calendar: calendar}
}

// fetchStatsSection is the coding-stats counterpart of fetchCalendarSection
func (s *service) fetchStatsSection(ctx context.Context, user *domain.User) *domain.StatsSection {
	if !user.HasLeetCode() {
		metrics.FeedFetchesTotal.WithLabelValues(metrics.FeedLeetCode, metrics.OutcomeNotConfigured).Inc()
		return &domain.StatsSection{Status: domain.FeedStatusNotConfigured}
	}

	log := logger.FromContext(ctx)
	fetchCtx, cancel := context.WithTimeout(ctx, s.feedTimeout)
	defer cancel()

	start := time.Now()
	payload, err := s.statsFeed.FetchStats(fetchCtx, user.LeetCodeUsername)
	metrics.FeedFetchDuration.WithLabelValues(metrics.FeedLeetCode).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FeedFetchesTotal.WithLabelValues(metrics.FeedLeetCode, metrics.OutcomeUnavailable).Inc()
		log.Warn("Stats feed unavailable", "username", user.Username, "error", err)
		return &domain.StatsSection{
			Status: domain.FeedStatusUnavailable,
			Reason: domain.ErrMsgFeedUnavailable,
		}
	}

	stats, err := codingstats.Normalize(payload, s.now())
	if err != nil {
		metrics.FeedFetchesTotal.WithLabelValues(metrics.FeedLeetCode, metrics.OutcomeUnavailable).Inc()
		log.Warn("Stats feed returned bad data", "username", user.Username, "error", err)
		return &domain.StatsSection{
			Status: domain.FeedStatusUnavailable,
			Reason: domain.ErrMsgIncompleteData,
		}
	}

	metrics.FeedFetchesTotal.WithLabelValues(metrics.FeedLeetCode, metrics.OutcomeOK).Inc()
	return &domain.StatsSection{Status: domain.FeedStatusLoaded, Stats: stats}
}

func (s *service) CreateUser(ctx context.Context, user *domain.User) error {
	if err := s.users.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	logger.FromContext(ctx).Info("User created", "username", user.Username, "user_id", user.ID)
	return nil
}

func (s *service) UpdateProfile(ctx context.Context, username string, update ProfileUpdate) (*domain.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", username, err)
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Headline != nil {
		user.Headline = *update.Headline
	}
	if update.Image != nil {
		user.Image = *update.Image
	}

	if err := s.users.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.cache.Invalidate(username)
	logger.FromContext(ctx).Info("Profile updated", "username", username)
	return user, nil
}

func (s *service) DeleteUser(ctx context.Context, username string) error {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to resolve user %s: %w", username, err)
	}

	if err := s.users.DeleteUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	// Counters changed on every user this one followed or was followed
	// by, so the whole cache goes
	s.cache.Clear()
	logger.FromContext(ctx).Info("User deleted", "username", username, "user_id", user.ID)
	return nil
}

func (s *service) UpdateExternalAccounts(ctx context.Context, username string, github, leetcode *string) error {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to resolve user %s: %w", username, err)
	}

	if err := s.users.UpdateExternalAccounts(ctx, user.ID, github, leetcode); err != nil {
		return fmt.Errorf("failed to update external accounts: %w", err)
	}

	s.cache.Invalidate(username)
	logger.FromContext(ctx).Info("External accounts updated", "username", username)
	return nil
}

func (s *service) InvalidateUser(username string) {
	s.cache.Invalidate(username)
}
