package social

import (
	"context"
	"fmt"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/logger"
	"github.com/ryanmello/devboard/internal/metrics"
	"github.com/ryanmello/devboard/internal/repository"
)

// Service defines the interface for follow graph operations
type Service interface {
	// Follow makes follower follow followee. Following someone already
	// followed is a no-op success.
	Follow(ctx context.Context, followerUsername, followeeUsername string) error

	// Unfollow removes the edge. Unfollowing someone not followed is a
	// no-op success.
	Unfollow(ctx context.Context, followerUsername, followeeUsername string) error

	IsFollowing(ctx context.Context, followerUsername, followeeUsername string) (bool, error)

	ListFollowers(ctx context.Context, username string, page, limit int) (*domain.FollowPage, error)
	ListFollowing(ctx context.Context, username string, page, limit int) (*domain.FollowPage, error)
}

// service implements the Service interface
type service struct {
	users  repository.User
	social repository.Social
}

// NewService creates a new social graph service
func NewService(users repository.User, social repository.Social) Service {
	return &service{users: users, social: social}
}

// resolvePair looks up both ends of a follow edge and rejects self-follows
func (s *service) resolvePair(ctx context.Context, followerUsername, followeeUsername string) (*domain.User, *domain.User, error) {
	if followerUsername == followeeUsername {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrSelfFollow, followerUsername)
	}

	follower, err := s.users.GetUserByUsername(ctx, followerUsername)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve follower %s: %w", followerUsername, err)
	}
	followee, err := s.users.GetUserByUsername(ctx, followeeUsername)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve followee %s: %w", followeeUsername, err)
	}
	return follower, followee, nil
}

func (s *service) Follow(ctx context.Context, followerUsername, followeeUsername string) error {
	log := logger.FromContext(ctx)

	follower, followee, err := s.resolvePair(ctx, followerUsername, followeeUsername)
	if err != nil {
		metrics.FollowOperationsTotal.WithLabelValues(metrics.OperationFollow, metrics.OutcomeError).Inc()
		return err
	}

	created, err := s.social.Follow(ctx, follower.ID, followee.ID)
	if err != nil {
		metrics.FollowOperationsTotal.WithLabelValues(metrics.OperationFollow, metrics.OutcomeError).Inc()
		return fmt.Errorf("failed to follow: %w", err)
	}

	if created {
		metrics.FollowOperationsTotal.WithLabelValues(metrics.OperationFollow, metrics.OutcomeCreated).Inc()
		log.Info("Follow edge created", "follower", followerUsername, "followee", followeeUsername)
	} else {
		metrics.FollowOperationsTotal.WithLabelValues(metrics.OperationFollow, metrics.OutcomeNoop).Inc()
		log.Debug("Follow already exists", "follower", followerUsername, "followee", followeeUsername)
	}
	return nil
}

func (s *service) Unfollow(ctx context.Context, followerUsername, followeeUsername string) error {
	log := logger.FromContext(ctx)

	follower, followee, err := s.resolvePair(ctx, followerUsername, followeeUsername)
	if err != nil {
		metrics.FollowOperationsTotal.WithLabelValues(metrics.OperationUnfollow, metrics.OutcomeError).Inc()
		return err
	}

	removed, err := s.social.Unfollow(ctx, follower.ID, followee.ID)
	if err != nil {
		metrics.FollowOperationsTotal.WithLabelValues(metrics.OperationUnfollow, metrics.OutcomeError).Inc()
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	if removed {
		metrics.FollowOperationsTotal.WithLabelValues(metrics.OperationUnfollow, metrics.OutcomeRemoved).Inc()
		log.Info("Follow edge removed", "follower", followerUsername, "followee", followeeUsername)
	} else {
		metrics.FollowOperationsTotal.WithLabelValues(metrics.OperationUnfollow, metrics.OutcomeNoop).Inc()
		log.Debug("Follow did not exist", "follower", followerUsername, "followee", followeeUsername)
	}
	return nil
}

func (s *service) IsFollowing(ctx context.Context, followerUsername, followeeUsername string) (bool, error) {
	if followerUsername == followeeUsername {
		return false, nil
	}

	follower, err := s.users.GetUserByUsername(ctx, followerUsername)
	if err != nil {
		return false, fmt.Errorf("failed to resolve follower %s: %w", followerUsername, err)
	}
	followee, err := s.users.GetUserByUsername(ctx, followeeUsername)
	if err != nil {
		return false, fmt.Errorf("failed to resolve followee %s: %w", followeeUsername, err)
	}

	return s.social.IsFollowing(ctx, follower.ID, followee.ID)
}

func (s *service) ListFollowers(ctx context.Context, username string, page, limit int) (*domain.FollowPage, error) {
	return s.listPage(ctx, username, page, limit, s.social.ListFollowers)
}

func (s *service) ListFollowing(ctx context.Context, username string, page, limit int) (*domain.FollowPage, error) {
	return s.listPage(ctx, username, page, limit, s.social.ListFollowing)
}

type listFunc func(ctx context.Context, userID string, limit, offset int) ([]domain.User, int, error)

func (s *service) listPage(ctx context.Context, username string, page, limit int, list listFunc) (*domain.FollowPage, error) {
	page, limit = clampPagination(page, limit)

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", username, err)
	}

	users, total, err := list(ctx, user.ID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow edges: %w", err)
	}

	return &domain.FollowPage{
		Users: users,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// clampPagination normalizes page and limit to sane bounds
func clampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}
	return page, limit
}
