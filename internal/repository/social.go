package repository

import (
	"context"

	"github.com/ryanmello/devboard/internal/domain"
)

// Social defines the interface for follow graph persistence
type Social interface {
	// Follow creates the follower->followee edge and adjusts both counters
	// in a single transaction. Returns created=false when the edge already
	// existed, in which case no counters change.
	Follow(ctx context.Context, followerID, followeeID string) (created bool, err error)

	// Unfollow removes the edge and adjusts both counters in a single
	// transaction. Returns removed=false when no edge existed.
	Unfollow(ctx context.Context, followerID, followeeID string) (removed bool, err error)

	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)

	// ListFollowers returns users following userID, newest edge first.
	ListFollowers(ctx context.Context, userID string, limit, offset int) ([]domain.User, int, error)

	// ListFollowing returns users userID follows, newest edge first.
	ListFollowing(ctx context.Context, userID string, limit, offset int) ([]domain.User, int, error)
}
