package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/logger"
)

// SocialRepository implements the follow graph repository for PostgreSQL
type SocialRepository struct {
	db *pgxpool.Pool
}

// NewSocialRepository creates a new SocialRepository
func NewSocialRepository(db *pgxpool.Pool) *SocialRepository {
	return &SocialRepository{db: db}
}

// Follow creates the follow edge and adjusts both counters atomically.
// ON CONFLICT DO NOTHING makes concurrent follows of the same pair safe:
// only the transaction that inserts the edge touches the counters.
func (r *SocialRepository) Follow(ctx context.Context, followerID, followeeID string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer safeRollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("failed to insert follow edge: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Edge already existed, nothing to commit
		return false, tx.Commit(ctx)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET following_count = following_count + 1, updated_at = NOW()
		WHERE user_id = $1
	`, followerID)
	if err != nil {
		return false, fmt.Errorf("failed to increment following count: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET follower_count = follower_count + 1, updated_at = NOW()
		WHERE user_id = $1
	`, followeeID)
	if err != nil {
		return false, fmt.Errorf("failed to increment follower count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit follow: %w", err)
	}
	return true, nil
}

// Unfollow removes the follow edge and adjusts both counters atomically.
// Counters are floored at zero; hitting the floor means they had drifted,
// which is worth a warning but not a failed request.
func (r *SocialRepository) Unfollow(ctx context.Context, followerID, followeeID string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer safeRollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2
	`, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow edge: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return false, tx.Commit(ctx)
	}

	var followingCount int
	err = tx.QueryRow(ctx, `
		UPDATE users SET following_count = GREATEST(following_count - 1, 0), updated_at = NOW()
		WHERE user_id = $1
		RETURNING following_count
	`, followerID).Scan(&followingCount)
	if err != nil {
		return false, fmt.Errorf("failed to decrement following count: %w", err)
	}

	var followerCount int
	err = tx.QueryRow(ctx, `
		UPDATE users SET follower_count = GREATEST(follower_count - 1, 0), updated_at = NOW()
		WHERE user_id = $1
		RETURNING follower_count
	`, followeeID).Scan(&followerCount)
	if err != nil {
		return false, fmt.Errorf("failed to decrement follower count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit unfollow: %w", err)
	}

	if followingCount == 0 || followerCount == 0 {
		logger.FromContext(ctx).Warn("Follow counter hit zero floor on unfollow",
			"follower_id", followerID,
			"followee_id", followeeID)
	}
	return true, nil
}

// IsFollowing reports whether the follow edge exists
func (r *SocialRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)
	`, followerID, followeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}
	return exists, nil
}

// ListFollowers returns users following userID, newest edge first
func (r *SocialRepository) ListFollowers(ctx context.Context, userID string, limit, offset int) ([]domain.User, int, error) {
	return r.listEdgeUsers(ctx, userID, limit, offset, true)
}

// ListFollowing returns users userID follows, newest edge first
func (r *SocialRepository) ListFollowing(ctx context.Context, userID string, limit, offset int) ([]domain.User, int, error) {
	return r.listEdgeUsers(ctx, userID, limit, offset, false)
}

func (r *SocialRepository) listEdgeUsers(ctx context.Context, userID string, limit, offset int, followers bool) ([]domain.User, int, error) {
	joinCol, whereCol := "f.follower_id", "f.followee_id"
	if !followers {
		joinCol, whereCol = "f.followee_id", "f.follower_id"
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM follows f WHERE %s = $1`, whereCol)
	var total int
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count follow edges: %w", err)
	}

	// Edge timestamp orders the page; user_id breaks ties so pages are stable
	query := fmt.Sprintf(`
		SELECT u.user_id, u.username, u.first_name, u.last_name, u.headline, u.image,
			u.github_username, u.leetcode_username, u.follower_count, u.following_count,
			u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON u.user_id = %s
		WHERE %s = $1
		ORDER BY f.created_at DESC, u.user_id
		LIMIT $2 OFFSET $3
	`, joinCol, whereCol)

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list follow edges: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, limit)
	for rows.Next() {
		var u domain.User
		err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.FirstName,
			&u.LastName,
			&u.Headline,
			&u.Image,
			&u.GitHubUsername,
			&u.LeetCodeUsername,
			&u.FollowerCount,
			&u.FollowingCount,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate follow edges: %w", err)
	}

	return users, total, nil
}
