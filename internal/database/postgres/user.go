package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ryanmello/devboard/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id, username, first_name, last_name, headline, image,
	github_username, leetcode_username, follower_count, following_count,
	created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Headline,
		&user.Image,
		&user.GitHubUsername,
		&user.LeetCodeUsername,
		&user.FollowerCount,
		&user.FollowingCount,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user and fills in the generated fields
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, first_name, last_name, headline, image, github_username, leetcode_username)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Headline,
		user.Image,
		user.GitHubUsername,
		user.LeetCodeUsername,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: username %s taken", domain.ErrConflict, user.Username)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return scanUser(r.db.QueryRow(ctx, query, userID))
}

// GetUserByUsername retrieves a user by their username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// UpdateUser updates the mutable profile fields of an existing user
func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET username = $1, first_name = $2, last_name = $3, headline = $4, image = $5, updated_at = NOW()
		WHERE user_id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Headline,
		user.Image,
		user.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: username %s taken", domain.ErrConflict, user.Username)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes a user. Follow edges go with it via ON DELETE CASCADE,
// so counters on surviving users are corrected here in the same transaction.
func (r *UserRepository) DeleteUser(ctx context.Context, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer safeRollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		UPDATE users SET following_count = GREATEST(following_count - 1, 0), updated_at = NOW()
		WHERE user_id IN (SELECT follower_id FROM follows WHERE followee_id = $1)
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust follower counters: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET follower_count = GREATEST(follower_count - 1, 0), updated_at = NOW()
		WHERE user_id IN (SELECT followee_id FROM follows WHERE follower_id = $1)
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust followee counters: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return tx.Commit(ctx)
}

// UpdateExternalAccounts sets the linked external account handles.
// Nil pointers leave the handle unchanged.
func (r *UserRepository) UpdateExternalAccounts(ctx context.Context, userID string, github, leetcode *string) error {
	query := `
		UPDATE users
		SET github_username = COALESCE($1, github_username),
		    leetcode_username = COALESCE($2, leetcode_username),
		    updated_at = NOW()
		WHERE user_id = $3
	`
	tag, err := r.db.Exec(ctx, query, github, leetcode, userID)
	if err != nil {
		return fmt.Errorf("failed to update external accounts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
