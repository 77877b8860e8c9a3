package repository

import (
	"context"

	"github.com/ryanmello/devboard/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, userID string) error

	// UpdateExternalAccounts sets the linked external account handles.
	// A nil pointer leaves the corresponding handle unchanged; an empty
	// string unlinks it.
	UpdateExternalAccounts(ctx context.Context, userID string, github, leetcode *string) error
}
