package repositories

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all known users.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// FindCurrentUser retrieves the persisted persona, if any.
	FindCurrentUser(ctx context.Context) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser upserts a user by ID.
	SaveUser(ctx context.Context, user domain.User) error

	// SetCurrentUser persists the selected persona.
	SetCurrentUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
