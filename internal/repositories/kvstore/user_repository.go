package kvstore

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	"github.com/fieldtrax/sales_visit_app/pkg/storage"
)

const (
	usersCollection       = "users"
	currentUserCollection = "current_user"
)

// UserRepository stores users and the selected persona.
type UserRepository struct {
	users   *collection[domain.User]
	current *collection[domain.User]
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

// NewUserRepository creates a user repository backed by store.
func NewUserRepository(store storage.BlobStore) *UserRepository {
	return &UserRepository{
		users:   newCollection[domain.User](store, usersCollection),
		current: newCollection[domain.User](store, currentUserCollection),
	}
}

// FindUserByID retrieves a specific user by ID.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.users.findOne(ctx, func(u domain.User) bool { return u.UserID == userID })
}

// ListUsers retrieves all known users.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	return r.users.load(ctx)
}

// FindCurrentUser retrieves the persisted persona.
func (r *UserRepository) FindCurrentUser(ctx context.Context) (*domain.User, error) {
	users, err := r.current.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	u := users[0]
	return &u, nil
}

// SaveUser upserts a user by ID.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return r.users.upsert(ctx, func(u domain.User) bool { return u.UserID == user.UserID }, user)
}

// SetCurrentUser persists the selected persona as a single-element collection.
func (r *UserRepository) SetCurrentUser(ctx context.Context, user domain.User) error {
	r.current.mu.Lock()
	defer r.current.mu.Unlock()
	return r.current.replace(ctx, []domain.User{user})
}
