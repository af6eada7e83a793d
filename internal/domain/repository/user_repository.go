package repository

import (
	"context"

	"github.com/crewbase/account-service/internal/domain/entity"
)

// UserRepository defines the persistence contract for users. Implementations
// return domain.ErrNotFound when a lookup misses; any other error is an
// infrastructure failure.
type UserRepository interface {
	// Create inserts the user together with its membership rows in a single
	// transaction and fills ID, CreatedAt, and UpdatedAt.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetActiveByUsername resolves a user by username, requiring Active.
	// Inactive users are invisible to this lookup.
	GetActiveByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update persists mutable fields (active, status, profile).
	Update(ctx context.Context, u *entity.User) error
}
