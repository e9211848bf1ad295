package repository

import (
	"context"
	"errors"

	"account-service/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when an insert would violate username uniqueness.
	ErrDuplicateUsername = errors.New("username already in use")
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	// CreateWithProfile persists the user together with an empty profile in a
	// single transaction. Either both rows exist afterwards or neither does.
	CreateWithProfile(ctx context.Context, user *domain.User) (*domain.Profile, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetActiveByUsername matches only users with the active flag set.
	GetActiveByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// Update overwrites the whole record.
	Update(ctx context.Context, user *domain.User) error
}
