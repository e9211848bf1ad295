package repository

import (
	"context"

	"account-service/internal/domain"
)

// ProfileRepository defines persistence operations for Profile entities.
type ProfileRepository interface {
	Init(ctx context.Context) error
	// CreateForUser inserts an empty profile owned by the given user.
	CreateForUser(ctx context.Context, userID int64) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	// Update overwrites the whole record.
	Update(ctx context.Context, profile *domain.Profile) error
}
