package contract

import (
	"context"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

// ProfileRepository is the narrow store capability the profile operations
// depend on. FindByID returns (nil, nil) when no row matches.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindFirstByUserID(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)
	FindAll(ctx context.Context) ([]*entity.Profile, error)
}
