package contract

import (
	"context"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

type SystemSettingRepository interface {
	Create(ctx context.Context, setting *entity.SystemSetting) error
	Update(ctx context.Context, setting *entity.SystemSetting) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SystemSetting, error)
	// FindAll returns settings ordered by key ascending.
	FindAll(ctx context.Context) ([]*entity.SystemSetting, error)
}
