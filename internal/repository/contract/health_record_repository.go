package contract

import (
	"context"
	"time"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

// HealthRecordFilter narrows a listing. Zero values impose no constraint;
// both time bounds are inclusive.
type HealthRecordFilter struct {
	DataType string
	From     *time.Time
	To       *time.Time
}

type HealthRecordRepository interface {
	Create(ctx context.Context, record *entity.HealthRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindAll returns matching records ordered by recorded_at descending.
	FindAll(ctx context.Context, filter HealthRecordFilter) ([]*entity.HealthRecord, error)
	// FindRecentByUserID returns at most limit records for the user, ordered
	// by recorded_at descending.
	FindRecentByUserID(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.HealthRecord, error)
}
