package contract

import (
	"context"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// FindAll returns appointments ordered by appointment_date ascending.
	FindAll(ctx context.Context) ([]*entity.Appointment, error)
	// FindRecentByUserID returns at most limit appointments for the user,
	// ordered by appointment_date descending.
	FindRecentByUserID(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.Appointment, error)
}
