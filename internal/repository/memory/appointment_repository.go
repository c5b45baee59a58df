package memory

import (
	"context"
	"sort"
	"time"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

type appointmentRepository struct {
	store *Store
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	if appointment.Id == uuid.Nil {
		appointment.Id = uuid.New()
	}
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	r.store.appointments[appointment.Id] = *appointment
	return nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointment.UpdatedAt = time.Now()
	r.store.appointments[appointment.Id] = *appointment
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.appointments, id)
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if a, ok := r.store.appointments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.Appointment, 0, len(r.store.appointments))
	for _, a := range r.store.appointments {
		a := a
		result = append(result, &a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AppointmentDate.Before(result[j].AppointmentDate)
	})
	return result, nil
}

func (r *appointmentRepository) FindRecentByUserID(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.Appointment, 0)
	for _, a := range r.store.appointments {
		if a.UserId == userId {
			a := a
			result = append(result, &a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AppointmentDate.After(result[j].AppointmentDate)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
