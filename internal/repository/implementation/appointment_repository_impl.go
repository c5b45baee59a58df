package implementation

import (
	"context"
	"errors"

	"healthlink-be/internal/entity"
	"healthlink-be/internal/mapper"
	"healthlink-be/internal/model"
	"healthlink-be/internal/repository/contract"
	"healthlink-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AppointmentMapper
}

func NewAppointmentRepository(db *gorm.DB) contract.AppointmentRepository {
	return &AppointmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAppointmentMapper(),
	}
}

func (r *AppointmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AppointmentRepositoryImpl) Create(ctx context.Context, appointment *entity.Appointment) error {
	m := r.mapper.ToModel(appointment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeError(err)
	}
	*appointment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AppointmentRepositoryImpl) Update(ctx context.Context, appointment *entity.Appointment) error {
	m := r.mapper.ToModel(appointment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return storeError(err)
	}
	*appointment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AppointmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(r.db.WithContext(ctx).Delete(&model.Appointment{}, id).Error)
}

func (r *AppointmentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var m model.Appointment
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError(err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AppointmentRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	return r.findAll(ctx, specification.OrderBy{Field: "appointment_date"})
}

func (r *AppointmentRepositoryImpl) FindRecentByUserID(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.Appointment, error) {
	return r.findAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "appointment_date", Desc: true},
		specification.Limit{N: limit},
	)
}

func (r *AppointmentRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error) {
	var models []*model.Appointment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, storeError(err)
	}
	return r.mapper.ToEntities(models), nil
}
