package mapper

import (
	"healthlink-be/internal/entity"
	"healthlink-be/internal/model"
)

type AppointmentMapper struct{}

func NewAppointmentMapper() *AppointmentMapper {
	return &AppointmentMapper{}
}

func (m *AppointmentMapper) ToEntity(a *model.Appointment) *entity.Appointment {
	if a == nil {
		return nil
	}
	return &entity.Appointment{
		Id:              a.Id,
		UserId:          a.UserId,
		Title:           a.Title,
		Description:     a.Description,
		AppointmentDate: a.AppointmentDate,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (m *AppointmentMapper) ToModel(a *entity.Appointment) *model.Appointment {
	if a == nil {
		return nil
	}
	return &model.Appointment{
		Id:              a.Id,
		UserId:          a.UserId,
		Title:           a.Title,
		Description:     a.Description,
		AppointmentDate: a.AppointmentDate,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (m *AppointmentMapper) ToEntities(models []*model.Appointment) []*entity.Appointment {
	entities := make([]*entity.Appointment, len(models))
	for i, a := range models {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
