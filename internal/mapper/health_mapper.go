package mapper

import (
	"healthlink-be/internal/entity"
	"healthlink-be/internal/model"
)

type HealthMapper struct{}

func NewHealthMapper() *HealthMapper {
	return &HealthMapper{}
}

func (m *HealthMapper) ToEntity(h *model.HealthRecord) *entity.HealthRecord {
	if h == nil {
		return nil
	}
	return &entity.HealthRecord{
		Id:         h.Id,
		UserId:     h.UserId,
		DataType:   h.DataType,
		Value:      h.Value,
		Unit:       h.Unit,
		RecordedAt: h.RecordedAt,
		CreatedAt:  h.CreatedAt,
	}
}

func (m *HealthMapper) ToModel(h *entity.HealthRecord) *model.HealthRecord {
	if h == nil {
		return nil
	}
	return &model.HealthRecord{
		Id:         h.Id,
		UserId:     h.UserId,
		DataType:   h.DataType,
		Value:      h.Value,
		Unit:       h.Unit,
		RecordedAt: h.RecordedAt,
		CreatedAt:  h.CreatedAt,
	}
}

func (m *HealthMapper) ToEntities(models []*model.HealthRecord) []*entity.HealthRecord {
	entities := make([]*entity.HealthRecord, len(models))
	for i, h := range models {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
