package mapper

import (
	"healthlink-be/internal/entity"
	"healthlink-be/internal/model"
)

type SettingMapper struct{}

func NewSettingMapper() *SettingMapper {
	return &SettingMapper{}
}

func (m *SettingMapper) ToEntity(s *model.SystemSetting) *entity.SystemSetting {
	if s == nil {
		return nil
	}
	return &entity.SystemSetting{
		Id:          s.Id,
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *SettingMapper) ToModel(s *entity.SystemSetting) *model.SystemSetting {
	if s == nil {
		return nil
	}
	return &model.SystemSetting{
		Id:          s.Id,
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *SettingMapper) ToEntities(models []*model.SystemSetting) []*entity.SystemSetting {
	entities := make([]*entity.SystemSetting, len(models))
	for i, s := range models {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
