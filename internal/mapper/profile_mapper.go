package mapper

import (
	"healthlink-be/internal/entity"
	"healthlink-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:        p.Id,
		UserId:    p.UserId,
		FullName:  p.FullName,
		Phone:     p.Phone,
		BirthDate: p.BirthDate,
		Gender:    p.Gender,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:        p.Id,
		UserId:    p.UserId,
		FullName:  p.FullName,
		Phone:     p.Phone,
		BirthDate: p.BirthDate,
		Gender:    p.Gender,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToEntities(models []*model.Profile) []*entity.Profile {
	entities := make([]*entity.Profile, len(models))
	for i, p := range models {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
